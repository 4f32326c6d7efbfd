package dto

import (
	"testing"
	"time"

	"github.com/SscSPs/docorbit_backend/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToLoginResponse_RedirectByRole(t *testing.T) {
	doctor := domain.User{Username: "grey", Roles: domain.Roles{domain.RoleDoctor}}
	patient := domain.User{Username: "mer", Roles: domain.Roles{domain.RolePatient, domain.RoleDoctor}}
	plain := domain.User{Username: "alex", Roles: domain.Roles{domain.RolePatient}}

	assert.Equal(t, "/doctor-dashboard", ToLoginResponse(doctor, "t", time.Time{}).RedirectTo)
	assert.Equal(t, "/doctor-dashboard", ToLoginResponse(patient, "t", time.Time{}).RedirectTo)
	assert.Equal(t, "PATIENT", ToLoginResponse(patient, "t", time.Time{}).UserType)
	assert.Equal(t, "/providers", ToLoginResponse(plain, "t", time.Time{}).RedirectTo)
}

func TestSignupRequest_RoleValidation(t *testing.T) {
	require.NoError(t, RegisterValidators())

	req := SignupRequest{
		Username:    "mer",
		Password:    "pw",
		Name:        "Meredith",
		Email:       "mer@example.com",
		PhoneNumber: "555",
		Roles:       []string{"patient"},
	}
	assert.NoError(t, binding.Validator.ValidateStruct(req))

	req.Roles = []string{"NURSE"}
	assert.Error(t, binding.Validator.ValidateStruct(req))

	req.Roles = nil
	assert.Error(t, binding.Validator.ValidateStruct(req))
}

func TestToAppointmentResponse_Formats(t *testing.T) {
	d := domain.AppointmentDetails{
		Appointment: domain.Appointment{
			AppointmentID:   "appt-1",
			AppointmentDate: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
			AppointmentTime: time.Date(0, 1, 1, 9, 5, 0, 0, time.UTC),
			Status:          domain.AppointmentPending,
		},
		DoctorName: "Dr. Grey",
	}

	resp := ToAppointmentResponse(d)

	assert.Equal(t, "2025-03-10", resp.AppointmentDate)
	assert.Equal(t, "09:05", resp.AppointmentTime)
	assert.Equal(t, "PENDING", resp.Status)
}
