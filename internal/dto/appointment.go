package dto

import (
	"github.com/SscSPs/docorbit_backend/internal/core/domain"
)

// BookAppointmentRequest is read from the query string or form body.
type BookAppointmentRequest struct {
	DoctorID string `form:"doctorId" binding:"required"`
	Date     string `form:"date" binding:"required"`
	Time     string `form:"time" binding:"required"`
}

// AppointmentResponse is the flattened appointment listing entry.
type AppointmentResponse struct {
	ID              string `json:"id"`
	AppointmentDate string `json:"appointmentDate"`
	AppointmentTime string `json:"appointmentTime"`
	DoctorName      string `json:"doctorName"`
	Specialization  string `json:"specialization"`
	ClinicName      string `json:"clinicName"`
	ClinicAddress   string `json:"clinicAddress"`
	ClinicCity      string `json:"clinicCity"`
	PatientName     string `json:"patientName"`
	Status          string `json:"status"`
}

// ToAppointmentResponse converts a domain.AppointmentDetails to AppointmentResponse DTO
func ToAppointmentResponse(d domain.AppointmentDetails) AppointmentResponse {
	return AppointmentResponse{
		ID:              d.AppointmentID,
		AppointmentDate: d.AppointmentDate.Format("2006-01-02"),
		AppointmentTime: d.AppointmentTime.Format("15:04"),
		DoctorName:      d.DoctorName,
		Specialization:  d.Specialization,
		ClinicName:      d.ClinicName,
		ClinicAddress:   d.ClinicAddress,
		ClinicCity:      d.ClinicCity,
		PatientName:     d.PatientName,
		Status:          string(d.Status),
	}
}

// ToAppointmentResponses converts a slice of details
func ToAppointmentResponses(ds []domain.AppointmentDetails) []AppointmentResponse {
	out := make([]AppointmentResponse, len(ds))
	for i, d := range ds {
		out[i] = ToAppointmentResponse(d)
	}
	return out
}
