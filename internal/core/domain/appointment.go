package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/docorbit_backend/internal/apperrors"
)

// AppointmentStatus is the lifecycle state of an appointment.
type AppointmentStatus string

const (
	AppointmentPending   AppointmentStatus = "PENDING"
	AppointmentCancelled AppointmentStatus = "CANCELLED"
)

// IsTerminal reports whether no further transition is allowed.
func (s AppointmentStatus) IsTerminal() bool {
	return s == AppointmentCancelled
}

// Appointment links one doctor, one patient user and the doctor's clinic at booking time.
type Appointment struct {
	AppointmentID   string            `json:"appointmentID"`
	DoctorID        string            `json:"doctorID"`
	PatientID       string            `json:"patientID"`
	ClinicID        string            `json:"clinicID"`
	AppointmentDate time.Time         `json:"appointmentDate"`
	AppointmentTime time.Time         `json:"appointmentTime"`
	Status          AppointmentStatus `json:"status"`
	Timestamps
}

// NewAppointment builds a PENDING appointment for doctor and patient. The status is
// never taken from the caller.
func NewAppointment(id string, doctor Doctor, patient User, date, clock time.Time, now time.Time) (Appointment, error) {
	if !doctor.HasClinic() {
		return Appointment{}, fmt.Errorf("doctor %s: %w", doctor.DoctorID, apperrors.ErrUnlinkedFacility)
	}
	return Appointment{
		AppointmentID:   id,
		DoctorID:        doctor.DoctorID,
		PatientID:       patient.UserID,
		ClinicID:        doctor.Clinic.ClinicID,
		AppointmentDate: DateOnly(date),
		AppointmentTime: TimeOfDay(clock),
		Status:          AppointmentPending,
		Timestamps: Timestamps{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}, nil
}

// IsOwnedBy reports whether userID is the booking patient.
func (a Appointment) IsOwnedBy(userID string) bool {
	return a.PatientID != "" && a.PatientID == userID
}

// Cancel moves a PENDING appointment to CANCELLED. Any other starting state is
// rejected with ErrInvalidStateTransition.
func (a *Appointment) Cancel(now time.Time) error {
	if a.Status != AppointmentPending {
		return fmt.Errorf("%s -> %s: %w", a.Status, AppointmentCancelled, apperrors.ErrInvalidStateTransition)
	}
	a.Status = AppointmentCancelled
	a.LastUpdatedAt = now
	return nil
}

// AppointmentDetails is the read projection joining the appointment with its doctor,
// clinic and patient. It is what listings and notifications work from.
type AppointmentDetails struct {
	Appointment
	DoctorName     string
	DoctorEmail    string
	Specialization string
	ClinicName     string
	ClinicAddress  string
	ClinicCity     string
	PatientName    string
	PatientEmail   string
}

// NewAppointmentDetails assembles the projection from loaded entities.
func NewAppointmentDetails(a Appointment, doctor Doctor, patient User) AppointmentDetails {
	d := AppointmentDetails{
		Appointment:    a,
		DoctorName:     doctor.Name,
		DoctorEmail:    doctor.Email,
		Specialization: doctor.Specialization,
		PatientName:    patient.Name,
		PatientEmail:   patient.Email,
	}
	if doctor.Clinic != nil {
		d.ClinicName = doctor.Clinic.Name
		d.ClinicAddress = doctor.Clinic.Address
		d.ClinicCity = doctor.Clinic.City
	}
	return d
}

// DateOnly strips the clock part of t, keeping its calendar date in UTC.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// TimeOfDay keeps only the wall clock of t on the zero date in UTC.
func TimeOfDay(t time.Time) time.Time {
	return time.Date(0, time.January, 1, t.Hour(), t.Minute(), t.Second(), 0, time.UTC)
}
