package repositories

import (
	"context"

	"github.com/SscSPs/docorbit_backend/internal/core/domain"
)

// AppointmentReader defines read operations for appointments
type AppointmentReader interface {
	// FindAppointmentByID retrieves the bare appointment row.
	FindAppointmentByID(ctx context.Context, appointmentID string) (*domain.Appointment, error)

	// FindAppointmentDetails retrieves the appointment joined with doctor, clinic and patient.
	FindAppointmentDetails(ctx context.Context, appointmentID string) (*domain.AppointmentDetails, error)

	// FindAppointmentDetailsByPatient lists every appointment of a patient, any status,
	// newest date first.
	FindAppointmentDetailsByPatient(ctx context.Context, patientID string) ([]domain.AppointmentDetails, error)
}

// AppointmentWriter defines write operations for appointments
type AppointmentWriter interface {
	SaveAppointment(ctx context.Context, appointment domain.Appointment) error
	UpdateAppointmentStatus(ctx context.Context, appointment domain.Appointment) error
}

// AppointmentRepositoryFacade combines all appointment-related repository interfaces
type AppointmentRepositoryFacade interface {
	AppointmentReader
	AppointmentWriter
}
