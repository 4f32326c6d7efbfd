package services

import (
	"context"
	"time"

	"github.com/SscSPs/docorbit_backend/internal/core/domain"
)

// AppointmentBookingSvc creates appointments.
type AppointmentBookingSvc interface {
	Book(ctx context.Context, doctorID, patientUserID string, date, clock time.Time) (*domain.AppointmentDetails, error)
}

// AppointmentReaderSvc lists appointments.
type AppointmentReaderSvc interface {
	ListForPatient(ctx context.Context, patientUserID string) ([]domain.AppointmentDetails, error)
}

// AppointmentLifecycleSvc moves appointments through their states.
type AppointmentLifecycleSvc interface {
	// Cancel is only allowed to the patient who booked.
	Cancel(ctx context.Context, appointmentID, requesterUserID string) (*domain.AppointmentDetails, error)
}

// AppointmentSvcFacade combines all appointment-related service interfaces
type AppointmentSvcFacade interface {
	AppointmentBookingSvc
	AppointmentReaderSvc
	AppointmentLifecycleSvc
}
