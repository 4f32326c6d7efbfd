package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/docorbit_backend/internal/apperrors"
	"github.com/SscSPs/docorbit_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/docorbit_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/docorbit_backend/internal/core/ports/services"
	"github.com/google/uuid"
)

type appointmentService struct {
	BaseService
	appointmentRepo portsrepo.AppointmentRepositoryFacade
	doctorRepo      portsrepo.DoctorReader
	userRepo        portsrepo.UserReader
	notifier        portssvc.NotificationSvc
}

// NewAppointmentService creates the appointment lifecycle service.
func NewAppointmentService(
	appointmentRepo portsrepo.AppointmentRepositoryFacade,
	doctorRepo portsrepo.DoctorReader,
	userRepo portsrepo.UserReader,
	notifier portssvc.NotificationSvc,
	opts ...ServiceOption,
) portssvc.AppointmentSvcFacade {
	s := &appointmentService{
		appointmentRepo: appointmentRepo,
		doctorRepo:      doctorRepo,
		userRepo:        userRepo,
		notifier:        notifier,
	}
	applyOptions(&s.BaseService, opts)
	return s
}

var _ portssvc.AppointmentSvcFacade = (*appointmentService)(nil)

// Book creates a PENDING appointment at the doctor's clinic. Slots are not checked
// for collisions.
func (s *appointmentService) Book(ctx context.Context, doctorID, patientUserID string, date, clock time.Time) (*domain.AppointmentDetails, error) {
	doctor, err := s.doctorRepo.FindDoctorByID(ctx, doctorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("doctor %s: %w", doctorID, apperrors.ErrNotFound)
		}
		s.LogError(ctx, err, "Failed to load doctor for booking", slog.String("doctor_id", doctorID))
		return nil, err
	}

	patient, err := s.userRepo.FindUserByID(ctx, patientUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("patient %s: %w", patientUserID, apperrors.ErrNotFound)
		}
		s.LogError(ctx, err, "Failed to load patient for booking", slog.String("user_id", patientUserID))
		return nil, err
	}

	appointment, err := domain.NewAppointment(uuid.NewString(), *doctor, *patient, date, clock, s.now())
	if err != nil {
		s.LogWarn(ctx, "Booking refused", slog.String("doctor_id", doctorID), slog.String("error", err.Error()))
		return nil, err
	}

	if err := s.appointmentRepo.SaveAppointment(ctx, appointment); err != nil {
		s.LogError(ctx, err, "Failed to save appointment", slog.String("appointment_id", appointment.AppointmentID))
		return nil, err
	}

	details := domain.NewAppointmentDetails(appointment, *doctor, *patient)
	s.notifier.AppointmentBooked(ctx, details)

	s.LogInfo(ctx, "Appointment booked",
		slog.String("appointment_id", appointment.AppointmentID),
		slog.String("doctor_id", doctorID))
	return &details, nil
}

func (s *appointmentService) ListForPatient(ctx context.Context, patientUserID string) ([]domain.AppointmentDetails, error) {
	appointments, err := s.appointmentRepo.FindAppointmentDetailsByPatient(ctx, patientUserID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list appointments", slog.String("user_id", patientUserID))
		return nil, err
	}
	return appointments, nil
}

// Cancel moves the requester's own appointment to CANCELLED. Cancelling an
// appointment that is already cancelled returns it unchanged and sends nothing.
func (s *appointmentService) Cancel(ctx context.Context, appointmentID, requesterUserID string) (*domain.AppointmentDetails, error) {
	if _, err := s.userRepo.FindUserByID(ctx, requesterUserID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("requester %s: %w", requesterUserID, apperrors.ErrNotFound)
		}
		s.LogError(ctx, err, "Failed to load requester", slog.String("user_id", requesterUserID))
		return nil, err
	}

	details, err := s.appointmentRepo.FindAppointmentDetails(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("appointment %s: %w", appointmentID, apperrors.ErrNotFound)
		}
		s.LogError(ctx, err, "Failed to load appointment", slog.String("appointment_id", appointmentID))
		return nil, err
	}

	if !details.IsOwnedBy(requesterUserID) {
		s.LogWarn(ctx, "Cancellation refused: requester does not own appointment",
			slog.String("appointment_id", appointmentID))
		return nil, apperrors.ErrForbidden
	}

	if err := details.Appointment.Cancel(s.now()); err != nil {
		if errors.Is(err, apperrors.ErrInvalidStateTransition) {
			s.LogInfo(ctx, "Appointment already cancelled", slog.String("appointment_id", appointmentID))
			return details, nil
		}
		return nil, err
	}

	if err := s.appointmentRepo.UpdateAppointmentStatus(ctx, details.Appointment); err != nil {
		s.LogError(ctx, err, "Failed to persist cancellation", slog.String("appointment_id", appointmentID))
		return nil, err
	}

	s.notifier.AppointmentCancelled(ctx, *details)
	s.LogInfo(ctx, "Appointment cancelled", slog.String("appointment_id", appointmentID))
	return details, nil
}
