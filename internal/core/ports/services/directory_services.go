package services

import (
	"context"

	"github.com/SscSPs/docorbit_backend/internal/core/domain"
)

// DirectorySvcFacade exposes the read-only doctor directory.
type DirectorySvcFacade interface {
	GetDoctor(ctx context.Context, doctorID string) (*domain.Doctor, error)
	ListDoctors(ctx context.Context) ([]domain.Doctor, error)
	SearchDoctors(ctx context.Context, name string) ([]domain.Doctor, error)
	ListDoctorsBySpecialization(ctx context.Context, specialization string) ([]domain.Doctor, error)
	ListDoctorsByClinic(ctx context.Context, clinicID string) ([]domain.Doctor, error)
	ListSpecializations(ctx context.Context) ([]domain.Specialization, error)
}
