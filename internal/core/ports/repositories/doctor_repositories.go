package repositories

import (
	"context"

	"github.com/SscSPs/docorbit_backend/internal/core/domain"
)

// DoctorReader defines read operations on the doctor directory. Every returned
// doctor carries its clinic when one is linked.
type DoctorReader interface {
	FindDoctorByID(ctx context.Context, doctorID string) (*domain.Doctor, error)
	ListDoctors(ctx context.Context) ([]domain.Doctor, error)
	// SearchDoctorsByName matches a case-insensitive substring of the name.
	SearchDoctorsByName(ctx context.Context, name string) ([]domain.Doctor, error)
	// FindDoctorsBySpecialization matches the specialization name case-insensitively.
	FindDoctorsBySpecialization(ctx context.Context, specialization string) ([]domain.Doctor, error)
	FindDoctorsByClinic(ctx context.Context, clinicID string) ([]domain.Doctor, error)
}

// SpecializationReader lists the known specializations.
type SpecializationReader interface {
	ListSpecializations(ctx context.Context) ([]domain.Specialization, error)
}

// DoctorRepositoryFacade combines all doctor-directory repository interfaces
type DoctorRepositoryFacade interface {
	DoctorReader
	SpecializationReader
}
