package services

import (
	"context"
	"strings"

	"github.com/SscSPs/docorbit_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/docorbit_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/docorbit_backend/internal/core/ports/services"
)

type directoryService struct {
	doctorRepo portsrepo.DoctorRepositoryFacade
}

// NewDirectoryService creates the read-only doctor directory.
func NewDirectoryService(doctorRepo portsrepo.DoctorRepositoryFacade) portssvc.DirectorySvcFacade {
	return &directoryService{doctorRepo: doctorRepo}
}

func (s *directoryService) GetDoctor(ctx context.Context, doctorID string) (*domain.Doctor, error) {
	return s.doctorRepo.FindDoctorByID(ctx, doctorID)
}

func (s *directoryService) ListDoctors(ctx context.Context) ([]domain.Doctor, error) {
	return s.doctorRepo.ListDoctors(ctx)
}

// SearchDoctors matches name as a case-insensitive substring. A blank name lists everyone.
func (s *directoryService) SearchDoctors(ctx context.Context, name string) ([]domain.Doctor, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return s.doctorRepo.ListDoctors(ctx)
	}
	return s.doctorRepo.SearchDoctorsByName(ctx, name)
}

func (s *directoryService) ListDoctorsBySpecialization(ctx context.Context, specialization string) ([]domain.Doctor, error) {
	return s.doctorRepo.FindDoctorsBySpecialization(ctx, strings.TrimSpace(specialization))
}

func (s *directoryService) ListDoctorsByClinic(ctx context.Context, clinicID string) ([]domain.Doctor, error) {
	return s.doctorRepo.FindDoctorsByClinic(ctx, clinicID)
}

func (s *directoryService) ListSpecializations(ctx context.Context) ([]domain.Specialization, error) {
	return s.doctorRepo.ListSpecializations(ctx)
}
