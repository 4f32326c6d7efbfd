package mapping

import (
	"github.com/SscSPs/docorbit_backend/internal/core/domain"
	"github.com/SscSPs/docorbit_backend/internal/models"
)

// ToModelClinic converts a domain Clinic to a model Clinic
func ToModelClinic(d domain.Clinic) models.Clinic {
	return models.Clinic{
		ClinicID:   d.ClinicID,
		Name:       d.Name,
		Address:    ToText(d.Address),
		City:       ToText(d.City),
		State:      ToText(d.State),
		Country:    ToText(d.Country),
		Phone:      ToText(d.Phone),
		Timestamps: ToModelTimestamps(d.Timestamps),
	}
}

// ToDomainClinic converts a model Clinic to a domain Clinic
func ToDomainClinic(m models.Clinic) domain.Clinic {
	return domain.Clinic{
		ClinicID:   m.ClinicID,
		Name:       m.Name,
		Address:    FromText(m.Address),
		City:       FromText(m.City),
		State:      FromText(m.State),
		Country:    FromText(m.Country),
		Phone:      FromText(m.Phone),
		Timestamps: ToDomainTimestamps(m.Timestamps),
	}
}

// ToModelDoctor converts a domain Doctor to a model Doctor. The specialization id
// is resolved by the repository and not carried by the domain type.
func ToModelDoctor(d domain.Doctor) models.Doctor {
	m := models.Doctor{
		DoctorID:       d.DoctorID,
		Name:           d.Name,
		Specialization: ToText(d.Specialization),
		Email:          ToText(d.Email),
		Phone:          ToText(d.Phone),
		Rating:         d.Rating,
		Timestamps:     ToModelTimestamps(d.Timestamps),
	}
	if d.UserID != nil {
		m.UserID = ToText(*d.UserID)
	}
	if d.Clinic != nil {
		m.ClinicID = ToText(d.Clinic.ClinicID)
	}
	return m
}

// ToDomainDoctor converts a model Doctor and its optional clinic to a domain Doctor.
func ToDomainDoctor(m models.Doctor, clinic *models.Clinic) domain.Doctor {
	d := domain.Doctor{
		DoctorID:       m.DoctorID,
		Name:           m.Name,
		Specialization: FromText(m.Specialization),
		Email:          FromText(m.Email),
		Phone:          FromText(m.Phone),
		Rating:         m.Rating,
		Timestamps:     ToDomainTimestamps(m.Timestamps),
	}
	if m.UserID.Valid {
		userID := m.UserID.String
		d.UserID = &userID
	}
	if clinic != nil && clinic.ClinicID != "" {
		c := ToDomainClinic(*clinic)
		d.Clinic = &c
	}
	return d
}

// ToDomainSpecialization converts a model Specialization to a domain Specialization
func ToDomainSpecialization(m models.Specialization) domain.Specialization {
	return domain.Specialization{
		SpecializationID: m.SpecializationID,
		Name:             m.Name,
	}
}
