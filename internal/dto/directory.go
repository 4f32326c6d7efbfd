package dto

import (
	"github.com/SscSPs/docorbit_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ClinicResponse defines data returned for a clinic.
type ClinicResponse struct {
	ClinicID string `json:"clinicID"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	Country  string `json:"country"`
	Phone    string `json:"phone"`
}

// DoctorResponse defines data returned for a doctor.
type DoctorResponse struct {
	DoctorID       string           `json:"doctorID"`
	Name           string           `json:"name"`
	Specialization string           `json:"specialization"`
	Email          string           `json:"email"`
	Phone          string           `json:"phone"`
	Rating         *decimal.Decimal `json:"rating,omitempty" swaggertype:"string"`
	Clinic         *ClinicResponse  `json:"clinic,omitempty"`
}

// ToDoctorResponse converts a domain.Doctor to DoctorResponse DTO
func ToDoctorResponse(d domain.Doctor) DoctorResponse {
	resp := DoctorResponse{
		DoctorID:       d.DoctorID,
		Name:           d.Name,
		Specialization: d.Specialization,
		Email:          d.Email,
		Phone:          d.Phone,
	}
	if d.Rating.Valid {
		rating := d.Rating.Decimal
		resp.Rating = &rating
	}
	if d.Clinic != nil {
		resp.Clinic = &ClinicResponse{
			ClinicID: d.Clinic.ClinicID,
			Name:     d.Clinic.Name,
			Address:  d.Clinic.Address,
			City:     d.Clinic.City,
			State:    d.Clinic.State,
			Country:  d.Clinic.Country,
			Phone:    d.Clinic.Phone,
		}
	}
	return resp
}

// ToDoctorResponses converts a slice of doctors
func ToDoctorResponses(ds []domain.Doctor) []DoctorResponse {
	out := make([]DoctorResponse, len(ds))
	for i, d := range ds {
		out[i] = ToDoctorResponse(d)
	}
	return out
}

// SpecializationResponse defines data returned for a specialization.
type SpecializationResponse struct {
	SpecializationID string `json:"specializationID"`
	Name             string `json:"name"`
}

// ToSpecializationResponses converts a slice of specializations
func ToSpecializationResponses(ss []domain.Specialization) []SpecializationResponse {
	out := make([]SpecializationResponse, len(ss))
	for i, s := range ss {
		out[i] = SpecializationResponse{SpecializationID: s.SpecializationID, Name: s.Name}
	}
	return out
}
