package domain

import "github.com/shopspring/decimal"

// DefaultSpecialization is used when a doctor registers without naming one.
const DefaultSpecialization = "General Practitioner"

// Clinic is a facility that owns zero or more doctors.
type Clinic struct {
	ClinicID string `json:"clinicID"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	Country  string `json:"country"`
	Phone    string `json:"phone"`
	Timestamps
}

// Specialization is a named medical discipline, unique case-insensitively.
type Specialization struct {
	SpecializationID string `json:"specializationID"`
	Name             string `json:"name"`
}

// Doctor is a provider profile. Clinic is nil when the doctor is not linked to a
// facility, in which case bookings are refused.
type Doctor struct {
	DoctorID       string              `json:"doctorID"`
	UserID         *string             `json:"userID,omitempty"`
	Name           string              `json:"name"`
	Specialization string              `json:"specialization"`
	Email          string              `json:"email"`
	Phone          string              `json:"phone"`
	Rating         decimal.NullDecimal `json:"rating"`
	Clinic         *Clinic             `json:"clinic,omitempty"`
	Timestamps
}

// HasClinic reports whether the doctor can accept bookings.
func (d Doctor) HasClinic() bool {
	return d.Clinic != nil && d.Clinic.ClinicID != ""
}

// DoctorProvision is the clinic and doctor profile created alongside a DOCTOR user.
// The specialization is resolved by name inside the same transaction.
type DoctorProvision struct {
	SpecializationName string
	Clinic             Clinic
	Doctor             Doctor
}
