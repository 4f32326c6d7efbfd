package models

import (
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

// Clinic represents a row of the clinics table.
type Clinic struct {
	ClinicID string      `db:"clinic_id"`
	Name     string      `db:"name"`
	Address  pgtype.Text `db:"address"`
	City     pgtype.Text `db:"city"`
	State    pgtype.Text `db:"state"`
	Country  pgtype.Text `db:"country"`
	Phone    pgtype.Text `db:"phone"`
	Timestamps
}

// Specialization represents a row of the specializations table.
type Specialization struct {
	SpecializationID string `db:"specialization_id"`
	Name             string `db:"name"`
}

// Doctor represents a row of the doctors table joined with its specialization name.
type Doctor struct {
	DoctorID         string              `db:"doctor_id"`
	UserID           pgtype.Text         `db:"user_id"`
	Name             string              `db:"name"`
	SpecializationID pgtype.Text         `db:"specialization_id"`
	Specialization   pgtype.Text         `db:"specialization_name"`
	Email            pgtype.Text         `db:"email"`
	Phone            pgtype.Text         `db:"phone"`
	Rating           decimal.NullDecimal `db:"rating"`
	ClinicID         pgtype.Text         `db:"clinic_id"`
	Timestamps
}
