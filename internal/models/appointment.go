package models

import (
	"github.com/jackc/pgx/v5/pgtype"
)

// Appointment represents a row of the appointments table.
type Appointment struct {
	AppointmentID   string      `db:"appointment_id"`
	DoctorID        string      `db:"doctor_id"`
	PatientID       string      `db:"patient_id"`
	ClinicID        string      `db:"clinic_id"`
	AppointmentDate pgtype.Date `db:"appointment_date"`
	AppointmentTime pgtype.Time `db:"appointment_time"`
	Status          string      `db:"status"`
	Timestamps
}

// AppointmentDetails is an appointment row joined with doctor, specialization, clinic
// and patient columns.
type AppointmentDetails struct {
	Appointment
	DoctorName     string
	DoctorEmail    pgtype.Text
	Specialization pgtype.Text
	ClinicName     string
	ClinicAddress  pgtype.Text
	ClinicCity     pgtype.Text
	PatientName    string
	PatientEmail   string
}
