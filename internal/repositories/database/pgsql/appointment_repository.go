package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/docorbit_backend/internal/apperrors"
	"github.com/SscSPs/docorbit_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/docorbit_backend/internal/core/ports/repositories"
	"github.com/SscSPs/docorbit_backend/internal/models"
	"github.com/SscSPs/docorbit_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAppointmentRepository struct {
	BaseRepository
}

func newPgxAppointmentRepository(pool *pgxpool.Pool) *PgxAppointmentRepository {
	return &PgxAppointmentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxAppointmentRepository implements portsrepo.AppointmentRepositoryFacade
var _ portsrepo.AppointmentRepositoryFacade = (*PgxAppointmentRepository)(nil)

const appointmentColumns = `
	a.appointment_id, a.doctor_id, a.patient_id, a.clinic_id, a.appointment_date, a.appointment_time,
	a.status, a.created_at, a.last_updated_at
`

const appointmentDetailsSelectQuery = `
SELECT` + appointmentColumns + `,
	d.name, d.email, s.name, c.name, c.address, c.city, u.name, u.email
FROM appointments a
JOIN doctors d ON d.doctor_id = a.doctor_id
LEFT JOIN specializations s ON s.specialization_id = d.specialization_id
JOIN clinics c ON c.clinic_id = a.clinic_id
JOIN users u ON u.user_id = a.patient_id
`

func appointmentScanTargets(m *models.Appointment) []any {
	return []any{
		&m.AppointmentID,
		&m.DoctorID,
		&m.PatientID,
		&m.ClinicID,
		&m.AppointmentDate,
		&m.AppointmentTime,
		&m.Status,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	}
}

func scanAppointmentDetails(row pgx.Row) (models.AppointmentDetails, error) {
	var m models.AppointmentDetails
	targets := append(appointmentScanTargets(&m.Appointment),
		&m.DoctorName,
		&m.DoctorEmail,
		&m.Specialization,
		&m.ClinicName,
		&m.ClinicAddress,
		&m.ClinicCity,
		&m.PatientName,
		&m.PatientEmail,
	)
	err := row.Scan(targets...)
	return m, err
}

func (r *PgxAppointmentRepository) SaveAppointment(ctx context.Context, appointment domain.Appointment) error {
	m := mapping.ToModelAppointment(appointment)
	query := `
		INSERT INTO appointments (appointment_id, doctor_id, patient_id, clinic_id, appointment_date,
			appointment_time, status, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.AppointmentID,
		m.DoctorID,
		m.PatientID,
		m.ClinicID,
		m.AppointmentDate,
		m.AppointmentTime,
		m.Status,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		if _, ok := isUniqueViolation(err); ok {
			return fmt.Errorf("%w: appointment with ID %s already exists", apperrors.ErrDuplicate, m.AppointmentID)
		}
		return fmt.Errorf("failed to save appointment %s: %w", m.AppointmentID, err)
	}
	return nil
}

func (r *PgxAppointmentRepository) FindAppointmentByID(ctx context.Context, appointmentID string) (*domain.Appointment, error) {
	query := `SELECT` + appointmentColumns + `FROM appointments a WHERE a.appointment_id = $1;`
	var m models.Appointment
	if err := r.Pool.QueryRow(ctx, query, appointmentID).Scan(appointmentScanTargets(&m)...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find appointment by ID %s: %w", appointmentID, err)
	}
	a := mapping.ToDomainAppointment(m)
	return &a, nil
}

func (r *PgxAppointmentRepository) FindAppointmentDetails(ctx context.Context, appointmentID string) (*domain.AppointmentDetails, error) {
	m, err := scanAppointmentDetails(r.Pool.QueryRow(ctx, appointmentDetailsSelectQuery+"WHERE a.appointment_id = $1", appointmentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find appointment details %s: %w", appointmentID, err)
	}
	d := mapping.ToDomainAppointmentDetails(m)
	return &d, nil
}

func (r *PgxAppointmentRepository) FindAppointmentDetailsByPatient(ctx context.Context, patientID string) ([]domain.AppointmentDetails, error) {
	query := appointmentDetailsSelectQuery + `
		WHERE a.patient_id = $1
		ORDER BY a.appointment_date DESC, a.appointment_time DESC;
	`
	rows, err := r.Pool.Query(ctx, query, patientID)
	if err != nil {
		return nil, fmt.Errorf("failed to query appointments for patient %s: %w", patientID, err)
	}
	defer rows.Close()

	ms := []models.AppointmentDetails{}
	for rows.Next() {
		m, err := scanAppointmentDetails(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan appointment row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating appointment rows: %w", err)
	}
	return mapping.ToDomainAppointmentDetailsSlice(ms), nil
}

func (r *PgxAppointmentRepository) UpdateAppointmentStatus(ctx context.Context, appointment domain.Appointment) error {
	query := `
		UPDATE appointments
		SET status = $1, last_updated_at = $2
		WHERE appointment_id = $3;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, string(appointment.Status), appointment.LastUpdatedAt, appointment.AppointmentID)
	if err != nil {
		return fmt.Errorf("failed to update appointment status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("appointment %s: %w", appointment.AppointmentID, apperrors.ErrNotFound)
	}
	return nil
}
