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
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxDoctorRepository struct {
	BaseRepository
}

func newPgxDoctorRepository(pool *pgxpool.Pool) *PgxDoctorRepository {
	return &PgxDoctorRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxDoctorRepository implements portsrepo.DoctorRepositoryFacade
var _ portsrepo.DoctorRepositoryFacade = (*PgxDoctorRepository)(nil)

const fullDoctorSelectQuery = `
SELECT
	d.doctor_id, d.user_id, d.name, d.specialization_id, s.name, d.email, d.phone, d.rating,
	d.clinic_id, d.created_at, d.last_updated_at,
	c.name, c.address, c.city, c.state, c.country, c.phone, c.created_at, c.last_updated_at
FROM doctors d
LEFT JOIN specializations s ON s.specialization_id = d.specialization_id
LEFT JOIN clinics c ON c.clinic_id = d.clinic_id
`

// scanDoctor reads one joined row. Clinic columns are NULL for unlinked doctors.
func scanDoctor(row pgx.Row) (domain.Doctor, error) {
	var m models.Doctor
	var clinicName pgtype.Text
	var clinicCreated, clinicUpdated pgtype.Timestamptz
	var c models.Clinic

	err := row.Scan(
		&m.DoctorID,
		&m.UserID,
		&m.Name,
		&m.SpecializationID,
		&m.Specialization,
		&m.Email,
		&m.Phone,
		&m.Rating,
		&m.ClinicID,
		&m.CreatedAt,
		&m.LastUpdatedAt,
		&clinicName,
		&c.Address,
		&c.City,
		&c.State,
		&c.Country,
		&c.Phone,
		&clinicCreated,
		&clinicUpdated,
	)
	if err != nil {
		return domain.Doctor{}, err
	}

	if !m.ClinicID.Valid {
		return mapping.ToDomainDoctor(m, nil), nil
	}
	c.ClinicID = m.ClinicID.String
	c.Name = clinicName.String
	c.CreatedAt = clinicCreated.Time
	c.LastUpdatedAt = clinicUpdated.Time
	return mapping.ToDomainDoctor(m, &c), nil
}

func (r *PgxDoctorRepository) getDoctors(ctx context.Context, filterQuery string, args ...any) ([]domain.Doctor, error) {
	rows, err := r.Pool.Query(ctx, fullDoctorSelectQuery+filterQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query doctors: %w", err)
	}
	defer rows.Close()

	doctors := []domain.Doctor{}
	for rows.Next() {
		d, err := scanDoctor(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan doctor row: %w", err)
		}
		doctors = append(doctors, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating doctor rows: %w", err)
	}
	return doctors, nil
}

func (r *PgxDoctorRepository) FindDoctorByID(ctx context.Context, doctorID string) (*domain.Doctor, error) {
	d, err := scanDoctor(r.Pool.QueryRow(ctx, fullDoctorSelectQuery+"WHERE d.doctor_id = $1", doctorID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find doctor by ID %s: %w", doctorID, err)
	}
	return &d, nil
}

func (r *PgxDoctorRepository) ListDoctors(ctx context.Context) ([]domain.Doctor, error) {
	return r.getDoctors(ctx, "ORDER BY d.name")
}

func (r *PgxDoctorRepository) SearchDoctorsByName(ctx context.Context, name string) ([]domain.Doctor, error) {
	return r.getDoctors(ctx, "WHERE d.name ILIKE '%' || $1 || '%' ORDER BY d.name", name)
}

func (r *PgxDoctorRepository) FindDoctorsBySpecialization(ctx context.Context, specialization string) ([]domain.Doctor, error) {
	return r.getDoctors(ctx, "WHERE lower(s.name) = lower($1) ORDER BY d.name", specialization)
}

func (r *PgxDoctorRepository) FindDoctorsByClinic(ctx context.Context, clinicID string) ([]domain.Doctor, error) {
	return r.getDoctors(ctx, "WHERE d.clinic_id = $1 ORDER BY d.name", clinicID)
}

func (r *PgxDoctorRepository) ListSpecializations(ctx context.Context) ([]domain.Specialization, error) {
	rows, err := r.Pool.Query(ctx, `SELECT specialization_id, name FROM specializations ORDER BY name;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query specializations: %w", err)
	}
	defer rows.Close()

	specs := []domain.Specialization{}
	for rows.Next() {
		var m models.Specialization
		if err := rows.Scan(&m.SpecializationID, &m.Name); err != nil {
			return nil, fmt.Errorf("failed to scan specialization row: %w", err)
		}
		specs = append(specs, mapping.ToDomainSpecialization(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating specialization rows: %w", err)
	}
	return specs, nil
}
