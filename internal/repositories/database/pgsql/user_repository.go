package pgsql

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/docorbit_backend/internal/apperrors"
	"github.com/SscSPs/docorbit_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/docorbit_backend/internal/core/ports/repositories"
	"github.com/SscSPs/docorbit_backend/internal/models"
	"github.com/SscSPs/docorbit_backend/internal/utils/mapping"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(pool *pgxpool.Pool) *PgxUserRepository {
	return &PgxUserRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

const fullUserSelectQuery = `
SELECT
	u.user_id, u.username, u.email, u.phone_number, u.password_hash, u.name, u.gender, u.dob,
	u.address, u.city, u.state, u.zip, u.country, u.roles, u.enabled,
	u.created_at, u.last_updated_at
FROM users u
`

func scanUser(row pgx.Row) (models.User, error) {
	var m models.User
	err := row.Scan(
		&m.UserID,
		&m.Username,
		&m.Email,
		&m.PhoneNumber,
		&m.PasswordHash,
		&m.Name,
		&m.Gender,
		&m.DateOfBirth,
		&m.Address,
		&m.City,
		&m.State,
		&m.Zip,
		&m.Country,
		&m.Roles,
		&m.Enabled,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	return m, err
}

// findUser runs the full select with the given filter and expects at most one row.
func (r *PgxUserRepository) findUser(ctx context.Context, filter string, arg any) (*domain.User, error) {
	m, err := scanUser(r.Pool.QueryRow(ctx, fullUserSelectQuery+filter, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	u := mapping.ToDomainUser(m)
	return &u, nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return r.findUser(ctx, "WHERE u.user_id = $1", userID)
}

func (r *PgxUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.findUser(ctx, "WHERE u.username = $1", username)
}

func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findUser(ctx, "WHERE u.email = $1", email)
}

func (r *PgxUserRepository) FindIdentityConflicts(ctx context.Context, username, email, phoneNumber string) (domain.IdentityConflicts, error) {
	query := `
		SELECT
			EXISTS (SELECT 1 FROM users WHERE username = $1),
			EXISTS (SELECT 1 FROM users WHERE email = $2),
			EXISTS (SELECT 1 FROM users WHERE phone_number = $3);
	`
	var c domain.IdentityConflicts
	if err := r.Pool.QueryRow(ctx, query, username, email, phoneNumber).Scan(&c.Username, &c.Email, &c.PhoneNumber); err != nil {
		return domain.IdentityConflicts{}, fmt.Errorf("failed to check identity conflicts: %w", err)
	}
	return c, nil
}

// CreateUser inserts the user and, for doctors, the specialization, clinic and doctor
// rows in one transaction. A unique violation on any users column maps to ErrDuplicate.
func (r *PgxUserRepository) CreateUser(ctx context.Context, user domain.User, provision *domain.DoctorProvision) (err error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rbErr := r.Rollback(ctx, tx); rbErr != nil {
				slog.ErrorContext(ctx, "failed to rollback registration", "error", rbErr, "user_id", user.UserID)
			}
		}
	}()

	if err = insertUser(ctx, tx, mapping.ToModelUser(user)); err != nil {
		return err
	}

	if provision != nil {
		var specializationID string
		specializationID, err = findOrCreateSpecialization(ctx, tx, provision.SpecializationName)
		if err != nil {
			return err
		}
		if err = insertClinic(ctx, tx, mapping.ToModelClinic(provision.Clinic)); err != nil {
			return err
		}
		doctor := mapping.ToModelDoctor(provision.Doctor)
		doctor.SpecializationID = mapping.ToText(specializationID)
		if err = insertDoctor(ctx, tx, doctor); err != nil {
			return err
		}
	}

	return r.Commit(ctx, tx)
}

func insertUser(ctx context.Context, tx pgx.Tx, m models.User) error {
	query := `
		INSERT INTO users (user_id, username, email, phone_number, password_hash, name, gender, dob,
			address, city, state, zip, country, roles, enabled, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
	`
	_, err := tx.Exec(ctx, query,
		m.UserID,
		m.Username,
		m.Email,
		m.PhoneNumber,
		m.PasswordHash,
		m.Name,
		m.Gender,
		m.DateOfBirth,
		m.Address,
		m.City,
		m.State,
		m.Zip,
		m.Country,
		m.Roles,
		m.Enabled,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		if constraint, ok := isUniqueViolation(err); ok {
			return fmt.Errorf("%w: user violates %s", apperrors.ErrDuplicate, constraint)
		}
		return fmt.Errorf("failed to insert user %s: %w", m.UserID, err)
	}
	return nil
}

// findOrCreateSpecialization resolves a specialization by case-insensitive name,
// creating it when absent.
func findOrCreateSpecialization(ctx context.Context, tx pgx.Tx, name string) (string, error) {
	insert := `
		INSERT INTO specializations (specialization_id, name)
		VALUES ($1, $2)
		ON CONFLICT (lower(name)) DO NOTHING;
	`
	if _, err := tx.Exec(ctx, insert, uuid.NewString(), name); err != nil {
		return "", fmt.Errorf("failed to create specialization %q: %w", name, err)
	}

	var id string
	err := tx.QueryRow(ctx, `SELECT specialization_id FROM specializations WHERE lower(name) = lower($1);`, name).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("failed to resolve specialization %q: %w", name, err)
	}
	return id, nil
}

func insertClinic(ctx context.Context, tx pgx.Tx, m models.Clinic) error {
	query := `
		INSERT INTO clinics (clinic_id, name, address, city, state, country, phone, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := tx.Exec(ctx, query,
		m.ClinicID, m.Name, m.Address, m.City, m.State, m.Country, m.Phone, m.CreatedAt, m.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert clinic %s: %w", m.ClinicID, err)
	}
	return nil
}

func insertDoctor(ctx context.Context, tx pgx.Tx, m models.Doctor) error {
	query := `
		INSERT INTO doctors (doctor_id, user_id, name, specialization_id, email, phone, rating, clinic_id, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := tx.Exec(ctx, query,
		m.DoctorID, m.UserID, m.Name, m.SpecializationID, m.Email, m.Phone, m.Rating, m.ClinicID, m.CreatedAt, m.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert doctor %s: %w", m.DoctorID, err)
	}
	return nil
}

func (r *PgxUserRepository) UpdatePassword(ctx context.Context, userID, passwordHash string) error {
	query := `
		UPDATE users
		SET password_hash = $1, last_updated_at = NOW()
		WHERE user_id = $2;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, passwordHash, userID)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", userID, apperrors.ErrNotFound)
	}
	return nil
}
