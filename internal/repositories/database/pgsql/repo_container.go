package pgsql

import (
	portsrepo "github.com/SscSPs/docorbit_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every PostgreSQL repository. The OTP store defaults to
// PostgreSQL; callers may swap OTPRepo for another backing before building services.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	passwordResetRepo := newPgxPasswordResetRepository(dbPool)

	return portsrepo.RepositoryProvider{
		UserRepo:          newPgxUserRepository(dbPool),
		DoctorRepo:        newPgxDoctorRepository(dbPool),
		AppointmentRepo:   newPgxAppointmentRepository(dbPool),
		PasswordResetRepo: passwordResetRepo,
		OTPRepo:           passwordResetRepo,
	}
}
