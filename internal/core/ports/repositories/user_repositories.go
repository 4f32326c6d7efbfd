package repositories

import (
	"context"

	"github.com/SscSPs/docorbit_backend/internal/core/domain"
)

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByID retrieves a specific user by their ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByUsername retrieves a user by exact username.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// FindUserByEmail retrieves a user by exact email.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindIdentityConflicts reports which of the given identifiers are already taken,
	// in a single read.
	FindIdentityConflicts(ctx context.Context, username, email, phoneNumber string) (domain.IdentityConflicts, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// CreateUser persists a new user and, when provision is non-nil, the doctor
	// profile with its clinic and specialization, atomically.
	CreateUser(ctx context.Context, user domain.User, provision *domain.DoctorProvision) error

	// UpdatePassword replaces the stored password hash of a user.
	UpdatePassword(ctx context.Context, userID, passwordHash string) error
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
