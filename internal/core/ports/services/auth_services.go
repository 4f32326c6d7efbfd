package services

import (
	"context"
	"time"

	"github.com/SscSPs/docorbit_backend/internal/core/domain"
	"github.com/SscSPs/docorbit_backend/internal/dto"
)

// TokenSvc issues and verifies stateless session tokens.
type TokenSvc interface {
	// Issue signs a token for subject. It fails only when signing fails.
	Issue(subject string) (string, time.Time, error)
	// Verify returns the subject of a valid token or ErrUnauthorized.
	Verify(token string) (string, error)
}

// LoginResult is what a successful login hands back to the caller.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      domain.User
}

// RegistrationSvc creates accounts.
type RegistrationSvc interface {
	// Register validates uniqueness, hashes the password and persists the user, plus
	// the doctor profile when the roles contain DOCTOR.
	Register(ctx context.Context, req dto.SignupRequest) (*domain.User, error)
}

// LoginSvc authenticates credentials.
type LoginSvc interface {
	// Login accepts a username or an email as identifier.
	Login(ctx context.Context, identifier, password string) (*LoginResult, error)
}

// IdentitySvc resolves the caller behind a verified token.
type IdentitySvc interface {
	// ResolveIdentity returns the enabled user named by username.
	ResolveIdentity(ctx context.Context, username string) (*domain.Identity, error)
	GetProfile(ctx context.Context, userID string) (*domain.User, error)
}

// AuthSvcFacade combines all account-related service interfaces
type AuthSvcFacade interface {
	RegistrationSvc
	LoginSvc
	IdentitySvc
}

// ResetLinkSvc drives the emailed-link password reset.
type ResetLinkSvc interface {
	// RequestResetLink never reveals whether email is registered.
	RequestResetLink(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
}

// OTPResetSvc drives the one-time-code password reset.
type OTPResetSvc interface {
	// RequestOTP never reveals whether email is registered.
	RequestOTP(ctx context.Context, email string) error
	VerifyOTP(ctx context.Context, email, otp string) error
	ChangePassword(ctx context.Context, email, password, repeatPassword string) error
}

// PasswordResetSvcFacade combines both reset flows
type PasswordResetSvcFacade interface {
	ResetLinkSvc
	OTPResetSvc
}
