package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/docorbit_backend/internal/core/domain"
)

// PasswordResetTokenRepository stores at most one hashed reset token per user.
type PasswordResetTokenRepository interface {
	// UpsertResetToken replaces any token the user already has.
	UpsertResetToken(ctx context.Context, token domain.PasswordResetToken) error
	FindResetTokenByHash(ctx context.Context, tokenHash string) (*domain.PasswordResetToken, error)
	DeleteResetTokensForUser(ctx context.Context, userID string) error
}

// OTPRepository stores at most one OTP per user plus the short-lived grant that a
// verified OTP earns.
type OTPRepository interface {
	// SaveOTP replaces any OTP the user already has.
	SaveOTP(ctx context.Context, otp domain.PasswordOTP) error

	// FindOTP returns the record only when both user and code match. Expiry is
	// left to the caller.
	FindOTP(ctx context.Context, userID, otp string) (*domain.PasswordOTP, error)

	DeleteOTP(ctx context.Context, userID string) error

	// SaveVerificationGrant records that the user proved control of their email.
	SaveVerificationGrant(ctx context.Context, userID string, expiresAt time.Time) error

	// ConsumeVerificationGrant removes the grant and reports whether an unexpired
	// one existed.
	ConsumeVerificationGrant(ctx context.Context, userID string, now time.Time) (bool, error)
}
