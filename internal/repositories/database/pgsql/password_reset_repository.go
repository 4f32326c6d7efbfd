package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/docorbit_backend/internal/apperrors"
	"github.com/SscSPs/docorbit_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/docorbit_backend/internal/core/ports/repositories"
	"github.com/SscSPs/docorbit_backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxPasswordResetRepository struct {
	BaseRepository
}

func newPgxPasswordResetRepository(pool *pgxpool.Pool) *PgxPasswordResetRepository {
	return &PgxPasswordResetRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var (
	_ portsrepo.PasswordResetTokenRepository = (*PgxPasswordResetRepository)(nil)
	_ portsrepo.OTPRepository                = (*PgxPasswordResetRepository)(nil)
)

func (r *PgxPasswordResetRepository) UpsertResetToken(ctx context.Context, token domain.PasswordResetToken) error {
	query := `
		INSERT INTO password_reset_tokens (user_id, token_hash, expires_at, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id) DO UPDATE SET
			token_hash = EXCLUDED.token_hash,
			expires_at = EXCLUDED.expires_at,
			created_at = EXCLUDED.created_at;
	`
	if _, err := r.Pool.Exec(ctx, query, token.UserID, token.TokenHash, token.ExpiresAt, token.CreatedAt); err != nil {
		return fmt.Errorf("failed to upsert reset token: %w", err)
	}
	return nil
}

func (r *PgxPasswordResetRepository) FindResetTokenByHash(ctx context.Context, tokenHash string) (*domain.PasswordResetToken, error) {
	query := `
		SELECT user_id, token_hash, expires_at, created_at
		FROM password_reset_tokens
		WHERE token_hash = $1;
	`
	var m models.PasswordResetToken
	if err := r.Pool.QueryRow(ctx, query, tokenHash).Scan(&m.UserID, &m.TokenHash, &m.ExpiresAt, &m.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find reset token: %w", err)
	}
	return &domain.PasswordResetToken{
		UserID:    m.UserID,
		TokenHash: m.TokenHash,
		ExpiresAt: m.ExpiresAt,
		CreatedAt: m.CreatedAt,
	}, nil
}

func (r *PgxPasswordResetRepository) DeleteResetTokensForUser(ctx context.Context, userID string) error {
	if _, err := r.Pool.Exec(ctx, `DELETE FROM password_reset_tokens WHERE user_id = $1;`, userID); err != nil {
		return fmt.Errorf("failed to delete reset tokens: %w", err)
	}
	return nil
}

func (r *PgxPasswordResetRepository) SaveOTP(ctx context.Context, otp domain.PasswordOTP) error {
	query := `
		INSERT INTO password_otps (user_id, otp, expires_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE SET
			otp = EXCLUDED.otp,
			expires_at = EXCLUDED.expires_at;
	`
	if _, err := r.Pool.Exec(ctx, query, otp.UserID, otp.OTP, otp.ExpiresAt); err != nil {
		return fmt.Errorf("failed to save otp: %w", err)
	}
	return nil
}

func (r *PgxPasswordResetRepository) FindOTP(ctx context.Context, userID, otp string) (*domain.PasswordOTP, error) {
	query := `
		SELECT user_id, otp, expires_at
		FROM password_otps
		WHERE user_id = $1 AND otp = $2;
	`
	var m models.PasswordOTP
	if err := r.Pool.QueryRow(ctx, query, userID, otp).Scan(&m.UserID, &m.OTP, &m.ExpiresAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find otp: %w", err)
	}
	return &domain.PasswordOTP{UserID: m.UserID, OTP: m.OTP, ExpiresAt: m.ExpiresAt}, nil
}

func (r *PgxPasswordResetRepository) DeleteOTP(ctx context.Context, userID string) error {
	if _, err := r.Pool.Exec(ctx, `DELETE FROM password_otps WHERE user_id = $1;`, userID); err != nil {
		return fmt.Errorf("failed to delete otp: %w", err)
	}
	return nil
}

func (r *PgxPasswordResetRepository) SaveVerificationGrant(ctx context.Context, userID string, expiresAt time.Time) error {
	query := `
		INSERT INTO password_change_grants (user_id, expires_at)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET expires_at = EXCLUDED.expires_at;
	`
	if _, err := r.Pool.Exec(ctx, query, userID, expiresAt); err != nil {
		return fmt.Errorf("failed to save verification grant: %w", err)
	}
	return nil
}

func (r *PgxPasswordResetRepository) ConsumeVerificationGrant(ctx context.Context, userID string, now time.Time) (bool, error) {
	var expiresAt time.Time
	err := r.Pool.QueryRow(ctx, `DELETE FROM password_change_grants WHERE user_id = $1 RETURNING expires_at;`, userID).Scan(&expiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to consume verification grant: %w", err)
	}
	return now.Before(expiresAt), nil
}
