package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/SscSPs/docorbit_backend/internal/apperrors"
	"github.com/SscSPs/docorbit_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/docorbit_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/docorbit_backend/internal/core/ports/services"
	"github.com/SscSPs/docorbit_backend/internal/utils"
)

// resetTokenBytes is the entropy of a reset link token before hex encoding.
const resetTokenBytes = 32

// PasswordResetConfig holds the lifetimes and link base of both reset flows.
type PasswordResetConfig struct {
	FrontendBaseURL string
	ResetTokenTTL   time.Duration
	OTPTTL          time.Duration
	GrantTTL        time.Duration
	// GenerateOTP produces reset codes. Nil means utils.GenerateOTP.
	GenerateOTP func() (string, error)
}

type passwordResetService struct {
	BaseService
	cfg         PasswordResetConfig
	userRepo    portsrepo.UserRepositoryFacade
	resetRepo   portsrepo.PasswordResetTokenRepository
	otpRepo     portsrepo.OTPRepository
	notifier    portssvc.NotificationSvc
	generateOTP func() (string, error)
}

// NewPasswordResetService creates the link and OTP reset flows.
func NewPasswordResetService(
	cfg PasswordResetConfig,
	userRepo portsrepo.UserRepositoryFacade,
	resetRepo portsrepo.PasswordResetTokenRepository,
	otpRepo portsrepo.OTPRepository,
	notifier portssvc.NotificationSvc,
	opts ...ServiceOption,
) portssvc.PasswordResetSvcFacade {
	s := &passwordResetService{
		cfg:         cfg,
		userRepo:    userRepo,
		resetRepo:   resetRepo,
		otpRepo:     otpRepo,
		notifier:    notifier,
		generateOTP: cfg.GenerateOTP,
	}
	if s.generateOTP == nil {
		s.generateOTP = utils.GenerateOTP
	}
	applyOptions(&s.BaseService, opts)
	return s
}

var _ portssvc.PasswordResetSvcFacade = (*passwordResetService)(nil)

// findUserForReset returns (nil, nil) for an unknown email so callers can answer
// generically.
func (s *passwordResetService) findUserForReset(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil
		}
		s.LogError(ctx, err, "Failed to look up user for password reset")
		return nil, err
	}
	return user, nil
}

func (s *passwordResetService) RequestResetLink(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return fmt.Errorf("%w: email is required", apperrors.ErrValidation)
	}

	user, err := s.findUserForReset(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		s.LogInfo(ctx, "Reset link requested for unregistered email")
		return nil
	}

	raw, err := utils.GenerateSecureRandomString(resetTokenBytes)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate reset token")
		return err
	}

	now := s.now()
	token := domain.PasswordResetToken{
		UserID:    user.UserID,
		TokenHash: utils.HashResetToken(raw),
		ExpiresAt: now.Add(s.cfg.ResetTokenTTL),
		CreatedAt: now,
	}
	if err := s.resetRepo.UpsertResetToken(ctx, token); err != nil {
		s.LogError(ctx, err, "Failed to store reset token", slog.String("user_id", user.UserID))
		return err
	}

	s.notifier.PasswordResetLink(ctx, user.Email, s.resetLink(raw))
	s.LogInfo(ctx, "Reset link issued", slog.String("user_id", user.UserID), slog.Time("expires_at", token.ExpiresAt))
	return nil
}

func (s *passwordResetService) resetLink(rawToken string) string {
	return strings.TrimRight(s.cfg.FrontendBaseURL, "/") + "/reset-password?token=" + url.QueryEscape(rawToken)
}

func (s *passwordResetService) ResetPassword(ctx context.Context, token, newPassword string) error {
	if token == "" {
		return apperrors.ErrInvalidOrExpiredToken
	}

	stored, err := s.resetRepo.FindResetTokenByHash(ctx, utils.HashResetToken(token))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogInfo(ctx, "Reset attempted with unknown token")
			return apperrors.ErrInvalidOrExpiredToken
		}
		s.LogError(ctx, err, "Failed to look up reset token")
		return err
	}

	if stored.IsExpired(s.now()) {
		if delErr := s.resetRepo.DeleteResetTokensForUser(ctx, stored.UserID); delErr != nil {
			s.LogError(ctx, delErr, "Failed to delete expired reset token", slog.String("user_id", stored.UserID))
		}
		s.LogInfo(ctx, "Reset attempted with expired token", slog.String("user_id", stored.UserID))
		return apperrors.ErrInvalidOrExpiredToken
	}

	if err := s.setPassword(ctx, stored.UserID, newPassword); err != nil {
		return err
	}
	if err := s.resetRepo.DeleteResetTokensForUser(ctx, stored.UserID); err != nil {
		s.LogError(ctx, err, "Failed to delete used reset token", slog.String("user_id", stored.UserID))
		return err
	}

	s.LogInfo(ctx, "Password reset via link", slog.String("user_id", stored.UserID))
	return nil
}

func (s *passwordResetService) setPassword(ctx context.Context, userID, password string) error {
	hash, err := utils.HashPassword(password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.userRepo.UpdatePassword(ctx, userID, hash); err != nil {
		s.LogError(ctx, err, "Failed to update password", slog.String("user_id", userID))
		return err
	}
	return nil
}

func (s *passwordResetService) RequestOTP(ctx context.Context, email string) error {
	user, err := s.findUserForReset(ctx, strings.TrimSpace(email))
	if err != nil {
		return err
	}
	if user == nil {
		s.LogInfo(ctx, "OTP requested for unregistered email")
		return nil
	}

	code, err := s.generateOTP()
	if err != nil {
		s.LogError(ctx, err, "Failed to generate otp")
		return err
	}

	otp := domain.PasswordOTP{
		UserID:    user.UserID,
		OTP:       code,
		ExpiresAt: s.now().Add(s.cfg.OTPTTL),
	}
	if err := s.otpRepo.SaveOTP(ctx, otp); err != nil {
		s.LogError(ctx, err, "Failed to store otp", slog.String("user_id", user.UserID))
		return err
	}

	s.notifier.PasswordResetOTP(ctx, user.Email, code)
	s.LogInfo(ctx, "OTP issued", slog.String("user_id", user.UserID), slog.Time("expires_at", otp.ExpiresAt))
	return nil
}

// VerifyOTP deletes the code whether it is accepted or found expired, so no code is
// ever accepted twice.
func (s *passwordResetService) VerifyOTP(ctx context.Context, email, otp string) error {
	user, err := s.userRepo.FindUserByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("invalid otp for email: %w", apperrors.ErrNotFound)
		}
		s.LogError(ctx, err, "Failed to look up user for otp verification")
		return err
	}

	record, err := s.otpRepo.FindOTP(ctx, user.UserID, otp)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogInfo(ctx, "OTP verification failed: no matching code", slog.String("user_id", user.UserID))
			return fmt.Errorf("invalid otp for email: %w", apperrors.ErrNotFound)
		}
		s.LogError(ctx, err, "Failed to look up otp", slog.String("user_id", user.UserID))
		return err
	}

	if err := s.otpRepo.DeleteOTP(ctx, user.UserID); err != nil {
		s.LogError(ctx, err, "Failed to delete otp", slog.String("user_id", user.UserID))
		return err
	}

	now := s.now()
	if record.IsExpired(now) {
		s.LogInfo(ctx, "OTP verification failed: code expired", slog.String("user_id", user.UserID))
		return apperrors.ErrExpiredOTP
	}

	if err := s.otpRepo.SaveVerificationGrant(ctx, user.UserID, now.Add(s.cfg.GrantTTL)); err != nil {
		s.LogError(ctx, err, "Failed to record otp verification", slog.String("user_id", user.UserID))
		return err
	}

	s.LogInfo(ctx, "OTP verified", slog.String("user_id", user.UserID))
	return nil
}

// ChangePassword requires a grant earned through VerifyOTP. Unknown emails are
// answered exactly like unverified ones.
func (s *passwordResetService) ChangePassword(ctx context.Context, email, password, repeatPassword string) error {
	if password != repeatPassword {
		return apperrors.ErrPasswordMismatch
	}

	user, err := s.userRepo.FindUserByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogInfo(ctx, "Password change requested for unregistered email")
			return fmt.Errorf("%w: otp verification required", apperrors.ErrUnauthorized)
		}
		s.LogError(ctx, err, "Failed to look up user for password change")
		return err
	}

	granted, err := s.otpRepo.ConsumeVerificationGrant(ctx, user.UserID, s.now())
	if err != nil {
		s.LogError(ctx, err, "Failed to consume otp verification", slog.String("user_id", user.UserID))
		return err
	}
	if !granted {
		s.LogInfo(ctx, "Password change without verified otp", slog.String("user_id", user.UserID))
		return fmt.Errorf("%w: otp verification required", apperrors.ErrUnauthorized)
	}

	if err := s.setPassword(ctx, user.UserID, password); err != nil {
		return err
	}
	if err := s.otpRepo.DeleteOTP(ctx, user.UserID); err != nil {
		s.LogError(ctx, err, "Failed to purge otp after password change", slog.String("user_id", user.UserID))
		return err
	}

	s.LogInfo(ctx, "Password changed via otp", slog.String("user_id", user.UserID))
	return nil
}
