package redisstore

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/SscSPs/docorbit_backend/internal/apperrors"
	"github.com/SscSPs/docorbit_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/docorbit_backend/internal/core/ports/repositories"
	"github.com/redis/go-redis/v9"
)

const (
	defaultPrefix = "otp"

	// expiredRetention keeps an expired code around long enough to answer "expired"
	// instead of "not found".
	expiredRetention = 10 * time.Minute

	fieldCode      = "code"
	fieldExpiresAt = "expires_at"
)

// OTPRepository keeps one-time codes and verification grants in Redis. Each user has
// at most one code hash and one grant key.
type OTPRepository struct {
	client redis.UniversalClient
	prefix string
	now    func() time.Time
}

var _ portsrepo.OTPRepository = (*OTPRepository)(nil)

// NewOTPRepository builds the store. An empty prefix defaults to "otp".
func NewOTPRepository(client redis.UniversalClient, prefix string) *OTPRepository {
	if prefix == "" {
		prefix = defaultPrefix
	}
	return &OTPRepository{client: client, prefix: prefix, now: time.Now}
}

func (s *OTPRepository) codeKey(userID string) string {
	return fmt.Sprintf("%s:code:%s", s.prefix, userID)
}

func (s *OTPRepository) grantKey(userID string) string {
	return fmt.Sprintf("%s:grant:%s", s.prefix, userID)
}

func (s *OTPRepository) SaveOTP(ctx context.Context, otp domain.PasswordOTP) error {
	key := s.codeKey(otp.UserID)
	ttl := otp.ExpiresAt.Sub(s.now()) + expiredRetention

	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		pipe.HSet(ctx, key, fieldCode, otp.OTP, fieldExpiresAt, otp.ExpiresAt.UnixMilli())
		pipe.PExpire(ctx, key, ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save otp: %w", err)
	}
	return nil
}

func (s *OTPRepository) FindOTP(ctx context.Context, userID, otp string) (*domain.PasswordOTP, error) {
	values, err := s.client.HGetAll(ctx, s.codeKey(userID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read otp: %w", err)
	}
	code, ok := values[fieldCode]
	if !ok || code != otp {
		return nil, apperrors.ErrNotFound
	}
	expiresMillis, err := strconv.ParseInt(values[fieldExpiresAt], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("corrupt otp expiry for user %s: %w", userID, err)
	}
	return &domain.PasswordOTP{
		UserID:    userID,
		OTP:       code,
		ExpiresAt: time.UnixMilli(expiresMillis),
	}, nil
}

func (s *OTPRepository) DeleteOTP(ctx context.Context, userID string) error {
	if err := s.client.Del(ctx, s.codeKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to delete otp: %w", err)
	}
	return nil
}

func (s *OTPRepository) SaveVerificationGrant(ctx context.Context, userID string, expiresAt time.Time) error {
	ttl := expiresAt.Sub(s.now())
	if ttl <= 0 {
		return nil
	}
	if err := s.client.Set(ctx, s.grantKey(userID), expiresAt.UnixMilli(), ttl).Err(); err != nil {
		return fmt.Errorf("failed to save verification grant: %w", err)
	}
	return nil
}

func (s *OTPRepository) ConsumeVerificationGrant(ctx context.Context, userID string, now time.Time) (bool, error) {
	raw, err := s.client.GetDel(ctx, s.grantKey(userID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("failed to consume verification grant: %w", err)
	}
	expiresMillis, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return false, fmt.Errorf("corrupt verification grant for user %s: %w", userID, err)
	}
	return now.Before(time.UnixMilli(expiresMillis)), nil
}
