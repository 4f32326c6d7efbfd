package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/docorbit_backend/internal/apperrors"
	portssvc "github.com/SscSPs/docorbit_backend/internal/core/ports/services"
	"github.com/SscSPs/docorbit_backend/internal/utils"
	"github.com/golang-jwt/jwt/v5"
)

// ErrEmptySigningKey is returned when the token service is built without a key.
var ErrEmptySigningKey = errors.New("token signing key must not be empty")

// tokenService issues and verifies HS256 session tokens. It holds no state besides
// the key and never consults a store.
type tokenService struct {
	secret []byte
	expiry time.Duration
	issuer string
	now    func() time.Time
}

// TokenServiceOption configures the token service
type TokenServiceOption func(*tokenService)

// WithTokenClock replaces the clock used for issuing and for expiry checks.
func WithTokenClock(now func() time.Time) TokenServiceOption {
	return func(s *tokenService) {
		s.now = now
	}
}

// NewTokenService creates a token service. The key is copied and never exposed again.
func NewTokenService(secret string, expiry time.Duration, issuer string, opts ...TokenServiceOption) (portssvc.TokenSvc, error) {
	if secret == "" {
		return nil, ErrEmptySigningKey
	}
	if expiry <= 0 {
		return nil, fmt.Errorf("token expiry must be positive, got %s", expiry)
	}
	s := &tokenService{
		secret: []byte(secret),
		expiry: expiry,
		issuer: issuer,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *tokenService) Issue(subject string) (string, time.Time, error) {
	token, expiresAt, err := utils.GenerateJWT(subject, s.secret, s.now(), s.expiry, s.issuer)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign session token: %w", err)
	}
	return token, expiresAt, nil
}

func (s *tokenService) Verify(token string) (string, error) {
	opts := []jwt.ParserOption{jwt.WithTimeFunc(s.now)}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}
	claims, err := utils.ParseAndValidateJWT(token, s.secret, opts...)
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrUnauthorized, err)
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("%w: token has no subject", apperrors.ErrUnauthorized)
	}
	return claims.Subject, nil
}
