package redisstore

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/docorbit_backend/internal/apperrors"
	"github.com/SscSPs/docorbit_backend/internal/core/domain"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*OTPRepository, *miniredis.Miniredis) {
	t.Helper()
	m := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: m.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewOTPRepository(client, ""), m
}

func TestOTPRepository_SaveAndFind(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	expiresAt := time.Now().Add(5 * time.Minute).Truncate(time.Millisecond)

	require.NoError(t, store.SaveOTP(ctx, domain.PasswordOTP{UserID: "user-1", OTP: "123456", ExpiresAt: expiresAt}))

	got, err := store.FindOTP(ctx, "user-1", "123456")
	require.NoError(t, err)
	assert.Equal(t, "123456", got.OTP)
	assert.True(t, expiresAt.Equal(got.ExpiresAt))

	_, err = store.FindOTP(ctx, "user-1", "654321")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = store.FindOTP(ctx, "user-2", "123456")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestOTPRepository_OverwriteKeepsOnlyLatest(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	expiresAt := time.Now().Add(5 * time.Minute)

	require.NoError(t, store.SaveOTP(ctx, domain.PasswordOTP{UserID: "user-1", OTP: "111111", ExpiresAt: expiresAt}))
	require.NoError(t, store.SaveOTP(ctx, domain.PasswordOTP{UserID: "user-1", OTP: "222222", ExpiresAt: expiresAt}))

	_, err := store.FindOTP(ctx, "user-1", "111111")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = store.FindOTP(ctx, "user-1", "222222")
	assert.NoError(t, err)
}

func TestOTPRepository_ExpiredCodeIsRetainedThenEvicted(t *testing.T) {
	store, m := newTestStore(t)
	ctx := context.Background()
	expiresAt := time.Now().Add(5 * time.Minute)

	require.NoError(t, store.SaveOTP(ctx, domain.PasswordOTP{UserID: "user-1", OTP: "123456", ExpiresAt: expiresAt}))

	m.FastForward(6 * time.Minute)
	got, err := store.FindOTP(ctx, "user-1", "123456")
	require.NoError(t, err)
	assert.True(t, got.IsExpired(time.Now().Add(6*time.Minute)))

	m.FastForward(expiredRetention)
	_, err = store.FindOTP(ctx, "user-1", "123456")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestOTPRepository_DeleteOTP(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveOTP(ctx, domain.PasswordOTP{UserID: "user-1", OTP: "123456", ExpiresAt: time.Now().Add(time.Minute)}))
	require.NoError(t, store.DeleteOTP(ctx, "user-1"))

	_, err := store.FindOTP(ctx, "user-1", "123456")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestOTPRepository_GrantIsSingleUse(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, store.SaveVerificationGrant(ctx, "user-1", now.Add(10*time.Minute)))

	ok, err := store.ConsumeVerificationGrant(ctx, "user-1", now)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.ConsumeVerificationGrant(ctx, "user-1", now)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestOTPRepository_GrantExpiresWithTTL(t *testing.T) {
	store, m := newTestStore(t)
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, store.SaveVerificationGrant(ctx, "user-1", now.Add(time.Minute)))
	m.FastForward(2 * time.Minute)

	ok, err := store.ConsumeVerificationGrant(ctx, "user-1", now)
	require.NoError(t, err)
	assert.False(t, ok)
}
