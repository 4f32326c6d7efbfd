package models

import "time"

// PasswordResetToken represents a row of the password_reset_tokens table.
type PasswordResetToken struct {
	UserID    string    `db:"user_id"`
	TokenHash string    `db:"token_hash"`
	ExpiresAt time.Time `db:"expires_at"`
	CreatedAt time.Time `db:"created_at"`
}

// PasswordOTP represents a row of the password_otps table.
type PasswordOTP struct {
	UserID    string    `db:"user_id"`
	OTP       string    `db:"otp"`
	ExpiresAt time.Time `db:"expires_at"`
}
