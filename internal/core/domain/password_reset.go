package domain

import "time"

// PasswordResetToken is the stored half of a link-based reset. Only the hash of the
// token sent by mail is kept; there is at most one per user.
type PasswordResetToken struct {
	UserID    string
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// IsExpired reports whether the token can no longer be used at now.
func (t PasswordResetToken) IsExpired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}

// PasswordOTP is a six digit one-time code for the OTP reset flow. At most one is live
// per user; requesting a new one overwrites it.
type PasswordOTP struct {
	UserID    string
	OTP       string
	ExpiresAt time.Time
}

// IsExpired reports whether the code can no longer be used at now.
func (o PasswordOTP) IsExpired(now time.Time) bool {
	return !now.Before(o.ExpiresAt)
}
