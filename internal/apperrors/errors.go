package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates bad credentials or a missing, invalid or expired session token.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates that the caller is authenticated but not entitled to the action.
var ErrForbidden = errors.New("forbidden")

// ErrInvalidOrExpiredToken indicates that a password reset token is unknown or expired.
var ErrInvalidOrExpiredToken = errors.New("invalid or expired token")

// ErrExpiredOTP indicates that a one-time password was found but is no longer usable.
var ErrExpiredOTP = errors.New("otp has expired")

// ErrPasswordMismatch indicates that a password and its confirmation differ.
var ErrPasswordMismatch = errors.New("passwords do not match")

// ErrUnlinkedFacility indicates that a doctor has no clinic and cannot accept bookings.
var ErrUnlinkedFacility = errors.New("doctor is not linked to any clinic")

// ErrInvalidStateTransition indicates an appointment status change the state machine forbids.
var ErrInvalidStateTransition = errors.New("invalid status transition")

// AppError carries an HTTP-ish status code alongside an infrastructure failure.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError wraps err with a code and a human readable message.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}
