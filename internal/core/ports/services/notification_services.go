package services

import (
	"context"

	"github.com/SscSPs/docorbit_backend/internal/core/domain"
)

// Mailer delivers one message. Implementations may block on network I/O.
type Mailer interface {
	Send(ctx context.Context, msg domain.EmailMessage) error
}

// NotificationSvc sends transactional mail. Every method returns immediately;
// delivery happens in the background and failures are only logged.
type NotificationSvc interface {
	AppointmentBooked(ctx context.Context, details domain.AppointmentDetails)
	AppointmentCancelled(ctx context.Context, details domain.AppointmentDetails)
	PasswordResetLink(ctx context.Context, email, link string)
	PasswordResetOTP(ctx context.Context, email, otp string)
	// Wait blocks until in-flight deliveries finish or ctx is done.
	Wait(ctx context.Context) error
}
