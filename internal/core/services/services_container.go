package services

import (
	portsrepo "github.com/SscSPs/docorbit_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/docorbit_backend/internal/core/ports/services"
	"github.com/SscSPs/docorbit_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, mailer portssvc.Mailer) (*portssvc.ServiceContainer, error) {
	container := &portssvc.ServiceContainer{}

	tokens, err := NewTokenService(cfg.JWTSecret, cfg.JWTExpiryDuration, cfg.JWTIssuer)
	if err != nil {
		return nil, err
	}
	container.Token = tokens

	// Notifications first; the reset and appointment flows send through it.
	container.Notification = NewNotificationService(mailer)

	container.Auth = NewAuthService(repos.UserRepo, container.Token)
	container.PasswordReset = NewPasswordResetService(
		PasswordResetConfig{
			FrontendBaseURL: cfg.FrontendBaseURL,
			ResetTokenTTL:   cfg.ResetTokenTTL,
			OTPTTL:          cfg.OTPTTL,
			GrantTTL:        cfg.OTPGrantTTL,
		},
		repos.UserRepo,
		repos.PasswordResetRepo,
		repos.OTPRepo,
		container.Notification,
	)
	container.Appointment = NewAppointmentService(
		repos.AppointmentRepo,
		repos.DoctorRepo,
		repos.UserRepo,
		container.Notification,
	)
	container.Directory = NewDirectoryService(repos.DoctorRepo)

	return container, nil
}
