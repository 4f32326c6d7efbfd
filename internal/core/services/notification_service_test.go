package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/docorbit_backend/internal/core/domain"
	"github.com/SscSPs/docorbit_backend/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bookedDetails() domain.AppointmentDetails {
	return domain.AppointmentDetails{
		Appointment: domain.Appointment{
			AppointmentID:   "appt-1",
			AppointmentDate: time.Date(2026, 7, 20, 0, 0, 0, 0, time.UTC),
			AppointmentTime: time.Date(0, 1, 1, 14, 30, 0, 0, time.UTC),
			Status:          domain.AppointmentPending,
		},
		DoctorName:     "Dr. Gregory House",
		DoctorEmail:    "house@example.com",
		Specialization: "Diagnostics",
		ClinicName:     "Princeton Plainsboro",
		ClinicCity:     "Princeton",
		PatientName:    "Jane <Doe>",
		PatientEmail:   "jane@example.com",
	}
}

func waitForMail(t *testing.T, svc interface{ Wait(context.Context) error }) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, svc.Wait(ctx))
}

func TestNotificationService_AppointmentBookedMailsBothParties(t *testing.T) {
	mailer := &recordingMailer{}
	svc := services.NewNotificationService(mailer)

	svc.AppointmentBooked(context.Background(), bookedDetails())
	waitForMail(t, svc)

	sent := mailer.messages()
	require.Len(t, sent, 2)

	byRecipient := map[string]domain.EmailMessage{}
	for _, m := range sent {
		byRecipient[m.To] = m
	}

	patient := byRecipient["jane@example.com"]
	assert.Equal(t, "Appointment Confirmed - DocOrbit", patient.Subject)
	assert.Equal(t, domain.ContentTypeHTML, patient.ContentType)
	assert.Contains(t, patient.Body, "Dear Jane &lt;Doe&gt;,")
	assert.Contains(t, patient.Body, "2026-07-20")
	assert.Contains(t, patient.Body, "14:30")
	assert.NotContains(t, patient.Body, "Dr. Dr.")

	doctor := byRecipient["house@example.com"]
	assert.Equal(t, "New Appointment Booked - DocOrbit", doctor.Subject)
	assert.Contains(t, doctor.Body, "Dear Dr. Gregory House,")
}

func TestNotificationService_AppointmentCancelled(t *testing.T) {
	mailer := &recordingMailer{}
	svc := services.NewNotificationService(mailer)
	details := bookedDetails()
	details.Status = domain.AppointmentCancelled

	svc.AppointmentCancelled(context.Background(), details)
	waitForMail(t, svc)

	sent := mailer.messages()
	require.Len(t, sent, 2)
	for _, m := range sent {
		assert.Equal(t, "Appointment Cancelled - DocOrbit", m.Subject)
		assert.Contains(t, m.Body, "CANCELLED")
	}
}

func TestNotificationService_SkipsRecipientWithoutEmail(t *testing.T) {
	mailer := &recordingMailer{}
	svc := services.NewNotificationService(mailer)
	details := bookedDetails()
	details.DoctorEmail = ""

	svc.AppointmentBooked(context.Background(), details)
	waitForMail(t, svc)

	sent := mailer.messages()
	require.Len(t, sent, 1)
	assert.Equal(t, "jane@example.com", sent[0].To)
}

func TestNotificationService_PasswordResetMails(t *testing.T) {
	mailer := &recordingMailer{}
	svc := services.NewNotificationService(mailer)

	svc.PasswordResetLink(context.Background(), "jane@example.com", "https://app.test/reset-password?token=abc")
	svc.PasswordResetOTP(context.Background(), "jane@example.com", "482913")
	waitForMail(t, svc)

	sent := mailer.messages()
	require.Len(t, sent, 2)
	for _, m := range sent {
		switch m.ContentType {
		case domain.ContentTypeHTML:
			assert.Equal(t, "Password Reset - DocOrbit", m.Subject)
			assert.Contains(t, m.Body, `href="https://app.test/reset-password?token=abc"`)
		case domain.ContentTypePlain:
			assert.True(t, strings.HasSuffix(m.Body, "482913"))
		default:
			t.Fatalf("unexpected content type %q", m.ContentType)
		}
	}
}

func TestNotificationService_MailerFailureDoesNotPropagate(t *testing.T) {
	mailer := &recordingMailer{err: errors.New("smtp down")}
	svc := services.NewNotificationService(mailer)

	svc.PasswordResetOTP(context.Background(), "jane@example.com", "482913")
	waitForMail(t, svc)

	assert.Len(t, mailer.messages(), 1)
}

func TestNotificationService_SendOutlivesRequestContext(t *testing.T) {
	mailer := &recordingMailer{}
	svc := services.NewNotificationService(mailer)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc.PasswordResetOTP(ctx, "jane@example.com", "482913")
	waitForMail(t, svc)

	assert.Len(t, mailer.messages(), 1)
}
