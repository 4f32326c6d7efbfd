package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"regexp"
	"sync"
	"time"

	"github.com/SscSPs/docorbit_backend/internal/core/domain"
	portssvc "github.com/SscSPs/docorbit_backend/internal/core/ports/services"
)

const (
	subjectBooked          = "Appointment Confirmed - DocOrbit"
	subjectDoctorBooked    = "New Appointment Booked - DocOrbit"
	subjectCancelled       = "Appointment Cancelled - DocOrbit"
	subjectPasswordReset   = "Password Reset - DocOrbit"
	subjectPasswordOTP     = "OTP for Forgot Password request"
	defaultMailSendTimeout = 30 * time.Second
)

var appointmentMailTemplate = template.Must(template.New("appointment").Parse(`<!DOCTYPE html>
<html lang="en">
<body style="font-family: Arial, sans-serif; background-color: #f5f6fa; padding: 20px; color: #333;">
  <div style="max-width: 620px; margin: 0 auto; background: #fff; border-radius: 14px; overflow: hidden;">
    <div style="background: {{.Color}}; color: white; padding: 24px; text-align: center; font-size: 26px; font-weight: 700;">DocOrbit</div>
    <div style="padding: 28px;">
      <h2 style="color: {{.Color}};">{{.Title}}</h2>
      <p>{{.Greeting}}</p>
      <p>{{.Message}}</p>
      <table style="width: 100%; margin: 18px 0; background: #fafafa; border-radius: 10px; padding: 16px;">
        <tr><td><strong>Doctor:</strong></td><td>Dr. {{.DoctorName}} ({{.Specialization}})</td></tr>
        <tr><td><strong>Clinic:</strong></td><td>{{.ClinicName}}, {{.ClinicCity}}</td></tr>
        <tr><td><strong>Date:</strong></td><td>{{.Date}}</td></tr>
        <tr><td><strong>Time:</strong></td><td>{{.Time}}</td></tr>
        <tr><td><strong>Status:</strong></td><td>{{.Status}}</td></tr>
      </table>
    </div>
    <div style="text-align: center; font-size: 12px; color: #888; padding: 20px; background: #f9f9f9;">DocOrbit</div>
  </div>
</body>
</html>`))

var resetLinkMailTemplate = template.Must(template.New("reset").Parse(`<html>
<body style="font-family: Arial, sans-serif; background-color: #f4f6f8; padding: 40px;">
  <div style="max-width: 600px; margin: 0 auto; background: white; border-radius: 12px; overflow: hidden;">
    <div style="background: #1976d2; color: white; padding: 24px; text-align: center;"><h2>Password Reset Request</h2></div>
    <div style="padding: 30px; text-align: center;">
      <p>Hello,</p>
      <p>We received a request to reset your password. Click below to set a new one:</p>
      <a href="{{.Link}}" style="display: inline-block; margin-top: 20px; background: #1976d2; color: white; padding: 12px 30px; border-radius: 8px; text-decoration: none; font-weight: bold;">Reset Password</a>
      <p style="margin-top: 20px; color: #888; font-size: 13px;">If you didn't request this, just ignore this email.</p>
    </div>
  </div>
</body>
</html>`))

// doctorTitle matches a leading "Dr." so it is not doubled in greetings.
var doctorTitle = regexp.MustCompile(`(?i)^dr\.\s*`)

type appointmentMailData struct {
	Color          string
	Title          string
	Greeting       string
	Message        string
	DoctorName     string
	Specialization string
	ClinicName     string
	ClinicCity     string
	Date           string
	Time           string
	Status         string
}

// notificationService renders transactional mail and hands it to the mailer on a
// background goroutine. Sends outlive the request that triggered them.
type notificationService struct {
	BaseService
	mailer      portssvc.Mailer
	sendTimeout time.Duration
	wg          sync.WaitGroup
}

// NewNotificationService creates the notification sink over mailer.
func NewNotificationService(mailer portssvc.Mailer) portssvc.NotificationSvc {
	return &notificationService{mailer: mailer, sendTimeout: defaultMailSendTimeout}
}

var _ portssvc.NotificationSvc = (*notificationService)(nil)

// dispatch sends msg in the background. The request context only contributes its
// values; cancellation of the request does not abort the send.
func (s *notificationService) dispatch(ctx context.Context, kind string, msg domain.EmailMessage) {
	logger := s.GetLogger(ctx).With(slog.String("notification", kind))
	sendCtx := context.WithoutCancel(ctx)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				logger.Error("Mailer panicked", slog.Any("panic", r))
			}
		}()

		ctx, cancel := context.WithTimeout(sendCtx, s.sendTimeout)
		defer cancel()

		if err := s.mailer.Send(ctx, msg); err != nil {
			logger.Error("Failed to send notification", slog.String("error", err.Error()))
			return
		}
		logger.Debug("Notification sent")
	}()
}

func (s *notificationService) AppointmentBooked(ctx context.Context, details domain.AppointmentDetails) {
	s.sendAppointmentMail(ctx, "appointment_booked_patient", details.PatientEmail, subjectBooked, details, false, false)
	s.sendAppointmentMail(ctx, "appointment_booked_doctor", details.DoctorEmail, subjectDoctorBooked, details, true, false)
}

func (s *notificationService) AppointmentCancelled(ctx context.Context, details domain.AppointmentDetails) {
	s.sendAppointmentMail(ctx, "appointment_cancelled_patient", details.PatientEmail, subjectCancelled, details, false, true)
	s.sendAppointmentMail(ctx, "appointment_cancelled_doctor", details.DoctorEmail, subjectCancelled, details, true, true)
}

func (s *notificationService) sendAppointmentMail(ctx context.Context, kind, to, subject string, details domain.AppointmentDetails, toDoctor, cancelled bool) {
	if to == "" {
		s.LogWarn(ctx, "Notification skipped, recipient has no email", slog.String("notification", kind))
		return
	}
	body, err := renderAppointmentMail(details, toDoctor, cancelled)
	if err != nil {
		s.LogError(ctx, err, "Failed to render notification", slog.String("notification", kind))
		return
	}
	s.dispatch(ctx, kind, domain.EmailMessage{
		To:          to,
		Subject:     subject,
		Body:        body,
		ContentType: domain.ContentTypeHTML,
	})
}

func renderAppointmentMail(d domain.AppointmentDetails, toDoctor, cancelled bool) (string, error) {
	doctorName := doctorTitle.ReplaceAllString(d.DoctorName, "")

	data := appointmentMailData{
		DoctorName:     doctorName,
		Specialization: d.Specialization,
		ClinicName:     d.ClinicName,
		ClinicCity:     d.ClinicCity,
		Date:           d.AppointmentDate.Format("2006-01-02"),
		Time:           d.AppointmentTime.Format("15:04"),
		Status:         string(d.Status),
	}

	switch {
	case cancelled && toDoctor:
		data.Color, data.Title, data.Message = "#c62828", "Appointment Cancelled", "A patient has cancelled their appointment with you."
	case cancelled:
		data.Color, data.Title, data.Message = "#c62828", "Your Appointment Was Cancelled", "Your appointment has been successfully cancelled."
	case toDoctor:
		data.Color, data.Title, data.Message = "#43a047", "New Appointment Booked", "A new appointment has been booked with you."
	default:
		data.Color, data.Title, data.Message = "#1976d2", "Appointment Confirmed", "Your appointment has been confirmed successfully."
	}
	if toDoctor {
		data.Greeting = fmt.Sprintf("Dear Dr. %s,", doctorName)
	} else {
		data.Greeting = fmt.Sprintf("Dear %s,", d.PatientName)
	}

	var buf bytes.Buffer
	if err := appointmentMailTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render appointment mail: %w", err)
	}
	return buf.String(), nil
}

func (s *notificationService) PasswordResetLink(ctx context.Context, email, link string) {
	var buf bytes.Buffer
	if err := resetLinkMailTemplate.Execute(&buf, struct{ Link string }{Link: link}); err != nil {
		s.LogError(ctx, err, "Failed to render reset link mail")
		return
	}
	s.dispatch(ctx, "password_reset_link", domain.EmailMessage{
		To:          email,
		Subject:     subjectPasswordReset,
		Body:        buf.String(),
		ContentType: domain.ContentTypeHTML,
	})
}

func (s *notificationService) PasswordResetOTP(ctx context.Context, email, otp string) {
	s.dispatch(ctx, "password_reset_otp", domain.EmailMessage{
		To:          email,
		Subject:     subjectPasswordOTP,
		Body:        "This is the OTP for your Forgot Password request: " + otp,
		ContentType: domain.ContentTypePlain,
	})
}

// Wait blocks until every dispatched send has finished or ctx is done.
func (s *notificationService) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
