package services_test

import (
	"context"
	"sync"
	"time"

	"github.com/SscSPs/docorbit_backend/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// --- User repository ---

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindIdentityConflicts(ctx context.Context, username, email, phoneNumber string) (domain.IdentityConflicts, error) {
	args := m.Called(ctx, username, email, phoneNumber)
	return args.Get(0).(domain.IdentityConflicts), args.Error(1)
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user domain.User, provision *domain.DoctorProvision) error {
	args := m.Called(ctx, user, provision)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, userID, passwordHash string) error {
	args := m.Called(ctx, userID, passwordHash)
	return args.Error(0)
}

// --- Doctor repository ---

type MockDoctorRepository struct {
	mock.Mock
}

func (m *MockDoctorRepository) doctors(args mock.Arguments) ([]domain.Doctor, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Doctor), args.Error(1)
}

func (m *MockDoctorRepository) FindDoctorByID(ctx context.Context, doctorID string) (*domain.Doctor, error) {
	args := m.Called(ctx, doctorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Doctor), args.Error(1)
}

func (m *MockDoctorRepository) ListDoctors(ctx context.Context) ([]domain.Doctor, error) {
	return m.doctors(m.Called(ctx))
}

func (m *MockDoctorRepository) SearchDoctorsByName(ctx context.Context, name string) ([]domain.Doctor, error) {
	return m.doctors(m.Called(ctx, name))
}

func (m *MockDoctorRepository) FindDoctorsBySpecialization(ctx context.Context, specialization string) ([]domain.Doctor, error) {
	return m.doctors(m.Called(ctx, specialization))
}

func (m *MockDoctorRepository) FindDoctorsByClinic(ctx context.Context, clinicID string) ([]domain.Doctor, error) {
	return m.doctors(m.Called(ctx, clinicID))
}

func (m *MockDoctorRepository) ListSpecializations(ctx context.Context) ([]domain.Specialization, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Specialization), args.Error(1)
}

// --- Appointment repository ---

type MockAppointmentRepository struct {
	mock.Mock
}

func (m *MockAppointmentRepository) FindAppointmentByID(ctx context.Context, appointmentID string) (*domain.Appointment, error) {
	args := m.Called(ctx, appointmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) FindAppointmentDetails(ctx context.Context, appointmentID string) (*domain.AppointmentDetails, error) {
	args := m.Called(ctx, appointmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AppointmentDetails), args.Error(1)
}

func (m *MockAppointmentRepository) FindAppointmentDetailsByPatient(ctx context.Context, patientID string) ([]domain.AppointmentDetails, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AppointmentDetails), args.Error(1)
}

func (m *MockAppointmentRepository) SaveAppointment(ctx context.Context, appointment domain.Appointment) error {
	args := m.Called(ctx, appointment)
	return args.Error(0)
}

func (m *MockAppointmentRepository) UpdateAppointmentStatus(ctx context.Context, appointment domain.Appointment) error {
	args := m.Called(ctx, appointment)
	return args.Error(0)
}

// --- Password reset repositories ---

type MockResetTokenRepository struct {
	mock.Mock
}

func (m *MockResetTokenRepository) UpsertResetToken(ctx context.Context, token domain.PasswordResetToken) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockResetTokenRepository) FindResetTokenByHash(ctx context.Context, tokenHash string) (*domain.PasswordResetToken, error) {
	args := m.Called(ctx, tokenHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PasswordResetToken), args.Error(1)
}

func (m *MockResetTokenRepository) DeleteResetTokensForUser(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type MockOTPRepository struct {
	mock.Mock
}

func (m *MockOTPRepository) SaveOTP(ctx context.Context, otp domain.PasswordOTP) error {
	args := m.Called(ctx, otp)
	return args.Error(0)
}

func (m *MockOTPRepository) FindOTP(ctx context.Context, userID, otp string) (*domain.PasswordOTP, error) {
	args := m.Called(ctx, userID, otp)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PasswordOTP), args.Error(1)
}

func (m *MockOTPRepository) DeleteOTP(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockOTPRepository) SaveVerificationGrant(ctx context.Context, userID string, expiresAt time.Time) error {
	args := m.Called(ctx, userID, expiresAt)
	return args.Error(0)
}

func (m *MockOTPRepository) ConsumeVerificationGrant(ctx context.Context, userID string, now time.Time) (bool, error) {
	args := m.Called(ctx, userID, now)
	return args.Bool(0), args.Error(1)
}

// --- Collaborating services ---

type MockTokenSvc struct {
	mock.Mock
}

func (m *MockTokenSvc) Issue(subject string) (string, time.Time, error) {
	args := m.Called(subject)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockTokenSvc) Verify(token string) (string, error) {
	args := m.Called(token)
	return args.String(0), args.Error(1)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) AppointmentBooked(ctx context.Context, details domain.AppointmentDetails) {
	m.Called(ctx, details)
}

func (m *MockNotifier) AppointmentCancelled(ctx context.Context, details domain.AppointmentDetails) {
	m.Called(ctx, details)
}

func (m *MockNotifier) PasswordResetLink(ctx context.Context, email, link string) {
	m.Called(ctx, email, link)
}

func (m *MockNotifier) PasswordResetOTP(ctx context.Context, email, otp string) {
	m.Called(ctx, email, otp)
}

func (m *MockNotifier) Wait(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// recordingMailer keeps every message it is asked to send.
type recordingMailer struct {
	mu   sync.Mutex
	sent []domain.EmailMessage
	err  error
}

func (r *recordingMailer) Send(_ context.Context, msg domain.EmailMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, msg)
	return r.err
}

func (r *recordingMailer) messages() []domain.EmailMessage {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.EmailMessage, len(r.sent))
	copy(out, r.sent)
	return out
}

// fixedClock returns a clock frozen at t.
func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
