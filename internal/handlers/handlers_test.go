package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/docorbit_backend/internal/core/domain"
	portssvc "github.com/SscSPs/docorbit_backend/internal/core/ports/services"
	"github.com/SscSPs/docorbit_backend/internal/dto"
	"github.com/SscSPs/docorbit_backend/internal/handlers"
	"github.com/SscSPs/docorbit_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

// --- Mock TokenSvc ---
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) Issue(subject string) (string, time.Time, error) {
	args := m.Called(subject)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockTokenService) Verify(token string) (string, error) {
	args := m.Called(token)
	return args.String(0), args.Error(1)
}

var _ portssvc.TokenSvc = (*MockTokenService)(nil)

// --- Mock AuthSvcFacade ---
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, req dto.SignupRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, identifier, password string) (*portssvc.LoginResult, error) {
	args := m.Called(ctx, identifier, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portssvc.LoginResult), args.Error(1)
}

func (m *MockAuthService) ResolveIdentity(ctx context.Context, username string) (*domain.Identity, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Identity), args.Error(1)
}

func (m *MockAuthService) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var _ portssvc.AuthSvcFacade = (*MockAuthService)(nil)

// --- Mock PasswordResetSvcFacade ---
type MockPasswordResetService struct {
	mock.Mock
}

func (m *MockPasswordResetService) RequestResetLink(ctx context.Context, email string) error {
	return m.Called(ctx, email).Error(0)
}

func (m *MockPasswordResetService) ResetPassword(ctx context.Context, token, newPassword string) error {
	return m.Called(ctx, token, newPassword).Error(0)
}

func (m *MockPasswordResetService) RequestOTP(ctx context.Context, email string) error {
	return m.Called(ctx, email).Error(0)
}

func (m *MockPasswordResetService) VerifyOTP(ctx context.Context, email, otp string) error {
	return m.Called(ctx, email, otp).Error(0)
}

func (m *MockPasswordResetService) ChangePassword(ctx context.Context, email, password, repeatPassword string) error {
	return m.Called(ctx, email, password, repeatPassword).Error(0)
}

var _ portssvc.PasswordResetSvcFacade = (*MockPasswordResetService)(nil)

// --- Mock AppointmentSvcFacade ---
type MockAppointmentService struct {
	mock.Mock
}

func (m *MockAppointmentService) Book(ctx context.Context, doctorID, patientUserID string, date, clock time.Time) (*domain.AppointmentDetails, error) {
	args := m.Called(ctx, doctorID, patientUserID, date, clock)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AppointmentDetails), args.Error(1)
}

func (m *MockAppointmentService) ListForPatient(ctx context.Context, patientUserID string) ([]domain.AppointmentDetails, error) {
	args := m.Called(ctx, patientUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AppointmentDetails), args.Error(1)
}

func (m *MockAppointmentService) Cancel(ctx context.Context, appointmentID, requesterUserID string) (*domain.AppointmentDetails, error) {
	args := m.Called(ctx, appointmentID, requesterUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AppointmentDetails), args.Error(1)
}

var _ portssvc.AppointmentSvcFacade = (*MockAppointmentService)(nil)

// --- Mock DirectorySvcFacade ---
type MockDirectoryService struct {
	mock.Mock
}

func (m *MockDirectoryService) doctors(args mock.Arguments) ([]domain.Doctor, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Doctor), args.Error(1)
}

func (m *MockDirectoryService) GetDoctor(ctx context.Context, doctorID string) (*domain.Doctor, error) {
	args := m.Called(ctx, doctorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Doctor), args.Error(1)
}

func (m *MockDirectoryService) ListDoctors(ctx context.Context) ([]domain.Doctor, error) {
	return m.doctors(m.Called(ctx))
}

func (m *MockDirectoryService) SearchDoctors(ctx context.Context, name string) ([]domain.Doctor, error) {
	return m.doctors(m.Called(ctx, name))
}

func (m *MockDirectoryService) ListDoctorsBySpecialization(ctx context.Context, specialization string) ([]domain.Doctor, error) {
	return m.doctors(m.Called(ctx, specialization))
}

func (m *MockDirectoryService) ListDoctorsByClinic(ctx context.Context, clinicID string) ([]domain.Doctor, error) {
	return m.doctors(m.Called(ctx, clinicID))
}

func (m *MockDirectoryService) ListSpecializations(ctx context.Context) ([]domain.Specialization, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Specialization), args.Error(1)
}

var _ portssvc.DirectorySvcFacade = (*MockDirectoryService)(nil)

// testServices bundles the mocks behind a router built by RegisterRoutes.
type testServices struct {
	token       *MockTokenService
	auth        *MockAuthService
	reset       *MockPasswordResetService
	appointment *MockAppointmentService
	directory   *MockDirectoryService
}

const (
	validToken    = "valid-token"
	patientUserID = "patient-1"
)

func newTestRouter() (*gin.Engine, *testServices) {
	gin.SetMode(gin.TestMode)
	if err := dto.RegisterValidators(); err != nil {
		panic(err)
	}
	mocks := &testServices{
		token:       new(MockTokenService),
		auth:        new(MockAuthService),
		reset:       new(MockPasswordResetService),
		appointment: new(MockAppointmentService),
		directory:   new(MockDirectoryService),
	}
	container := &portssvc.ServiceContainer{
		Token:         mocks.token,
		Auth:          mocks.auth,
		PasswordReset: mocks.reset,
		Appointment:   mocks.appointment,
		Directory:     mocks.directory,
	}

	r := gin.New()
	handlers.RegisterRoutes(r, &config.Config{IsProduction: true}, container)
	return r, mocks
}

// expectAuthenticatedPatient makes validToken resolve to patientUserID.
func (m *testServices) expectAuthenticatedPatient() {
	m.token.On("Verify", validToken).Return("jdoe", nil)
	m.auth.On("ResolveIdentity", mock.Anything, "jdoe").Return(&domain.Identity{
		UserID:   patientUserID,
		Username: "jdoe",
		Roles:    domain.Roles{domain.RolePatient},
	}, nil)
}
