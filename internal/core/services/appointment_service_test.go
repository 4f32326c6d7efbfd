package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/docorbit_backend/internal/apperrors"
	"github.com/SscSPs/docorbit_backend/internal/core/domain"
	portssvc "github.com/SscSPs/docorbit_backend/internal/core/ports/services"
	"github.com/SscSPs/docorbit_backend/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AppointmentServiceTestSuite struct {
	suite.Suite
	ctx              context.Context
	now              time.Time
	mockAppointments *MockAppointmentRepository
	mockDoctors      *MockDoctorRepository
	mockUsers        *MockUserRepository
	mockNotify       *MockNotifier
	service          portssvc.AppointmentSvcFacade

	doctor  *domain.Doctor
	patient *domain.User
}

func (suite *AppointmentServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.now = time.Date(2026, 7, 10, 8, 30, 0, 0, time.UTC)
	suite.mockAppointments = new(MockAppointmentRepository)
	suite.mockDoctors = new(MockDoctorRepository)
	suite.mockUsers = new(MockUserRepository)
	suite.mockNotify = new(MockNotifier)
	suite.service = services.NewAppointmentService(suite.mockAppointments, suite.mockDoctors, suite.mockUsers, suite.mockNotify,
		services.WithClock(fixedClock(suite.now)))

	suite.doctor = &domain.Doctor{
		DoctorID:       "doc-1",
		Name:           "Dr. Gregory House",
		Specialization: "Diagnostics",
		Email:          "house@example.com",
		Clinic:         &domain.Clinic{ClinicID: "clinic-1", Name: "Princeton Plainsboro", City: "Princeton"},
	}
	suite.patient = &domain.User{UserID: "patient-1", Name: "Jane Doe", Email: "jane@example.com", Enabled: true}
}

func (suite *AppointmentServiceTestSuite) pendingDetails() *domain.AppointmentDetails {
	return &domain.AppointmentDetails{
		Appointment: domain.Appointment{
			AppointmentID:   "appt-1",
			DoctorID:        "doc-1",
			PatientID:       "patient-1",
			ClinicID:        "clinic-1",
			AppointmentDate: time.Date(2026, 7, 20, 0, 0, 0, 0, time.UTC),
			AppointmentTime: time.Date(0, 1, 1, 14, 30, 0, 0, time.UTC),
			Status:          domain.AppointmentPending,
		},
		DoctorName:   "Dr. Gregory House",
		DoctorEmail:  "house@example.com",
		PatientName:  "Jane Doe",
		PatientEmail: "jane@example.com",
	}
}

func (suite *AppointmentServiceTestSuite) TestBook_Success() {
	date := time.Date(2026, 7, 20, 0, 0, 0, 0, time.UTC)
	clock := time.Date(0, 1, 1, 14, 30, 0, 0, time.UTC)

	suite.mockDoctors.On("FindDoctorByID", suite.ctx, "doc-1").Return(suite.doctor, nil).Once()
	suite.mockUsers.On("FindUserByID", suite.ctx, "patient-1").Return(suite.patient, nil).Once()
	suite.mockAppointments.On("SaveAppointment", suite.ctx, mock.MatchedBy(func(a domain.Appointment) bool {
		return a.Status == domain.AppointmentPending &&
			a.ClinicID == "clinic-1" &&
			a.PatientID == "patient-1" &&
			a.AppointmentDate.Equal(date) &&
			a.CreatedAt.Equal(suite.now)
	})).Return(nil).Once()
	suite.mockNotify.On("AppointmentBooked", suite.ctx, mock.AnythingOfType("domain.AppointmentDetails")).Once()

	details, err := suite.service.Book(suite.ctx, "doc-1", "patient-1", date, clock)

	suite.Require().NoError(err)
	suite.NotEmpty(details.AppointmentID)
	suite.Equal(domain.AppointmentPending, details.Status)
	suite.Equal("Princeton Plainsboro", details.ClinicName)
	suite.Equal("Jane Doe", details.PatientName)
	suite.Equal(14, details.AppointmentTime.Hour())
	suite.mockAppointments.AssertExpectations(suite.T())
	suite.mockNotify.AssertExpectations(suite.T())
}

func (suite *AppointmentServiceTestSuite) TestBook_DoctorWithoutClinic() {
	suite.doctor.Clinic = nil
	suite.mockDoctors.On("FindDoctorByID", suite.ctx, "doc-1").Return(suite.doctor, nil).Once()
	suite.mockUsers.On("FindUserByID", suite.ctx, "patient-1").Return(suite.patient, nil).Once()

	details, err := suite.service.Book(suite.ctx, "doc-1", "patient-1", suite.now, suite.now)

	suite.Nil(details)
	suite.ErrorIs(err, apperrors.ErrUnlinkedFacility)
	suite.mockAppointments.AssertNotCalled(suite.T(), "SaveAppointment", mock.Anything, mock.Anything)
	suite.mockNotify.AssertNotCalled(suite.T(), "AppointmentBooked", mock.Anything, mock.Anything)
}

func (suite *AppointmentServiceTestSuite) TestBook_UnknownDoctor() {
	suite.mockDoctors.On("FindDoctorByID", suite.ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.Book(suite.ctx, "ghost", "patient-1", suite.now, suite.now)

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *AppointmentServiceTestSuite) TestBook_UnknownPatient() {
	suite.mockDoctors.On("FindDoctorByID", suite.ctx, "doc-1").Return(suite.doctor, nil).Once()
	suite.mockUsers.On("FindUserByID", suite.ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.Book(suite.ctx, "doc-1", "ghost", suite.now, suite.now)

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *AppointmentServiceTestSuite) TestBook_SaveFailureSendsNothing() {
	dbErr := errors.New("insert failed")
	suite.mockDoctors.On("FindDoctorByID", suite.ctx, "doc-1").Return(suite.doctor, nil).Once()
	suite.mockUsers.On("FindUserByID", suite.ctx, "patient-1").Return(suite.patient, nil).Once()
	suite.mockAppointments.On("SaveAppointment", suite.ctx, mock.Anything).Return(dbErr).Once()

	_, err := suite.service.Book(suite.ctx, "doc-1", "patient-1", suite.now, suite.now)

	suite.ErrorIs(err, dbErr)
	suite.mockNotify.AssertNotCalled(suite.T(), "AppointmentBooked", mock.Anything, mock.Anything)
}

func (suite *AppointmentServiceTestSuite) TestListForPatient() {
	list := []domain.AppointmentDetails{*suite.pendingDetails()}
	suite.mockAppointments.On("FindAppointmentDetailsByPatient", suite.ctx, "patient-1").Return(list, nil).Once()

	got, err := suite.service.ListForPatient(suite.ctx, "patient-1")

	suite.Require().NoError(err)
	suite.Len(got, 1)
}

func (suite *AppointmentServiceTestSuite) TestCancel_Success() {
	suite.mockUsers.On("FindUserByID", suite.ctx, "patient-1").Return(suite.patient, nil).Once()
	suite.mockAppointments.On("FindAppointmentDetails", suite.ctx, "appt-1").Return(suite.pendingDetails(), nil).Once()
	suite.mockAppointments.On("UpdateAppointmentStatus", suite.ctx, mock.MatchedBy(func(a domain.Appointment) bool {
		return a.AppointmentID == "appt-1" && a.Status == domain.AppointmentCancelled && a.LastUpdatedAt.Equal(suite.now)
	})).Return(nil).Once()
	suite.mockNotify.On("AppointmentCancelled", suite.ctx, mock.MatchedBy(func(d domain.AppointmentDetails) bool {
		return d.Status == domain.AppointmentCancelled
	})).Once()

	details, err := suite.service.Cancel(suite.ctx, "appt-1", "patient-1")

	suite.Require().NoError(err)
	suite.Equal(domain.AppointmentCancelled, details.Status)
	suite.mockAppointments.AssertExpectations(suite.T())
	suite.mockNotify.AssertExpectations(suite.T())
}

func (suite *AppointmentServiceTestSuite) TestCancel_AlreadyCancelledIsNoOp() {
	cancelled := suite.pendingDetails()
	cancelled.Status = domain.AppointmentCancelled
	suite.mockUsers.On("FindUserByID", suite.ctx, "patient-1").Return(suite.patient, nil).Once()
	suite.mockAppointments.On("FindAppointmentDetails", suite.ctx, "appt-1").Return(cancelled, nil).Once()

	details, err := suite.service.Cancel(suite.ctx, "appt-1", "patient-1")

	suite.Require().NoError(err)
	suite.Equal(domain.AppointmentCancelled, details.Status)
	suite.mockAppointments.AssertNotCalled(suite.T(), "UpdateAppointmentStatus", mock.Anything, mock.Anything)
	suite.mockNotify.AssertNotCalled(suite.T(), "AppointmentCancelled", mock.Anything, mock.Anything)
}

func (suite *AppointmentServiceTestSuite) TestCancel_NotOwner() {
	other := &domain.User{UserID: "patient-2", Enabled: true}
	suite.mockUsers.On("FindUserByID", suite.ctx, "patient-2").Return(other, nil).Once()
	suite.mockAppointments.On("FindAppointmentDetails", suite.ctx, "appt-1").Return(suite.pendingDetails(), nil).Once()

	_, err := suite.service.Cancel(suite.ctx, "appt-1", "patient-2")

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockAppointments.AssertNotCalled(suite.T(), "UpdateAppointmentStatus", mock.Anything, mock.Anything)
}

func (suite *AppointmentServiceTestSuite) TestCancel_UnknownAppointment() {
	suite.mockUsers.On("FindUserByID", suite.ctx, "patient-1").Return(suite.patient, nil).Once()
	suite.mockAppointments.On("FindAppointmentDetails", suite.ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.Cancel(suite.ctx, "ghost", "patient-1")

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *AppointmentServiceTestSuite) TestCancel_UnknownRequester() {
	suite.mockUsers.On("FindUserByID", suite.ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.Cancel(suite.ctx, "appt-1", "ghost")

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockAppointments.AssertNotCalled(suite.T(), "FindAppointmentDetails", mock.Anything, mock.Anything)
}

func TestAppointmentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AppointmentServiceTestSuite))
}
