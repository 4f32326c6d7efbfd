package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/docorbit_backend/internal/apperrors"
	"github.com/SscSPs/docorbit_backend/internal/core/domain"
	"github.com/SscSPs/docorbit_backend/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AppointmentHandlerTestSuite struct {
	suite.Suite
	router *gin.Engine
	mocks  *testServices
}

func (suite *AppointmentHandlerTestSuite) SetupTest() {
	suite.router, suite.mocks = newTestRouter()
	suite.mocks.expectAuthenticatedPatient()
}

func (suite *AppointmentHandlerTestSuite) do(method, path string, authenticated bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if authenticated {
		req.Header.Set("Authorization", "Bearer "+validToken)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func sampleDetails(status domain.AppointmentStatus) *domain.AppointmentDetails {
	return &domain.AppointmentDetails{
		Appointment: domain.Appointment{
			AppointmentID:   "appt-1",
			PatientID:       patientUserID,
			AppointmentDate: time.Date(2026, 7, 20, 0, 0, 0, 0, time.UTC),
			AppointmentTime: time.Date(0, 1, 1, 14, 30, 0, 0, time.UTC),
			Status:          status,
		},
		DoctorName:     "Dr. Gregory House",
		Specialization: "Diagnostics",
		ClinicName:     "Princeton Plainsboro",
		PatientName:    "Jane Doe",
	}
}

func (suite *AppointmentHandlerTestSuite) TestBook_Success() {
	date := time.Date(2026, 7, 20, 0, 0, 0, 0, time.UTC)
	clock := time.Date(0, 1, 1, 14, 30, 0, 0, time.UTC)
	suite.mocks.appointment.On("Book", mock.Anything, "doc-1", patientUserID, date, clock).
		Return(sampleDetails(domain.AppointmentPending), nil).Once()

	w := suite.do(http.MethodPost, "/api/appointments/book?doctorId=doc-1&date=2026-07-20&time=14:30", true)

	suite.Require().Equal(http.StatusOK, w.Code)
	var resp dto.AppointmentResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("appt-1", resp.ID)
	suite.Equal("PENDING", resp.Status)
	suite.Equal("2026-07-20", resp.AppointmentDate)
	suite.Equal("14:30", resp.AppointmentTime)
	suite.mocks.appointment.AssertExpectations(suite.T())
}

func (suite *AppointmentHandlerTestSuite) TestBook_AcceptsSeconds() {
	clock := time.Date(0, 1, 1, 9, 15, 30, 0, time.UTC)
	suite.mocks.appointment.On("Book", mock.Anything, "doc-1", patientUserID, mock.Anything, clock).
		Return(sampleDetails(domain.AppointmentPending), nil).Once()

	w := suite.do(http.MethodPost, "/api/appointments/book?doctorId=doc-1&date=2026-07-20&time=09:15:30", true)

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *AppointmentHandlerTestSuite) TestBook_Anonymous() {
	w := suite.do(http.MethodPost, "/api/appointments/book?doctorId=doc-1&date=2026-07-20&time=14:30", false)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mocks.appointment.AssertNotCalled(suite.T(), "Book", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AppointmentHandlerTestSuite) TestBook_BadParameters() {
	for _, path := range []string{
		"/api/appointments/book?date=2026-07-20&time=14:30",
		"/api/appointments/book?doctorId=doc-1&date=20-07-2026&time=14:30",
		"/api/appointments/book?doctorId=doc-1&date=2026-07-20&time=2pm",
	} {
		w := suite.do(http.MethodPost, path, true)
		suite.Equal(http.StatusBadRequest, w.Code, path)
	}
}

func (suite *AppointmentHandlerTestSuite) TestBook_ErrorMapping() {
	cases := []struct {
		doctorID string
		err      error
		status   int
	}{
		{"unlinked", apperrors.ErrUnlinkedFacility, http.StatusBadRequest},
		{"ghost", apperrors.ErrNotFound, http.StatusNotFound},
	}
	for _, tc := range cases {
		suite.mocks.appointment.On("Book", mock.Anything, tc.doctorID, patientUserID, mock.Anything, mock.Anything).
			Return(nil, tc.err).Once()

		w := suite.do(http.MethodPost, "/api/appointments/book?doctorId="+tc.doctorID+"&date=2026-07-20&time=14:30", true)

		suite.Equal(tc.status, w.Code, tc.doctorID)
	}
}

func (suite *AppointmentHandlerTestSuite) TestListMine() {
	suite.mocks.appointment.On("ListForPatient", mock.Anything, patientUserID).
		Return([]domain.AppointmentDetails{*sampleDetails(domain.AppointmentPending), *sampleDetails(domain.AppointmentCancelled)}, nil).Once()

	w := suite.do(http.MethodGet, "/api/appointments/my", true)

	suite.Require().Equal(http.StatusOK, w.Code)
	var resp []dto.AppointmentResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp, 2)
	suite.Equal("CANCELLED", resp[1].Status)
}

func (suite *AppointmentHandlerTestSuite) TestCancel_Success() {
	suite.mocks.appointment.On("Cancel", mock.Anything, "appt-1", patientUserID).
		Return(sampleDetails(domain.AppointmentCancelled), nil).Once()

	w := suite.do(http.MethodPatch, "/api/appointments/appt-1/cancel", true)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"status":"CANCELLED"`)
}

func (suite *AppointmentHandlerTestSuite) TestCancel_ErrorMapping() {
	suite.mocks.appointment.On("Cancel", mock.Anything, "someone-elses", patientUserID).Return(nil, apperrors.ErrForbidden).Once()
	suite.mocks.appointment.On("Cancel", mock.Anything, "missing", patientUserID).Return(nil, apperrors.ErrNotFound).Once()

	suite.Equal(http.StatusForbidden, suite.do(http.MethodPatch, "/api/appointments/someone-elses/cancel", true).Code)
	suite.Equal(http.StatusNotFound, suite.do(http.MethodPatch, "/api/appointments/missing/cancel", true).Code)
}

func TestAppointmentHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AppointmentHandlerTestSuite))
}
