package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/docorbit_backend/internal/core/ports/services"
	"github.com/SscSPs/docorbit_backend/internal/dto"
	"github.com/SscSPs/docorbit_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// appointmentTimeLayouts are accepted for the time parameter, most specific last.
var appointmentTimeLayouts = []string{"15:04", "15:04:05"}

// appointmentHandler handles HTTP requests related to appointments.
type appointmentHandler struct {
	appointmentService portssvc.AppointmentSvcFacade
}

func newAppointmentHandler(as portssvc.AppointmentSvcFacade) *appointmentHandler {
	return &appointmentHandler{appointmentService: as}
}

// registerAppointmentRoutes registers routes related to appointments. All of them need a caller.
func registerAppointmentRoutes(rg *gin.RouterGroup, appointmentService portssvc.AppointmentSvcFacade) {
	h := newAppointmentHandler(appointmentService)

	appointments := rg.Group("/appointments", middleware.RequireAuth())
	{
		appointments.POST("/book", h.bookAppointment)
		appointments.GET("/my", h.listMyAppointments)
		appointments.PATCH("/:id/cancel", h.cancelAppointment)
	}
}

func parseAppointmentTime(raw string) (time.Time, bool) {
	for _, layout := range appointmentTimeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// bookAppointment godoc
// @Summary Book an appointment
// @Description Books a PENDING appointment with a doctor at their clinic for the logged-in patient
// @Tags appointments
// @Produce json
// @Param doctorId query string true "Doctor ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param time query string true "Time (HH:MM)"
// @Success 200 {object} dto.AppointmentResponse
// @Failure 400 {object} ErrorResponse "Invalid parameters or doctor not linked to a clinic"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Doctor not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /appointments/book [post]
func (h *appointmentHandler) bookAppointment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.BookAppointmentRequest
	if err := c.ShouldBind(&req); err != nil {
		logger.Warn("Failed to bind booking parameters", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "doctorId, date and time are required"})
		return
	}

	date, err := time.Parse(time.DateOnly, req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "date must be YYYY-MM-DD"})
		return
	}
	clock, ok := parseAppointmentTime(req.Time)
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "time must be HH:MM"})
		return
	}

	patientID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Patient user ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("doctor_id", req.DoctorID))
	details, err := h.appointmentService.Book(c.Request.Context(), req.DoctorID, patientID, date, clock)
	if err != nil {
		respondWithError(c, logger, err, "Failed to book appointment")
		return
	}

	logger.Info("Appointment booked", slog.String("appointment_id", details.AppointmentID))
	c.JSON(http.StatusOK, dto.ToAppointmentResponse(*details))
}

// listMyAppointments godoc
// @Summary List my appointments
// @Description Lists every appointment of the logged-in patient, any status
// @Tags appointments
// @Produce json
// @Success 200 {array} dto.AppointmentResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /appointments/my [get]
func (h *appointmentHandler) listMyAppointments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	patientID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Patient user ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	appointments, err := h.appointmentService.ListForPatient(c.Request.Context(), patientID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list appointments")
		return
	}
	c.JSON(http.StatusOK, dto.ToAppointmentResponses(appointments))
}

// cancelAppointment godoc
// @Summary Cancel an appointment
// @Description Cancels one of the logged-in patient's own appointments
// @Tags appointments
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 200 {object} dto.AppointmentResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "Appointment belongs to another patient"
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /appointments/{id}/cancel [patch]
func (h *appointmentHandler) cancelAppointment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	appointmentID := c.Param("id")
	requesterID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Requester user ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("appointment_id", appointmentID))
	details, err := h.appointmentService.Cancel(c.Request.Context(), appointmentID, requesterID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to cancel appointment")
		return
	}

	logger.Info("Appointment cancel handled", slog.String("status", string(details.Status)))
	c.JSON(http.StatusOK, dto.ToAppointmentResponse(*details))
}
