package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/docorbit_backend/internal/core/ports/services"
	"github.com/SscSPs/docorbit_backend/internal/dto"
	"github.com/SscSPs/docorbit_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// directoryHandler serves the public doctor directory.
type directoryHandler struct {
	directoryService portssvc.DirectorySvcFacade
}

func newDirectoryHandler(ds portssvc.DirectorySvcFacade) *directoryHandler {
	return &directoryHandler{directoryService: ds}
}

func registerDirectoryRoutes(rg *gin.RouterGroup, directoryService portssvc.DirectorySvcFacade) {
	h := newDirectoryHandler(directoryService)

	doctors := rg.Group("/doctors")
	{
		doctors.GET("", h.listDoctors)
		doctors.GET("/search", h.searchDoctors)
		doctors.GET("/specialization/:specialization", h.listBySpecialization)
		doctors.GET("/clinic/:clinicID", h.listByClinic)
		doctors.GET("/:doctorID", h.getDoctor)
	}
	rg.GET("/specializations", h.listSpecializations)
}

// listDoctors godoc
// @Summary List doctors
// @Tags directory
// @Produce json
// @Success 200 {array} dto.DoctorResponse
// @Failure 500 {object} ErrorResponse
// @Router /doctors [get]
func (h *directoryHandler) listDoctors(c *gin.Context) {
	doctors, err := h.directoryService.ListDoctors(c.Request.Context())
	if err != nil {
		respondWithError(c, middleware.GetLoggerFromCtx(c.Request.Context()), err, "Failed to list doctors")
		return
	}
	c.JSON(http.StatusOK, dto.ToDoctorResponses(doctors))
}

// searchDoctors godoc
// @Summary Search doctors by name
// @Tags directory
// @Produce json
// @Param name query string false "Case-insensitive name fragment"
// @Success 200 {array} dto.DoctorResponse
// @Failure 500 {object} ErrorResponse
// @Router /doctors/search [get]
func (h *directoryHandler) searchDoctors(c *gin.Context) {
	doctors, err := h.directoryService.SearchDoctors(c.Request.Context(), c.Query("name"))
	if err != nil {
		respondWithError(c, middleware.GetLoggerFromCtx(c.Request.Context()), err, "Failed to search doctors")
		return
	}
	c.JSON(http.StatusOK, dto.ToDoctorResponses(doctors))
}

// listBySpecialization godoc
// @Summary List doctors of a specialization
// @Tags directory
// @Produce json
// @Param specialization path string true "Specialization name"
// @Success 200 {array} dto.DoctorResponse
// @Failure 500 {object} ErrorResponse
// @Router /doctors/specialization/{specialization} [get]
func (h *directoryHandler) listBySpecialization(c *gin.Context) {
	doctors, err := h.directoryService.ListDoctorsBySpecialization(c.Request.Context(), c.Param("specialization"))
	if err != nil {
		respondWithError(c, middleware.GetLoggerFromCtx(c.Request.Context()), err, "Failed to list doctors")
		return
	}
	c.JSON(http.StatusOK, dto.ToDoctorResponses(doctors))
}

// listByClinic godoc
// @Summary List doctors of a clinic
// @Tags directory
// @Produce json
// @Param clinicID path string true "Clinic ID"
// @Success 200 {array} dto.DoctorResponse
// @Failure 500 {object} ErrorResponse
// @Router /doctors/clinic/{clinicID} [get]
func (h *directoryHandler) listByClinic(c *gin.Context) {
	doctors, err := h.directoryService.ListDoctorsByClinic(c.Request.Context(), c.Param("clinicID"))
	if err != nil {
		respondWithError(c, middleware.GetLoggerFromCtx(c.Request.Context()), err, "Failed to list doctors")
		return
	}
	c.JSON(http.StatusOK, dto.ToDoctorResponses(doctors))
}

// getDoctor godoc
// @Summary Get a doctor by ID
// @Tags directory
// @Produce json
// @Param doctorID path string true "Doctor ID"
// @Success 200 {object} dto.DoctorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /doctors/{doctorID} [get]
func (h *directoryHandler) getDoctor(c *gin.Context) {
	doctor, err := h.directoryService.GetDoctor(c.Request.Context(), c.Param("doctorID"))
	if err != nil {
		respondWithError(c, middleware.GetLoggerFromCtx(c.Request.Context()), err, "Failed to load doctor")
		return
	}
	c.JSON(http.StatusOK, dto.ToDoctorResponse(*doctor))
}

// listSpecializations godoc
// @Summary List specializations
// @Tags directory
// @Produce json
// @Success 200 {array} dto.SpecializationResponse
// @Failure 500 {object} ErrorResponse
// @Router /specializations [get]
func (h *directoryHandler) listSpecializations(c *gin.Context) {
	specializations, err := h.directoryService.ListSpecializations(c.Request.Context())
	if err != nil {
		respondWithError(c, middleware.GetLoggerFromCtx(c.Request.Context()), err, "Failed to list specializations")
		return
	}
	c.JSON(http.StatusOK, dto.ToSpecializationResponses(specializations))
}
