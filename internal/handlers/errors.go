package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/docorbit_backend/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// errorStatus maps a service error onto an HTTP status and the message the client sees.
// ok is false for unexpected failures, whose details stay in the logs.
func errorStatus(err error) (status int, message string, ok bool) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) && appErr.Code > 0 && appErr.Code < http.StatusInternalServerError {
		return appErr.Code, appErr.Message, true
	}

	switch {
	case errors.Is(err, apperrors.ErrValidation),
		errors.Is(err, apperrors.ErrDuplicate),
		errors.Is(err, apperrors.ErrPasswordMismatch),
		errors.Is(err, apperrors.ErrInvalidOrExpiredToken),
		errors.Is(err, apperrors.ErrUnlinkedFacility):
		return http.StatusBadRequest, err.Error(), true
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound, err.Error(), true
	case errors.Is(err, apperrors.ErrUnauthorized):
		return http.StatusUnauthorized, "Unauthorized", true
	case errors.Is(err, apperrors.ErrForbidden):
		return http.StatusForbidden, "Forbidden", true
	case errors.Is(err, apperrors.ErrExpiredOTP):
		return http.StatusExpectationFailed, err.Error(), true
	}
	return http.StatusInternalServerError, "", false
}

// respondWithError writes the mapped error. Unexpected failures are logged and
// answered with fallback.
func respondWithError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	status, message, ok := errorStatus(err)
	if !ok {
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: fallback})
		return
	}
	logger.Warn("Request failed", slog.Int("status", status), slog.String("error", err.Error()))
	c.JSON(status, ErrorResponse{Error: message})
}
