package handlers

import (
	"errors"
	"net/http"

	"github.com/SscSPs/docorbit_backend/internal/apperrors"
	portssvc "github.com/SscSPs/docorbit_backend/internal/core/ports/services"
	"github.com/SscSPs/docorbit_backend/internal/dto"
	"github.com/SscSPs/docorbit_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

const (
	resetLinkSentMessage = "If the email is registered, a reset link has been sent."
	otpSentMessage       = "If the email is registered, an OTP has been sent."
)

// passwordResetHandler serves both password reset flows. None of its responses reveal
// whether an email is registered.
type passwordResetHandler struct {
	resetService portssvc.PasswordResetSvcFacade
}

func newPasswordResetHandler(rs portssvc.PasswordResetSvcFacade) *passwordResetHandler {
	return &passwordResetHandler{resetService: rs}
}

func registerPasswordResetRoutes(rg *gin.RouterGroup, resetService portssvc.PasswordResetSvcFacade) {
	h := newPasswordResetHandler(resetService)

	auth := rg.Group("/auth")
	{
		auth.POST("/forgot-password", h.forgotPassword)
		auth.POST("/reset-password", h.resetPassword)
	}

	otp := rg.Group("/auth/forgetpassword")
	{
		otp.POST("/verifyemail/:email", h.requestOTP)
		otp.POST("/verifyOTP/:otp/:email", h.verifyOTP)
		otp.POST("/changePassword/:email", h.changePassword)
	}
}

// forgotPassword godoc
// @Summary Request a password reset link
// @Tags password-reset
// @Accept json
// @Produce json
// @Param request body dto.ForgotPasswordRequest true "Account email"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} ErrorResponse
// @Router /auth/forgot-password [post]
func (h *passwordResetHandler) forgotPassword(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Email is required"})
		return
	}

	if err := h.resetService.RequestResetLink(c.Request.Context(), req.Email); err != nil {
		respondWithError(c, logger, err, "Failed to process reset request")
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: resetLinkSentMessage})
}

// resetPassword godoc
// @Summary Reset password with an emailed token
// @Tags password-reset
// @Accept json
// @Produce json
// @Param request body dto.ResetPasswordRequest true "Token and new password"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} ErrorResponse "Invalid or expired token"
// @Router /auth/reset-password [post]
func (h *passwordResetHandler) resetPassword(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Token and password are required"})
		return
	}

	if err := h.resetService.ResetPassword(c.Request.Context(), req.Token, req.Password); err != nil {
		if errors.Is(err, apperrors.ErrInvalidOrExpiredToken) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid or expired token"})
			return
		}
		respondWithError(c, logger, err, "Failed to reset password")
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Password has been reset successfully."})
}

// requestOTP godoc
// @Summary Send a password reset OTP
// @Tags password-reset
// @Produce json
// @Param email path string true "Account email"
// @Success 200 {object} dto.MessageResponse
// @Router /auth/forgetpassword/verifyemail/{email} [post]
func (h *passwordResetHandler) requestOTP(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if err := h.resetService.RequestOTP(c.Request.Context(), c.Param("email")); err != nil {
		respondWithError(c, logger, err, "Failed to send OTP")
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: otpSentMessage})
}

// verifyOTP godoc
// @Summary Verify a password reset OTP
// @Tags password-reset
// @Produce json
// @Param otp path string true "One-time code"
// @Param email path string true "Account email"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} ErrorResponse "Invalid OTP"
// @Failure 417 {object} ErrorResponse "OTP expired"
// @Router /auth/forgetpassword/verifyOTP/{otp}/{email} [post]
func (h *passwordResetHandler) verifyOTP(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	err := h.resetService.VerifyOTP(c.Request.Context(), c.Param("email"), c.Param("otp"))
	switch {
	case err == nil:
		c.JSON(http.StatusOK, dto.MessageResponse{Message: "OTP verified!"})
	case errors.Is(err, apperrors.ErrNotFound):
		// An unknown email is reported like a wrong code.
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid OTP for email"})
	case errors.Is(err, apperrors.ErrExpiredOTP):
		c.JSON(http.StatusExpectationFailed, ErrorResponse{Error: "OTP has expired!"})
	default:
		respondWithError(c, logger, err, "Failed to verify OTP")
	}
}

// changePassword godoc
// @Summary Set a new password after OTP verification
// @Tags password-reset
// @Accept json
// @Produce json
// @Param email path string true "Account email"
// @Param request body dto.ChangePasswordRequest true "New password twice"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} ErrorResponse "Passwords differ"
// @Failure 401 {object} ErrorResponse "OTP not verified"
// @Router /auth/forgetpassword/changePassword/{email} [post]
func (h *passwordResetHandler) changePassword(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Password and repeatPassword are required"})
		return
	}

	err := h.resetService.ChangePassword(c.Request.Context(), c.Param("email"), req.Password, req.RepeatPassword)
	if err != nil {
		if errors.Is(err, apperrors.ErrPasswordMismatch) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Please enter the password again!"})
			return
		}
		respondWithError(c, logger, err, "Failed to change password")
		return
	}

	logger.Info("Password changed through OTP flow")
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Password has been changed!"})
}
