package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ziswafid/ziswaf-manager/internal/pkg/logger"
	"github.com/ziswafid/ziswaf-manager/internal/pkg/models"
	"github.com/ziswafid/ziswaf-manager/internal/utils"
	"github.com/ziswafid/ziswaf-manager/services/auth"
)

// AuthHandler handles HTTP requests for registration and the OTP flow
type AuthHandler struct {
	authUC auth.AuthUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUC auth.AuthUC) *AuthHandler {
	return &AuthHandler{authUC: authUC}
}

// Register handles fundraiser account creation requests
func (h *AuthHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for registration",
			logger.Err(err),
			logger.String("endpoint", "Register"),
		)
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	user, err := h.authUC.Register(c.Request().Context(), &req)
	if err != nil {
		logger.Warn("Registration failed",
			logger.Err(err),
			logger.String("msisdn", utils.MaskPhoneNumber(req.MSISDN)),
		)
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Account created, verify your phone number", user)
}

// GenerateOTP handles OTP send requests
func (h *AuthHandler) GenerateOTP(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for OTP generation",
			logger.Err(err),
			logger.String("endpoint", "GenerateOTP"),
		)
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.authUC.GenerateOTP(c.Request().Context(), req.MSISDN, req.Purpose); err != nil {
		logger.Warn("OTP generation failed",
			logger.Err(err),
			logger.String("msisdn", utils.MaskPhoneNumber(req.MSISDN)),
		)
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Verification code sent", nil)
}

// VerifyOTP handles OTP verification requests
func (h *AuthHandler) VerifyOTP(c echo.Context) error {
	var req models.VerifyRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for OTP verification",
			logger.Err(err),
			logger.String("endpoint", "VerifyOTP"),
		)
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.authUC.VerifyOTP(c.Request().Context(), req.MSISDN, req.OTP)
	if err != nil {
		logger.Warn("OTP verification failed",
			logger.Err(err),
			logger.String("msisdn", utils.MaskPhoneNumber(req.MSISDN)),
		)
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Login successful", resp)
}
