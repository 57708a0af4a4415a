package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ziswafid/ziswaf-manager/internal/pkg/logger"
	"github.com/ziswafid/ziswaf-manager/internal/pkg/models"
	"github.com/ziswafid/ziswaf-manager/internal/utils"
	"github.com/ziswafid/ziswaf-manager/services/ziswaf"
)

// DonationHandler handles HTTP requests for donation recording and stats
type DonationHandler struct {
	ziswafUC ziswaf.ZiswafUC
}

// NewDonationHandler creates a new donation handler
func NewDonationHandler(ziswafUC ziswaf.ZiswafUC) *DonationHandler {
	return &DonationHandler{ziswafUC: ziswafUC}
}

// RecordDonation handles donation recording requests
func (h *DonationHandler) RecordDonation(c echo.Context) error {
	userID, ok := requestUserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.DonationRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	donation, err := h.ziswafUC.RecordDonation(c.Request().Context(), userID, &req)
	if err != nil {
		logger.Warn("Donation recording failed",
			logger.Err(err),
			logger.String("user_id", userID),
		)
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Donation recorded", donation)
}

// ListDonations lists the caller's collected donations
func (h *DonationHandler) ListDonations(c echo.Context) error {
	userID, ok := requestUserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	donations, err := h.ziswafUC.ListDonationsByUser(c.Request().Context(), userID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", donations)
}

// Summary returns the caller's collection summary
func (h *DonationHandler) Summary(c echo.Context) error {
	userID, ok := requestUserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	summary, err := h.ziswafUC.UserSummary(c.Request().Context(), userID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", summary)
}
