package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ziswafid/ziswaf-manager/internal/pkg/models"
	"github.com/ziswafid/ziswaf-manager/internal/utils"
	"github.com/ziswafid/ziswaf-manager/services/ziswaf"
)

// DonorHandler handles HTTP requests for the donor book
type DonorHandler struct {
	ziswafUC ziswaf.ZiswafUC
}

// NewDonorHandler creates a new donor handler
func NewDonorHandler(ziswafUC ziswaf.ZiswafUC) *DonorHandler {
	return &DonorHandler{ziswafUC: ziswafUC}
}

func requestUserID(c echo.Context) (string, bool) {
	userID, ok := c.Get("user_id").(string)
	return userID, ok && userID != ""
}

// CreateDonor handles donor creation requests
func (h *DonorHandler) CreateDonor(c echo.Context) error {
	userID, ok := requestUserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.DonorRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	donor, err := h.ziswafUC.CreateDonor(c.Request().Context(), userID, &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Donor created", donor)
}

// GetDonor handles donor retrieval requests
func (h *DonorHandler) GetDonor(c echo.Context) error {
	donor, err := h.ziswafUC.GetDonor(c.Request().Context(), c.Param("id"))
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", donor)
}

// UpdateDonor handles donor update requests
func (h *DonorHandler) UpdateDonor(c echo.Context) error {
	userID, ok := requestUserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.DonorRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	donor, err := h.ziswafUC.UpdateDonor(c.Request().Context(), userID, c.Param("id"), &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Donor updated", donor)
}

// DeleteDonor handles donor deletion requests
func (h *DonorHandler) DeleteDonor(c echo.Context) error {
	userID, ok := requestUserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	if err := h.ziswafUC.DeleteDonor(c.Request().Context(), userID, c.Param("id")); err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Donor deleted", nil)
}

// ListDonors lists the caller's donor book
func (h *DonorHandler) ListDonors(c echo.Context) error {
	userID, ok := requestUserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	donors, err := h.ziswafUC.ListDonors(c.Request().Context(), userID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", donors)
}

// ListDonorDonations lists a donor's giving history
func (h *DonorHandler) ListDonorDonations(c echo.Context) error {
	donations, err := h.ziswafUC.ListDonationsByDonor(c.Request().Context(), c.Param("id"))
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", donations)
}
