package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ziswafid/ziswaf-manager/internal/pkg/models"
	"github.com/ziswafid/ziswaf-manager/internal/utils"
	"github.com/ziswafid/ziswaf-manager/services/ziswaf"
)

// TemplateHandler handles HTTP requests for donor message templates
type TemplateHandler struct {
	ziswafUC ziswaf.ZiswafUC
}

// NewTemplateHandler creates a new template handler
func NewTemplateHandler(ziswafUC ziswaf.ZiswafUC) *TemplateHandler {
	return &TemplateHandler{ziswafUC: ziswafUC}
}

// CreateTemplate handles template creation requests
func (h *TemplateHandler) CreateTemplate(c echo.Context) error {
	userID, ok := requestUserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.TemplateRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	tmpl, err := h.ziswafUC.CreateTemplate(c.Request().Context(), userID, &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Template created", tmpl)
}

// GetTemplate handles template retrieval requests
func (h *TemplateHandler) GetTemplate(c echo.Context) error {
	tmpl, err := h.ziswafUC.GetTemplate(c.Request().Context(), c.Param("id"))
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", tmpl)
}

// UpdateTemplate handles template update requests
func (h *TemplateHandler) UpdateTemplate(c echo.Context) error {
	userID, ok := requestUserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.TemplateRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	tmpl, err := h.ziswafUC.UpdateTemplate(c.Request().Context(), userID, c.Param("id"), &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Template updated", tmpl)
}

// DeleteTemplate handles template deletion requests
func (h *TemplateHandler) DeleteTemplate(c echo.Context) error {
	userID, ok := requestUserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	if err := h.ziswafUC.DeleteTemplate(c.Request().Context(), userID, c.Param("id")); err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Template deleted", nil)
}

// ListTemplates lists every message template
func (h *TemplateHandler) ListTemplates(c echo.Context) error {
	templates, err := h.ziswafUC.ListTemplates(c.Request().Context())
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", templates)
}

// RenderTemplate fills a template's placeholders for a donor
func (h *TemplateHandler) RenderTemplate(c echo.Context) error {
	var req models.RenderRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.DonorID == "" {
		return utils.BadRequestResponse(c, "donor_id is required")
	}

	msg, err := h.ziswafUC.RenderTemplate(c.Request().Context(), c.Param("id"), &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", msg)
}
