package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ziswafid/ziswaf-manager/internal/pkg/logger"
	"github.com/ziswafid/ziswaf-manager/internal/pkg/models"
	"github.com/ziswafid/ziswaf-manager/internal/utils"
	"github.com/ziswafid/ziswaf-manager/services/auth"
)

// SessionHandler handles HTTP requests for the authenticated session:
// profile refresh, logout, and navigation history.
type SessionHandler struct {
	authUC auth.AuthUC
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(authUC auth.AuthUC) *SessionHandler {
	return &SessionHandler{authUC: authUC}
}

func requestUserID(c echo.Context) (string, bool) {
	userID, ok := c.Get("user_id").(string)
	return userID, ok && userID != ""
}

// GetSession returns the caller's session state
func (h *SessionHandler) GetSession(c echo.Context) error {
	userID, ok := requestUserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	sess, err := h.authUC.GetSession(c.Request().Context(), userID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", sess)
}

// RefreshUser reloads the caller's profile from the database
func (h *SessionHandler) RefreshUser(c echo.Context) error {
	userID, ok := requestUserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	user, err := h.authUC.RefreshUser(c.Request().Context(), userID)
	if err != nil {
		logger.Warn("Profile refresh failed",
			logger.Err(err),
			logger.String("user_id", userID),
		)
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", user)
}

// Logout drops the caller's session
func (h *SessionHandler) Logout(c echo.Context) error {
	userID, ok := requestUserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	if err := h.authUC.Logout(c.Request().Context(), userID); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Logged out", nil)
}

// PushScreen records a screen visit in the navigation history
func (h *SessionHandler) PushScreen(c echo.Context) error {
	userID, ok := requestUserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.PushScreenRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Screen == "" {
		return utils.BadRequestResponse(c, "screen is required")
	}

	screens, err := h.authUC.PushScreen(c.Request().Context(), userID, req.Screen)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", navigationResponse(screens))
}

func navigationResponse(screens []string) models.NavigationResponse {
	resp := models.NavigationResponse{Screens: screens}
	if len(screens) > 0 {
		resp.Current = screens[len(screens)-1]
	}
	return resp
}

// PopScreen steps the navigation history back one screen
func (h *SessionHandler) PopScreen(c echo.Context) error {
	userID, ok := requestUserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	screens, err := h.authUC.PopScreen(c.Request().Context(), userID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", navigationResponse(screens))
}

// UpdateUserRole changes another user's role, admin only
func (h *SessionHandler) UpdateUserRole(c echo.Context) error {
	actorID, ok := requestUserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	targetID := c.Param("id")

	var req models.UpdateRoleRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	user, err := h.authUC.UpdateUserRole(c.Request().Context(), actorID, targetID, req.Role)
	if err != nil {
		logger.Warn("Role update failed",
			logger.Err(err),
			logger.String("actor_id", actorID),
			logger.String("target_id", targetID),
		)
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Role updated", user)
}
