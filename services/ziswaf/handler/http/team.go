package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ziswafid/ziswaf-manager/internal/pkg/models"
	"github.com/ziswafid/ziswaf-manager/internal/utils"
	"github.com/ziswafid/ziswaf-manager/services/ziswaf"
)

// TeamHandler handles HTTP requests for fundraising teams
type TeamHandler struct {
	ziswafUC ziswaf.ZiswafUC
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(ziswafUC ziswaf.ZiswafUC) *TeamHandler {
	return &TeamHandler{ziswafUC: ziswafUC}
}

// CreateTeam handles team creation requests
func (h *TeamHandler) CreateTeam(c echo.Context) error {
	actorID, ok := requestUserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.TeamRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	team, err := h.ziswafUC.CreateTeam(c.Request().Context(), actorID, &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Team created", team)
}

// GetTeam handles team retrieval requests
func (h *TeamHandler) GetTeam(c echo.Context) error {
	team, err := h.ziswafUC.GetTeam(c.Request().Context(), c.Param("id"))
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", team)
}

// ListTeams lists every fundraising team
func (h *TeamHandler) ListTeams(c echo.Context) error {
	teams, err := h.ziswafUC.ListTeams(c.Request().Context())
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", teams)
}

// AssignSupervisor handles supervisor assignment requests
func (h *TeamHandler) AssignSupervisor(c echo.Context) error {
	actorID, ok := requestUserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.AssignSupervisorRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	team, err := h.ziswafUC.AssignSupervisor(c.Request().Context(), actorID, c.Param("id"), req.UserID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Supervisor assigned", team)
}

// JoinTeam places the caller in the team
func (h *TeamHandler) JoinTeam(c echo.Context) error {
	userID, ok := requestUserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	if err := h.ziswafUC.JoinTeam(c.Request().Context(), userID, c.Param("id")); err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Joined team", nil)
}

// TeamSummary returns a team's collection summary
func (h *TeamHandler) TeamSummary(c echo.Context) error {
	summary, err := h.ziswafUC.TeamSummary(c.Request().Context(), c.Param("id"))
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", summary)
}

// TeamDonations lists the donations attributed to a team
func (h *TeamHandler) TeamDonations(c echo.Context) error {
	donations, err := h.ziswafUC.ListDonationsByTeam(c.Request().Context(), c.Param("id"))
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", donations)
}

// TeamProgress returns a team's collected total against its target
func (h *TeamHandler) TeamProgress(c echo.Context) error {
	progress, err := h.ziswafUC.TeamProgress(c.Request().Context(), c.Param("id"))
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", progress)
}
