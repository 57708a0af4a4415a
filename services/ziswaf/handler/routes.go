package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/ziswafid/ziswaf-manager/internal/pkg/middleware"
	"github.com/ziswafid/ziswaf-manager/internal/pkg/models"
	"github.com/ziswafid/ziswaf-manager/services/ziswaf/handler/http"
)

// Handler coordinates the donation domain's HTTP handlers
type Handler struct {
	donorHandler    *http.DonorHandler
	donationHandler *http.DonationHandler
	teamHandler     *http.TeamHandler
	templateHandler *http.TemplateHandler
	cfg             *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(
	donorHandler *http.DonorHandler,
	donationHandler *http.DonationHandler,
	teamHandler *http.TeamHandler,
	templateHandler *http.TemplateHandler,
	cfg *models.Config,
) *Handler {
	return &Handler{
		donorHandler:    donorHandler,
		donationHandler: donationHandler,
		teamHandler:     teamHandler,
		templateHandler: templateHandler,
		cfg:             cfg,
	}
}

// RegisterRoutes registers all handlers and their routes. Every route in
// the donation domain requires an authenticated caller.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	protected := e.Group("", middleware.JWTAuthMiddleware(h.cfg.JWT))

	donorGroup := protected.Group("/donors")
	donorGroup.POST("", h.donorHandler.CreateDonor)
	donorGroup.GET("", h.donorHandler.ListDonors)
	donorGroup.GET("/:id", h.donorHandler.GetDonor)
	donorGroup.PUT("/:id", h.donorHandler.UpdateDonor)
	donorGroup.DELETE("/:id", h.donorHandler.DeleteDonor)
	donorGroup.GET("/:id/donations", h.donorHandler.ListDonorDonations)

	donationGroup := protected.Group("/donations")
	donationGroup.POST("", h.donationHandler.RecordDonation)
	donationGroup.GET("", h.donationHandler.ListDonations)
	donationGroup.GET("/summary", h.donationHandler.Summary)

	teamGroup := protected.Group("/teams")
	teamGroup.POST("", h.teamHandler.CreateTeam)
	teamGroup.GET("", h.teamHandler.ListTeams)
	teamGroup.GET("/:id", h.teamHandler.GetTeam)
	teamGroup.PUT("/:id/supervisor", h.teamHandler.AssignSupervisor)
	teamGroup.POST("/:id/join", h.teamHandler.JoinTeam)
	teamGroup.GET("/:id/donations", h.teamHandler.TeamDonations)
	teamGroup.GET("/:id/summary", h.teamHandler.TeamSummary)
	teamGroup.GET("/:id/progress", h.teamHandler.TeamProgress)

	templateGroup := protected.Group("/templates")
	templateGroup.POST("", h.templateHandler.CreateTemplate)
	templateGroup.GET("", h.templateHandler.ListTemplates)
	templateGroup.GET("/:id", h.templateHandler.GetTemplate)
	templateGroup.PUT("/:id", h.templateHandler.UpdateTemplate)
	templateGroup.DELETE("/:id", h.templateHandler.DeleteTemplate)
	templateGroup.POST("/:id/render", h.templateHandler.RenderTemplate)
}
