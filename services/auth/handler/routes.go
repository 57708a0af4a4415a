package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/ziswafid/ziswaf-manager/internal/pkg/middleware"
	"github.com/ziswafid/ziswaf-manager/internal/pkg/models"
	"github.com/ziswafid/ziswaf-manager/services/auth/handler/http"
)

// Handler coordinates the auth service's HTTP handlers
type Handler struct {
	authHandler    *http.AuthHandler
	sessionHandler *http.SessionHandler
	cfg            *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(
	authHandler *http.AuthHandler,
	sessionHandler *http.SessionHandler,
	cfg *models.Config,
) *Handler {
	return &Handler{
		authHandler:    authHandler,
		sessionHandler: sessionHandler,
		cfg:            cfg,
	}
}

// RegisterRoutes registers all handlers and their routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Public routes (no authentication required)
	authGroup := e.Group("/auth")
	authGroup.POST("/register", h.authHandler.Register)
	authGroup.POST("/otp/generate", h.authHandler.GenerateOTP)
	authGroup.POST("/otp/verify", h.authHandler.VerifyOTP)

	// Protected routes carrying the caller's identity from the token
	protected := e.Group("", middleware.JWTAuthMiddleware(h.cfg.JWT))

	protected.POST("/auth/logout", h.sessionHandler.Logout)
	protected.GET("/auth/me", h.sessionHandler.RefreshUser)

	sessionGroup := protected.Group("/session")
	sessionGroup.GET("", h.sessionHandler.GetSession)
	sessionGroup.POST("/screens", h.sessionHandler.PushScreen)
	sessionGroup.POST("/back", h.sessionHandler.PopScreen)

	userGroup := protected.Group("/users")
	userGroup.PATCH("/:id/role", h.sessionHandler.UpdateUserRole)
}
