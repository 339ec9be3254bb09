package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/greenbasket/greenbasket/internal/pkg/middleware"
	"github.com/greenbasket/greenbasket/internal/pkg/models"
	userhttp "github.com/greenbasket/greenbasket/services/users/handler/http"
)

// Handler coordinates the HTTP handlers for the user service
type Handler struct {
	authHandler *userhttp.AuthHandler
	cfg         *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(authHandler *userhttp.AuthHandler, cfg *models.Config) *Handler {
	return &Handler{
		authHandler: authHandler,
		cfg:         cfg,
	}
}

// RegisterRoutes registers the auth and profile routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Public routes (no authentication required)
	authGroup := e.Group("/auth")
	authGroup.POST("/signup", h.authHandler.Signup)
	authGroup.POST("/login", h.authHandler.Login)

	// Protected routes
	protected := e.Group("", middleware.JWTMiddleware(h.cfg))
	protected.GET("/users/me", h.authHandler.Me)
}
