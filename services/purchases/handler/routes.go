package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/greenbasket/greenbasket/internal/pkg/middleware"
	"github.com/greenbasket/greenbasket/internal/pkg/models"
	purchasehttp "github.com/greenbasket/greenbasket/services/purchases/handler/http"
	purchasenats "github.com/greenbasket/greenbasket/services/purchases/handler/nats"
)

// Handler coordinates all protocol handlers for the purchase service
type Handler struct {
	purchaseHandler  *purchasehttp.PurchaseHandler
	dashboardHandler *purchasehttp.DashboardHandler
	natsHandler      *purchasenats.NatsHandler
	cfg              *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(
	purchaseHandler *purchasehttp.PurchaseHandler,
	dashboardHandler *purchasehttp.DashboardHandler,
	natsHandler *purchasenats.NatsHandler,
	cfg *models.Config,
) *Handler {
	return &Handler{
		purchaseHandler:  purchaseHandler,
		dashboardHandler: dashboardHandler,
		natsHandler:      natsHandler,
		cfg:              cfg,
	}
}

// InitNATSConsumers subscribes the NATS handlers
func (h *Handler) InitNATSConsumers() error {
	return h.natsHandler.InitConsumers()
}

// Close shuts down the NATS consumers
func (h *Handler) Close() {
	h.natsHandler.Close()
}

// RegisterRoutes registers the purchase and dashboard routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// All ledger routes require an authenticated user
	protected := e.Group("", middleware.JWTMiddleware(h.cfg))

	purchaseGroup := protected.Group("/purchases")
	purchaseGroup.POST("", h.purchaseHandler.LogPurchase)
	purchaseGroup.GET("", h.purchaseHandler.ListPurchases)

	dashboardGroup := protected.Group("/dashboard")
	dashboardGroup.GET("/summary", h.dashboardHandler.Summary)
	dashboardGroup.GET("/monthly", h.dashboardHandler.Monthly)

	protected.GET("/tips", h.dashboardHandler.Tips)
}
