package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/greenbasket/greenbasket/internal/pkg/logger"
	"github.com/greenbasket/greenbasket/internal/utils"
	"github.com/greenbasket/greenbasket/services/purchases"
)

// DashboardHandler handles HTTP requests for dashboard aggregates and tips
type DashboardHandler struct {
	purchaseUC purchases.PurchaseUC
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(purchaseUC purchases.PurchaseUC) *DashboardHandler {
	return &DashboardHandler{purchaseUC: purchaseUC}
}

// Summary handles dashboard summary requests. An optional ?month=YYYY-MM
// query filters the totals to one calendar month.
func (h *DashboardHandler) Summary(c echo.Context) error {
	userID, err := authenticatedUserID(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "Invalid user session")
	}

	month := c.QueryParam("month")
	if month != "" {
		if _, err := utils.ParseMonthKey(month); err != nil {
			return utils.BadRequestResponse(c, "Invalid month filter, expected YYYY-MM")
		}
	}

	summary, err := h.purchaseUC.DashboardSummary(c.Request().Context(), userID, month)
	if err != nil {
		logger.Error("Failed to build dashboard summary",
			logger.String("user_id", userID.String()),
			logger.ErrorField(err),
		)
		return utils.InternalServerErrorResponse(c, "Failed to build dashboard summary")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Dashboard summary retrieved successfully", summary)
}

// Monthly handles monthly breakdown requests
func (h *DashboardHandler) Monthly(c echo.Context) error {
	userID, err := authenticatedUserID(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "Invalid user session")
	}

	breakdown, err := h.purchaseUC.MonthlyBreakdown(c.Request().Context(), userID)
	if err != nil {
		logger.Error("Failed to build monthly breakdown",
			logger.String("user_id", userID.String()),
			logger.ErrorField(err),
		)
		return utils.InternalServerErrorResponse(c, "Failed to build monthly breakdown")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Monthly breakdown retrieved successfully", breakdown)
}

// Tips handles eco tips requests
func (h *DashboardHandler) Tips(c echo.Context) error {
	userID, err := authenticatedUserID(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "Invalid user session")
	}

	tips, err := h.purchaseUC.Tips(c.Request().Context(), userID)
	if err != nil {
		logger.Error("Failed to build tips",
			logger.String("user_id", userID.String()),
			logger.ErrorField(err),
		)
		return utils.InternalServerErrorResponse(c, "Failed to build tips")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Tips retrieved successfully", tips)
}
