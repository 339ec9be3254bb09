package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/greenbasket/greenbasket/internal/pkg/impact"
	"github.com/greenbasket/greenbasket/internal/pkg/logger"
	"github.com/greenbasket/greenbasket/internal/pkg/middleware"
	"github.com/greenbasket/greenbasket/internal/pkg/models"
	"github.com/greenbasket/greenbasket/internal/utils"
	"github.com/greenbasket/greenbasket/services/purchases"
)

// PurchaseHandler handles HTTP requests for the purchase ledger
type PurchaseHandler struct {
	purchaseUC purchases.PurchaseUC
}

// NewPurchaseHandler creates a new purchase handler
func NewPurchaseHandler(purchaseUC purchases.PurchaseUC) *PurchaseHandler {
	return &PurchaseHandler{purchaseUC: purchaseUC}
}

// LogPurchase handles purchase creation requests
func (h *PurchaseHandler) LogPurchase(c echo.Context) error {
	userID, err := authenticatedUserID(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "Invalid user session")
	}

	var req models.PurchaseRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for purchase",
			logger.ErrorField(err),
			logger.String("endpoint", "LogPurchase"),
		)
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	record, err := h.purchaseUC.LogPurchase(c.Request().Context(), userID, &req)
	if err != nil {
		return purchaseErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Purchase logged successfully", record)
}

// ListPurchases handles ledger listing requests
func (h *PurchaseHandler) ListPurchases(c echo.Context) error {
	userID, err := authenticatedUserID(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "Invalid user session")
	}

	records, err := h.purchaseUC.ListPurchases(c.Request().Context(), userID)
	if err != nil {
		logger.Error("Failed to list purchases",
			logger.String("user_id", userID.String()),
			logger.ErrorField(err),
		)
		return utils.InternalServerErrorResponse(c, "Failed to retrieve purchases")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Purchases retrieved successfully", records)
}

// purchaseErrorResponse maps the scoring error taxonomy onto HTTP statuses.
// Unknown enum values are configuration errors on the caller's side.
func purchaseErrorResponse(c echo.Context, err error) error {
	switch {
	case errors.Is(err, impact.ErrInvalidPurchaseInput):
		return utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, impact.ErrUnknownCategory),
		errors.Is(err, impact.ErrUnknownOrigin),
		errors.Is(err, impact.ErrUnknownTransportMode):
		return utils.UnprocessableEntityResponse(c, err.Error())
	default:
		logger.Error("Failed to log purchase", logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "Failed to log purchase")
	}
}

// authenticatedUserID extracts and parses the JWT user ID claim
func authenticatedUserID(c echo.Context) (uuid.UUID, error) {
	return uuid.Parse(middleware.UserIDFromContext(c))
}
