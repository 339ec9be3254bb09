package purchases

import (
	"context"

	"github.com/google/uuid"

	"github.com/greenbasket/greenbasket/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/greenbasket/greenbasket/services/purchases PurchaseUC

// PurchaseUC represents the purchase ledger usecase interface
type PurchaseUC interface {
	// LogPurchase scores a candidate purchase, appends it to the ledger and
	// awards any badge the reward policy grants.
	LogPurchase(ctx context.Context, userID uuid.UUID, req *models.PurchaseRequest) (*models.PurchaseRecord, error)

	// ListPurchases returns the user's ledger ordered by creation time
	ListPurchases(ctx context.Context, userID uuid.UUID) ([]*models.PurchaseRecord, error)

	// DashboardSummary returns the headline totals, optionally month-filtered
	DashboardSummary(ctx context.Context, userID uuid.UUID, month string) (*models.DashboardSummary, error)

	// MonthlyBreakdown returns per-month aggregates in chronological order
	MonthlyBreakdown(ctx context.Context, userID uuid.UUID) ([]models.MonthlyAggregate, error)

	// Tips returns the next eco tip plus per-purchase suggestions
	Tips(ctx context.Context, userID uuid.UUID) (*models.TipsResponse, error)

	// HandlePurchaseRecorded reacts to a purchase recorded elsewhere by
	// dropping the user's cached dashboard aggregates.
	HandlePurchaseRecorded(ctx context.Context, event *models.PurchaseRecordedEvent) error
}
