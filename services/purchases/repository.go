package purchases

import (
	"context"

	"github.com/google/uuid"

	"github.com/greenbasket/greenbasket/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/greenbasket/greenbasket/services/purchases PurchaseRepo

// PurchaseRepo defines the interface for purchase ledger storage operations
type PurchaseRepo interface {
	// AppendPurchase appends the record to the user's ledger and, when badge
	// is non-empty, awards it in the same transaction. It reports whether the
	// badge was newly earned (false when already held or badge is empty).
	AppendPurchase(ctx context.Context, record *models.PurchaseRecord, badge string) (bool, error)

	// ListPurchases returns the user's records ordered by creation time
	ListPurchases(ctx context.Context, userID uuid.UUID) ([]*models.PurchaseRecord, error)

	// PurchaseCount returns the number of records in the user's ledger
	PurchaseCount(ctx context.Context, userID uuid.UUID) (int, error)

	// TotalImpact sums impact scores, optionally filtered by month (YYYY-MM).
	// A user with no purchases yields 0, not an error.
	TotalImpact(ctx context.Context, userID uuid.UUID, month string) (float64, error)

	// TotalSpend sums prices, optionally filtered by month (YYYY-MM)
	TotalSpend(ctx context.Context, userID uuid.UUID, month string) (float64, error)

	// EcoPurchaseCount counts eco-classified purchases, optionally by month
	EcoPurchaseCount(ctx context.Context, userID uuid.UUID, month string) (int, error)

	// GroupByMonth returns per-month aggregates in chronological order
	GroupByMonth(ctx context.Context, userID uuid.UUID) ([]models.MonthlyAggregate, error)

	// GetBadges returns the user's earned badge set
	GetBadges(ctx context.Context, userID uuid.UUID) ([]string, error)

	// GetCachedSummary returns a cached dashboard summary, or nil on miss
	GetCachedSummary(ctx context.Context, userID uuid.UUID, month string) (*models.DashboardSummary, error)

	// CacheSummary stores a dashboard summary for later reads
	CacheSummary(ctx context.Context, userID uuid.UUID, month string, summary *models.DashboardSummary) error

	// InvalidateSummaries drops all cached summaries for a user
	InvalidateSummaries(ctx context.Context, userID uuid.UUID) error
}
