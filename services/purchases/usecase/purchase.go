package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/greenbasket/greenbasket/internal/pkg/impact"
	"github.com/greenbasket/greenbasket/internal/pkg/logger"
	"github.com/greenbasket/greenbasket/internal/pkg/models"
	"github.com/greenbasket/greenbasket/services/purchases"
)

// Display currencies the purchase form offers. Presentational only, no
// conversion is performed.
var supportedCurrencies = map[string]bool{
	"INR": true,
	"USD": true,
	"EUR": true,
	"GBP": true,
	"JPY": true,
}

// purchaseUC implements the purchases.PurchaseUC interface
type purchaseUC struct {
	cfg        *models.Config
	calculator *impact.Calculator
	repo       purchases.PurchaseRepo
	gw         purchases.PurchaseGW
}

// NewPurchaseUC creates a new purchase ledger use case
func NewPurchaseUC(
	cfg *models.Config,
	calculator *impact.Calculator,
	repo purchases.PurchaseRepo,
	gw purchases.PurchaseGW,
) purchases.PurchaseUC {
	return &purchaseUC{
		cfg:        cfg,
		calculator: calculator,
		repo:       repo,
		gw:         gw,
	}
}

// LogPurchase scores a candidate purchase, appends it to the ledger and
// awards any badge the reward policy grants.
func (uc *purchaseUC) LogPurchase(ctx context.Context, userID uuid.UUID, req *models.PurchaseRequest) (*models.PurchaseRecord, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	assessment, err := uc.calculator.Calculate(impact.Input{
		Category:      req.Category,
		Brand:         req.Brand,
		Price:         req.Price,
		Origin:        req.Origin,
		TransportMode: req.TransportMode,
	})
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	record := &models.PurchaseRecord{
		ID:            uuid.New(),
		UserID:        userID,
		Product:       req.Product,
		Brand:         req.Brand,
		Category:      req.Category,
		Price:         req.Price,
		Currency:      req.Currency,
		Origin:        req.Origin,
		TransportMode: req.TransportMode,
		Eco:           assessment.Classification == impact.ClassificationEco,
		ImpactScore:   assessment.ImpactScore,
		RewardTier:    assessment.RewardTier,
		ImpactBand:    assessment.Band,
		Suggestion:    assessment.Suggestion,
		CreatedAt:     now,
	}

	awarded, err := uc.repo.AppendPurchase(ctx, record, assessment.Badge)
	if err != nil {
		return nil, fmt.Errorf("failed to append purchase: %w", err)
	}

	// The ledger write is committed; event publishing is best-effort
	// and must not fail the request.
	event := &models.PurchaseRecordedEvent{
		PurchaseID:  record.ID.String(),
		UserID:      userID.String(),
		Category:    record.Category,
		Price:       record.Price,
		ImpactScore: record.ImpactScore,
		RewardTier:  record.RewardTier,
		Eco:         record.Eco,
		Timestamp:   now,
	}
	if err := uc.gw.PublishPurchaseRecorded(ctx, event); err != nil {
		logger.Warn("Failed to publish purchase recorded event",
			logger.String("purchase_id", record.ID.String()),
			logger.Err(err))
	}

	if awarded {
		badgeEvent := &models.BadgeAwardedEvent{
			UserID:    userID.String(),
			Badge:     assessment.Badge,
			Timestamp: now,
		}
		if err := uc.gw.PublishBadgeAwarded(ctx, badgeEvent); err != nil {
			logger.Warn("Failed to publish badge awarded event",
				logger.String("user_id", userID.String()),
				logger.String("badge", assessment.Badge),
				logger.Err(err))
		}
	}

	return record, nil
}

// ListPurchases returns the user's ledger ordered by creation time
func (uc *purchaseUC) ListPurchases(ctx context.Context, userID uuid.UUID) ([]*models.PurchaseRecord, error) {
	return uc.repo.ListPurchases(ctx, userID)
}

// DashboardSummary returns the headline totals, optionally month-filtered
func (uc *purchaseUC) DashboardSummary(ctx context.Context, userID uuid.UUID, month string) (*models.DashboardSummary, error) {
	if cached, err := uc.repo.GetCachedSummary(ctx, userID, month); err == nil && cached != nil {
		return cached, nil
	}

	spend, err := uc.repo.TotalSpend(ctx, userID, month)
	if err != nil {
		return nil, err
	}
	totalImpact, err := uc.repo.TotalImpact(ctx, userID, month)
	if err != nil {
		return nil, err
	}
	ecoCount, err := uc.repo.EcoPurchaseCount(ctx, userID, month)
	if err != nil {
		return nil, err
	}

	summary := &models.DashboardSummary{
		TotalSpend:  spend,
		TotalImpact: totalImpact,
		EcoCount:    ecoCount,
		Month:       month,
	}

	if err := uc.repo.CacheSummary(ctx, userID, month, summary); err != nil {
		logger.Warn("Failed to cache dashboard summary",
			logger.String("user_id", userID.String()),
			logger.Err(err))
	}

	return summary, nil
}

// MonthlyBreakdown returns per-month aggregates in chronological order
func (uc *purchaseUC) MonthlyBreakdown(ctx context.Context, userID uuid.UUID) ([]models.MonthlyAggregate, error) {
	return uc.repo.GroupByMonth(ctx, userID)
}

// Tips returns the next eco tip plus per-purchase suggestions
func (uc *purchaseUC) Tips(ctx context.Context, userID uuid.UUID) (*models.TipsResponse, error) {
	records, err := uc.repo.ListPurchases(ctx, userID)
	if err != nil {
		return nil, err
	}

	tips := make([]models.PurchaseTip, 0, len(records))
	for _, record := range records {
		tips = append(tips, models.PurchaseTip{
			Product:    record.Product,
			Suggestion: record.Suggestion,
		})
	}

	return &models.TipsResponse{
		EcoTip:    impact.NextTip(len(records)),
		Purchases: tips,
	}, nil
}

// HandlePurchaseRecorded drops the user's cached dashboard aggregates after
// a purchase recorded by another instance.
func (uc *purchaseUC) HandlePurchaseRecorded(ctx context.Context, event *models.PurchaseRecordedEvent) error {
	userID, err := uuid.Parse(event.UserID)
	if err != nil {
		return fmt.Errorf("invalid user ID in purchase event: %w", err)
	}

	return uc.repo.InvalidateSummaries(ctx, userID)
}

// validateRequest rejects malformed input before any table lookup. Price
// validation itself lives in the calculator.
func validateRequest(req *models.PurchaseRequest) error {
	if strings.TrimSpace(req.Product) == "" {
		return fmt.Errorf("%w: product name is required", impact.ErrInvalidPurchaseInput)
	}
	if strings.TrimSpace(req.Brand) == "" {
		return fmt.Errorf("%w: brand name is required", impact.ErrInvalidPurchaseInput)
	}
	if req.Currency != "" && !supportedCurrencies[req.Currency] {
		return fmt.Errorf("%w: unsupported currency %q", impact.ErrInvalidPurchaseInput, req.Currency)
	}
	return nil
}
