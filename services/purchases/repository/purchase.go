package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/greenbasket/greenbasket/internal/pkg/database"
	"github.com/greenbasket/greenbasket/internal/pkg/models"
)

// PurchaseRepo implements purchases.PurchaseRepo over Postgres with a Redis
// cache for dashboard reads.
type PurchaseRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewPurchaseRepository creates a new purchase repository
func NewPurchaseRepository(
	cfg *models.Config,
	db *sqlx.DB,
	redisClient *database.RedisClient,
) *PurchaseRepo {
	return &PurchaseRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}

// AppendPurchase appends a record to the user's ledger. The purchase row and
// any badge row commit in one transaction, so a crash mid-write never leaves
// a scored purchase without its badge. Records are never updated or deleted.
func (r *PurchaseRepo) AppendPurchase(ctx context.Context, record *models.PurchaseRecord, badge string) (bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO purchases (
			id, user_id, product, brand, category, price, currency,
			origin, transport_mode, eco, impact_score, reward_tier,
			impact_band, suggestion, created_at
		) VALUES (
			:id, :user_id, :product, :brand, :category, :price, :currency,
			:origin, :transport_mode, :eco, :impact_score, :reward_tier,
			:impact_band, :suggestion, :created_at
		)
	`
	if _, err = tx.NamedExecContext(ctx, query, record); err != nil {
		return false, fmt.Errorf("failed to insert purchase: %w", err)
	}

	awarded := false
	if badge != "" {
		// Badge awards are idempotent: the set semantics live in the
		// primary key, awarding twice never duplicates.
		result, err := tx.ExecContext(ctx, `
			INSERT INTO user_badges (user_id, badge, awarded_at)
			VALUES ($1, $2, $3)
			ON CONFLICT (user_id, badge) DO NOTHING
		`, record.UserID, badge, record.CreatedAt)
		if err != nil {
			return false, fmt.Errorf("failed to award badge: %w", err)
		}
		if rows, err := result.RowsAffected(); err == nil && rows > 0 {
			awarded = true
		}
	}

	if err = tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit transaction: %w", err)
	}

	r.cacheBadge(ctx, record.UserID, badge, awarded)
	_ = r.InvalidateSummaries(ctx, record.UserID)

	return awarded, nil
}

// ListPurchases returns the user's records ordered by creation time
func (r *PurchaseRepo) ListPurchases(ctx context.Context, userID uuid.UUID) ([]*models.PurchaseRecord, error) {
	query := `
		SELECT id, user_id, product, brand, category, price, currency,
			origin, transport_mode, eco, impact_score, reward_tier,
			impact_band, suggestion, created_at
		FROM purchases
		WHERE user_id = $1
		ORDER BY created_at ASC
	`

	records := []*models.PurchaseRecord{}
	if err := r.db.SelectContext(ctx, &records, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list purchases: %w", err)
	}

	return records, nil
}

// PurchaseCount returns the number of records in the user's ledger
func (r *PurchaseRepo) PurchaseCount(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM purchases WHERE user_id = $1`, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to count purchases: %w", err)
	}
	return count, nil
}

// TotalImpact sums impact scores over all or month-filtered records.
// COALESCE keeps an empty ledger at 0 rather than an error.
func (r *PurchaseRepo) TotalImpact(ctx context.Context, userID uuid.UUID, month string) (float64, error) {
	return r.sumColumn(ctx, "impact_score", userID, month)
}

// TotalSpend sums prices over all or month-filtered records
func (r *PurchaseRepo) TotalSpend(ctx context.Context, userID uuid.UUID, month string) (float64, error) {
	return r.sumColumn(ctx, "price", userID, month)
}

func (r *PurchaseRepo) sumColumn(ctx context.Context, column string, userID uuid.UUID, month string) (float64, error) {
	var total float64
	var err error

	if month == "" {
		query := fmt.Sprintf(`SELECT COALESCE(SUM(%s), 0) FROM purchases WHERE user_id = $1`, column)
		err = r.db.GetContext(ctx, &total, query, userID)
	} else {
		query := fmt.Sprintf(`
			SELECT COALESCE(SUM(%s), 0) FROM purchases
			WHERE user_id = $1 AND to_char(created_at, 'YYYY-MM') = $2
		`, column)
		err = r.db.GetContext(ctx, &total, query, userID, month)
	}

	if err != nil {
		return 0, fmt.Errorf("failed to sum %s: %w", column, err)
	}
	return total, nil
}

// EcoPurchaseCount counts eco-classified purchases
func (r *PurchaseRepo) EcoPurchaseCount(ctx context.Context, userID uuid.UUID, month string) (int, error) {
	var count int
	var err error

	if month == "" {
		err = r.db.GetContext(ctx, &count,
			`SELECT COUNT(*) FROM purchases WHERE user_id = $1 AND eco = true`, userID)
	} else {
		err = r.db.GetContext(ctx, &count, `
			SELECT COUNT(*) FROM purchases
			WHERE user_id = $1 AND eco = true AND to_char(created_at, 'YYYY-MM') = $2
		`, userID, month)
	}

	if err != nil {
		return 0, fmt.Errorf("failed to count eco purchases: %w", err)
	}
	return count, nil
}

// GroupByMonth returns per-month aggregates in chronological order
func (r *PurchaseRepo) GroupByMonth(ctx context.Context, userID uuid.UUID) ([]models.MonthlyAggregate, error) {
	query := `
		SELECT to_char(created_at, 'YYYY-MM') AS month,
			COALESCE(SUM(price), 0) AS total_spend,
			COALESCE(SUM(impact_score), 0) AS total_impact,
			COUNT(*) AS purchase_count,
			COUNT(*) FILTER (WHERE eco = true) AS eco_count
		FROM purchases
		WHERE user_id = $1
		GROUP BY to_char(created_at, 'YYYY-MM')
		ORDER BY month ASC
	`

	aggregates := []models.MonthlyAggregate{}
	if err := r.db.SelectContext(ctx, &aggregates, query, userID); err != nil {
		return nil, fmt.Errorf("failed to group purchases by month: %w", err)
	}

	return aggregates, nil
}
