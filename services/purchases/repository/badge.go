package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"github.com/greenbasket/greenbasket/internal/pkg/constants"
	"github.com/greenbasket/greenbasket/internal/pkg/logger"
	"github.com/greenbasket/greenbasket/internal/pkg/models"
)

// GetBadges returns the user's earned badge set, preferring the Redis cache
// and falling back to Postgres, which is the source of truth.
func (r *PurchaseRepo) GetBadges(ctx context.Context, userID uuid.UUID) ([]string, error) {
	key := fmt.Sprintf(constants.KeyUserBadges, userID)

	if r.redisClient != nil {
		badges, err := r.redisClient.SMembers(ctx, key)
		if err == nil && len(badges) > 0 {
			return badges, nil
		}
	}

	badges := []string{}
	err := r.db.SelectContext(ctx, &badges,
		`SELECT badge FROM user_badges WHERE user_id = $1 ORDER BY awarded_at ASC`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get badges: %w", err)
	}

	if r.redisClient != nil && len(badges) > 0 {
		members := make([]interface{}, len(badges))
		for i, badge := range badges {
			members[i] = badge
		}
		if err := r.redisClient.SAdd(ctx, key, members...); err != nil {
			logger.Warn("Failed to cache badge set",
				logger.String("user_id", userID.String()),
				logger.Err(err))
		}
	}

	return badges, nil
}

// cacheBadge mirrors a newly awarded badge into the Redis set cache.
// SADD keeps awarding idempotent on the cache side as well.
func (r *PurchaseRepo) cacheBadge(ctx context.Context, userID uuid.UUID, badge string, awarded bool) {
	if r.redisClient == nil || badge == "" || !awarded {
		return
	}

	key := fmt.Sprintf(constants.KeyUserBadges, userID)
	if err := r.redisClient.SAdd(ctx, key, badge); err != nil {
		logger.Warn("Failed to cache awarded badge",
			logger.String("user_id", userID.String()),
			logger.String("badge", badge),
			logger.Err(err))
	}
}

// GetCachedSummary returns a cached dashboard summary, or nil on miss
func (r *PurchaseRepo) GetCachedSummary(ctx context.Context, userID uuid.UUID, month string) (*models.DashboardSummary, error) {
	if r.redisClient == nil {
		return nil, nil
	}

	key := summaryKey(userID, month)
	data, err := r.redisClient.Get(ctx, key)
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read cached summary: %w", err)
	}

	var summary models.DashboardSummary
	if err := json.Unmarshal([]byte(data), &summary); err != nil {
		// A corrupt cache entry is dropped, not surfaced
		_ = r.redisClient.Delete(ctx, key)
		return nil, nil
	}

	return &summary, nil
}

// CacheSummary stores a dashboard summary with a bounded TTL
func (r *PurchaseRepo) CacheSummary(ctx context.Context, userID uuid.UUID, month string, summary *models.DashboardSummary) error {
	if r.redisClient == nil {
		return nil
	}

	data, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}

	return r.redisClient.Set(ctx, summaryKey(userID, month), data, constants.DashboardCacheTTL)
}

// InvalidateSummaries drops all cached summaries for a user
func (r *PurchaseRepo) InvalidateSummaries(ctx context.Context, userID uuid.UUID) error {
	if r.redisClient == nil {
		return nil
	}

	pattern := fmt.Sprintf(constants.KeyDashboardPattern, userID)
	keys, err := r.redisClient.GetClient().Keys(ctx, pattern).Result()
	if err != nil {
		return fmt.Errorf("failed to scan cached summaries: %w", err)
	}
	for _, key := range keys {
		if err := r.redisClient.Delete(ctx, key); err != nil {
			return fmt.Errorf("failed to drop cached summary: %w", err)
		}
	}

	return nil
}

func summaryKey(userID uuid.UUID, month string) string {
	if month == "" {
		month = "all"
	}
	return fmt.Sprintf(constants.KeyDashboardSummary, userID, month)
}
