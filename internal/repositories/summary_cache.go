package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ivmatveev/car-rental-api/internal/logger"
	"github.com/ivmatveev/car-rental-api/internal/models"
	"github.com/redis/go-redis/v9"
)

// SummaryCacheRepository caches per-user booking summaries in Redis.
type SummaryCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration for cached summaries
}

// NewSummaryCacheRepository creates a new repository instance with the given TTL.
func NewSummaryCacheRepository(client *redis.Client, expiration time.Duration) *SummaryCacheRepository {
	return &SummaryCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func summaryKey(userID int64) string {
	return fmt.Sprintf("booking_summary:%d", userID)
}

// Get fetches a cached summary for the user, or nil on a cache miss.
func (r *SummaryCacheRepository) Get(ctx context.Context, userID int64) (*models.BookingSummary, error) {
	key := summaryKey(userID)

	val, err := r.client.Get(ctx, key).Result()

	logger.Log.Infow("summary cache get",
		"key", key,
		"error", err,
	)

	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var summary models.BookingSummary
	if err := json.Unmarshal([]byte(val), &summary); err != nil {
		return nil, err
	}

	return &summary, nil
}

// Set stores the summary under the owning user's key.
func (r *SummaryCacheRepository) Set(ctx context.Context, summary *models.BookingSummary) error {
	key := summaryKey(summary.UserID)

	data, err := json.Marshal(summary)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow("summary cache set",
		"key", key,
		"error", err,
	)

	return err
}

// Invalidate drops the cached summary for the user. Called after every
// booking write so the next summary read recomputes from the database.
func (r *SummaryCacheRepository) Invalidate(ctx context.Context, userID int64) error {
	key := summaryKey(userID)

	err := r.client.Del(ctx, key).Err()

	logger.Log.Infow("summary cache invalidate",
		"key", key,
		"error", err,
	)

	return err
}
