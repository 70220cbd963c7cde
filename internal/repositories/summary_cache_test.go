package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/ivmatveev/car-rental-api/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestSummaryCacheRepository(t *testing.T) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)
	defer redisC.Terminate(ctx)

	host, err := redisC.Host(ctx)
	assert.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	assert.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()

	err = rdb.Ping(ctx).Err()
	assert.NoError(t, err)

	repo := NewSummaryCacheRepository(rdb, 2*time.Second)

	summary := &models.BookingSummary{
		UserID:           42,
		Username:         "alice",
		TotalBookings:    3,
		TotalAmountSpent: 4500,
	}

	t.Run("MissBeforeSet", func(t *testing.T) {
		got, err := repo.Get(ctx, 42)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("SetAndGet", func(t *testing.T) {
		err := repo.Set(ctx, summary)
		assert.NoError(t, err)

		got, err := repo.Get(ctx, 42)
		assert.NoError(t, err)
		assert.Equal(t, summary, got)
	})

	t.Run("Invalidate", func(t *testing.T) {
		err := repo.Set(ctx, summary)
		assert.NoError(t, err)

		err = repo.Invalidate(ctx, 42)
		assert.NoError(t, err)

		got, err := repo.Get(ctx, 42)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("Expires", func(t *testing.T) {
		err := repo.Set(ctx, summary)
		assert.NoError(t, err)

		time.Sleep(3 * time.Second)

		got, err := repo.Get(ctx, 42)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})
}
