package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestRateLimitRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
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
	require.NoError(t, err)
	defer redisC.Terminate(ctx)

	host, err := redisC.Host(ctx)
	require.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	require.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()
	require.NoError(t, rdb.Ping(ctx).Err())

	repo := NewRateLimitRepository(rdb)

	t.Run("Counts within window", func(t *testing.T) {
		for i := int64(1); i <= 3; i++ {
			count, ttl, err := repo.Incr(ctx, "ratelimit:auth:10.0.0.1", time.Minute)
			require.NoError(t, err)
			assert.Equal(t, i, count)
			assert.Greater(t, ttl, time.Duration(0))
			assert.LessOrEqual(t, ttl, time.Minute)
		}
	})

	t.Run("Keys are independent", func(t *testing.T) {
		count, _, err := repo.Incr(ctx, "ratelimit:auth:10.0.0.2", time.Minute)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("Window resets", func(t *testing.T) {
		_, _, err := repo.Incr(ctx, "ratelimit:auth:10.0.0.3", time.Second)
		require.NoError(t, err)

		time.Sleep(2 * time.Second)

		count, _, err := repo.Incr(ctx, "ratelimit:auth:10.0.0.3", time.Second)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})
}
