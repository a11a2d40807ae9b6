//go:build integration

package store

import (
	"context"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
	"go.uber.org/zap"

	"github.com/gauravchand/vibe-task-board/internal/config"
	"github.com/gauravchand/vibe-task-board/internal/task"
)

func startRedis(t *testing.T) *redis.Client {
	t.Helper()
	ctx := context.Background()

	ctr, err := tcredis.Run(ctx, "redis:7-alpine")
	testcontainers.CleanupContainer(t, ctr)
	require.NoError(t, err)

	uri, err := ctr.ConnectionString(ctx)
	require.NoError(t, err)
	opts, err := redis.ParseURL(uri)
	require.NoError(t, err)

	client := redis.NewClient(opts)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestRedisStoreContract(t *testing.T) {
	client := startRedis(t)
	testStoreContract(t, NewRedisStore(client, "vibeboard:tasks", zap.NewNop()))
}

func TestRedisStoreUnreadableValue(t *testing.T) {
	client := startRedis(t)
	ctx := context.Background()
	require.NoError(t, client.Set(ctx, "board", "{oops", 0).Err())

	tasks, err := NewRedisStore(client, "board", zap.NewNop()).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []task.Task{}, tasks)
}

func TestOpenRedisDriver(t *testing.T) {
	client := startRedis(t)

	cfg := config.StoreConfig{
		Driver: config.DriverRedis,
		Redis:  config.RedisConfig{Addr: client.Options().Addr, Key: "board"},
	}
	b, err := Open(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	defer b.Close()

	assert.IsType(t, &RedisStore{}, b)
}
