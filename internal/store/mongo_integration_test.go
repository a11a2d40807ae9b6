//go:build integration

package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.uber.org/zap"

	"github.com/gauravchand/vibe-task-board/internal/config"
)

func startMongo(t *testing.T) string {
	t.Helper()
	ctx := context.Background()

	ctr, err := mongodb.Run(ctx, "mongo:7")
	testcontainers.CleanupContainer(t, ctr)
	require.NoError(t, err)

	uri, err := ctr.ConnectionString(ctx)
	require.NoError(t, err)
	return uri
}

func TestMongoStoreContract(t *testing.T) {
	uri := startMongo(t)
	cfg := config.StoreConfig{
		Driver: config.DriverMongo,
		Mongo:  config.MongoConfig{URI: uri, Database: "vibeboard_test", Collection: "tasks"},
	}

	b, err := Open(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = b.Close() })

	require.IsType(t, &MongoStore{}, b)
	testStoreContract(t, b)
}

func TestOpenMongoUnreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 0)
	defer cancel()

	cfg := config.StoreConfig{
		Driver: config.DriverMongo,
		Mongo:  config.MongoConfig{URI: "mongodb://127.0.0.1:1", Database: "x", Collection: "y"},
	}
	_, err := Open(ctx, cfg, zap.NewNop())
	assert.Error(t, err)
}
