package store

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/gauravchand/vibe-task-board/internal/config"
	"github.com/gauravchand/vibe-task-board/internal/task"
)

// Backend is a task.Store holding resources that must be released.
type Backend interface {
	task.Store
	Close() error
}

// Open builds the backend selected by cfg.Driver. Network backends are pinged
// before returning.
func Open(ctx context.Context, cfg config.StoreConfig, log *zap.Logger) (Backend, error) {
	switch cfg.Driver {
	case config.DriverFile:
		return NewFileStore(cfg.File.Path, log), nil

	case config.DriverRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("connect redis %s: %w", cfg.Redis.Addr, err)
		}
		return NewRedisStore(client, cfg.Redis.Key, log), nil

	case config.DriverMongo:
		client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
		if err != nil {
			return nil, fmt.Errorf("connect mongo: %w", err)
		}
		if err := client.Ping(ctx, nil); err != nil {
			_ = client.Disconnect(ctx)
			return nil, fmt.Errorf("ping mongo: %w", err)
		}
		return NewMongoStore(client, cfg.Mongo.Database, cfg.Mongo.Collection), nil

	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}
