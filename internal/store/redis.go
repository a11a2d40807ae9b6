package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/gauravchand/vibe-task-board/internal/task"
)

// RedisStore keeps the whole collection as one JSON value under a single key.
type RedisStore struct {
	client *redis.Client
	key    string
	log    *zap.Logger
}

func NewRedisStore(client *redis.Client, key string, log *zap.Logger) *RedisStore {
	return &RedisStore{client: client, key: key, log: log}
}

func (s *RedisStore) Load(ctx context.Context) ([]task.Task, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return []task.Task{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", s.key, err)
	}
	return decodeTasks(data, s.log.With(zap.String("key", s.key))), nil
}

func (s *RedisStore) Save(ctx context.Context, tasks []task.Task) error {
	data, err := encodeTasks(tasks)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", s.key, err)
	}
	return nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
