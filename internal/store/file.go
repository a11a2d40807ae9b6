// Package store provides the task.Store backends: a flat JSON file, a Redis
// key and a MongoDB collection.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/gauravchand/vibe-task-board/internal/task"
)

// FileStore keeps the whole collection in a single JSON file.
type FileStore struct {
	path string
	log  *zap.Logger
}

func NewFileStore(path string, log *zap.Logger) *FileStore {
	return &FileStore{path: path, log: log}
}

// Load returns an empty list when the file is missing or does not hold a
// JSON task array.
func (s *FileStore) Load(_ context.Context) ([]task.Task, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []task.Task{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	return decodeTasks(data, s.log.With(zap.String("path", s.path))), nil
}

func (s *FileStore) Save(_ context.Context, tasks []task.Task) error {
	data, err := encodeTasks(tasks)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}

func (s *FileStore) Close() error { return nil }

func decodeTasks(data []byte, log *zap.Logger) []task.Task {
	var tasks []task.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		log.Warn("discarding unreadable task data", zap.Error(err))
		return []task.Task{}
	}
	if tasks == nil {
		return []task.Task{}
	}
	return tasks
}

func encodeTasks(tasks []task.Task) ([]byte, error) {
	if tasks == nil {
		tasks = []task.Task{}
	}
	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode tasks: %w", err)
	}
	return data, nil
}
