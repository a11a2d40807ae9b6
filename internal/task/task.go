// Package task holds the task model and the CRUD operations over a stored
// task collection.
package task

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrNotFound is returned when no task carries the requested id.
var ErrNotFound = errors.New("task not found")

// Task is a single entry on the board.
type Task struct {
	ID        string `json:"id" example:"3f0c1c55-6f2a-4b7e-9d59-0c1f8b7a2e11"`
	Title     string `json:"title" example:"Water the plants"`
	Completed bool   `json:"completed"`
}

// Store loads and saves the whole task collection at once.
type Store interface {
	Load(ctx context.Context) ([]Task, error)
	Save(ctx context.Context, tasks []Task) error
}

// Service implements list/create/toggle/delete on top of a Store. Every call
// reads the full collection and, for mutations, writes it back.
type Service struct {
	store Store
	newID func() string
}

func NewService(store Store) *Service {
	return &Service{
		store: store,
		newID: uuid.NewString,
	}
}

// List returns every stored task. The result is never nil.
func (s *Service) List(ctx context.Context) ([]Task, error) {
	tasks, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}
	if tasks == nil {
		tasks = []Task{}
	}
	return tasks, nil
}

// Create appends a task with a freshly assigned id. Any id on the input is
// discarded.
func (s *Service) Create(ctx context.Context, title string, completed bool) (Task, error) {
	tasks, err := s.store.Load(ctx)
	if err != nil {
		return Task{}, fmt.Errorf("load tasks: %w", err)
	}

	t := Task{ID: s.newID(), Title: title, Completed: completed}
	tasks = append(tasks, t)
	if err := s.store.Save(ctx, tasks); err != nil {
		return Task{}, fmt.Errorf("save tasks: %w", err)
	}
	return t, nil
}

// ToggleComplete flips the completed flag of the first task with the given id.
func (s *Service) ToggleComplete(ctx context.Context, id string) (Task, error) {
	tasks, err := s.store.Load(ctx)
	if err != nil {
		return Task{}, fmt.Errorf("load tasks: %w", err)
	}

	for i := range tasks {
		if tasks[i].ID != id {
			continue
		}
		tasks[i].Completed = !tasks[i].Completed
		if err := s.store.Save(ctx, tasks); err != nil {
			return Task{}, fmt.Errorf("save tasks: %w", err)
		}
		return tasks[i], nil
	}
	return Task{}, ErrNotFound
}

// Delete removes every task with the given id. Nothing is written when no
// task matches.
func (s *Service) Delete(ctx context.Context, id string) error {
	tasks, err := s.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load tasks: %w", err)
	}

	kept := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	if len(kept) == len(tasks) {
		return ErrNotFound
	}
	if err := s.store.Save(ctx, kept); err != nil {
		return fmt.Errorf("save tasks: %w", err)
	}
	return nil
}
