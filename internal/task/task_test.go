package task

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	tasks   []Task
	saves   int
	loadErr error
	saveErr error
}

func (m *memStore) Load(context.Context) ([]Task, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	out := make([]Task, len(m.tasks))
	copy(out, m.tasks)
	return out, nil
}

func (m *memStore) Save(_ context.Context, tasks []Task) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.tasks = tasks
	return nil
}

func newTestService(store Store) *Service {
	s := NewService(store)
	next := 'a'
	s.newID = func() string {
		id := string(next)
		next++
		return id
	}
	return s
}

func TestListEmpty(t *testing.T) {
	s := NewService(&memStore{})

	tasks, err := s.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, tasks)
	assert.Empty(t, tasks)
}

func TestCreateAssignsID(t *testing.T) {
	store := &memStore{}
	s := NewService(store)

	created, err := s.Create(context.Background(), "Buy milk", false)
	require.NoError(t, err)
	assert.Len(t, created.ID, 36)
	assert.Equal(t, "Buy milk", created.Title)
	assert.False(t, created.Completed)
	assert.Equal(t, []Task{created}, store.tasks)
}

func TestCreateAppends(t *testing.T) {
	store := &memStore{}
	s := newTestService(store)
	ctx := context.Background()

	_, err := s.Create(ctx, "first", false)
	require.NoError(t, err)
	_, err = s.Create(ctx, "second", true)
	require.NoError(t, err)

	assert.Equal(t, []Task{
		{ID: "a", Title: "first"},
		{ID: "b", Title: "second", Completed: true},
	}, store.tasks)
	assert.Equal(t, 2, store.saves)
}

func TestToggleComplete(t *testing.T) {
	store := &memStore{tasks: []Task{{ID: "a", Title: "one"}, {ID: "b", Title: "two"}}}
	s := NewService(store)
	ctx := context.Background()

	got, err := s.ToggleComplete(ctx, "b")
	require.NoError(t, err)
	assert.True(t, got.Completed)
	assert.True(t, store.tasks[1].Completed)
	assert.False(t, store.tasks[0].Completed)

	got, err = s.ToggleComplete(ctx, "b")
	require.NoError(t, err)
	assert.False(t, got.Completed)
}

func TestToggleCompleteFirstMatchOnly(t *testing.T) {
	store := &memStore{tasks: []Task{{ID: "a", Title: "one"}, {ID: "a", Title: "dup"}}}
	s := NewService(store)

	got, err := s.ToggleComplete(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, "one", got.Title)
	assert.True(t, store.tasks[0].Completed)
	assert.False(t, store.tasks[1].Completed)
}

func TestToggleCompleteNotFound(t *testing.T) {
	store := &memStore{tasks: []Task{{ID: "a"}}}
	s := NewService(store)

	_, err := s.ToggleComplete(context.Background(), "zzz")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Zero(t, store.saves)
}

func TestDeleteRemovesAllMatches(t *testing.T) {
	store := &memStore{tasks: []Task{{ID: "a"}, {ID: "b"}, {ID: "a"}}}
	s := NewService(store)

	require.NoError(t, s.Delete(context.Background(), "a"))
	assert.Equal(t, []Task{{ID: "b"}}, store.tasks)
}

func TestDeleteNotFound(t *testing.T) {
	store := &memStore{tasks: []Task{{ID: "a"}}}
	s := NewService(store)

	err := s.Delete(context.Background(), "b")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Zero(t, store.saves)
}

func TestStoreErrorsPropagate(t *testing.T) {
	boom := errors.New("disk on fire")
	ctx := context.Background()

	s := NewService(&memStore{loadErr: boom})
	_, err := s.List(ctx)
	assert.ErrorIs(t, err, boom)
	_, err = s.Create(ctx, "x", false)
	assert.ErrorIs(t, err, boom)

	s = NewService(&memStore{tasks: []Task{{ID: "a"}}, saveErr: boom})
	_, err = s.ToggleComplete(ctx, "a")
	assert.ErrorIs(t, err, boom)
	err = s.Delete(ctx, "a")
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrNotFound)
}
