package client

import (
	"context"
	"sync"
)

// Remote is the server side of one resource collection.
type Remote[T Resource] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, item T) (T, error)
	Update(ctx context.Context, item T) (T, error)
	Delete(ctx context.Context, key string) error
}

// Store holds the in-memory collection for one resource type, scoped to
// the current identity. Add/Update/Delete are optimistic: local state
// changes immediately and is rolled back to the pre-mutation snapshot if
// the server call fails.
type Store[T Resource] struct {
	mu       sync.Mutex
	remote   Remote[T]
	items    []T
	identity string
	onError  func(error)
}

func NewStore[T Resource](remote Remote[T], onError func(error)) *Store[T] {
	if onError == nil {
		onError = func(error) {}
	}
	return &Store[T]{remote: remote, onError: onError}
}

// SetIdentity switches the store to a new identity and fetches the full
// collection scoped to it. Switching always replaces local state, never
// merges.
func (s *Store[T]) SetIdentity(ctx context.Context, identity string) error {
	items, err := s.remote.List(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.identity = identity
	s.items = items
	s.mu.Unlock()
	return nil
}

// Items returns a copy of the current collection.
func (s *Store[T]) Items() []T {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]T, len(s.items))
	copy(items, s.items)
	return items
}

func (s *Store[T]) Add(ctx context.Context, item T) OpResult {
	op := OpResult{Kind: OpAdd, Key: item.Key(), State: OpPending}

	s.mu.Lock()
	snapshot := s.items
	s.items = applyAdd(s.items, item)
	s.mu.Unlock()

	confirmed, err := s.remote.Create(ctx, item)
	if err != nil {
		s.rollback(snapshot, err)
		return resolve(op, err)
	}

	// The server assigns the real identifier; swap the provisional row
	// for the confirmed one.
	s.mu.Lock()
	s.items = applyDelete(s.items, item.Key())
	s.items = applyAdd(s.items, confirmed)
	s.mu.Unlock()

	op.Key = confirmed.Key()
	return resolve(op, nil)
}

func (s *Store[T]) Update(ctx context.Context, item T) OpResult {
	op := OpResult{Kind: OpUpdate, Key: item.Key(), State: OpPending}

	s.mu.Lock()
	snapshot := s.items
	s.items = applyUpdate(s.items, item)
	s.mu.Unlock()

	confirmed, err := s.remote.Update(ctx, item)
	if err != nil {
		s.rollback(snapshot, err)
		return resolve(op, err)
	}

	s.mu.Lock()
	s.items = applyUpdate(s.items, confirmed)
	s.mu.Unlock()
	return resolve(op, nil)
}

func (s *Store[T]) Delete(ctx context.Context, key string) OpResult {
	op := OpResult{Kind: OpDelete, Key: key, State: OpPending}

	s.mu.Lock()
	snapshot := s.items
	s.items = applyDelete(s.items, key)
	s.mu.Unlock()

	if err := s.remote.Delete(ctx, key); err != nil {
		s.rollback(snapshot, err)
		return resolve(op, err)
	}
	return resolve(op, nil)
}

func (s *Store[T]) rollback(snapshot []T, err error) {
	s.mu.Lock()
	s.items = snapshot
	s.mu.Unlock()
	s.onError(err)
}
