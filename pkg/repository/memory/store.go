package memory

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/sstlab/vigia/pkg/domain/interfaces"
)

// hooks adapts one entity type to the generic store: deep copy, identifier
// access and optional timestamp stamping. stamp receives the previous record
// on update and nil on create.
type hooks[T any] struct {
	clone func(*T) *T
	id    func(*T) int64
	setID func(*T, int64)
	stamp func(v, prev *T, now time.Time)
}

// store is a map-backed collection with auto-increment IDs. All reads and
// writes go through deep copies so callers can never mutate stored state.
type store[T any] struct {
	mu     sync.RWMutex
	rows   map[int64]*T
	nextID int64
	h      hooks[T]
}

func newStore[T any](h hooks[T]) *store[T] {
	return &store[T]{
		rows:   make(map[int64]*T),
		nextID: 1,
		h:      h,
	}
}

func (s *store[T]) Create(ctx context.Context, v *T) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	created := s.h.clone(v)
	s.h.setID(created, s.nextID)
	if s.h.stamp != nil {
		s.h.stamp(created, nil, time.Now().UTC())
	}
	s.nextID++

	s.rows[s.h.id(created)] = created
	return s.h.clone(created), nil
}

func (s *store[T]) Get(ctx context.Context, id int64) (*T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, exists := s.rows[id]
	if !exists {
		return nil, goerr.Wrap(interfaces.ErrNotFound, "record not found", goerr.V("id", id))
	}
	return s.h.clone(v), nil
}

func (s *store[T]) List(ctx context.Context) ([]*T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*T, 0, len(s.rows))
	for _, v := range s.rows {
		out = append(out, s.h.clone(v))
	}
	return out, nil
}

func (s *store[T]) Update(ctx context.Context, v *T) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, exists := s.rows[s.h.id(v)]
	if !exists {
		return nil, goerr.Wrap(interfaces.ErrNotFound, "record not found", goerr.V("id", s.h.id(v)))
	}

	updated := s.h.clone(v)
	if s.h.stamp != nil {
		s.h.stamp(updated, existing, time.Now().UTC())
	}

	s.rows[s.h.id(updated)] = updated
	return s.h.clone(updated), nil
}

func (s *store[T]) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.rows[id]; !exists {
		return goerr.Wrap(interfaces.ErrNotFound, "record not found", goerr.V("id", id))
	}
	delete(s.rows, id)
	return nil
}

// listWhere returns copies of all rows matching pred
func (s *store[T]) listWhere(pred func(*T) bool) []*T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*T
	for _, v := range s.rows {
		if pred(v) {
			out = append(out, s.h.clone(v))
		}
	}
	return out
}

// findWhere returns a copy of the first row matching pred, or nil
func (s *store[T]) findWhere(pred func(*T) bool) *T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, v := range s.rows {
		if pred(v) {
			return s.h.clone(v)
		}
	}
	return nil
}

// deleteWhere removes all rows matching pred
func (s *store[T]) deleteWhere(pred func(*T) bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, v := range s.rows {
		if pred(v) {
			delete(s.rows, id)
		}
	}
}
