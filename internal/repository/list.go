package repository

import (
	"context"
	"fmt"
	"sync"

	"recordstore-api/internal/utils"
)

// ListStore keeps records in a slice and finds them by linear scan.
// List returns records in insertion order.
type ListStore[T Record] struct {
	name    string
	mu      sync.RWMutex
	records []T
}

func NewListStore[T Record](name string) *ListStore[T] {
	utils.LogSuccess("ListStore", "Initialized list-backed store: %s", name)
	return &ListStore[T]{name: name, records: []T{}}
}

// indexOf must be called with mu held.
func (s *ListStore[T]) indexOf(id int) int {
	for i, rec := range s.records {
		if rec.RecordID() == id {
			return i
		}
	}
	return -1
}

func (s *ListStore[T]) List(ctx context.Context) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]T, len(s.records))
	copy(out, s.records)
	return out
}

func (s *ListStore[T]) Get(ctx context.Context, id int) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	utils.LogStore("GET "+s.name, fmt.Sprintf("Looking up id %d", id))

	var zero T
	i := s.indexOf(id)
	if i < 0 {
		return zero, notFound(id)
	}
	return s.records[i], nil
}

func (s *ListStore[T]) Create(ctx context.Context, rec T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := rec.RecordID()
	utils.LogStore("CREATE "+s.name, fmt.Sprintf("Inserting id %d", id))

	if s.indexOf(id) >= 0 {
		var zero T
		return zero, alreadyExists(id)
	}
	s.records = append(s.records, rec)
	return rec, nil
}

func (s *ListStore[T]) Update(ctx context.Context, id int, rec T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	utils.LogStore("UPDATE "+s.name, fmt.Sprintf("Replacing id %d", id))

	var zero T
	i := s.indexOf(id)
	if i < 0 {
		return zero, notFound(id)
	}
	if rec.RecordID() != id {
		return zero, idMismatch(id, rec.RecordID())
	}
	s.records[i] = rec
	return rec, nil
}

func (s *ListStore[T]) Delete(ctx context.Context, id int) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	utils.LogStore("DELETE "+s.name, fmt.Sprintf("Removing id %d", id))

	var zero T
	i := s.indexOf(id)
	if i < 0 {
		return zero, notFound(id)
	}
	removed := s.records[i]
	s.records = append(s.records[:i], s.records[i+1:]...)
	return removed, nil
}

func (s *ListStore[T]) Count(ctx context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
