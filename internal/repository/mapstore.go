package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"recordstore-api/internal/utils"
)

// MapStore keys records directly by id. List order is by ascending id.
type MapStore[T Record] struct {
	name    string
	mu      sync.RWMutex
	records map[int]T
}

func NewMapStore[T Record](name string) *MapStore[T] {
	utils.LogSuccess("MapStore", "Initialized map-backed store: %s", name)
	return &MapStore[T]{name: name, records: make(map[int]T)}
}

func (s *MapStore[T]) List(ctx context.Context) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]T, 0, len(s.records))
	for _, rec := range s.records {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].RecordID() < out[j].RecordID()
	})
	return out
}

func (s *MapStore[T]) Get(ctx context.Context, id int) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	utils.LogStore("GET "+s.name, fmt.Sprintf("Looking up id %d", id))

	rec, ok := s.records[id]
	if !ok {
		return rec, notFound(id)
	}
	return rec, nil
}

func (s *MapStore[T]) Create(ctx context.Context, rec T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := rec.RecordID()
	utils.LogStore("CREATE "+s.name, fmt.Sprintf("Inserting id %d", id))

	if _, ok := s.records[id]; ok {
		var zero T
		return zero, alreadyExists(id)
	}
	s.records[id] = rec
	return rec, nil
}

func (s *MapStore[T]) Update(ctx context.Context, id int, rec T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	utils.LogStore("UPDATE "+s.name, fmt.Sprintf("Replacing id %d", id))

	var zero T
	if _, ok := s.records[id]; !ok {
		return zero, notFound(id)
	}
	if rec.RecordID() != id {
		return zero, idMismatch(id, rec.RecordID())
	}
	s.records[id] = rec
	return rec, nil
}

func (s *MapStore[T]) Delete(ctx context.Context, id int) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	utils.LogStore("DELETE "+s.name, fmt.Sprintf("Removing id %d", id))

	rec, ok := s.records[id]
	if !ok {
		var zero T
		return zero, notFound(id)
	}
	delete(s.records, id)
	return rec, nil
}

func (s *MapStore[T]) Count(ctx context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
