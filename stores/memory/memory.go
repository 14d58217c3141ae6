// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/mdhender/olympians/model"
)

var _ model.Store = (*MemoryStore)(nil)

// MemoryStore is a simple in-memory store for Olympians.
// Callers always get copies; the store never hands out its own records.
type MemoryStore struct {
	mu      sync.RWMutex
	nextID  int64
	records map[int64]*model.Record
}

// New creates a new empty MemoryStore.
func New() *MemoryStore {
	return &MemoryStore{records: map[int64]*model.Record{}}
}

// InsertOlympian adds a copy of r to the store and assigns its ID.
func (s *MemoryStore) InsertOlympian(_ context.Context, r *model.Record) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC().Truncate(time.Second)
	if r.CreatedAt.IsZero() {
		r.CreatedAt = now
	}
	if r.UpdatedAt.IsZero() {
		r.UpdatedAt = r.CreatedAt
	}
	s.nextID++
	r.ID = s.nextID

	cp := *r
	s.records[cp.ID] = &cp
	return cp.ID, nil
}

// GetOlympian returns a copy of the record with the given ID.
func (s *MemoryStore) GetOlympian(_ context.Context, id int64) (*model.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.records[id]
	if !ok {
		return nil, fmt.Errorf("olympian %d: %w", id, model.ErrNotFound)
	}
	cp := *r
	return &cp, nil
}

// ListOlympians returns copies of all records ordered by ID.
func (s *MemoryStore) ListOlympians(_ context.Context) ([]*model.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*model.Record, 0, len(s.records))
	for _, r := range s.records {
		cp := *r
		result = append(result, &cp)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result, nil
}

// UpdateOlympian replaces the name and energy of an existing record.
func (s *MemoryStore) UpdateOlympian(_ context.Context, r *model.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.records[r.ID]
	if !ok {
		return fmt.Errorf("olympian %d: %w", r.ID, model.ErrNotFound)
	}
	r.CreatedAt = cur.CreatedAt
	r.UpdatedAt = time.Now().UTC().Truncate(time.Second)
	cp := *r
	s.records[r.ID] = &cp
	return nil
}

// DeleteOlympian removes the record with the given ID.
func (s *MemoryStore) DeleteOlympian(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[id]; !ok {
		return fmt.Errorf("olympian %d: %w", id, model.ErrNotFound)
	}
	delete(s.records, id)
	return nil
}

// Close is a no-op.
func (s *MemoryStore) Close() error {
	return nil
}
