package store

import (
	"context"
	"sort"
	"sync"

	"github.com/matzehuels/permtower/pkg/errors"
)

// MemoryStore keeps records in a map. Intended for development, tests, and
// single-process servers where persistence across restarts is not needed.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]ClosureRecord
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]ClosureRecord)}
}

// Put inserts a record.
func (s *MemoryStore) Put(ctx context.Context, rec ClosureRecord) error {
	if err := errors.ValidateRecordID(rec.ID); err != nil {
		return err
	}
	s.mu.Lock()
	s.records[rec.ID] = rec
	s.mu.Unlock()
	return nil
}

// Get retrieves a record by ID.
func (s *MemoryStore) Get(ctx context.Context, id string) (ClosureRecord, error) {
	s.mu.RLock()
	rec, ok := s.records[id]
	s.mu.RUnlock()
	if !ok {
		return ClosureRecord{}, errors.New(errors.ErrCodeNotFound, "closure record %s not found", id)
	}
	return rec, nil
}

// Recent returns up to limit records, newest first.
func (s *MemoryStore) Recent(ctx context.Context, limit int) ([]ClosureRecord, error) {
	s.mu.RLock()
	out := make([]ClosureRecord, 0, len(s.records))
	for _, rec := range s.records {
		out = append(out, rec)
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Close drops all records.
func (s *MemoryStore) Close(ctx context.Context) error {
	s.mu.Lock()
	s.records = make(map[string]ClosureRecord)
	s.mu.Unlock()
	return nil
}

// Ensure MemoryStore implements Store.
var _ Store = (*MemoryStore)(nil)
