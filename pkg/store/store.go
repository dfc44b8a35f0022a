// Package store persists the results of normal-closure computations so the
// API server can list and replay past queries.
//
// The [Store] interface has two implementations:
//   - memory: In-memory storage for development/testing
//   - mongo: MongoDB-backed storage for production deployments
//
// Records are identified by UUIDs and carry everything needed to reproduce
// the computation: the degree, the ambient group kind, and the canonical
// cycle-notation forms of the generators.
package store

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ClosureRecord describes one completed normal-closure computation.
type ClosureRecord struct {
	ID         string    `json:"id" bson:"_id"`
	Degree     int       `json:"degree" bson:"degree"`
	Ambient    string    `json:"ambient" bson:"ambient"`       // "S5", "A5", ...
	Generators []string  `json:"generators" bson:"generators"` // cycle notation
	Order      int       `json:"order" bson:"order"`           // order of the closure
	FullGroup  bool      `json:"full_group" bson:"full_group"` // closure == ambient
	Rounds     int       `json:"rounds" bson:"rounds"`         // saturation rounds
	Duration   int64     `json:"duration_ms" bson:"duration_ms"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
}

// NewRecord assigns a fresh UUID and timestamp to a record.
func NewRecord(r ClosureRecord) ClosureRecord {
	r.ID = uuid.NewString()
	r.CreatedAt = time.Now().UTC()
	return r
}

// Store persists closure records.
type Store interface {
	// Put inserts a record. The record must already carry an ID.
	Put(ctx context.Context, rec ClosureRecord) error

	// Get retrieves a record by ID. Missing records yield a NOT_FOUND error.
	Get(ctx context.Context, id string) (ClosureRecord, error)

	// Recent returns up to limit records, newest first.
	Recent(ctx context.Context, limit int) ([]ClosureRecord, error)

	// Close releases backend resources.
	Close(ctx context.Context) error
}
