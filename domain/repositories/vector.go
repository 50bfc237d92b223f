package repositories

import (
	"context"

	"github.com/satriahrh/heylisten/domain/entities"
)

// StoreResult reports the outcome of one storage attempt.
type StoreResult struct {
	// Skipped is true when the event carried no usable text and nothing
	// was stored. Not a failure.
	Skipped bool
	// VectorID is the key of the inserted record.
	VectorID string
	// EvictedID is the key removed to make room, when eviction happened.
	EvictedID string
}

// SearchResult is a single similarity hit from the vector index.
type SearchResult struct {
	ID        string  `json:"id"`
	Score     float32 `json:"score"`
	Text      string  `json:"text"`
	Speaker   string  `json:"speaker"`
	Timestamp float64 `json:"timestamp"`
}

// TranscriptStore persists transcript events as searchable vectors while
// holding the total record count at or under a configured maximum.
type TranscriptStore interface {
	// Store upserts one event, evicting the oldest record (smallest
	// timestamp) first when the index is at capacity.
	//
	// Eviction and insertion are two separate remote calls, not a
	// transaction. A failed eviction is logged and the insert proceeds
	// anyway, so the capacity bound can be transiently exceeded by one
	// record until a later eviction succeeds.
	Store(ctx context.Context, event entities.TranscriptEvent) (StoreResult, error)
	// Search returns the records most similar to the query text.
	Search(ctx context.Context, query string, limit int) ([]SearchResult, error)
	// Count reports the current number of stored records.
	Count(ctx context.Context) (int, error)
}
