// Package vector persists transcript events in a capacity-bounded vector
// index.
package vector

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/satriahrh/heylisten/domain/entities"
	"github.com/satriahrh/heylisten/domain/repositories"
)

// evictionSampleSize is how many candidates the eviction query inspects.
// The index service cannot order by metadata, so the oldest record is picked
// from a sampled candidate set.
const evictionSampleSize = 16

// vectorIndex is the minimal surface the bounded store needs from the
// underlying index service.
type vectorIndex interface {
	Upsert(ctx context.Context, id string, values []float32, metadata map[string]interface{}) error
	DeleteByID(ctx context.Context, id string) error
	TotalCount(ctx context.Context) (int, error)
	Query(ctx context.Context, values []float32, topK int) ([]Match, error)
}

// Match is one record returned by an index query.
type Match struct {
	ID        string
	Score     float32
	Text      string
	Speaker   string
	Timestamp float64
}

// BoundedStore keeps the total record count at or under a configured maximum
// using FIFO eviction by capture timestamp.
type BoundedStore struct {
	index      vectorIndex
	embedder   repositories.Embedder
	dimension  int
	maxRecords int
	logger     *zap.Logger
}

// NewBoundedStore creates a bounded store over the given index.
func NewBoundedStore(index vectorIndex, embedder repositories.Embedder, dimension, maxRecords int, logger *zap.Logger) *BoundedStore {
	return &BoundedStore{
		index:      index,
		embedder:   embedder,
		dimension:  dimension,
		maxRecords: maxRecords,
		logger:     logger,
	}
}

// Store upserts one transcript event, evicting the oldest record first when
// the index is at capacity.
//
// Eviction and insertion are two separate remote calls, not a transaction.
// A failed eviction is logged and the insert proceeds anyway, so the bound
// can be transiently exceeded by one record until a later eviction succeeds.
func (s *BoundedStore) Store(ctx context.Context, event entities.TranscriptEvent) (repositories.StoreResult, error) {
	if event.IsEmpty() {
		s.logger.Debug("Skipping empty transcription")
		return repositories.StoreResult{Skipped: true}, nil
	}

	values, err := s.embedder.EmbedText(ctx, event.Text)
	if err != nil {
		return repositories.StoreResult{}, fmt.Errorf("failed to embed transcript: %w", err)
	}
	if len(values) != s.dimension {
		return repositories.StoreResult{}, fmt.Errorf("embedding dimension mismatch: got %d, want %d", len(values), s.dimension)
	}

	result := repositories.StoreResult{VectorID: event.VectorID()}

	evictedID, err := s.evictIfFull(ctx)
	if err != nil {
		s.logger.Warn("Eviction failed, inserting anyway", zap.Error(err))
	}
	result.EvictedID = evictedID

	metadata := map[string]interface{}{
		"text":       event.Text,
		"speaker":    event.Speaker,
		"timestamp":  event.Timestamp,
		"created_at": event.Time().UTC().Format(time.RFC3339),
		"title":      event.Title(),
		"summary":    event.Summary(),
	}
	if err := s.index.Upsert(ctx, result.VectorID, values, metadata); err != nil {
		return repositories.StoreResult{}, fmt.Errorf("failed to upsert vector: %w", err)
	}

	return result, nil
}

// Search returns the records most similar to the query text.
func (s *BoundedStore) Search(ctx context.Context, query string, limit int) ([]repositories.SearchResult, error) {
	values, err := s.embedder.EmbedText(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}

	matches, err := s.index.Query(ctx, values, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query index: %w", err)
	}

	results := make([]repositories.SearchResult, 0, len(matches))
	for _, m := range matches {
		results = append(results, repositories.SearchResult{
			ID:        m.ID,
			Score:     m.Score,
			Text:      m.Text,
			Speaker:   m.Speaker,
			Timestamp: m.Timestamp,
		})
	}
	return results, nil
}

// Count reports the current number of stored records.
func (s *BoundedStore) Count(ctx context.Context) (int, error) {
	return s.index.TotalCount(ctx)
}

// evictIfFull deletes the oldest record when the index is at capacity.
// Returns the deleted ID, or empty when no eviction was needed.
func (s *BoundedStore) evictIfFull(ctx context.Context) (string, error) {
	total, err := s.index.TotalCount(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to read index size: %w", err)
	}
	if total < s.maxRecords {
		return "", nil
	}

	matches, err := s.index.Query(ctx, make([]float32, s.dimension), evictionSampleSize)
	if err != nil {
		return "", fmt.Errorf("failed to query eviction candidates: %w", err)
	}
	if len(matches) == 0 {
		return "", nil
	}

	oldest := oldestMatch(matches)
	if err := s.index.DeleteByID(ctx, oldest.ID); err != nil {
		return "", fmt.Errorf("failed to delete %s: %w", oldest.ID, err)
	}

	s.logger.Info("Evicted oldest record",
		zap.String("vectorID", oldest.ID),
		zap.Float64("timestamp", oldest.Timestamp))
	return oldest.ID, nil
}

// oldestMatch picks the candidate with the smallest timestamp. Equal
// timestamps fall back to the smaller ID so the choice is stable.
func oldestMatch(matches []Match) Match {
	oldest := matches[0]
	for _, m := range matches[1:] {
		if m.Timestamp < oldest.Timestamp ||
			(m.Timestamp == oldest.Timestamp && m.ID < oldest.ID) {
			oldest = m
		}
	}
	return oldest
}
