package embedding

import (
	"context"
	"hash/fnv"

	"go.uber.org/zap"

	"github.com/satriahrh/heylisten/domain/repositories"
)

// MockEmbedder produces deterministic pseudo-embeddings without calling any
// external model.
type MockEmbedder struct {
	logger    *zap.Logger
	dimension int
}

// NewMockEmbedder creates a new mock embedder.
func NewMockEmbedder(dimension int, logger *zap.Logger) repositories.Embedder {
	return &MockEmbedder{
		logger:    logger,
		dimension: dimension,
	}
}

// EmbedText derives a vector from a hash of the text, so equal text always
// embeds to the same vector.
func (m *MockEmbedder) EmbedText(ctx context.Context, text string) ([]float32, error) {
	h := fnv.New32a()
	h.Write([]byte(text))
	seed := h.Sum32()

	vector := make([]float32, m.dimension)
	for i := range vector {
		seed = seed*1664525 + 1013904223
		vector[i] = float32(seed%2000)/1000 - 1
	}
	return vector, nil
}

// Dimension returns the configured embedding dimension.
func (m *MockEmbedder) Dimension() int {
	return m.dimension
}
