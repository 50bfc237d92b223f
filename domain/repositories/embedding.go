package repositories

import "context"

// Embedder abstracts text embedding models.
type Embedder interface {
	// EmbedText converts text into a vector representation of the
	// configured dimension.
	EmbedText(ctx context.Context, text string) ([]float32, error)
	// Dimension returns the length of vectors produced by EmbedText.
	Dimension() int
}
