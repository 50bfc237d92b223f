package embedding

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/satriahrh/heylisten/domain/repositories"
	"github.com/satriahrh/heylisten/internal/config"
)

// NewFromConfig builds the embedding model selected by configuration.
func NewFromConfig(cfg *config.Config, logger *zap.Logger) (repositories.Embedder, error) {
	switch cfg.EmbeddingProvider {
	case "gemini":
		return NewGeminiEmbedder(cfg.GeminiAPIKey, cfg.EmbeddingModel, cfg.VectorDimension, logger)
	case "openai":
		return NewOpenAIEmbedder(cfg.OpenAIAPIKey, cfg.EmbeddingModel, cfg.VectorDimension, logger)
	case "mock":
		return NewMockEmbedder(cfg.VectorDimension, logger), nil
	default:
		return nil, fmt.Errorf("unknown embedding provider: %s", cfg.EmbeddingProvider)
	}
}
