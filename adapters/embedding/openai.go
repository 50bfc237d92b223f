package embedding

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// OpenAIEmbedder implements the Embedder interface using OpenAI embedding
// models.
type OpenAIEmbedder struct {
	client    *openai.Client
	logger    *zap.Logger
	model     string
	dimension int
}

// NewOpenAIEmbedder creates a new OpenAI embedding client.
func NewOpenAIEmbedder(apiKey, model string, dimension int, logger *zap.Logger) (*OpenAIEmbedder, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable is required")
	}

	return &OpenAIEmbedder{
		client:    openai.NewClient(apiKey),
		logger:    logger,
		model:     model,
		dimension: dimension,
	}, nil
}

// EmbedText converts text into a vector of the configured dimension.
func (o *OpenAIEmbedder) EmbedText(ctx context.Context, text string) ([]float32, error) {
	resp, err := o.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input:      []string{text},
		Model:      openai.EmbeddingModel(o.model),
		Dimensions: o.dimension,
	})
	if err != nil {
		return nil, fmt.Errorf("embedding request failed: %w", err)
	}
	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("embedding request returned no data")
	}

	return resp.Data[0].Embedding, nil
}

// Dimension returns the configured embedding dimension.
func (o *OpenAIEmbedder) Dimension() int {
	return o.dimension
}
