// Package embedding provides text embedding adapters for the vector store.
package embedding

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

// GeminiEmbedder implements the Embedder interface using Google's Gemini
// embedding models.
type GeminiEmbedder struct {
	client    *genai.Client
	logger    *zap.Logger
	model     string
	dimension int
}

// NewGeminiEmbedder creates a new Gemini embedding client.
func NewGeminiEmbedder(apiKey, model string, dimension int, logger *zap.Logger) (*GeminiEmbedder, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiEmbedder{
		client:    client,
		logger:    logger,
		model:     model,
		dimension: dimension,
	}, nil
}

// EmbedText converts text into a vector of the configured dimension.
func (g *GeminiEmbedder) EmbedText(ctx context.Context, text string) ([]float32, error) {
	outputDimensionality := int32(g.dimension)
	resp, err := g.client.Models.EmbedContent(ctx, g.model, genai.Text(text), &genai.EmbedContentConfig{
		OutputDimensionality: &outputDimensionality,
	})
	if err != nil {
		return nil, fmt.Errorf("embed content failed: %w", err)
	}
	if len(resp.Embeddings) == 0 {
		return nil, fmt.Errorf("embed content returned no embeddings")
	}

	return resp.Embeddings[0].Values, nil
}

// Dimension returns the configured embedding dimension.
func (g *GeminiEmbedder) Dimension() int {
	return g.dimension
}
