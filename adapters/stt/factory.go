package stt

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/satriahrh/heylisten/domain/repositories"
	"github.com/satriahrh/heylisten/internal/config"
)

// NewFromConfig builds the speech engine selected by configuration.
func NewFromConfig(ctx context.Context, cfg *config.Config, logger *zap.Logger) (repositories.SpeechToText, error) {
	switch cfg.STTEngine {
	case "google":
		return NewGoogleSpeechToText(ctx, cfg.Language, logger)
	case "whisper":
		if cfg.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is required for the whisper engine")
		}
		return NewWhisperSpeechToText(cfg.OpenAIAPIKey, cfg.WhisperModel, cfg.Language, logger), nil
	case "mock":
		return NewMockSpeechToText(logger), nil
	default:
		return nil, fmt.Errorf("unknown stt engine: %s", cfg.STTEngine)
	}
}
