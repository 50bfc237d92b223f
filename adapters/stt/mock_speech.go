package stt

import (
	"context"

	"go.uber.org/zap"

	"github.com/satriahrh/heylisten/domain/entities"
	"github.com/satriahrh/heylisten/domain/repositories"
)

// MockSpeechToText is a placeholder implementation for speech recognition
type MockSpeechToText struct {
	logger *zap.Logger
}

// NewMockSpeechToText creates a new mock speech-to-text service
func NewMockSpeechToText(logger *zap.Logger) repositories.SpeechToText {
	return &MockSpeechToText{
		logger: logger,
	}
}

// TranscribeAudio returns a canned transcription keyed on the chunk size.
func (s *MockSpeechToText) TranscribeAudio(ctx context.Context, chunk *entities.AudioChunk) (string, error) {
	s.logger.Info("Processing mock speech-to-text",
		zap.Int("samples", len(chunk.Samples)),
		zap.Int("sampleRate", chunk.SampleRate))

	switch {
	case len(chunk.Samples) > 80000:
		return "This is a longer mock transcription of the captured audio chunk.", nil
	case len(chunk.Samples) > 16000:
		return "Mock transcription.", nil
	case len(chunk.Samples) > 0:
		return "Hi", nil
	default:
		return "", nil
	}
}
