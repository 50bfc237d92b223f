package stt_test

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/satriahrh/heylisten/adapters/stt"
	"github.com/satriahrh/heylisten/domain/entities"
	"github.com/satriahrh/heylisten/domain/repositories"
	"github.com/satriahrh/heylisten/internal/config"
)

var _ repositories.SpeechToText = &stt.GoogleSpeechToText{}
var _ repositories.SpeechToText = &stt.WhisperSpeechToText{}

func TestNewFromConfigRejectsUnknownEngine(t *testing.T) {
	cfg := &config.Config{STTEngine: "carrier-pigeon"}

	if _, err := stt.NewFromConfig(context.Background(), cfg, zap.NewNop()); err == nil {
		t.Error("Expected error for unknown engine")
	}
}

func TestNewFromConfigWhisperRequiresAPIKey(t *testing.T) {
	cfg := &config.Config{STTEngine: "whisper"}

	if _, err := stt.NewFromConfig(context.Background(), cfg, zap.NewNop()); err == nil {
		t.Error("Expected error when OPENAI_API_KEY is missing")
	}
}

func TestNewFromConfigMock(t *testing.T) {
	cfg := &config.Config{STTEngine: "mock"}

	engine, err := stt.NewFromConfig(context.Background(), cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	text, err := engine.TranscribeAudio(context.Background(), &entities.AudioChunk{
		Samples:    make([]float32, 32000),
		SampleRate: 16000,
	})
	if err != nil {
		t.Fatalf("Mock transcription returned error: %v", err)
	}
	if text == "" {
		t.Error("Expected non-empty mock transcription")
	}
}
