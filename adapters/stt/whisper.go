package stt

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/satriahrh/heylisten/domain/entities"
)

// WhisperSpeechToText implements SpeechToText using OpenAI's hosted Whisper
// models through the audio transcriptions API.
type WhisperSpeechToText struct {
	client   *openai.Client
	model    string
	language string
	logger   *zap.Logger
}

// NewWhisperSpeechToText creates a new Whisper transcription client.
func NewWhisperSpeechToText(apiKey, model, language string, logger *zap.Logger) *WhisperSpeechToText {
	return &WhisperSpeechToText{
		client:   openai.NewClient(apiKey),
		model:    model,
		language: language,
		logger:   logger,
	}
}

// TranscribeAudio renders the chunk as WAV and sends it for transcription.
func (w *WhisperSpeechToText) TranscribeAudio(ctx context.Context, chunk *entities.AudioChunk) (string, error) {
	wav := encodeWAV(chunk.Samples, chunk.SampleRate)

	resp, err := w.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    w.model,
		FilePath: "chunk.wav", // filename only; the payload comes from Reader
		Reader:   bytes.NewReader(wav),
		Language: w.language,
	})
	if err != nil {
		return "", fmt.Errorf("transcription request failed: %w", err)
	}

	return strings.TrimSpace(resp.Text), nil
}
