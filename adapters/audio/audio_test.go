package audio_test

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/satriahrh/heylisten/adapters/audio"
	"github.com/satriahrh/heylisten/domain/repositories"
)

var _ repositories.AudioSource = &audio.Recorder{}

func TestMockAudioSourceCapture(t *testing.T) {
	source := audio.NewMockAudioSource(16000, 10*time.Millisecond, zap.NewNop())
	defer source.Close()

	chunk, err := source.Capture(context.Background())
	if err != nil {
		t.Fatalf("Capture returned error: %v", err)
	}
	if chunk.SampleRate != 16000 {
		t.Errorf("Expected sample rate 16000, got %d", chunk.SampleRate)
	}
	if len(chunk.Samples) == 0 {
		t.Error("Expected non-empty sample buffer")
	}
	if chunk.CapturedAt.IsZero() {
		t.Error("Expected capture timestamp to be set")
	}
}

func TestMockAudioSourceRespectsCancellation(t *testing.T) {
	source := audio.NewMockAudioSource(16000, time.Minute, zap.NewNop())
	defer source.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := source.Capture(ctx); err == nil {
		t.Error("Expected error from cancelled capture")
	}
}
