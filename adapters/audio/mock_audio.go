package audio

import (
	"context"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/satriahrh/heylisten/domain/entities"
	"github.com/satriahrh/heylisten/domain/repositories"
)

// MockAudioSource is a placeholder capture device producing a synthetic tone.
// Useful for running the pipeline without a microphone.
type MockAudioSource struct {
	sampleRate    int
	chunkDuration time.Duration
	logger        *zap.Logger
}

// NewMockAudioSource creates a new mock capture device.
func NewMockAudioSource(sampleRate int, chunkDuration time.Duration, logger *zap.Logger) repositories.AudioSource {
	return &MockAudioSource{
		sampleRate:    sampleRate,
		chunkDuration: chunkDuration,
		logger:        logger,
	}
}

// Capture returns a 440Hz sine chunk after sleeping for the chunk duration,
// mimicking a blocking device read.
func (m *MockAudioSource) Capture(ctx context.Context) (*entities.AudioChunk, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(m.chunkDuration):
	}

	count := int(float64(m.sampleRate) * m.chunkDuration.Seconds())
	samples := make([]float32, count)
	for i := range samples {
		samples[i] = float32(0.1 * math.Sin(2*math.Pi*440*float64(i)/float64(m.sampleRate)))
	}

	m.logger.Debug("Produced mock audio chunk", zap.Int("samples", count))

	return &entities.AudioChunk{
		Samples:    samples,
		SampleRate: m.sampleRate,
		CapturedAt: time.Now(),
	}, nil
}

// Close is a no-op for the mock device.
func (m *MockAudioSource) Close() error {
	return nil
}
