// Package audio provides microphone capture through PortAudio.
package audio

import (
	"context"
	"fmt"
	"time"

	"github.com/gordonklaus/portaudio"
	"go.uber.org/zap"

	"github.com/satriahrh/heylisten/domain/entities"
)

const (
	channels        = 1 // mono, as the speech engines expect
	framesPerBuffer = 1024
)

// Recorder captures fixed-duration chunks from the default input device.
// The device is opened once at construction and reused for every chunk.
type Recorder struct {
	sampleRate    int
	chunkDuration time.Duration
	buffer        []float32
	stream        *portaudio.Stream
	logger        *zap.Logger
}

// NewRecorder initializes PortAudio and opens the default input stream.
func NewRecorder(sampleRate int, chunkDuration time.Duration, logger *zap.Logger) (*Recorder, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize portaudio: %w", err)
	}

	buffer := make([]float32, framesPerBuffer)
	stream, err := portaudio.OpenDefaultStream(channels, 0, float64(sampleRate), framesPerBuffer, buffer)
	if err != nil {
		portaudio.Terminate()
		return nil, fmt.Errorf("failed to open default input stream: %w", err)
	}

	logger.Info("Audio input device opened",
		zap.Int("sampleRate", sampleRate),
		zap.Duration("chunkDuration", chunkDuration))

	return &Recorder{
		sampleRate:    sampleRate,
		chunkDuration: chunkDuration,
		buffer:        buffer,
		stream:        stream,
		logger:        logger,
	}, nil
}

// Capture records one chunk. It blocks until the configured duration of
// samples has been read or ctx is cancelled.
func (r *Recorder) Capture(ctx context.Context) (*entities.AudioChunk, error) {
	target := int(float64(r.sampleRate) * r.chunkDuration.Seconds())
	samples := make([]float32, 0, target)

	if err := r.stream.Start(); err != nil {
		return nil, fmt.Errorf("failed to start capture: %w", err)
	}
	defer r.stream.Stop()

	for len(samples) < target {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if err := r.stream.Read(); err != nil {
			return nil, fmt.Errorf("failed to read from input device: %w", err)
		}
		samples = append(samples, r.buffer...)
	}

	return &entities.AudioChunk{
		Samples:    samples[:target],
		SampleRate: r.sampleRate,
		CapturedAt: time.Now(),
	}, nil
}

// Close stops the stream and releases PortAudio.
func (r *Recorder) Close() error {
	if r.stream != nil {
		r.stream.Close()
		r.stream = nil
	}
	return portaudio.Terminate()
}
