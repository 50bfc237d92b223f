package repositories

import (
	"context"

	"github.com/satriahrh/heylisten/domain/entities"
)

// AudioSource abstracts the audio capture device.
type AudioSource interface {
	// Capture records one chunk of the configured duration. It blocks for
	// the full duration and returns whatever the device produced. A device
	// error is returned as-is; the caller retries after a short pause
	// instead of terminating.
	Capture(ctx context.Context) (*entities.AudioChunk, error)
	// Close releases the underlying device.
	Close() error
}
