package repositories

import (
	"context"

	"github.com/satriahrh/heylisten/domain/entities"
)

// SpeechToText abstracts speech recognition services. Implementations hold
// their model or client as a resource loaded once at startup; model selection
// is a configuration input, not logic this module owns.
type SpeechToText interface {
	// TranscribeAudio converts one audio chunk to text.
	TranscribeAudio(ctx context.Context, chunk *entities.AudioChunk) (string, error)
}
