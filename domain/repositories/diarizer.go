package repositories

import (
	"context"

	"github.com/satriahrh/heylisten/domain/entities"
)

// SpeakerTagger assigns a speaker label to an audio chunk. The only
// implementation today returns a constant label; a real diarization backend
// can replace it without touching the ingestion loop.
type SpeakerTagger interface {
	AssignSpeaker(ctx context.Context, chunk *entities.AudioChunk) (string, error)
}
