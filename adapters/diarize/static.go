// Package diarize assigns speaker labels to audio chunks.
package diarize

import (
	"context"

	"github.com/satriahrh/heylisten/domain/entities"
	"github.com/satriahrh/heylisten/domain/repositories"
)

// StaticSpeakerTagger labels every chunk with the same speaker.
//
// TODO: replace with real diarization behind the same interface.
type StaticSpeakerTagger struct {
	label string
}

// NewStaticSpeakerTagger creates a tagger that always answers with the
// default speaker label.
func NewStaticSpeakerTagger() repositories.SpeakerTagger {
	return &StaticSpeakerTagger{label: entities.DefaultSpeaker}
}

// AssignSpeaker returns the constant label regardless of audio content.
func (s *StaticSpeakerTagger) AssignSpeaker(ctx context.Context, chunk *entities.AudioChunk) (string, error) {
	return s.label, nil
}
