package entities

import (
	"fmt"
	"strings"
	"time"
)

// DefaultSpeaker is the label assigned to every chunk until real speaker
// diarization is implemented.
const DefaultSpeaker = "A"

// summaryMaxRunes bounds the transcript excerpt embedded in record metadata.
const summaryMaxRunes = 100

// TranscriptEvent represents one transcribed audio chunk flowing into storage.
// Events are immutable once built. Nothing is kept locally after storage; the
// vector index is the only record of them.
type TranscriptEvent struct {
	Text      string  `json:"text"`
	Speaker   string  `json:"speaker"`
	Timestamp float64 `json:"timestamp"` // seconds since epoch
}

// NewTranscriptEvent builds an event stamped with the capture-time instant.
func NewTranscriptEvent(text, speaker string, capturedAt time.Time) TranscriptEvent {
	return TranscriptEvent{
		Text:      text,
		Speaker:   speaker,
		Timestamp: float64(capturedAt.UnixNano()) / float64(time.Second),
	}
}

// IsEmpty reports whether the transcript carries no usable text. Empty and
// whitespace-only transcripts short-circuit storage.
func (e TranscriptEvent) IsEmpty() bool {
	return strings.TrimSpace(e.Text) == ""
}

// VectorID derives the deterministic storage key for this event.
func (e TranscriptEvent) VectorID() string {
	return fmt.Sprintf("transcript_%d_%s", int64(e.Timestamp), e.Speaker)
}

// Time converts the epoch timestamp back into a time.Time.
func (e TranscriptEvent) Time() time.Time {
	sec := int64(e.Timestamp)
	nsec := int64((e.Timestamp - float64(sec)) * float64(time.Second))
	return time.Unix(sec, nsec)
}

// Title returns the human-readable record title stored alongside the vector.
func (e TranscriptEvent) Title() string {
	return fmt.Sprintf("Transcription - Speaker %s at %s", e.Speaker, e.Time().Format("2006-01-02 15:04:05"))
}

// Summary returns a truncated excerpt of the transcript for record metadata.
func (e TranscriptEvent) Summary() string {
	return fmt.Sprintf("Transcript from %s: %s...", e.Speaker, truncateRunes(e.Text, summaryMaxRunes))
}

func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
