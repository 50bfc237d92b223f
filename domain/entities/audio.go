package entities

import "time"

// AudioChunk represents a fixed-duration buffer of mono samples captured from
// the input device. A chunk lives for exactly one loop iteration: it is
// consumed by transcription and speaker tagging, then discarded. Never
// persisted.
type AudioChunk struct {
	Samples    []float32
	SampleRate int
	CapturedAt time.Time
}

// Duration returns the chunk length implied by the sample count.
func (c *AudioChunk) Duration() time.Duration {
	if c.SampleRate <= 0 {
		return 0
	}
	return time.Duration(len(c.Samples)) * time.Second / time.Duration(c.SampleRate)
}
