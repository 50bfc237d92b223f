package usecase

import (
	"context"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/satriahrh/heylisten/domain/entities"
	"github.com/satriahrh/heylisten/domain/repositories"
)

// logExcerptRunes bounds transcript excerpts in log lines.
const logExcerptRunes = 60

// TranscriptPublisher receives every non-empty transcript event, stored or
// not. Implemented by the websocket hub.
type TranscriptPublisher interface {
	Publish(event entities.TranscriptEvent)
}

// IngestionService drives the capture → transcribe → tag → store pipeline.
// One chunk is fully processed before the next capture begins: throughput is
// bounded by the chunk duration itself, so nothing runs concurrently.
type IngestionService struct {
	source repositories.AudioSource
	stt    repositories.SpeechToText
	tagger repositories.SpeakerTagger
	store  repositories.TranscriptStore // nil when storage is not configured
	feed   TranscriptPublisher          // optional live feed
	logger *zap.Logger

	runID             string
	captureRetryDelay time.Duration
	lastTick          atomic.Int64 // unix nanos of the last completed iteration
}

// NewIngestionService creates a new ingestion service. store may be nil, in
// which case transcriptions are logged but never persisted.
func NewIngestionService(
	source repositories.AudioSource,
	stt repositories.SpeechToText,
	tagger repositories.SpeakerTagger,
	store repositories.TranscriptStore,
	feed TranscriptPublisher,
	logger *zap.Logger,
) *IngestionService {
	return &IngestionService{
		source:            source,
		stt:               stt,
		tagger:            tagger,
		store:             store,
		feed:              feed,
		logger:            logger,
		runID:             uuid.NewString(),
		captureRetryDelay: time.Second,
	}
}

// Run loops until ctx is cancelled. No failure inside an iteration
// terminates the loop; cancellation is checked at the idle boundary only,
// so in-flight work is never preserved.
func (s *IngestionService) Run(ctx context.Context) {
	s.logger.Info("Starting ingestion worker",
		zap.String("runID", s.runID),
		zap.Bool("storageEnabled", s.store != nil))

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Ingestion worker stopped", zap.String("runID", s.runID))
			return
		default:
		}

		s.ProcessChunk(ctx)
		s.lastTick.Store(time.Now().UnixNano())
	}
}

// ProcessChunk runs one full pipeline iteration: capture, transcribe, tag,
// store. Every failure is recovered locally; nothing raises past the loop
// boundary.
func (s *IngestionService) ProcessChunk(ctx context.Context) {
	chunk, err := s.source.Capture(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		s.logger.Warn("Audio capture failed, retrying", zap.Error(err))
		s.pause(ctx, s.captureRetryDelay)
		return
	}

	text := s.transcribe(ctx, chunk)
	if text == "" {
		s.logger.Debug("No speech detected, continuing")
		return
	}

	speaker, err := s.tagger.AssignSpeaker(ctx, chunk)
	if err != nil {
		s.logger.Warn("Speaker tagging failed, using default label", zap.Error(err))
		speaker = entities.DefaultSpeaker
	}

	event := entities.NewTranscriptEvent(text, speaker, chunk.CapturedAt)

	if s.feed != nil {
		s.feed.Publish(event)
	}

	if s.store == nil {
		s.logger.Info("Transcript (local only)",
			zap.String("speaker", event.Speaker),
			zap.String("text", excerpt(event.Text)))
		return
	}

	result, err := s.store.Store(ctx, event)
	switch {
	case err != nil:
		s.logger.Error("Transcript not stored",
			zap.String("speaker", event.Speaker),
			zap.String("text", excerpt(event.Text)),
			zap.Error(err))
	case result.Skipped:
		s.logger.Debug("Skipping empty transcription")
	default:
		s.logger.Info("Transcript stored",
			zap.String("speaker", event.Speaker),
			zap.String("text", excerpt(event.Text)),
			zap.String("vectorID", result.VectorID),
			zap.String("evictedID", result.EvictedID))
	}
}

// RunID identifies this worker run in logs and the health surface.
func (s *IngestionService) RunID() string {
	return s.runID
}

// LastTick reports when the loop last completed an iteration. Zero until
// the first iteration finishes.
func (s *IngestionService) LastTick() time.Time {
	nanos := s.lastTick.Load()
	if nanos == 0 {
		return time.Time{}
	}
	return time.Unix(0, nanos)
}

// transcribe converts a transcription failure into an empty result: the
// caller treats empty text as "nothing to do", not as an error to propagate.
func (s *IngestionService) transcribe(ctx context.Context, chunk *entities.AudioChunk) string {
	text, err := s.stt.TranscribeAudio(ctx, chunk)
	if err != nil {
		s.logger.Error("Transcription failed", zap.Error(err))
		return ""
	}
	return strings.TrimSpace(text)
}

func (s *IngestionService) pause(ctx context.Context, d time.Duration) {
	select {
	case <-ctx.Done():
	case <-time.After(d):
	}
}

func excerpt(text string) string {
	runes := []rune(text)
	if len(runes) <= logExcerptRunes {
		return text
	}
	return string(runes[:logExcerptRunes]) + "..."
}
