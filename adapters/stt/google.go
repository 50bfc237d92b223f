package stt

import (
	"context"
	"fmt"
	"strings"

	speech "cloud.google.com/go/speech/apiv1"
	"cloud.google.com/go/speech/apiv1/speechpb"
	"go.uber.org/zap"

	"github.com/satriahrh/heylisten/domain/entities"
)

// GoogleSpeechToText implements SpeechToText using Google Cloud
// Speech-to-Text. The client is created once at startup and reused for every
// chunk.
type GoogleSpeechToText struct {
	client   *speech.Client
	language string
	logger   *zap.Logger
}

// NewGoogleSpeechToText creates the Google Cloud Speech client. Credentials
// are resolved through the standard GOOGLE_APPLICATION_CREDENTIALS mechanism.
func NewGoogleSpeechToText(ctx context.Context, language string, logger *zap.Logger) (*GoogleSpeechToText, error) {
	client, err := speech.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create speech client: %w", err)
	}

	return &GoogleSpeechToText{
		client:   client,
		language: language,
		logger:   logger,
	}, nil
}

// TranscribeAudio converts one audio chunk to text using a non-streaming
// recognize call. Chunks are bounded by the configured duration, well under
// the synchronous recognition limit.
func (g *GoogleSpeechToText) TranscribeAudio(ctx context.Context, chunk *entities.AudioChunk) (string, error) {
	resp, err := g.client.Recognize(ctx, &speechpb.RecognizeRequest{
		Config: &speechpb.RecognitionConfig{
			Encoding:        speechpb.RecognitionConfig_LINEAR16,
			SampleRateHertz: int32(chunk.SampleRate),
			LanguageCode:    g.language,
		},
		Audio: &speechpb.RecognitionAudio{
			AudioSource: &speechpb.RecognitionAudio_Content{
				Content: encodePCM16(chunk.Samples),
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("recognize request failed: %w", err)
	}

	var transcript strings.Builder
	for _, result := range resp.Results {
		if len(result.Alternatives) > 0 {
			// Take the best alternative
			transcript.WriteString(result.Alternatives[0].Transcript)
		}
	}

	return strings.TrimSpace(transcript.String()), nil
}

// Close releases the underlying client.
func (g *GoogleSpeechToText) Close() error {
	return g.client.Close()
}
