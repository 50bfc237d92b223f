// Package config loads runtime configuration from the environment.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds every runtime option. It is loaded once at startup and
// read-only afterwards; components receive it at construction, never from
// global state per call.
type Config struct {
	Environment string

	// Speech recognition
	STTEngine    string
	WhisperModel string
	Language     string

	// Audio capture
	AudioSource   string
	ChunkDuration int // seconds
	SampleRate    int

	// Embeddings
	EmbeddingProvider string
	EmbeddingModel    string
	VectorDimension   int

	// Vector storage
	PineconeAPIKey    string
	PineconeIndexName string
	MaxRecords        int

	OpenAIAPIKey string
	GeminiAPIKey string

	Port string
}

// Load reads .env (when present) and the process environment into a Config.
func Load() *Config {
	godotenv.Load()

	return &Config{
		Environment:       getEnv("ENVIRONMENT", "development"),
		STTEngine:         getEnv("STT_ENGINE", "whisper"),
		WhisperModel:      getEnv("WHISPER_MODEL", "whisper-1"),
		Language:          getEnv("LANGUAGE", "en"),
		AudioSource:       getEnv("AUDIO_SOURCE", "mic"),
		ChunkDuration:     getEnvInt("CHUNK_DURATION", 15),
		SampleRate:        getEnvInt("SAMPLE_RATE", 16000),
		EmbeddingProvider: getEnv("EMBEDDING_PROVIDER", "gemini"),
		EmbeddingModel:    getEnv("EMBEDDING_MODEL", "gemini-embedding-001"),
		VectorDimension:   getEnvInt("VECTOR_DIMENSION", 256),
		PineconeAPIKey:    os.Getenv("PINECONE_API_KEY"),
		PineconeIndexName: getEnv("PINECONE_INDEX_NAME", "hey-listen-transcriptions"),
		MaxRecords:        getEnvInt("MAX_RECORDS", 1000),
		OpenAIAPIKey:      os.Getenv("OPENAI_API_KEY"),
		GeminiAPIKey:      os.Getenv("GEMINI_API_KEY"),
		Port:              getEnv("PORT", "8080"),
	}
}

// StorageEnabled reports whether vector storage is configured. Without a
// Pinecone key the pipeline still runs and only logs transcriptions.
func (c *Config) StorageEnabled() bool {
	return c.PineconeAPIKey != ""
}

// IsProduction reports whether the worker runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
