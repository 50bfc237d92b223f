package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"ENVIRONMENT", "STT_ENGINE", "CHUNK_DURATION", "SAMPLE_RATE",
		"VECTOR_DIMENSION", "MAX_RECORDS", "PINECONE_API_KEY", "PORT",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.STTEngine != "whisper" {
		t.Errorf("Expected default STT engine whisper, got %s", cfg.STTEngine)
	}
	if cfg.ChunkDuration != 15 {
		t.Errorf("Expected default chunk duration 15, got %d", cfg.ChunkDuration)
	}
	if cfg.SampleRate != 16000 {
		t.Errorf("Expected default sample rate 16000, got %d", cfg.SampleRate)
	}
	if cfg.VectorDimension != 256 {
		t.Errorf("Expected default vector dimension 256, got %d", cfg.VectorDimension)
	}
	if cfg.MaxRecords != 1000 {
		t.Errorf("Expected default max records 1000, got %d", cfg.MaxRecords)
	}
	if cfg.IsProduction() {
		t.Error("Expected development mode by default")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("STT_ENGINE", "google")
	t.Setenv("CHUNK_DURATION", "5")
	t.Setenv("MAX_RECORDS", "2")
	t.Setenv("ENVIRONMENT", "production")

	cfg := Load()

	if cfg.STTEngine != "google" {
		t.Errorf("Expected STT engine google, got %s", cfg.STTEngine)
	}
	if cfg.ChunkDuration != 5 {
		t.Errorf("Expected chunk duration 5, got %d", cfg.ChunkDuration)
	}
	if cfg.MaxRecords != 2 {
		t.Errorf("Expected max records 2, got %d", cfg.MaxRecords)
	}
	if !cfg.IsProduction() {
		t.Error("Expected production mode")
	}
}

func TestLoadMalformedIntFallsBack(t *testing.T) {
	t.Setenv("SAMPLE_RATE", "not-a-number")

	cfg := Load()

	if cfg.SampleRate != 16000 {
		t.Errorf("Expected fallback sample rate 16000, got %d", cfg.SampleRate)
	}
}

func TestStorageEnabled(t *testing.T) {
	t.Setenv("PINECONE_API_KEY", "")
	if Load().StorageEnabled() {
		t.Error("Expected storage disabled without PINECONE_API_KEY")
	}

	t.Setenv("PINECONE_API_KEY", "pc-test-key")
	if !Load().StorageEnabled() {
		t.Error("Expected storage enabled with PINECONE_API_KEY")
	}
}
