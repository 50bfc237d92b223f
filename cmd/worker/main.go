package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/satriahrh/heylisten/adapters/audio"
	"github.com/satriahrh/heylisten/adapters/diarize"
	"github.com/satriahrh/heylisten/adapters/embedding"
	"github.com/satriahrh/heylisten/adapters/stt"
	"github.com/satriahrh/heylisten/adapters/vector"
	"github.com/satriahrh/heylisten/domain/repositories"
	"github.com/satriahrh/heylisten/internal/api"
	"github.com/satriahrh/heylisten/internal/config"
	"github.com/satriahrh/heylisten/internal/websocket"
	"github.com/satriahrh/heylisten/usecase"
)

func main() {
	cfg := config.Load()

	// Initialize logger
	var logger *zap.Logger
	var err error
	if cfg.IsProduction() {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	chunkDuration := time.Duration(cfg.ChunkDuration) * time.Second

	// Initialize adapters
	source, err := newAudioSource(cfg, chunkDuration, logger)
	if err != nil {
		logger.Fatal("Failed to open audio source", zap.Error(err))
	}
	defer source.Close()

	speechToText, err := stt.NewFromConfig(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("Failed to create speech engine", zap.Error(err))
	}

	tagger := diarize.NewStaticSpeakerTagger()

	// Vector storage is optional. Without credentials the pipeline runs in
	// local mode and only logs transcriptions.
	var store repositories.TranscriptStore
	if cfg.StorageEnabled() {
		embedder, err := embedding.NewFromConfig(cfg, logger)
		if err != nil {
			logger.Fatal("Failed to create embedder", zap.Error(err))
		}
		store, err = vector.NewPineconeStore(ctx, cfg, embedder, logger)
		if err != nil {
			logger.Fatal("Failed to connect to vector storage", zap.Error(err))
		}
	} else {
		logger.Warn("PINECONE_API_KEY not set, running in local mode without storage")
	}

	// Live transcript feed
	hub := websocket.NewHub(logger)
	go hub.Run()

	worker := usecase.NewIngestionService(source, speechToText, tagger, store, hub, logger)
	go worker.Run(ctx)

	// Observability server
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// The loop is considered stalled after missing two chunks plus slack
	// for the remote calls of an iteration.
	staleAfter := 2*chunkDuration + 30*time.Second
	api.InitRoutes(e, hub, worker, store, staleAfter, logger)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			logger.Fatal("shutting down the server", zap.Error(err))
		}
	}()

	logger.Info("Worker started",
		zap.String("runID", worker.RunID()),
		zap.String("port", cfg.Port),
		zap.String("sttEngine", cfg.STTEngine),
		zap.Bool("storageEnabled", cfg.StorageEnabled()))

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Worker is shutting down...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Worker exited")
}

func newAudioSource(cfg *config.Config, chunkDuration time.Duration, logger *zap.Logger) (repositories.AudioSource, error) {
	switch cfg.AudioSource {
	case "mic":
		return audio.NewRecorder(cfg.SampleRate, chunkDuration, logger)
	case "mock":
		return audio.NewMockAudioSource(cfg.SampleRate, chunkDuration, logger), nil
	default:
		return nil, fmt.Errorf("unknown audio source: %s", cfg.AudioSource)
	}
}
