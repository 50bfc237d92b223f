package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/satriahrh/heylisten/domain/repositories"
	"github.com/satriahrh/heylisten/internal/websocket"
)

const (
	defaultSearchLimit = 5
	maxSearchLimit     = 50
)

// WorkerStatus is implemented by the ingestion worker to expose liveness.
type WorkerStatus interface {
	RunID() string
	LastTick() time.Time
}

// InitRoutes initializes all API routes. store is nil when the worker runs
// in local mode.
func InitRoutes(
	e *echo.Echo,
	hub *websocket.Hub,
	worker WorkerStatus,
	store repositories.TranscriptStore,
	staleAfter time.Duration,
	logger *zap.Logger,
) {
	// Liveness probe
	e.GET("/health", func(c echo.Context) error {
		return health(c, worker, staleAfter)
	})

	// API v1 routes
	v1 := e.Group("/api/v1")

	v1.GET("/transcripts/search", func(c echo.Context) error {
		return searchTranscripts(c, store, logger)
	})

	// Live transcript feed
	e.GET("/ws", func(c echo.Context) error {
		return websocket.HandleWebSocket(hub, c, logger)
	})
}

// health reports whether the ingestion loop is alive. The loop is considered
// stalled when it has not completed an iteration within staleAfter; a hung
// storage call surfaces here because nothing else in the loop is concurrent.
func health(c echo.Context, worker WorkerStatus, staleAfter time.Duration) error {
	lastTick := worker.LastTick()

	if lastTick.IsZero() {
		// First iteration still in flight; it takes at least one chunk
		// duration to complete.
		return c.JSON(http.StatusOK, HealthResponse{
			Status:  "starting",
			Service: "heylisten-worker",
			RunID:   worker.RunID(),
		})
	}

	age := time.Since(lastTick)
	if age > staleAfter {
		return c.JSON(http.StatusServiceUnavailable, HealthResponse{
			Status:       "stalled",
			Service:      "heylisten-worker",
			RunID:        worker.RunID(),
			HeartbeatAge: age.Seconds(),
		})
	}

	return c.JSON(http.StatusOK, HealthResponse{
		Status:       "ok",
		Service:      "heylisten-worker",
		RunID:        worker.RunID(),
		HeartbeatAge: age.Seconds(),
	})
}

func searchTranscripts(c echo.Context, store repositories.TranscriptStore, logger *zap.Logger) error {
	if store == nil {
		return c.JSON(http.StatusServiceUnavailable, ErrorResponse{
			Error:   "storage_disabled",
			Message: "Vector storage is not configured; the worker runs in local mode",
		})
	}

	query := c.QueryParam("q")
	if query == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "missing_query",
			Message: "Query parameter 'q' is required",
		})
	}

	limit := defaultSearchLimit
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			return c.JSON(http.StatusBadRequest, ErrorResponse{
				Error:   "invalid_limit",
				Message: "Query parameter 'limit' must be a positive integer",
			})
		}
		if parsed > maxSearchLimit {
			parsed = maxSearchLimit
		}
		limit = parsed
	}

	results, err := store.Search(c.Request().Context(), query, limit)
	if err != nil {
		logger.Error("Transcript search failed", zap.String("query", query), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "search_failed",
			Message: "Failed to query the vector index",
		})
	}

	return c.JSON(http.StatusOK, SearchResponse{
		Query:   query,
		Results: results,
	})
}
