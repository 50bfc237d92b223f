package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/satriahrh/heylisten/domain/entities"
	"github.com/satriahrh/heylisten/domain/repositories"
	"github.com/satriahrh/heylisten/internal/websocket"
)

type stubWorker struct {
	runID    string
	lastTick time.Time
}

func (s *stubWorker) RunID() string       { return s.runID }
func (s *stubWorker) LastTick() time.Time { return s.lastTick }

type stubStore struct {
	results []repositories.SearchResult
	err     error
	queries []string
}

func (s *stubStore) Store(ctx context.Context, event entities.TranscriptEvent) (repositories.StoreResult, error) {
	return repositories.StoreResult{VectorID: event.VectorID()}, nil
}

func (s *stubStore) Search(ctx context.Context, query string, limit int) ([]repositories.SearchResult, error) {
	s.queries = append(s.queries, query)
	return s.results, s.err
}

func (s *stubStore) Count(ctx context.Context) (int, error) { return len(s.results), nil }

func setupServer(worker WorkerStatus, store repositories.TranscriptStore) *echo.Echo {
	e := echo.New()
	hub := websocket.NewHub(zap.NewNop())
	InitRoutes(e, hub, worker, store, time.Minute, zap.NewNop())
	return e
}

func TestHealthStartingBeforeFirstTick(t *testing.T) {
	e := setupServer(&stubWorker{runID: "run-1"}, nil)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	var resp HealthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Invalid JSON response: %v", err)
	}
	if resp.Status != "starting" {
		t.Errorf("Expected status starting, got %s", resp.Status)
	}
	if resp.RunID != "run-1" {
		t.Errorf("Expected run ID run-1, got %s", resp.RunID)
	}
}

func TestHealthOKWithFreshHeartbeat(t *testing.T) {
	e := setupServer(&stubWorker{runID: "run-1", lastTick: time.Now()}, nil)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	var resp HealthResponse
	json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.Status != "ok" {
		t.Errorf("Expected status ok, got %s", resp.Status)
	}
}

func TestHealthStalledWithStaleHeartbeat(t *testing.T) {
	e := setupServer(&stubWorker{runID: "run-1", lastTick: time.Now().Add(-time.Hour)}, nil)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("Expected 503, got %d", rec.Code)
	}

	var resp HealthResponse
	json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.Status != "stalled" {
		t.Errorf("Expected status stalled, got %s", resp.Status)
	}
}

func TestSearchRequiresQuery(t *testing.T) {
	e := setupServer(&stubWorker{}, &stubStore{})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/transcripts/search", nil))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for missing query, got %d", rec.Code)
	}
}

func TestSearchLocalModeReturns503(t *testing.T) {
	e := setupServer(&stubWorker{}, nil)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/transcripts/search?q=hello", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("Expected 503 in local mode, got %d", rec.Code)
	}
}

func TestSearchReturnsResults(t *testing.T) {
	store := &stubStore{results: []repositories.SearchResult{
		{ID: "transcript_10_A", Score: 0.92, Text: "hello there", Speaker: "A", Timestamp: 10},
	}}
	e := setupServer(&stubWorker{}, store)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/transcripts/search?q=hello&limit=3", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp SearchResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Invalid JSON response: %v", err)
	}
	if len(resp.Results) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(resp.Results))
	}
	if resp.Results[0].Text != "hello there" {
		t.Errorf("Unexpected result text %q", resp.Results[0].Text)
	}
}

func TestSearchFailureReturns500(t *testing.T) {
	e := setupServer(&stubWorker{}, &stubStore{err: errors.New("index offline")})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/transcripts/search?q=hello", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("Expected 500 on search failure, got %d", rec.Code)
	}
}

func TestSearchRejectsInvalidLimit(t *testing.T) {
	e := setupServer(&stubWorker{}, &stubStore{})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/transcripts/search?q=hello&limit=zero", nil))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for invalid limit, got %d", rec.Code)
	}
}
