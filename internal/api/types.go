package api

import "github.com/satriahrh/heylisten/domain/repositories"

// HealthResponse reports worker liveness.
type HealthResponse struct {
	Status       string  `json:"status"`
	Service      string  `json:"service"`
	RunID        string  `json:"run_id"`
	HeartbeatAge float64 `json:"heartbeat_age_seconds,omitempty"`
}

// SearchResponse wraps similarity search hits.
type SearchResponse struct {
	Query   string                      `json:"query"`
	Results []repositories.SearchResult `json:"results"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
