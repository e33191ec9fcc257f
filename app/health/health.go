// Package health exposes liveness and readiness endpoints on the ops
// listener, next to the Prometheus metrics.
package health

import (
	"encoding/json"
	"net/http"
	"time"
)

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
	Uptime    string    `json:"uptime"`
	// EventStream is the o!rdr notification channel state. A degraded
	// stream still reports healthy: the bot works, completions stall.
	EventStream    string `json:"event_stream"`
	PendingRenders int    `json:"pending_renders"`
}

// Handler provides health check endpoints
type Handler struct {
	startTime   time.Time
	version     string
	streamState func() string
	pending     func() int
}

// NewHandler creates a new health check handler. streamState and pending
// report the notification channel and correlator condition.
func NewHandler(version string, streamState func() string, pending func() int) *Handler {
	return &Handler{
		startTime:   time.Now(),
		version:     version,
		streamState: streamState,
		pending:     pending,
	}
}

// Health returns the health status of the application
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	response := HealthResponse{
		Status:         "healthy",
		Timestamp:      time.Now(),
		Version:        h.version,
		Uptime:         time.Since(h.startTime).String(),
		EventStream:    h.streamState(),
		PendingRenders: h.pending(),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}

// Ready returns the readiness status of the application
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	response := map[string]string{
		"status": "ready",
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}

// Register mounts the health endpoints on mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/health", h.Health)
	mux.HandleFunc("/ready", h.Ready)
}
