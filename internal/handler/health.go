package handler

import (
	"context"
	"net/http"
	"time"
)

// HealthChecker is anything with a pingable connection.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	db    HealthChecker
	cache HealthChecker
}

// NewHealthHandler builds the probe handler. Either dependency may be
// nil, in which case readiness reports it as not configured.
func NewHealthHandler(db, cache HealthChecker) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

// HealthResponse is the probe response body.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// Healthz reports process liveness without touching dependencies.
//
// GET /healthz
func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

// Readyz pings every dependency and answers 503 unless all are up.
//
// GET /readyz
func (h *HealthHandler) Readyz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	probes := []struct {
		name string
		dep  HealthChecker
	}{
		{"database", h.db},
		{"cache", h.cache},
	}

	ready := true
	checks := make(map[string]string, len(probes))
	for _, probe := range probes {
		if probe.dep == nil {
			checks[probe.name] = "not configured"
			ready = false
			continue
		}
		if err := probe.dep.Ping(ctx); err != nil {
			checks[probe.name] = "unhealthy: " + err.Error()
			ready = false
			continue
		}
		checks[probe.name] = "ok"
	}

	if !ready {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "unavailable", Checks: checks})
		return
	}
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Checks: checks})
}
