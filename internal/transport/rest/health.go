package rest

import (
	"context"
	"net/http"
	"time"
)

const (
	statusOK   = "ok"
	statusDown = "down"

	probeTimeout = 3 * time.Second
)

// pinger checks that a backing dependency is reachable.
type pinger interface {
	Ping(ctx context.Context) error
}

// HealthCheck names a dependency probed by /ready and /health.
type HealthCheck struct {
	Name string
	// Detail is reported as-is, e.g. the storage driver.
	Detail string
	Pinger pinger
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	version string
	checks  []HealthCheck
	started time.Time
	now     func() time.Time
}

// NewHealthHandler creates a HealthHandler probing checks in order.
func NewHealthHandler(version string, checks ...HealthCheck) *HealthHandler {
	return &HealthHandler{
		version: version,
		checks:  checks,
		started: time.Now(),
		now:     time.Now,
	}
}

// HealthResponse is the JSON response for /live, /ready and /health.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Uptime     string                `json:"uptime,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Detail  string `json:"detail,omitempty"`
	Latency string `json:"latency,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: statusOK, Timestamp: h.now()})
}

// Ready is the readiness probe: 200 when every check passes, 503 otherwise.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	_, healthy := h.probe(r.Context())
	writeJSON(w, httpStatus(healthy), HealthResponse{
		Status:    overall(healthy),
		Timestamp: h.now(),
	})
}

// Health is the full health check with per-component latency and version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	components, healthy := h.probe(r.Context())
	now := h.now()
	writeJSON(w, httpStatus(healthy), HealthResponse{
		Status:     overall(healthy),
		Version:    h.version,
		Uptime:     now.Sub(h.started).Truncate(time.Second).String(),
		Components: components,
		Timestamp:  now,
	})
}

func (h *HealthHandler) probe(ctx context.Context) (map[string]CompStatus, bool) {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	components := make(map[string]CompStatus, len(h.checks))
	healthy := true
	for _, c := range h.checks {
		start := time.Now()
		err := c.Pinger.Ping(ctx)
		latency := time.Since(start)

		comp := CompStatus{Status: statusOK, Detail: c.Detail, Latency: latency.String()}
		if err != nil {
			comp = CompStatus{Status: statusDown, Detail: c.Detail}
			healthy = false
		}
		components[c.Name] = comp
	}
	return components, healthy
}

func overall(healthy bool) string {
	if healthy {
		return statusOK
	}
	return statusDown
}

func httpStatus(healthy bool) int {
	if healthy {
		return http.StatusOK
	}
	return http.StatusServiceUnavailable
}
