package api

import (
	"net/http"
	"runtime"
	"time"

	"github.com/Soneshaps/musicgpt-clone/cache"
	"github.com/Soneshaps/musicgpt-clone/monitoring"
)

type HealthResponse struct {
	Status     monitoring.HealthStatus  `json:"status"`
	Uptime     string                   `json:"uptime"`
	GoRoutines int                      `json:"goroutines"`
	Checks     []monitoring.HealthCheck `json:"checks"`
	Cache      *cache.Stats             `json:"cache,omitempty"`
}

type HealthHandler struct {
	checker *monitoring.HealthChecker
	stats   func() cache.Stats
	started time.Time
}

// CreateHealthHandler serves the health report; stats may be nil.
func CreateHealthHandler(checker *monitoring.HealthChecker, stats func() cache.Stats) *HealthHandler {
	return &HealthHandler{checker: checker, stats: stats, started: time.Now()}
}

func (h *HealthHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	report := h.checker.RunAll(r.Context())

	resp := HealthResponse{
		Status:     report.Status,
		Uptime:     time.Since(h.started).Round(time.Second).String(),
		GoRoutines: runtime.NumGoroutine(),
		Checks:     report.Checks,
	}
	if h.stats != nil {
		s := h.stats()
		resp.Cache = &s
	}

	status := http.StatusOK
	if report.Status == monitoring.Unhealthy {
		status = http.StatusServiceUnavailable
	}
	writeData(w, status, resp, string(report.Status))
}
