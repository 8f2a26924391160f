package monitoring

import (
	"context"
	"sort"
	"sync"
	"time"
)

type HealthStatus string

const (
	Healthy   HealthStatus = "healthy"
	Unhealthy HealthStatus = "unhealthy"
	Degraded  HealthStatus = "degraded"
)

type HealthCheck struct {
	Name        string       `json:"name"`
	Status      HealthStatus `json:"status"`
	Critical    bool         `json:"critical"`
	DurationMs  float64      `json:"durationMs"`
	LastChecked time.Time    `json:"lastChecked"`
	Error       string       `json:"error,omitempty"`
}

type HealthReport struct {
	Status HealthStatus  `json:"status"`
	Checks []HealthCheck `json:"checks"`
}

type check struct {
	fn       func(context.Context) error
	critical bool
}

type HealthChecker struct {
	checks  map[string]check
	timeout time.Duration
	mu      sync.RWMutex
}

func CreateHealthChecker(timeout time.Duration) *HealthChecker {
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	return &HealthChecker{
		checks:  make(map[string]check),
		timeout: timeout,
	}
}

// AddCheck registers a check. A failing critical check makes the whole
// report unhealthy; a failing non-critical one only degrades it.
func (hc *HealthChecker) AddCheck(name string, critical bool, fn func(context.Context) error) {
	hc.mu.Lock()
	defer hc.mu.Unlock()
	hc.checks[name] = check{fn: fn, critical: critical}
}

func (hc *HealthChecker) RunAll(ctx context.Context) HealthReport {
	hc.mu.RLock()
	names := make([]string, 0, len(hc.checks))
	for name := range hc.checks {
		names = append(names, name)
	}
	checks := make(map[string]check, len(hc.checks))
	for k, v := range hc.checks {
		checks[k] = v
	}
	hc.mu.RUnlock()
	sort.Strings(names)

	results := make([]HealthCheck, len(names))
	var wg sync.WaitGroup
	for i, name := range names {
		wg.Add(1)
		go func(i int, name string, c check) {
			defer wg.Done()
			results[i] = hc.run(ctx, name, c)
		}(i, name, checks[name])
	}
	wg.Wait()

	report := HealthReport{Status: Healthy, Checks: results}
	for _, r := range results {
		if r.Status == Healthy {
			continue
		}
		if r.Critical {
			report.Status = Unhealthy
		} else if report.Status == Healthy {
			report.Status = Degraded
		}
	}
	return report
}

func (hc *HealthChecker) run(ctx context.Context, name string, c check) HealthCheck {
	ctx, cancel := context.WithTimeout(ctx, hc.timeout)
	defer cancel()

	start := time.Now()
	err := c.fn(ctx)

	result := HealthCheck{
		Name:        name,
		Status:      Healthy,
		Critical:    c.critical,
		DurationMs:  float64(time.Since(start).Microseconds()) / 1000.0,
		LastChecked: time.Now(),
	}
	if err != nil {
		result.Status = Unhealthy
		result.Error = err.Error()
	}
	return result
}
