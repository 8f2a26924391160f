package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "musicgpt"

type Metrics struct {
	HTTPRequests  *prometheus.CounterVec
	HTTPDuration  *prometheus.HistogramVec
	CacheOps      *prometheus.CounterVec
	CacheLatency  *prometheus.HistogramVec
	LookupResults *prometheus.CounterVec
	RateLimited   prometheus.Counter
}

// NewMetrics registers the application collectors on reg. Passing a fresh
// prometheus.NewRegistry keeps tests isolated from the default registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route, method and status code.",
		}, []string{"route", "method", "code"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
		CacheOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_operations_total",
			Help:      "Cache operations by op and result (hit, miss, ok, error).",
		}, []string{"op", "result"}),
		CacheLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "cache_operation_duration_seconds",
			Help:      "Cache backend latency by op.",
			Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25},
		}, []string{"op"}),
		LookupResults: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "voice_lookups_total",
			Help:      "Voice lookups by kind and source (cache, store, empty).",
		}, []string{"kind", "source"}),
		RateLimited: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rate_limited_requests_total",
			Help:      "Requests rejected by the rate limiter.",
		}),
	}

	if reg != nil {
		reg.MustRegister(
			m.HTTPRequests,
			m.HTTPDuration,
			m.CacheOps,
			m.CacheLatency,
			m.LookupResults,
			m.RateLimited,
		)
	}

	return m
}

// NewRegistry returns a registry carrying the Go runtime and process
// collectors, the equivalent of what the default registry exposes.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}
