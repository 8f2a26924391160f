package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/Soneshaps/musicgpt-clone/middleware"
	"github.com/Soneshaps/musicgpt-clone/monitoring"
	"github.com/Soneshaps/musicgpt-clone/security"
	"github.com/Soneshaps/musicgpt-clone/utils"
)

type RouterDeps struct {
	Logger         *zap.Logger
	Voices         *VoiceHandler
	SpeechRequests *SpeechRequestHandler
	Health         *HealthHandler
	Metrics        *monitoring.Metrics
	Gatherer       prometheus.Gatherer
	RateLimiter    *security.RateLimiter // nil disables rate limiting
	AllowedOrigins []string
}

func NewRouter(d RouterDeps) *mux.Router {
	router := mux.NewRouter()

	router.Use(middleware.RequestContext(d.Logger))
	router.Use(middleware.RecoveryMiddleware)
	router.Use(middleware.LoggingMiddleware)
	router.Use(middleware.CORSMiddleware(d.AllowedOrigins))
	if d.Metrics != nil {
		router.Use(middleware.MetricsMiddleware(d.Metrics))
	}

	if d.Health != nil {
		router.HandleFunc("/health", d.Health.HandleHealth).Methods(http.MethodGet)
	}
	if d.Gatherer != nil {
		router.Handle("/metrics", promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	}

	limited := func(h http.HandlerFunc) http.Handler {
		if d.RateLimiter == nil {
			return h
		}
		return middleware.RateLimitMiddleware(d.RateLimiter, d.Metrics)(h)
	}

	router.Handle("/voices", limited(d.Voices.HandleList)).Methods(http.MethodGet, http.MethodOptions)
	router.Handle("/voices/search", limited(d.Voices.HandleSearch)).Methods(http.MethodGet, http.MethodOptions)
	router.Handle("/speech-requests", limited(d.SpeechRequests.HandleCreate)).Methods(http.MethodPost, http.MethodOptions)
	router.Handle("/cache", limited(d.Voices.HandleClearCache)).Methods(http.MethodDelete, http.MethodOptions)

	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, utils.NewErrorResponse("Route not found", nil))
	})

	return router
}
