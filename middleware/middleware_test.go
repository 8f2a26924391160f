package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Soneshaps/musicgpt-clone/monitoring"
	"github.com/Soneshaps/musicgpt-clone/security"
	"github.com/Soneshaps/musicgpt-clone/utils"
)

func ok(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestRequestContext(t *testing.T) {
	var seen string
	h := RequestContext(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = utils.GetRequestID(r.Context())
	}))

	t.Run("generates id", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/voices", nil))
		assert.Len(t, seen, 36)
		assert.Equal(t, seen, w.Header().Get(RequestIDHeader))
	})

	t.Run("keeps inbound id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/voices", nil)
		req.Header.Set(RequestIDHeader, "trace-123")
		h.ServeHTTP(httptest.NewRecorder(), req)
		assert.Equal(t, "trace-123", seen)
	})
}

func TestRecoveryMiddleware(t *testing.T) {
	h := RecoveryMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Internal server error", body["error"])
}

func TestCORSMiddleware(t *testing.T) {
	t.Run("allow list", func(t *testing.T) {
		h := CORSMiddleware([]string{"http://localhost:5173"})(http.HandlerFunc(ok))

		req := httptest.NewRequest(http.MethodGet, "/voices", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))

		req = httptest.NewRequest(http.MethodGet, "/voices", nil)
		req.Header.Set("Origin", "http://evil.example")
		w = httptest.NewRecorder()
		h.ServeHTTP(w, req)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight", func(t *testing.T) {
		h := CORSMiddleware([]string{"*"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("preflight must not reach the handler")
		}))
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/speech-requests", nil))
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestWriteErrorMatchesAPIErrorBody(t *testing.T) {
	w := httptest.NewRecorder()
	writeError(w, http.StatusTooManyRequests, "slow \"down\"\nplease")

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var body utils.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "slow \"down\"\nplease", body.Error)
	assert.Empty(t, body.Details)
	assert.WithinDuration(t, time.Now(), body.Timestamp, time.Minute)
}

func TestRateLimitMiddleware(t *testing.T) {
	limiter := security.CreateRateLimiter(security.RateLimitConfig{RequestsPerSecond: 0.001, Burst: 2})
	defer limiter.Close()
	metrics := monitoring.NewMetrics(prometheus.NewRegistry())
	h := RateLimitMiddleware(limiter, metrics)(http.HandlerFunc(ok))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/voices", nil)
		req.RemoteAddr = "10.0.0.1:5555"
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		codes = append(codes, w.Code)
		if w.Code == http.StatusTooManyRequests {
			assert.NotEmpty(t, w.Header().Get("Retry-After"))
		}
	}

	assert.Equal(t, []int{200, 200, 429}, codes)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.RateLimited))

	other := httptest.NewRequest(http.MethodGet, "/voices", nil)
	other.RemoteAddr = "10.0.0.2:5555"
	w := httptest.NewRecorder()
	h.ServeHTTP(w, other)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMetricsMiddlewareUsesRouteTemplate(t *testing.T) {
	metrics := monitoring.NewMetrics(prometheus.NewRegistry())
	r := mux.NewRouter()
	r.Use(MetricsMiddleware(metrics))
	r.HandleFunc("/voices/search", ok).Methods(http.MethodGet)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/voices/search?query=a", nil))

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.HTTPRequests.WithLabelValues("/voices/search", "GET", "200")))
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.168.1.9:4000"
	assert.Equal(t, "192.168.1.9", ClientIP(req))

	req.Header.Set("X-Real-IP", "172.16.0.4")
	assert.Equal(t, "172.16.0.4", ClientIP(req))

	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	assert.Equal(t, "203.0.113.7", ClientIP(req))
}
