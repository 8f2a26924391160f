package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Soneshaps/musicgpt-clone/models"
	"github.com/Soneshaps/musicgpt-clone/monitoring"
	"github.com/Soneshaps/musicgpt-clone/services"
	"github.com/Soneshaps/musicgpt-clone/stores"
	"github.com/Soneshaps/musicgpt-clone/testutil"
)

type testServer struct {
	handler http.Handler
	cache   *testutil.CountingCache
	db      *gorm.DB
	voices  []models.Voice
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gdb := testutil.NewTestDB(t)
	voices := testutil.SeedVoices(t, gdb,
		models.Voice{Name: "Charlie", Language: "english"},
		models.Voice{Name: "Alice", Language: "english"},
		models.Voice{Name: "Bob", Language: "english"},
		models.Voice{Name: "Aayush", Language: "nepali"},
	)

	c := testutil.NewCountingCache()
	voiceStore := stores.CreateVoiceStore(gdb)
	requestStore := stores.CreateSpeechRequestStore(gdb)
	reg := prometheus.NewRegistry()
	metrics := monitoring.NewMetrics(reg)

	checker := monitoring.CreateHealthChecker(time.Second)
	checker.AddCheck("cache", false, c.Ping)

	router := NewRouter(RouterDeps{
		Logger:         zap.NewNop(),
		Voices:         CreateVoiceHandler(services.CreateVoiceService(voiceStore, c, 0, metrics)),
		SpeechRequests: CreateSpeechRequestHandler(services.CreateSpeechRequestService(requestStore, voiceStore)),
		Health:         CreateHealthHandler(checker, nil),
		Metrics:        metrics,
		Gatherer:       reg,
		AllowedOrigins: []string{"*"},
	})

	return &testServer{handler: router, cache: c, db: gdb, voices: voices}
}

func (s *testServer) do(t *testing.T, method, target string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.handler.ServeHTTP(w, req)
	return w
}

type pageEnvelope struct {
	Success bool             `json:"success"`
	Data    models.VoicePage `json:"data"`
	Message string           `json:"message"`
}

func decodePage(t *testing.T, w *httptest.ResponseRecorder) models.VoicePage {
	t.Helper()
	var env pageEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	require.True(t, env.Success)
	return env.Data
}

func TestListVoicesEndpoint(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/voices?language=english&page=1&limit=2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	page := decodePage(t, w)
	require.Len(t, page.Voices, 2)
	assert.Equal(t, "Alice", page.Voices[0].Name)
	assert.Equal(t, "Bob", page.Voices[1].Name)
	assert.Equal(t, models.Pagination{Total: 3, Page: 1, Limit: 2, Pages: 2}, page.Pagination)

	var raw struct {
		Data struct {
			Voices []map[string]interface{} `json:"voices"`
		} `json:"data"`
		Timestamp string `json:"timestamp"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	assert.NotEmpty(t, raw.Timestamp)
	first := raw.Data.Voices[0]
	for _, field := range []string{"id", "name", "language", "createdAt", "updatedAt"} {
		assert.Contains(t, first, field)
	}
}

func TestListVoicesEndpoint_Defaults(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/voices", nil)
	require.Equal(t, http.StatusOK, w.Code)

	page := decodePage(t, w)
	assert.Equal(t, models.Pagination{Total: 4, Page: 1, Limit: 15, Pages: 1}, page.Pagination)
	assert.Equal(t, "Aayush", page.Voices[0].Name, "newest first without a language filter")
}

func TestListVoicesEndpoint_ClampsLimit(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/voices?limit=500&page=-2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	page := decodePage(t, w)
	assert.Equal(t, 100, page.Pagination.Limit)
	assert.Equal(t, 1, page.Pagination.Page)
}

func TestListVoicesEndpoint_BadInteger(t *testing.T) {
	s := newTestServer(t)

	for _, target := range []string{"/voices?page=abc", "/voices?limit=1.5", "/voices/search?query=a&page=x"} {
		w := s.do(t, http.MethodGet, target, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, target)

		var body ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.False(t, body.Success)
		require.Len(t, body.Details, 1)
	}
}

func TestSearchVoicesEndpoint(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/voices/search?query=A", nil)
	require.Equal(t, http.StatusOK, w.Code)
	page := decodePage(t, w)
	names := make([]string, 0, len(page.Voices))
	for _, v := range page.Voices {
		names = append(names, v.Name)
	}
	assert.Equal(t, []string{"Aayush", "Alice", "Charlie"}, names)

	w = s.do(t, http.MethodGet, "/voices/search?query=a&language=nepali", nil)
	assert.Equal(t, int64(1), decodePage(t, w).Pagination.Total)
}

func TestSearchVoicesEndpoint_Blank(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/voices/search?query=%20%20", nil)
	require.Equal(t, http.StatusOK, w.Code)

	page := decodePage(t, w)
	assert.Empty(t, page.Voices)
	assert.Equal(t, models.Pagination{Total: 0, Page: 1, Limit: 15, Pages: 0}, page.Pagination)
	assert.Contains(t, w.Body.String(), `"voices":[]`)

	gets, sets := s.cache.Calls()
	assert.Zero(t, gets)
	assert.Zero(t, sets)
}

func TestCreateSpeechRequestEndpoint(t *testing.T) {
	s := newTestServer(t)

	body, _ := json.Marshal(map[string]interface{}{
		"prompt":  "Tell me a story about the sea",
		"type":    "story",
		"voiceId": s.voices[1].ID,
	})
	w := s.do(t, http.MethodPost, "/speech-requests", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var env struct {
		Success bool                 `json:"success"`
		Data    models.SpeechRequest `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.True(t, env.Success)
	assert.Equal(t, models.RequestStatusPending, env.Data.Status)
	require.NotNil(t, env.Data.Voice)
	assert.Equal(t, "Alice", env.Data.Voice.Name)
}

func TestCreateSpeechRequestEndpoint_Errors(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name string
		body string
		want int
	}{
		{"malformed json", `{"prompt":`, http.StatusBadRequest},
		{"unknown field", `{"prompt":"x","type":"song","mood":"happy"}`, http.StatusBadRequest},
		{"blank prompt", `{"prompt":"  ","type":"song"}`, http.StatusBadRequest},
		{"bad type", `{"prompt":"x","type":"opera"}`, http.StatusBadRequest},
		{"bad song mode", `{"prompt":"x","type":"song","songMode":"remix"}`, http.StatusBadRequest},
		{"unknown voice", `{"prompt":"x","type":"song","voiceId":"does-not-exist"}`, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := s.do(t, http.MethodPost, "/speech-requests", []byte(tt.body))
			assert.Equal(t, tt.want, w.Code, w.Body.String())

			var body ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.False(t, body.Success)
			assert.NotEmpty(t, body.Error)
		})
	}

	assert.Zero(t, testutil.CountRows(t, s.db, &models.SpeechRequest{}))
}

func TestClearCacheEndpoint(t *testing.T) {
	s := newTestServer(t)

	s.do(t, http.MethodGet, "/voices", nil)
	require.NotEmpty(t, s.cache.Keys())

	w := s.do(t, http.MethodDelete, "/cache", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.Bytes())
	assert.Empty(t, s.cache.Keys())
}

func TestClearCacheEndpoint_BackendDown(t *testing.T) {
	svc := services.CreateVoiceService(nil, testutil.FailingCache{}, 0, nil)
	h := CreateVoiceHandler(svc)

	w := httptest.NewRecorder()
	h.HandleClearCache(w, httptest.NewRequest(http.MethodDelete, "/cache", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
}

type brokenLookup struct{}

func (brokenLookup) ListVoices(context.Context, services.VoiceQuery) (*models.VoicePage, error) {
	return nil, errors.New("pq: relation \"voices\" does not exist")
}

func (brokenLookup) SearchVoices(context.Context, services.VoiceQuery) (*models.VoicePage, error) {
	return nil, errors.New("pq: relation \"voices\" does not exist")
}

func (brokenLookup) ClearCache(context.Context) {}

func TestListVoicesEndpoint_StoreFailureHidden(t *testing.T) {
	h := CreateVoiceHandler(brokenLookup{})

	w := httptest.NewRecorder()
	h.HandleList(w, httptest.NewRequest(http.MethodGet, "/voices", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "relation")
}

func TestHealthAndMetricsEndpoints(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"healthy"`)

	s.do(t, http.MethodGet, "/voices", nil)
	w = s.do(t, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "musicgpt_http_requests_total")
	assert.Contains(t, w.Body.String(), "musicgpt_voice_lookups_total")
}

func TestUnknownRoute(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Route not found", body.Error)
	assert.False(t, body.Timestamp.IsZero())
}
