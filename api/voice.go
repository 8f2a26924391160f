package api

import (
	"context"
	"net/http"

	"github.com/Soneshaps/musicgpt-clone/models"
	"github.com/Soneshaps/musicgpt-clone/services"
)

type VoiceLookup interface {
	ListVoices(ctx context.Context, q services.VoiceQuery) (*models.VoicePage, error)
	SearchVoices(ctx context.Context, q services.VoiceQuery) (*models.VoicePage, error)
	ClearCache(ctx context.Context)
}

type VoiceHandler struct {
	voices VoiceLookup
}

func CreateVoiceHandler(voices VoiceLookup) *VoiceHandler {
	return &VoiceHandler{voices: voices}
}

func (h *VoiceHandler) pageParams(r *http.Request) (services.VoiceQuery, error) {
	page, err := intParam(r, "page")
	if err != nil {
		return services.VoiceQuery{}, err
	}
	limit, err := intParam(r, "limit")
	if err != nil {
		return services.VoiceQuery{}, err
	}
	q := r.URL.Query()
	return services.VoiceQuery{
		Query:    q.Get("query"),
		Language: q.Get("language"),
		Page:     page,
		Limit:    limit,
	}, nil
}

// HandleList serves GET /voices.
func (h *VoiceHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	query, err := h.pageParams(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	query.Query = ""

	result, err := h.voices.ListVoices(r.Context(), query)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, result, "Voices retrieved successfully")
}

// HandleSearch serves GET /voices/search.
func (h *VoiceHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	query, err := h.pageParams(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	result, err := h.voices.SearchVoices(r.Context(), query)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, result, "Voices retrieved successfully")
}

// HandleClearCache serves DELETE /cache. It always answers 204.
func (h *VoiceHandler) HandleClearCache(w http.ResponseWriter, r *http.Request) {
	h.voices.ClearCache(r.Context())
	w.WriteHeader(http.StatusNoContent)
}
