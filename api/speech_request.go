package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/Soneshaps/musicgpt-clone/models"
	"github.com/Soneshaps/musicgpt-clone/utils"
)

const maxRequestBody = 1 << 20

type SpeechRequestCreator interface {
	CreateRequest(ctx context.Context, in *models.CreateSpeechRequest) (*models.SpeechRequest, error)
}

type SpeechRequestHandler struct {
	requests SpeechRequestCreator
}

func CreateSpeechRequestHandler(requests SpeechRequestCreator) *SpeechRequestHandler {
	return &SpeechRequestHandler{requests: requests}
}

// HandleCreate serves POST /speech-requests.
func (h *SpeechRequestHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSpeechRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(w, r, utils.NewValidationError("Invalid request body",
			utils.ValidationErrors{{Field: "body", Message: err.Error()}}))
		return
	}

	created, err := h.requests.CreateRequest(r.Context(), &req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, http.StatusCreated, created, "Speech request created successfully")
}
