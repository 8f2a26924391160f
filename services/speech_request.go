package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/Soneshaps/musicgpt-clone/models"
	"github.com/Soneshaps/musicgpt-clone/stores"
	"github.com/Soneshaps/musicgpt-clone/utils"
)

type SpeechRequestService struct {
	requests  stores.SpeechRequestRepository
	voices    stores.VoiceRepository
	validator *utils.Validator
}

func CreateSpeechRequestService(requests stores.SpeechRequestRepository, voices stores.VoiceRepository) *SpeechRequestService {
	return &SpeechRequestService{
		requests:  requests,
		voices:    voices,
		validator: utils.NewValidator(),
	}
}

// CreateRequest validates and stores a generation request in the pending
// state. Nothing is written when validation fails or the voice is unknown.
func (s *SpeechRequestService) CreateRequest(ctx context.Context, in *models.CreateSpeechRequest) (*models.SpeechRequest, error) {
	if in == nil {
		return nil, utils.NewValidationError("Request body is required", nil)
	}
	if err := s.validator.Struct(in); err != nil {
		return nil, err
	}

	voiceID := in.VoiceID
	if voiceID != nil && strings.TrimSpace(*voiceID) == "" {
		voiceID = nil
	}

	if voiceID != nil {
		exists, err := s.voices.Exists(ctx, *voiceID)
		if err != nil {
			return nil, utils.NewStoreError("voice lookup", err)
		}
		if !exists {
			return nil, utils.NewNotFoundError("Voice not found")
		}
	}

	req := &models.SpeechRequest{
		Prompt:  in.Prompt,
		Type:    models.RequestType(in.Type),
		Lyrics:  in.Lyrics,
		FileURL: in.FileURL,
		VoiceID: voiceID,
		Status:  models.RequestStatusPending,
	}
	if in.SongMode != nil {
		mode := models.SongMode(*in.SongMode)
		req.SongMode = &mode
	}

	if err := s.requests.Create(ctx, req); err != nil {
		utils.FromContext(ctx).Error("speech request insert failed", zap.Error(err))
		return nil, utils.NewStoreError("create speech request", err)
	}

	utils.FromContext(ctx).Info("speech request created",
		zap.String("id", req.ID),
		zap.String("type", string(req.Type)),
	)
	return req, nil
}
