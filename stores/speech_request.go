package stores

import (
	"context"

	"gorm.io/gorm"

	"github.com/Soneshaps/musicgpt-clone/models"
)

type SpeechRequestRepository interface {
	Create(ctx context.Context, req *models.SpeechRequest) error
}

type SpeechRequestStore struct {
	BaseStore
}

func CreateSpeechRequestStore(db *gorm.DB) *SpeechRequestStore {
	return &SpeechRequestStore{BaseStore: BaseStore{db: db}}
}

// Create inserts req and reloads it with its voice joined.
func (s *SpeechRequestStore) Create(ctx context.Context, req *models.SpeechRequest) error {
	return s.WithTransaction(ctx, func(txCtx context.Context) error {
		db := s.GetDB(txCtx)
		if err := db.Omit("Voice").Create(req).Error; err != nil {
			return err
		}
		return db.Preload("Voice").First(req, "id = ?", req.ID).Error
	})
}
