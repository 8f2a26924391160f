package db

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/Soneshaps/musicgpt-clone/models"
)

type SeedResult struct {
	Inserted int
	Skipped  bool
}

// SeedVoices inserts the stock catalog. It is a no-op when voices already
// exist unless reset is set, in which case the table is emptied first.
// Speech requests pointing at removed voices have voice_id cleared.
func SeedVoices(ctx context.Context, db *gorm.DB, reset bool) (SeedResult, error) {
	var result SeedResult

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Voice{}).Count(&count).Error; err != nil {
			return err
		}

		if count > 0 && !reset {
			result.Skipped = true
			return nil
		}

		if reset {
			if err := tx.Model(&models.SpeechRequest{}).
				Where("voice_id IS NOT NULL").
				Update("voice_id", nil).Error; err != nil {
				return err
			}
			if err := tx.Where("1 = 1").Delete(&models.Voice{}).Error; err != nil {
				return err
			}
		}

		voices := Catalog()
		// Stagger creation times so created_at ordering follows catalog order.
		base := time.Now().UTC().Add(-time.Duration(len(voices)) * time.Second)
		for i := range voices {
			voices[i].CreatedAt = base.Add(time.Duration(i) * time.Second)
		}

		if err := tx.CreateInBatches(voices, 50).Error; err != nil {
			return err
		}
		result.Inserted = len(voices)
		return nil
	})
	if err != nil {
		return SeedResult{}, fmt.Errorf("seed voices: %w", err)
	}

	return result, nil
}

// Catalog returns a fresh copy of the stock voice list.
func Catalog() []models.Voice {
	voices := make([]models.Voice, len(voiceCatalog))
	copy(voices, voiceCatalog)
	return voices
}
