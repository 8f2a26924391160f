package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Voice struct {
	ID       string `json:"id" gorm:"primaryKey;size:36"`
	Name     string `json:"name" gorm:"not null;index"`
	Language string `json:"language" gorm:"not null;index"`
	// SearchName is Name case-folded in Go so substring search behaves the
	// same on every SQL dialect.
	SearchName string    `json:"-" gorm:"size:255;index:idx_voices_search_name"`
	CreatedAt  time.Time `json:"createdAt" gorm:"autoCreateTime;index"`
	UpdatedAt  time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

func (Voice) TableName() string {
	return "voices"
}

// FoldName is the case folding applied to names and search queries.
func FoldName(name string) string {
	return strings.ToLower(name)
}

func (v *Voice) BeforeSave(tx *gorm.DB) error {
	v.SearchName = FoldName(v.Name)
	return nil
}

func (v *Voice) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	return nil
}

// VoicePage is the payload returned by list and search lookups. It is also
// the exact value stored in the cache.
type VoicePage struct {
	Voices     []Voice    `json:"voices"`
	Pagination Pagination `json:"pagination"`
}

func EmptyVoicePage(page, limit int) *VoicePage {
	return &VoicePage{
		Voices:     []Voice{},
		Pagination: Pagination{Total: 0, Page: page, Limit: limit, Pages: 0},
	}
}
