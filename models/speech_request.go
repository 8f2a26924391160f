package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RequestStatus string

const (
	RequestStatusPending RequestStatus = "pending"
)

type RequestType string

const (
	RequestTypeTextToSpeech   RequestType = "text-to-speech"
	RequestTypeCreateAnything RequestType = "create-anything"
	RequestTypeSong           RequestType = "song"
	RequestTypePodcast        RequestType = "podcast"
	RequestTypeStory          RequestType = "story"
)

type SongMode string

const (
	SongModeLyrics       SongMode = "lyrics"
	SongModeInstrumental SongMode = "instrumental"
)

type SpeechRequest struct {
	ID        string        `json:"id" gorm:"primaryKey;size:36"`
	Prompt    string        `json:"prompt" gorm:"type:text;not null"`
	Type      RequestType   `json:"type" gorm:"size:32;not null"`
	Lyrics    *string       `json:"lyrics" gorm:"type:text"`
	SongMode  *SongMode     `json:"songMode" gorm:"size:16"`
	FileURL   *string       `json:"fileUrl"`
	VoiceID   *string       `json:"voiceId" gorm:"size:36;index"`
	Voice     *Voice        `json:"voice" gorm:"foreignKey:VoiceID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
	Status    RequestStatus `json:"status" gorm:"size:16;not null;default:pending"`
	CreatedAt time.Time     `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt time.Time     `json:"updatedAt" gorm:"autoUpdateTime"`
}

func (SpeechRequest) TableName() string {
	return "speech_requests"
}

func (r *SpeechRequest) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

type CreateSpeechRequest struct {
	Prompt   string  `json:"prompt" validate:"required,notblank"`
	Type     string  `json:"type" validate:"required,oneof=text-to-speech create-anything song podcast story"`
	Lyrics   *string `json:"lyrics,omitempty"`
	SongMode *string `json:"songMode,omitempty" validate:"omitempty,oneof=lyrics instrumental"`
	FileURL  *string `json:"fileUrl,omitempty"`
	VoiceID  *string `json:"voiceId,omitempty"`
}
