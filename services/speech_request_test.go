package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Soneshaps/musicgpt-clone/models"
	"github.com/Soneshaps/musicgpt-clone/stores"
	"github.com/Soneshaps/musicgpt-clone/testutil"
	"github.com/Soneshaps/musicgpt-clone/utils"
)

func newSpeechFixture(t *testing.T) (*SpeechRequestService, *gorm.DB, []models.Voice) {
	t.Helper()
	gdb := testutil.NewTestDB(t)
	voices := testutil.SeedVoices(t, gdb, models.Voice{Name: "Emma Watson", Language: "english"})
	svc := CreateSpeechRequestService(stores.CreateSpeechRequestStore(gdb), stores.CreateVoiceStore(gdb))
	return svc, gdb, voices
}

func TestCreateRequest_WithVoice(t *testing.T) {
	svc, _, voices := newSpeechFixture(t)

	in := testutil.MockCreateSpeechRequest()
	in.VoiceID = &voices[0].ID

	got, err := svc.CreateRequest(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusPending, got.Status)
	assert.Equal(t, in.Prompt, got.Prompt)
	require.NotNil(t, got.Voice)
	assert.Equal(t, "Emma Watson", got.Voice.Name)
}

func TestCreateRequest_WritesOneRowPerCall(t *testing.T) {
	svc, gdb, voices := newSpeechFixture(t)
	ctx := context.Background()

	for i := 1; i <= 2; i++ {
		in := testutil.MockCreateSpeechRequest()
		in.VoiceID = &voices[0].ID
		_, err := svc.CreateRequest(ctx, in)
		require.NoError(t, err)

		assert.Equal(t, int64(i), testutil.CountRows(t, gdb, &models.SpeechRequest{}))
	}
}

func TestCreateRequest_SongFields(t *testing.T) {
	svc, _, _ := newSpeechFixture(t)

	got, err := svc.CreateRequest(context.Background(), &models.CreateSpeechRequest{
		Prompt:   "Upbeat summer anthem",
		Type:     string(models.RequestTypeCreateAnything),
		Lyrics:   testutil.StrPtr("la la la"),
		SongMode: testutil.StrPtr("lyrics"),
		FileURL:  testutil.StrPtr("not even a url"),
		VoiceID:  testutil.StrPtr(""),
	})
	require.NoError(t, err)
	require.NotNil(t, got.SongMode)
	assert.Equal(t, models.SongModeLyrics, *got.SongMode)
	assert.Equal(t, "not even a url", *got.FileURL)
	assert.Nil(t, got.VoiceID)
	assert.Nil(t, got.Voice)
}

func TestCreateRequest_UnknownVoiceWritesNothing(t *testing.T) {
	svc, gdb, _ := newSpeechFixture(t)

	in := testutil.MockCreateSpeechRequest()
	in.VoiceID = testutil.StrPtr("3f1c2b9e-0000-4000-8000-000000000000")

	_, err := svc.CreateRequest(context.Background(), in)
	require.Error(t, err)
	assert.True(t, utils.IsNotFound(err))

	assert.Zero(t, testutil.CountRows(t, gdb, &models.SpeechRequest{}))
}

func TestCreateRequest_Validation(t *testing.T) {
	svc, gdb, _ := newSpeechFixture(t)

	tests := []struct {
		name string
		in   *models.CreateSpeechRequest
	}{
		{"nil body", nil},
		{"empty prompt", &models.CreateSpeechRequest{Type: "song"}},
		{"blank prompt", &models.CreateSpeechRequest{Prompt: "  ", Type: "song"}},
		{"missing type", &models.CreateSpeechRequest{Prompt: "x"}},
		{"unknown type", &models.CreateSpeechRequest{Prompt: "x", Type: "opera"}},
		{"bad song mode", &models.CreateSpeechRequest{Prompt: "x", Type: "song", SongMode: testutil.StrPtr("acapella")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateRequest(context.Background(), tt.in)
			require.Error(t, err)
			assert.True(t, utils.IsValidation(err), "got %v", err)
		})
	}

	assert.Zero(t, testutil.CountRows(t, gdb, &models.SpeechRequest{}))
}

func TestCreateRequest_AllTypesAccepted(t *testing.T) {
	svc, _, _ := newSpeechFixture(t)

	for _, typ := range []models.RequestType{
		models.RequestTypeTextToSpeech,
		models.RequestTypeCreateAnything,
		models.RequestTypeSong,
		models.RequestTypePodcast,
		models.RequestTypeStory,
	} {
		got, err := svc.CreateRequest(context.Background(), &models.CreateSpeechRequest{Prompt: "p", Type: string(typ)})
		require.NoError(t, err, typ)
		assert.Equal(t, typ, got.Type)
	}
}
