//go:build unit
// +build unit

package models

import (
	"testing"
	"time"

	"github.com/CrazyPrash007/Multilingual-Note-Taking/internal/domain/meetings"
	"github.com/stretchr/testify/assert"
)

func TestMeetingModel_ToDomain(t *testing.T) {
	meetingModel := &MeetingModel{
		ID:              "test-id",
		DateTimeCreated: time.Now(),
		Title:           "Daily standup",
		Language:        "en",
		AudioName:       "standup.wav",
		AudioPath:       "uploads/abc-standup.wav",
		Size:            2048,
		Transcript:      "We discussed the release.",
		Translation:     "Hablamos del lanzamiento.",
	}

	meetingMeta := meetingModel.ToDomain()

	assert.Equal(t, meetingModel.ID, meetingMeta.ID)
	assert.Equal(t, meetingModel.DateTimeCreated, meetingMeta.DateTimeCreated)
	assert.Equal(t, meetingModel.Title, meetingMeta.Title)
	assert.Equal(t, meetingModel.Language, meetingMeta.Language)
	assert.Equal(t, meetingModel.AudioName, meetingMeta.AudioName)
	assert.Equal(t, meetingModel.AudioPath, meetingMeta.AudioPath)
	assert.Equal(t, meetingModel.Size, meetingMeta.Size)
	assert.Equal(t, meetingModel.Transcript, meetingMeta.Transcript)
	assert.Equal(t, meetingModel.Translation, meetingMeta.Translation)
}

func TestMeetingModel_FromDomain(t *testing.T) {
	meetingMeta := &meetings.MeetingMeta{
		ID:              "test-id",
		DateTimeCreated: time.Now(),
		Title:           "Daily standup",
		Language:        "en",
		AudioName:       "standup.wav",
		AudioPath:       "uploads/abc-standup.wav",
		Size:            2048,
	}

	meetingModel := &MeetingModel{}
	meetingModel.FromDomain(meetingMeta)

	assert.Equal(t, meetingMeta.ID, meetingModel.ID)
	assert.Equal(t, meetingMeta.DateTimeCreated, meetingModel.DateTimeCreated)
	assert.Equal(t, meetingMeta.Title, meetingModel.Title)
	assert.Equal(t, meetingMeta.Language, meetingModel.Language)
	assert.Equal(t, meetingMeta.AudioName, meetingModel.AudioName)
	assert.Equal(t, meetingMeta.AudioPath, meetingModel.AudioPath)
	assert.Equal(t, meetingMeta.Size, meetingModel.Size)
	assert.Empty(t, meetingModel.Transcript)
	assert.Empty(t, meetingModel.Translation)
}

func TestMeetingModel_TableName(t *testing.T) {
	assert.Equal(t, "meetings", MeetingModel{}.TableName())
}
