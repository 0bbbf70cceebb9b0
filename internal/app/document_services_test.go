//go:build unit
// +build unit

package app

import (
	"testing"
	"time"

	"github.com/CrazyPrash007/Multilingual-Note-Taking/internal/domain/meetings"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentName(t *testing.T) {
	tests := []struct {
		title    string
		expected string
	}{
		{"Daily standup", "Daily-standup.pdf"},
		{"  Weekly sync  ", "Weekly-sync.pdf"},
		{"Q3/Q4 planning!", "Q3Q4-planning.pdf"},
		{"", "meeting-notes.pdf"},
		{"###", "meeting-notes.pdf"},
		{"already_safe-name", "already_safe-name.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.expected, documentName(tt.title))
		})
	}
}

func TestRenderMeetingPDF(t *testing.T) {
	meeting := &meetings.MeetingMeta{
		ID:              "123",
		DateTimeCreated: time.Now(),
		Title:           "Daily standup",
		Language:        "en",
		AudioName:       "standup.wav",
		Transcript:      "We discussed the release.",
	}

	content, err := renderMeetingPDF(meeting)
	require.NoError(t, err)
	require.Greater(t, len(content), 4)
	assert.Equal(t, "%PDF", string(content[:4]))
}
