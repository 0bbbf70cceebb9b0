//go:build unit
// +build unit

package documents

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func validDocument() *DocumentMeta {
	return &DocumentMeta{
		ID:              uuid.NewString(),
		MeetingID:       uuid.NewString(),
		DateTimeCreated: time.Now(),
		Name:            "weekly-sync.pdf",
		FilePath:        "exports/weekly-sync.pdf",
		Size:            2048,
		Format:          FormatPDF,
	}
}

func TestDocumentMetaValidation(t *testing.T) {
	tests := []struct {
		name          string
		mutate        func(*DocumentMeta)
		expectedError bool
	}{
		{
			name:          "valid document",
			mutate:        func(*DocumentMeta) {},
			expectedError: false,
		},
		{
			name:          "invalid meeting id",
			mutate:        func(d *DocumentMeta) { d.MeetingID = "abc" },
			expectedError: true,
		},
		{
			name:          "missing name",
			mutate:        func(d *DocumentMeta) { d.Name = "" },
			expectedError: true,
		},
		{
			name:          "unsupported format",
			mutate:        func(d *DocumentMeta) { d.Format = "docx" },
			expectedError: true,
		},
		{
			name:          "zero size",
			mutate:        func(d *DocumentMeta) { d.Size = 0 },
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			document := validDocument()
			tt.mutate(document)

			err := document.Validate()
			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDocumentMetaQueryValidation(t *testing.T) {
	query := NewDocumentMetaQuery()
	assert.NoError(t, query.Validate())

	query.MeetingID = uuid.NewString()
	query.SortBy = "date_time_created"
	query.SortOrder = "desc"
	assert.NoError(t, query.Validate())

	query.MeetingID = "not-a-uuid"
	assert.Error(t, query.Validate())
}
