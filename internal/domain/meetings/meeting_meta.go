package meetings

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// MeetingMeta entity
type MeetingMeta struct {
	ID              string    `validate:"required,uuid4"`
	DateTimeCreated time.Time `validate:"required"`
	Title           string    `validate:"required,min=1,max=255"`
	Language        string    `validate:"required,min=2,max=35"`
	AudioName       string    `validate:"required,min=1,max=255"`
	AudioPath       string    `validate:"required,min=1,max=1024"`
	Size            int64     `validate:"required,min=1"`
	Transcript      string    `validate:"omitempty"`
	Translation     string    `validate:"omitempty"`
}

// Validate for validating MeetingMeta struct
func (m *MeetingMeta) Validate() error {
	validate := validator.New()

	err := validate.Struct(m)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}

// MeetingMetaQuery represents filter, sorting and pagination options when
// listing meeting metadata
type MeetingMetaQuery struct {
	Title           string    `validate:"omitempty,max=255"`
	Language        string    `validate:"omitempty,max=35"`
	DateTimeCreated time.Time `validate:"omitempty"`

	SortBy    string `validate:"omitempty,oneof=title language size date_time_created"`
	SortOrder string `validate:"omitempty,oneof=asc desc"`
	Limit     int    `validate:"omitempty,min=1,max=500"`
	Offset    int    `validate:"omitempty,min=0"`
}

// NewMeetingMetaQuery creates a query with default pagination
func NewMeetingMetaQuery() *MeetingMetaQuery {
	return &MeetingMetaQuery{
		Limit:  100,
		Offset: 0,
	}
}

// Validate for validating MeetingMetaQuery struct
func (q *MeetingMetaQuery) Validate() error {
	validate := validator.New()

	if err := validate.Struct(q); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

// NotesUpdate carries a transcript and translation update for a meeting. Nil
// fields are left unchanged.
type NotesUpdate struct {
	Transcript  *string
	Translation *string
}
