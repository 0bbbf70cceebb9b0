package documents

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// FormatPDF is the only document format currently produced by the exporter.
const FormatPDF = "pdf"

// DocumentMeta entity describing an exported meeting document
type DocumentMeta struct {
	ID              string    `validate:"required,uuid4"`
	MeetingID       string    `validate:"required,uuid4"`
	DateTimeCreated time.Time `validate:"required"`
	Name            string    `validate:"required,min=1,max=255"`
	FilePath        string    `validate:"required,min=1,max=1024"`
	Size            int64     `validate:"required,min=1"`
	Format          string    `validate:"required,oneof=pdf"`
}

// Validate for validating DocumentMeta struct
func (d *DocumentMeta) Validate() error {
	validate := validator.New()

	err := validate.Struct(d)
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

// DocumentMetaQuery represents filter, sorting and pagination options when
// listing document metadata
type DocumentMetaQuery struct {
	MeetingID       string    `validate:"omitempty,uuid4"`
	Name            string    `validate:"omitempty,max=255"`
	DateTimeCreated time.Time `validate:"omitempty"`

	SortBy    string `validate:"omitempty,oneof=name size date_time_created"`
	SortOrder string `validate:"omitempty,oneof=asc desc"`
	Limit     int    `validate:"omitempty,min=1,max=500"`
	Offset    int    `validate:"omitempty,min=0"`
}

// NewDocumentMetaQuery creates a query with default pagination
func NewDocumentMetaQuery() *DocumentMetaQuery {
	return &DocumentMetaQuery{
		Limit:  100,
		Offset: 0,
	}
}

// Validate for validating DocumentMetaQuery struct
func (q *DocumentMetaQuery) Validate() error {
	validate := validator.New()

	if err := validate.Struct(q); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}
