package models

import (
	"time"

	"github.com/CrazyPrash007/Multilingual-Note-Taking/internal/domain/meetings"
)

// MeetingModel is the GORM database model for meetings (infrastructure concern)
type MeetingModel struct {
	ID              string    `gorm:"primaryKey;type:uuid"`
	DateTimeCreated time.Time `gorm:"not null"`
	Title           string    `gorm:"not null;type:varchar(255)"`
	Language        string    `gorm:"not null;index;type:varchar(35)"`
	AudioName       string    `gorm:"not null;type:varchar(255)"`
	AudioPath       string    `gorm:"not null;type:varchar(1024)"`
	Size            int64     `gorm:"not null"`
	Transcript      string    `gorm:"type:text"`
	Translation     string    `gorm:"type:text"`
}

// TableName specifies the table name for GORM
func (MeetingModel) TableName() string {
	return "meetings"
}

// ToDomain converts GORM model to domain entity
func (m *MeetingModel) ToDomain() *meetings.MeetingMeta {
	return &meetings.MeetingMeta{
		ID:              m.ID,
		DateTimeCreated: m.DateTimeCreated,
		Title:           m.Title,
		Language:        m.Language,
		AudioName:       m.AudioName,
		AudioPath:       m.AudioPath,
		Size:            m.Size,
		Transcript:      m.Transcript,
		Translation:     m.Translation,
	}
}

// FromDomain converts domain entity to GORM model
func (m *MeetingModel) FromDomain(meeting *meetings.MeetingMeta) {
	m.ID = meeting.ID
	m.DateTimeCreated = meeting.DateTimeCreated
	m.Title = meeting.Title
	m.Language = meeting.Language
	m.AudioName = meeting.AudioName
	m.AudioPath = meeting.AudioPath
	m.Size = meeting.Size
	m.Transcript = meeting.Transcript
	m.Translation = meeting.Translation
}
