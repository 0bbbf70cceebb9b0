package models

import (
	"time"

	"github.com/CrazyPrash007/Multilingual-Note-Taking/internal/domain/documents"
)

// DocumentModel is the GORM database model for exported documents. The table
// keeps its historical name "pdfs".
type DocumentModel struct {
	ID              string    `gorm:"primaryKey;type:uuid"`
	MeetingID       string    `gorm:"not null;index;type:uuid"`
	DateTimeCreated time.Time `gorm:"not null"`
	Name            string    `gorm:"not null;type:varchar(255)"`
	FilePath        string    `gorm:"not null;type:varchar(1024)"`
	Size            int64     `gorm:"not null"`
	Format          string    `gorm:"not null;type:varchar(10)"`
}

// TableName specifies the table name for GORM
func (DocumentModel) TableName() string {
	return "pdfs"
}

// ToDomain converts GORM model to domain entity
func (m *DocumentModel) ToDomain() *documents.DocumentMeta {
	return &documents.DocumentMeta{
		ID:              m.ID,
		MeetingID:       m.MeetingID,
		DateTimeCreated: m.DateTimeCreated,
		Name:            m.Name,
		FilePath:        m.FilePath,
		Size:            m.Size,
		Format:          m.Format,
	}
}

// FromDomain converts domain entity to GORM model
func (m *DocumentModel) FromDomain(d *documents.DocumentMeta) {
	m.ID = d.ID
	m.MeetingID = d.MeetingID
	m.DateTimeCreated = d.DateTimeCreated
	m.Name = d.Name
	m.FilePath = d.FilePath
	m.Size = d.Size
	m.Format = d.Format
}
