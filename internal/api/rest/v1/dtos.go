package v1

import "time"

// ErrorResponse is the JSON body returned on request failures
type ErrorResponse struct {
	Message *string `json:"message,omitempty"`
}

// InfoResponse is the JSON body returned for informational results
type InfoResponse struct {
	Message *string `json:"message,omitempty"`
}

// MeetingMetaResponse is the JSON representation of meeting metadata
type MeetingMetaResponse struct {
	ID              string    `json:"id"`
	DateTimeCreated time.Time `json:"dateTimeCreated"`
	Title           string    `json:"title"`
	Language        string    `json:"language"`
	AudioName       string    `json:"audioName"`
	Size            int64     `json:"size"`
	Transcript      string    `json:"transcript,omitempty"`
	Translation     string    `json:"translation,omitempty"`
}

// DocumentMetaResponse is the JSON representation of exported document metadata
type DocumentMetaResponse struct {
	ID              string    `json:"id"`
	MeetingID       string    `json:"meetingId"`
	DateTimeCreated time.Time `json:"dateTimeCreated"`
	Name            string    `json:"name"`
	Size            int64     `json:"size"`
	Format          string    `json:"format"`
}

// NotesUpdateRequest carries a transcript/translation update. Absent fields
// are left unchanged.
type NotesUpdateRequest struct {
	Transcript  *string `json:"transcript"`
	Translation *string `json:"translation"`
}

// HealthResponse is the JSON body returned by the health endpoint
type HealthResponse struct {
	Status        string `json:"status"`
	DatabasePath  string `json:"databasePath"`
	DatabaseSize  int64  `json:"databaseSizeBytes"`
	MeetingCount  int64  `json:"meetingCount"`
	DocumentCount int64  `json:"documentCount"`
	Integrity     string `json:"integrity"`
}
