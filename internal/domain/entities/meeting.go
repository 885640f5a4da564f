package entities

import "time"

// Meeting is an uploaded transcript awaiting or done with extraction.
// Processed flips to true exactly once, after extraction completes
// (successfully or with zero results); meetings are never deleted.
type Meeting struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Transcript string    `json:"transcript"`
	UploadedBy string    `json:"uploaded_by"`
	CreatedAt  time.Time `json:"created_at"`
	Processed  bool      `json:"processed"`
}

// NewMeeting creates an unprocessed meeting
func NewMeeting(id, title, transcript, uploadedBy string) *Meeting {
	if uploadedBy == "" {
		uploadedBy = "anonymous"
	}
	return &Meeting{
		ID:         id,
		Title:      title,
		Transcript: transcript,
		UploadedBy: uploadedBy,
		CreatedAt:  time.Now().UTC(),
		Processed:  false,
	}
}
