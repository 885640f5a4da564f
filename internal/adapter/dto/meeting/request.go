package meeting

// UploadMeetingRequest is the body for POST /v1/meetings/upload
type UploadMeetingRequest struct {
	Title      string `json:"title" validate:"required,min=1"`
	Transcript string `json:"transcript" validate:"required,min=10"`
	UploadedBy string `json:"uploaded_by" validate:"omitempty,email"`
}
