package dto

// CreateNoteRequest allows both fields to be omitted; the service
// fills in "Untitled" and empty content.
type CreateNoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type UpdateNoteRequest struct {
	Title   string `json:"title" binding:"notetitle"`
	Content string `json:"content"`
}
