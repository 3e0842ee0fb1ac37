package entities

import "time"

type ProjectFile struct {
	ID          string    `json:"id"`
	ProjectID   string    `json:"project_id"`
	UploaderID  string    `json:"uploader_id"`
	FileName    string    `json:"file_name"`
	URL         string    `json:"url"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	CreatedAt   time.Time `json:"created_at"`
}

// FileUpload is an upload request before it reaches storage.
type FileUpload struct {
	FileName    string
	ContentType string
	Body        []byte
}
