package response

import (
	"time"

	"plaiz_studio/internal/domain/entities"
	"plaiz_studio/internal/usecase"
)

type FileResponse struct {
	ID          string    `json:"id"`
	ProjectID   string    `json:"project_id"`
	UploaderID  string    `json:"uploader_id"`
	FileName    string    `json:"file_name"`
	URL         string    `json:"url,omitempty"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	Locked      bool      `json:"locked"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromFile(f usecase.FileView) FileResponse {
	return FileResponse{
		ID:          f.ID,
		ProjectID:   f.ProjectID,
		UploaderID:  f.UploaderID,
		FileName:    f.FileName,
		URL:         f.URL,
		ContentType: f.ContentType,
		Size:        f.Size,
		Locked:      f.Locked,
		CreatedAt:   f.CreatedAt,
	}
}

func FromFiles(list []usecase.FileView) []FileResponse {
	out := make([]FileResponse, 0, len(list))
	for _, f := range list {
		out = append(out, FromFile(f))
	}
	return out
}

type PortfolioResponse struct {
	ID        string    `json:"id"`
	WorkerID  string    `json:"worker_id"`
	ProjectID string    `json:"project_id,omitempty"`
	Title     string    `json:"title"`
	Category  string    `json:"category"`
	ImageURL  string    `json:"image_url"`
	Approved  bool      `json:"approved"`
	Featured  bool      `json:"featured"`
	CreatedAt time.Time `json:"created_at"`
}

func FromPortfolioItem(p entities.PortfolioItem) PortfolioResponse {
	return PortfolioResponse{
		ID:        p.ID,
		WorkerID:  p.WorkerID,
		ProjectID: p.ProjectID,
		Title:     p.Title,
		Category:  string(p.Category),
		ImageURL:  p.ImageURL,
		Approved:  p.Approved,
		Featured:  p.Featured,
		CreatedAt: p.CreatedAt,
	}
}

func FromPortfolioItems(list []entities.PortfolioItem) []PortfolioResponse {
	out := make([]PortfolioResponse, 0, len(list))
	for _, p := range list {
		out = append(out, FromPortfolioItem(p))
	}
	return out
}

type MessageResponse struct {
	ID        string    `json:"id"`
	ProjectID string    `json:"project_id"`
	SenderID  string    `json:"sender_id,omitempty"`
	System    bool      `json:"system"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

func FromMessages(list []entities.Message) []MessageResponse {
	out := make([]MessageResponse, 0, len(list))
	for _, m := range list {
		out = append(out, FromMessage(m))
	}
	return out
}

func FromMessage(m entities.Message) MessageResponse {
	return MessageResponse{
		ID:        m.ID,
		ProjectID: m.ProjectID,
		SenderID:  m.SenderID,
		System:    m.System,
		Body:      m.Body,
		CreatedAt: m.CreatedAt,
	}
}

type NotificationResponse struct {
	ID        string    `json:"id"`
	ProjectID string    `json:"project_id,omitempty"`
	Kind      string    `json:"kind"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

func FromNotifications(list []entities.Notification) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(list))
	for _, n := range list {
		out = append(out, NotificationResponse{
			ID:        n.ID,
			ProjectID: n.ProjectID,
			Kind:      n.Kind,
			Title:     n.Title,
			Body:      n.Body,
			Read:      n.Read,
			CreatedAt: n.CreatedAt,
		})
	}
	return out
}
