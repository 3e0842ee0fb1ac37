package entities

import "time"

type PortfolioItem struct {
	ID        string          `json:"id"`
	WorkerID  string          `json:"worker_id"`
	ProjectID string          `json:"project_id,omitempty"`
	Title     string          `json:"title"`
	Category  ServiceCategory `json:"category"`
	ImageURL  string          `json:"image_url"`
	Approved  bool            `json:"approved"`
	Featured  bool            `json:"featured"`
	CreatedAt time.Time       `json:"created_at"`
}
