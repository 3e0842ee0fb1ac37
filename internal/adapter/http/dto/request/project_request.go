package request

import (
	"strings"

	"plaiz_studio/internal/domain/entities"
	"plaiz_studio/internal/usecase"
)

// ProjectRequest is the client's creative brief.
type ProjectRequest struct {
	Title          string   `json:"title" binding:"required"`
	Description    string   `json:"description"`
	Category       string   `json:"category" binding:"required"`
	WebScope       string   `json:"web_scope"`
	PrintItem      string   `json:"print_item"`
	PrintQuantity  int      `json:"print_quantity"`
	AttachmentURLs []string `json:"attachment_urls"`
}

func (r ProjectRequest) ToInput() usecase.ProjectInput {
	return usecase.ProjectInput{
		Title:          strings.TrimSpace(r.Title),
		Description:    strings.TrimSpace(r.Description),
		Category:       entities.ServiceCategory(strings.ToLower(strings.TrimSpace(r.Category))),
		WebScope:       entities.WebScope(strings.ToLower(strings.TrimSpace(r.WebScope))),
		PrintItem:      strings.TrimSpace(r.PrintItem),
		PrintQuantity:  r.PrintQuantity,
		AttachmentURLs: r.AttachmentURLs,
	}
}

type AssignWorkerRequest struct {
	WorkerID string `json:"worker_id" binding:"required"`
}

// ReasonRequest is the optional body of cancel and flag.
type ReasonRequest struct {
	Reason string `json:"reason"`
}

type MessageRequest struct {
	Body string `json:"body" binding:"required"`
}

// FlagValueRequest sets a boolean moderation flag. A missing value means true.
type FlagValueRequest struct {
	Value *bool `json:"value"`
}

func (r FlagValueRequest) Resolve() bool {
	if r.Value == nil {
		return true
	}
	return *r.Value
}
