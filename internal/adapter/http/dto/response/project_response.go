package response

import (
	"time"

	"plaiz_studio/internal/domain/entities"
	"plaiz_studio/internal/usecase"
)

type ProjectResponse struct {
	ID             string    `json:"id"`
	ClientID       string    `json:"client_id"`
	WorkerID       string    `json:"worker_id,omitempty"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Category       string    `json:"category"`
	Status         string    `json:"status"`
	StatusLabel    string    `json:"status_label"`
	StatusGroup    string    `json:"status_group"`
	WebScope       string    `json:"web_scope,omitempty"`
	PrintItem      string    `json:"print_item,omitempty"`
	PrintQuantity  int       `json:"print_quantity,omitempty"`
	AttachmentURLs []string  `json:"attachment_urls,omitempty"`
	ConversationID string    `json:"conversation_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func FromProject(p entities.Project) ProjectResponse {
	return ProjectResponse{
		ID:             p.ID,
		ClientID:       p.ClientID,
		WorkerID:       p.WorkerID,
		Title:          p.Title,
		Description:    p.Description,
		Category:       string(p.Category),
		Status:         string(p.Status),
		StatusLabel:    p.Status.DisplayName(),
		StatusGroup:    string(p.Status.Group()),
		WebScope:       string(p.WebScope),
		PrintItem:      p.PrintItem,
		PrintQuantity:  p.PrintQuantity,
		AttachmentURLs: p.AttachmentURLs,
		ConversationID: p.ConversationID,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func FromProjects(list []entities.Project) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(list))
	for _, p := range list {
		out = append(out, FromProject(p))
	}
	return out
}

// TransitionResponse is returned by every lifecycle operation.
type TransitionResponse struct {
	Project   ProjectResponse    `json:"project"`
	Agreement *AgreementResponse `json:"agreement,omitempty"`
	Payment   *PaymentResponse   `json:"payment,omitempty"`
	Payout    *PayoutResponse    `json:"payout,omitempty"`
	File      *FileResponse      `json:"file,omitempty"`
	Advanced  bool               `json:"advanced"`
}

func FromTransition(r usecase.TransitionResult) TransitionResponse {
	out := TransitionResponse{Project: FromProject(r.Project), Advanced: r.Advanced}
	if r.Agreement != nil {
		a := FromAgreement(*r.Agreement)
		out.Agreement = &a
	}
	if r.Payment != nil {
		p := FromPayment(*r.Payment)
		out.Payment = &p
	}
	if r.Payout != nil {
		po := FromPayout(*r.Payout)
		out.Payout = &po
	}
	if r.File != nil {
		f := FromFile(usecase.FileView{ProjectFile: *r.File})
		out.File = &f
	}
	return out
}
