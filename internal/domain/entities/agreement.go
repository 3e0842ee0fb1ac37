package entities

import "time"

// Agreement is one price proposal for a project and its two-party acceptance.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI project_id-index (sort: created_at)
type Agreement struct {
	ID               string    `json:"id"`
	ProjectID        string    `json:"project_id"`
	ProposedBy       string    `json:"proposed_by"`
	Amount           int64     `json:"amount"`
	ClientAgreed     bool      `json:"client_agreed"`
	FreelancerAgreed bool      `json:"freelancer_agreed"`
	Declined         bool      `json:"declined"`
	Deliverables     string    `json:"deliverables,omitempty"`
	Timeline         string    `json:"timeline,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// IsFinal reports whether both parties accepted.
func (a Agreement) IsFinal() bool {
	return a.ClientAgreed && a.FreelancerAgreed
}

// IsResolved reports whether the agreement no longer awaits a decision.
func (a Agreement) IsResolved() bool {
	return a.IsFinal() || a.Declined
}

// AcceptedBy reports whether role has already accepted.
func (a Agreement) AcceptedBy(role Role) bool {
	switch role {
	case RoleClient:
		return a.ClientAgreed
	case RoleWorker:
		return a.FreelancerAgreed
	}
	return false
}

// Newer orders agreements for the "most recent is active" rule.
func (a Agreement) Newer(b Agreement) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.ID > b.ID
}
