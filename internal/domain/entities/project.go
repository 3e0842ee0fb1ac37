package entities

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

// ProjectStatus is the canonical lifecycle status of a project.
//
// Stored rows may carry legacy spellings ("active", "review_samples", "QUEUED").
// ParseProjectStatus is the only place those are interpreted.
type ProjectStatus string

const (
	ProjectStatusPending              ProjectStatus = "pending"
	ProjectStatusQueued               ProjectStatus = "queued"
	ProjectStatusAssigned             ProjectStatus = "assigned"
	ProjectStatusChatNegotiation      ProjectStatus = "chat_negotiation"
	ProjectStatusPendingAgreement     ProjectStatus = "pending_agreement"
	ProjectStatusPendingDownPayment   ProjectStatus = "pending_down_payment"
	ProjectStatusInProgress           ProjectStatus = "in_progress"
	ProjectStatusReadyForReview       ProjectStatus = "ready_for_review"
	ProjectStatusApproved             ProjectStatus = "approved"
	ProjectStatusAwaitingFinalPayment ProjectStatus = "awaiting_final_payment"
	ProjectStatusAwaitingPayout       ProjectStatus = "awaiting_payout"
	ProjectStatusCompleted            ProjectStatus = "completed"
	ProjectStatusCancelled            ProjectStatus = "cancelled"
	ProjectStatusFlagged              ProjectStatus = "flagged"
)

// AllProjectStatuses lists every canonical status in lifecycle order.
var AllProjectStatuses = []ProjectStatus{
	ProjectStatusPending,
	ProjectStatusQueued,
	ProjectStatusAssigned,
	ProjectStatusChatNegotiation,
	ProjectStatusPendingAgreement,
	ProjectStatusPendingDownPayment,
	ProjectStatusInProgress,
	ProjectStatusReadyForReview,
	ProjectStatusApproved,
	ProjectStatusAwaitingFinalPayment,
	ProjectStatusAwaitingPayout,
	ProjectStatusCompleted,
	ProjectStatusCancelled,
	ProjectStatusFlagged,
}

var statusAliases = map[string]ProjectStatus{
	"active":         ProjectStatusInProgress,
	"work_started":   ProjectStatusInProgress,
	"review":         ProjectStatusReadyForReview,
	"review_samples": ProjectStatusReadyForReview,
}

// ErrUnknownProjectStatus is returned for strings outside the status set.
var ErrUnknownProjectStatus = errors.New("unknown project status")

// ParseProjectStatus normalizes a stored or user supplied status string.
func ParseProjectStatus(raw string) (ProjectStatus, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	if alias, ok := statusAliases[v]; ok {
		return alias, nil
	}
	for _, s := range AllProjectStatuses {
		if string(s) == v {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownProjectStatus, raw)
}

// StoredSpellings returns s plus every legacy spelling that normalizes to it,
// each in lower and upper case, for conditions evaluated against raw stored
// values. Mixed-case rows are only recognized on read.
func (s ProjectStatus) StoredSpellings() []string {
	lower := []string{string(s)}
	for legacy, canonical := range statusAliases {
		if canonical == s {
			lower = append(lower, legacy)
		}
	}
	sort.Strings(lower[1:])
	out := make([]string, 0, 2*len(lower))
	out = append(out, lower...)
	for _, v := range lower {
		out = append(out, strings.ToUpper(v))
	}
	return out
}

// IsTerminal reports whether no further transition may leave s.
func (s ProjectStatus) IsTerminal() bool {
	switch s {
	case ProjectStatusCompleted, ProjectStatusCancelled, ProjectStatusFlagged:
		return true
	}
	return false
}

// DisplayName is the human label shown on dashboards and in system messages.
func (s ProjectStatus) DisplayName() string {
	switch s {
	case ProjectStatusQueued:
		return "Curating expert team"
	case ProjectStatusPendingDownPayment:
		return "Awaiting deposit"
	case ProjectStatusReadyForReview:
		return "Ready for review"
	case ProjectStatusAwaitingFinalPayment:
		return "Awaiting final payment"
	}
	words := strings.Split(string(s), "_")
	if len(words) > 0 && words[0] != "" {
		words[0] = strings.ToUpper(words[0][:1]) + words[0][1:]
	}
	return strings.Join(words, " ")
}

// StatusGroup is a dashboard filter bucket over ProjectStatus.
type StatusGroup string

const (
	StatusGroupPending    StatusGroup = "pending"
	StatusGroupInProgress StatusGroup = "in_progress"
	StatusGroupReview     StatusGroup = "review"
	StatusGroupCompleted  StatusGroup = "completed"
	StatusGroupFlagged    StatusGroup = "flagged"
)

var statusGroups = map[StatusGroup][]ProjectStatus{
	StatusGroupPending: {
		ProjectStatusPending,
		ProjectStatusQueued,
		ProjectStatusAssigned,
		ProjectStatusChatNegotiation,
		ProjectStatusPendingAgreement,
		ProjectStatusPendingDownPayment,
	},
	StatusGroupInProgress: {ProjectStatusInProgress},
	StatusGroupReview:     {ProjectStatusReadyForReview, ProjectStatusApproved, ProjectStatusAwaitingFinalPayment},
	StatusGroupCompleted:  {ProjectStatusAwaitingPayout, ProjectStatusCompleted},
	StatusGroupFlagged:    {ProjectStatusFlagged, ProjectStatusCancelled},
}

// ParseStatusGroup accepts a group name; empty means "no filter".
func ParseStatusGroup(raw string) (StatusGroup, bool) {
	g := StatusGroup(strings.ToLower(strings.TrimSpace(raw)))
	if g == "" {
		return "", true
	}
	_, ok := statusGroups[g]
	return g, ok
}

// Statuses returns the member statuses of g.
func (g StatusGroup) Statuses() []ProjectStatus {
	return append([]ProjectStatus(nil), statusGroups[g]...)
}

// Group returns the dashboard bucket of s.
func (s ProjectStatus) Group() StatusGroup {
	for g, members := range statusGroups {
		for _, m := range members {
			if m == s {
				return g
			}
		}
	}
	return ""
}

type ServiceCategory string

const (
	ServiceCategoryGraphicDesign ServiceCategory = "graphic_design"
	ServiceCategoryWebDesign     ServiceCategory = "web_design"
	ServiceCategoryPrinting      ServiceCategory = "printing"
)

func (c ServiceCategory) Valid() bool {
	switch c {
	case ServiceCategoryGraphicDesign, ServiceCategoryWebDesign, ServiceCategoryPrinting:
		return true
	}
	return false
}

type WebScope string

const (
	WebScopePrototype WebScope = "prototype"
	WebScopeFullSite  WebScope = "full_site"
)

// Project is one creative engagement between a client and at most one worker.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI client_id-index, worker_id-index, status-index
type Project struct {
	ID             string          `json:"id"`
	ClientID       string          `json:"client_id"`
	WorkerID       string          `json:"worker_id,omitempty"`
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	Category       ServiceCategory `json:"category"`
	Status         ProjectStatus   `json:"status"`
	WebScope       WebScope        `json:"web_scope,omitempty"`
	PrintItem      string          `json:"print_item,omitempty"`
	PrintQuantity  int             `json:"print_quantity,omitempty"`
	AttachmentURLs []string        `json:"attachment_urls,omitempty"`
	ConversationID string          `json:"conversation_id,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// IsParticipant reports whether userID is the project's client or assigned worker.
func (p Project) IsParticipant(userID string) bool {
	return userID != "" && (p.ClientID == userID || p.WorkerID == userID)
}
