package interfaces

import (
	"context"
	"plaiz_studio/internal/domain/entities"
)

// IAgreementRepository abstracts persistence for Agreement.
//
// GetByID must be a strongly consistent read: AcceptPrice re-fetches through it
// after its own write before deciding whether the project advances.
// SetAcceptance writes only the caller's flag and never touches the other one.

type IAgreementRepository interface {
	Create(ctx context.Context, a entities.Agreement) (entities.Agreement, error)
	GetByID(ctx context.Context, id string) (entities.Agreement, error)
	ListByProjectID(ctx context.Context, projectID string) ([]entities.Agreement, error)
	SetAcceptance(ctx context.Context, id string, role entities.Role) (entities.Agreement, error)
	MarkDeclined(ctx context.Context, id string) (entities.Agreement, bool, error)
}
