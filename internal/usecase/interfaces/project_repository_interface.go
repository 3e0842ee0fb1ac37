package interfaces

import (
	"context"
	"plaiz_studio/internal/domain/entities"
)

// IProjectRepository abstracts persistence for Project.
//
// Status writes are conditional: UpdateStatus only applies when the stored
// status is one of from, and reports whether it applied. This is what makes a
// transition happen exactly once under concurrent callers.

type IProjectRepository interface {
	Create(ctx context.Context, p entities.Project) (entities.Project, error)
	GetByID(ctx context.Context, id string) (entities.Project, error)
	ListByClient(ctx context.Context, clientID string) ([]entities.Project, error)
	ListByWorker(ctx context.Context, workerID string) ([]entities.Project, error)
	ListByStatuses(ctx context.Context, statuses []entities.ProjectStatus) ([]entities.Project, error)
	UpdateStatus(ctx context.Context, id string, from []entities.ProjectStatus, to entities.ProjectStatus) (entities.Project, bool, error)
	AssignWorker(ctx context.Context, id, workerID string, from []entities.ProjectStatus) (entities.Project, bool, error)
}
