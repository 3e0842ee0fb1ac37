package interfaces

import (
	"context"
	"plaiz_studio/internal/domain/entities"
)

type IProjectFileRepository interface {
	Create(ctx context.Context, f entities.ProjectFile) (entities.ProjectFile, error)
	ListByProjectID(ctx context.Context, projectID string) ([]entities.ProjectFile, error)
}
