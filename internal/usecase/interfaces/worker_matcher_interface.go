package interfaces

import (
	"context"
	"plaiz_studio/internal/domain/entities"
)

// IWorkerMatcher picks a worker for a new project (match_worker_to_project).
// An empty id with a nil error means no worker is available. Match reserves
// capacity on the worker; Release gives it back when the project was never
// stored.

type IWorkerMatcher interface {
	Match(ctx context.Context, skill entities.ServiceCategory) (string, error)
	Release(ctx context.Context, workerID string) error
}
