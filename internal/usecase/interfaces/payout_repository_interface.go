package interfaces

import (
	"context"
	"plaiz_studio/internal/domain/entities"
)

// IPayoutRepository abstracts persistence for Payout.
//
// The payout id equals the project id, which guarantees one payout per
// project. Create is idempotent: when the payout already exists it returns the
// stored one with created=false.

type IPayoutRepository interface {
	Create(ctx context.Context, p entities.Payout) (payout entities.Payout, created bool, err error)
	GetByID(ctx context.Context, id string) (entities.Payout, error)
	ListByWorker(ctx context.Context, workerID string) ([]entities.Payout, error)
	ListAll(ctx context.Context) ([]entities.Payout, error)
	SetTransferReference(ctx context.Context, id, reference string) (entities.Payout, error)
}
