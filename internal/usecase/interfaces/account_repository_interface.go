package interfaces

import (
	"context"
	"plaiz_studio/internal/domain/entities"
)

type IBankAccountRepository interface {
	Upsert(ctx context.Context, b entities.BankAccount) (entities.BankAccount, error)
	GetByWorkerID(ctx context.Context, workerID string) (entities.BankAccount, error)
}
