package interfaces

import (
	"context"
	"plaiz_studio/internal/domain/entities"
)

// IPaymentRepository abstracts persistence for client Payments.

type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	ListByProjectID(ctx context.Context, projectID string) ([]entities.Payment, error)
}
