package interfaces

import (
	"context"
	"plaiz_studio/internal/domain/entities"
)

type IPortfolioRepository interface {
	Create(ctx context.Context, item entities.PortfolioItem) (entities.PortfolioItem, error)
	GetByID(ctx context.Context, id string) (entities.PortfolioItem, error)
	List(ctx context.Context) ([]entities.PortfolioItem, error)
	SetFlags(ctx context.Context, id string, approved, featured *bool) (entities.PortfolioItem, error)
}
