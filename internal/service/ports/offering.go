package ports

import (
	"context"

	"github.com/yseddiki/ohIPlay/internal/domain"
)

type OfferingRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Offering, error)
	List(ctx context.Context) ([]*domain.Offering, error)
}
