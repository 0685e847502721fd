package service

import (
	"context"

	"github.com/yseddiki/ohIPlay/internal/domain"
	"github.com/yseddiki/ohIPlay/internal/service/ports"
)

type OfferingService struct {
	repo ports.OfferingRepo
}

func NewOfferingService(repo ports.OfferingRepo) *OfferingService {
	return &OfferingService{repo: repo}
}

func (s *OfferingService) GetByID(ctx context.Context, id string) (*domain.Offering, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *OfferingService) List(ctx context.Context) ([]*domain.Offering, error) {
	return s.repo.List(ctx)
}
