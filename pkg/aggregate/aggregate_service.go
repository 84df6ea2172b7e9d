package aggregate

import (
	"context"
)

type (
	// AggregateService recomputes denormalized counters from scratch. Full
	// recomputation keeps the counters correct across restores and
	// concurrent edits, and makes every call idempotent and safe to race.
	AggregateService interface {
		RecountDishRecommendations(ctx context.Context, dishID string) error
		RecountTasteUseful(ctx context.Context, tasteID string) error
		WithRepository(repo AggregateRepository) AggregateService
	}

	aggregateService struct {
		aggregateRepository AggregateRepository
	}
)

func NewAggregateService(aggregateRepository AggregateRepository) AggregateService {
	return &aggregateService{aggregateRepository: aggregateRepository}
}

// WithRepository rebinds the service to another repository, typically one
// scoped to an open transaction so the recount commits with the mutation
// that triggered it.
func (s *aggregateService) WithRepository(repo AggregateRepository) AggregateService {
	return &aggregateService{aggregateRepository: repo}
}

func (s *aggregateService) RecountDishRecommendations(ctx context.Context, dishID string) error {
	count, err := s.aggregateRepository.CountActiveDishRecommendations(ctx, dishID)
	if err != nil {
		return err
	}
	return s.aggregateRepository.SetDishRecommendedCount(ctx, dishID, count)
}

func (s *aggregateService) RecountTasteUseful(ctx context.Context, tasteID string) error {
	count, err := s.aggregateRepository.CountActiveTasteLikes(ctx, tasteID)
	if err != nil {
		return err
	}
	return s.aggregateRepository.SetTasteUsefulTotal(ctx, tasteID, count)
}
