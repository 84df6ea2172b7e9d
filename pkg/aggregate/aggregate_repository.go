package aggregate

import (
	"context"

	"TasteTrail-Backend/entities"

	"gorm.io/gorm"
)

type (
	AggregateRepository interface {
		CountActiveDishRecommendations(ctx context.Context, dishID string) (int64, error)
		SetDishRecommendedCount(ctx context.Context, dishID string, count int64) error
		CountActiveTasteLikes(ctx context.Context, tasteID string) (int64, error)
		SetTasteUsefulTotal(ctx context.Context, tasteID string, count int64) error
	}

	aggregateRepository struct {
		db *gorm.DB
	}
)

func NewAggregateRepository(db *gorm.DB) AggregateRepository {
	return &aggregateRepository{db: db}
}

// Soft-deleted rows are excluded by GORM's default scope. A plain "eaten"
// taste counts as a soft recommendation signal, so DEFAULT is included.
func (r *aggregateRepository) CountActiveDishRecommendations(ctx context.Context, dishID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Taste{}).
		Where("dish_id = ? AND recommend_state IN ?", dishID, []int{entities.RecommendYes, entities.RecommendDefault}).
		Count(&count).Error
	return count, err
}

func (r *aggregateRepository) SetDishRecommendedCount(ctx context.Context, dishID string, count int64) error {
	return r.db.WithContext(ctx).Model(&entities.Dish{}).
		Where("id = ?", dishID).
		UpdateColumn("taste_recommend_total", count).Error
}

func (r *aggregateRepository) CountActiveTasteLikes(ctx context.Context, tasteID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Like{}).
		Where("object_id = ? AND object_type = ?", tasteID, entities.ObjectTypeTaste).
		Count(&count).Error
	return count, err
}

func (r *aggregateRepository) SetTasteUsefulTotal(ctx context.Context, tasteID string, count int64) error {
	return r.db.WithContext(ctx).Unscoped().Model(&entities.Taste{}).
		Where("id = ?", tasteID).
		UpdateColumn("useful_total", count).Error
}
