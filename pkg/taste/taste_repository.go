package taste

import (
	"context"

	"TasteTrail-Backend/entities"
	"TasteTrail-Backend/pkg/aggregate"

	"gorm.io/gorm"
)

type (
	TasteRepository interface {
		FindActiveByID(ctx context.Context, id string) (*entities.Taste, error)
		FindByIDIncludingDeleted(ctx context.Context, id string) (*entities.Taste, error)
		FindActiveByUserDish(ctx context.Context, userID, dishID string) (*entities.Taste, error)
		FindDeletedByUserDish(ctx context.Context, userID, dishID string) (*entities.Taste, error)
		Create(ctx context.Context, taste *entities.Taste) error
		Update(ctx context.Context, taste *entities.Taste) error
		SoftDelete(ctx context.Context, taste *entities.Taste) error
		Restore(ctx context.Context, taste *entities.Taste) error
		ListActiveDishIDsByUser(ctx context.Context, userID string, dishIDs []string) ([]string, error)
		Transaction(ctx context.Context, fn func(repo TasteRepository, agg aggregate.AggregateRepository) error) error
	}

	tasteRepository struct {
		db *gorm.DB
	}
)

func NewTasteRepository(db *gorm.DB) TasteRepository {
	return &tasteRepository{db: db}
}

func (r *tasteRepository) FindActiveByID(ctx context.Context, id string) (*entities.Taste, error) {
	var taste entities.Taste
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&taste).Error; err != nil {
		return nil, err
	}
	return &taste, nil
}

func (r *tasteRepository) FindByIDIncludingDeleted(ctx context.Context, id string) (*entities.Taste, error) {
	var taste entities.Taste
	if err := r.db.WithContext(ctx).Unscoped().Where("id = ?", id).First(&taste).Error; err != nil {
		return nil, err
	}
	return &taste, nil
}

func (r *tasteRepository) FindActiveByUserDish(ctx context.Context, userID, dishID string) (*entities.Taste, error) {
	var taste entities.Taste
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND dish_id = ?", userID, dishID).
		First(&taste).Error; err != nil {
		return nil, err
	}
	return &taste, nil
}

func (r *tasteRepository) FindDeletedByUserDish(ctx context.Context, userID, dishID string) (*entities.Taste, error) {
	var taste entities.Taste
	if err := r.db.WithContext(ctx).Unscoped().
		Where("user_id = ? AND dish_id = ? AND deleted_at IS NOT NULL", userID, dishID).
		First(&taste).Error; err != nil {
		return nil, err
	}
	return &taste, nil
}

func (r *tasteRepository) Create(ctx context.Context, taste *entities.Taste) error {
	return r.db.WithContext(ctx).Create(taste).Error
}

func (r *tasteRepository) Update(ctx context.Context, taste *entities.Taste) error {
	return r.db.WithContext(ctx).Save(taste).Error
}

func (r *tasteRepository) SoftDelete(ctx context.Context, taste *entities.Taste) error {
	return r.db.WithContext(ctx).Delete(taste).Error
}

// Restore clears the deletion mark. It must go through Unscoped since the
// default scope cannot reach the deleted row; content fields are restored
// separately by the caller via Update.
func (r *tasteRepository) Restore(ctx context.Context, taste *entities.Taste) error {
	if err := r.db.WithContext(ctx).Unscoped().Model(taste).
		Update("deleted_at", nil).Error; err != nil {
		return err
	}
	taste.DeletedAt = gorm.DeletedAt{}
	return nil
}

func (r *tasteRepository) ListActiveDishIDsByUser(ctx context.Context, userID string, dishIDs []string) ([]string, error) {
	var ids []string
	if len(dishIDs) == 0 {
		return ids, nil
	}
	if err := r.db.WithContext(ctx).Model(&entities.Taste{}).
		Where("user_id = ? AND dish_id IN ?", userID, dishIDs).
		Pluck("dish_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// Transaction runs fn atomically. The aggregate repository handed to fn is
// bound to the same transaction, so counter recomputations see fn's
// uncommitted writes and roll back together with them.
func (r *tasteRepository) Transaction(ctx context.Context, fn func(repo TasteRepository, agg aggregate.AggregateRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&tasteRepository{db: tx}, aggregate.NewAggregateRepository(tx))
	})
}
