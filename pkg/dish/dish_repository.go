package dish

import (
	"context"

	"TasteTrail-Backend/entities"

	"gorm.io/gorm"
)

type (
	DishRepository interface {
		FindActiveByID(ctx context.Context, id string) (*entities.Dish, error)
		FindDeletedByID(ctx context.Context, id string) (*entities.Dish, error)
		Create(ctx context.Context, dish *entities.Dish) error
		Update(ctx context.Context, dish *entities.Dish) error
		SoftDelete(ctx context.Context, id string) error
		Restore(ctx context.Context, dish *entities.Dish) error
		ListByMerchant(ctx context.Context, merchantID string) ([]*entities.Dish, error)
		BulkSoftDelete(ctx context.Context, ids []string, createdBy string) (int64, error)
	}

	dishRepository struct {
		db *gorm.DB
	}
)

func NewDishRepository(db *gorm.DB) DishRepository {
	return &dishRepository{db: db}
}

func (r *dishRepository) FindActiveByID(ctx context.Context, id string) (*entities.Dish, error) {
	var dish entities.Dish
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&dish).Error; err != nil {
		return nil, err
	}
	return &dish, nil
}

func (r *dishRepository) FindDeletedByID(ctx context.Context, id string) (*entities.Dish, error) {
	var dish entities.Dish
	if err := r.db.WithContext(ctx).Unscoped().
		Where("id = ? AND deleted_at IS NOT NULL", id).
		First(&dish).Error; err != nil {
		return nil, err
	}
	return &dish, nil
}

func (r *dishRepository) Create(ctx context.Context, dish *entities.Dish) error {
	return r.db.WithContext(ctx).Create(dish).Error
}

func (r *dishRepository) Update(ctx context.Context, dish *entities.Dish) error {
	return r.db.WithContext(ctx).Save(dish).Error
}

func (r *dishRepository) SoftDelete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Dish{}).Error
}

func (r *dishRepository) Restore(ctx context.Context, dish *entities.Dish) error {
	return r.db.WithContext(ctx).Unscoped().Model(dish).
		Updates(map[string]interface{}{"deleted_at": nil}).Error
}

func (r *dishRepository) ListByMerchant(ctx context.Context, merchantID string) ([]*entities.Dish, error) {
	var dishes []*entities.Dish
	if err := r.db.WithContext(ctx).
		Where("merchant_id = ?", merchantID).
		Order("created_at desc").
		Find(&dishes).Error; err != nil {
		return nil, err
	}
	return dishes, nil
}

func (r *dishRepository) BulkSoftDelete(ctx context.Context, ids []string, createdBy string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id IN ? AND created_by = ?", ids, createdBy).
		Delete(&entities.Dish{})
	return res.RowsAffected, res.Error
}
