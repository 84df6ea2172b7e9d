package merchant

import (
	"context"

	"TasteTrail-Backend/entities"

	"gorm.io/gorm"
)

type (
	MerchantRepository interface {
		FindByID(ctx context.Context, id string) (*entities.Merchant, error)
		Update(ctx context.Context, merchant *entities.Merchant) error
	}

	merchantRepository struct {
		db *gorm.DB
	}
)

func NewMerchantRepository(db *gorm.DB) MerchantRepository {
	return &merchantRepository{db: db}
}

func (r *merchantRepository) FindByID(ctx context.Context, id string) (*entities.Merchant, error) {
	var merchant entities.Merchant
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&merchant).Error; err != nil {
		return nil, err
	}
	return &merchant, nil
}

func (r *merchantRepository) Update(ctx context.Context, merchant *entities.Merchant) error {
	return r.db.WithContext(ctx).Save(merchant).Error
}
