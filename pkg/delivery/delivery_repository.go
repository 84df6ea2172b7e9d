package delivery

import (
	"context"

	"TasteTrail-Backend/entities"

	"gorm.io/gorm"
)

type (
	DeliveryRepository interface {
		ListActivePlatforms(ctx context.Context) ([]*entities.DeliveryPlatform, error)
		FindPlatformByName(ctx context.Context, name string) (*entities.DeliveryPlatform, error)
		CreatePlatform(ctx context.Context, platform *entities.DeliveryPlatform) error
	}

	deliveryRepository struct {
		db *gorm.DB
	}
)

func NewDeliveryRepository(db *gorm.DB) DeliveryRepository {
	return &deliveryRepository{db: db}
}

func (r *deliveryRepository) ListActivePlatforms(ctx context.Context) ([]*entities.DeliveryPlatform, error) {
	var platforms []*entities.DeliveryPlatform
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("name asc").
		Find(&platforms).Error; err != nil {
		return nil, err
	}
	return platforms, nil
}

func (r *deliveryRepository) FindPlatformByName(ctx context.Context, name string) (*entities.DeliveryPlatform, error) {
	var platform entities.DeliveryPlatform
	if err := r.db.WithContext(ctx).
		Where("name = ? AND is_active = ?", name, true).
		First(&platform).Error; err != nil {
		return nil, err
	}
	return &platform, nil
}

func (r *deliveryRepository) CreatePlatform(ctx context.Context, platform *entities.DeliveryPlatform) error {
	return r.db.WithContext(ctx).Create(platform).Error
}
