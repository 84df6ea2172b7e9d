package media

import (
	"context"

	"TasteTrail-Backend/entities"

	"gorm.io/gorm"
)

type (
	MediaRepository interface {
		Create(ctx context.Context, media *entities.Media) error
		FindByID(ctx context.Context, id string) (*entities.Media, error)
		ListByIDs(ctx context.Context, ids []string) ([]*entities.Media, error)
	}

	mediaRepository struct {
		db *gorm.DB
	}
)

func NewMediaRepository(db *gorm.DB) MediaRepository {
	return &mediaRepository{db: db}
}

func (r *mediaRepository) Create(ctx context.Context, media *entities.Media) error {
	return r.db.WithContext(ctx).Create(media).Error
}

func (r *mediaRepository) FindByID(ctx context.Context, id string) (*entities.Media, error) {
	var media entities.Media
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&media).Error; err != nil {
		return nil, err
	}
	return &media, nil
}

func (r *mediaRepository) ListByIDs(ctx context.Context, ids []string) ([]*entities.Media, error) {
	var medias []*entities.Media
	if len(ids) == 0 {
		return medias, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&medias).Error; err != nil {
		return nil, err
	}
	return medias, nil
}
