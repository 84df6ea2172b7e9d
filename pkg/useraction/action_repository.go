package useraction

import (
	"context"

	"TasteTrail-Backend/entities"

	"gorm.io/gorm"
)

type (
	ActionRepository interface {
		FindActiveCollection(ctx context.Context, userID, objectID, objectType string) (*entities.Collection, error)
		FindDeletedCollection(ctx context.Context, userID, objectID, objectType string) (*entities.Collection, error)
		CreateCollection(ctx context.Context, collection *entities.Collection) error
		SoftDeleteCollection(ctx context.Context, collection *entities.Collection) error
		RestoreCollection(ctx context.Context, collection *entities.Collection) error
		ListCollectedObjectIDs(ctx context.Context, userID string, objectIDs []string, objectType string) ([]string, error)

		FindActiveLike(ctx context.Context, userID, objectID, objectType string) (*entities.Like, error)
		FindDeletedLike(ctx context.Context, userID, objectID, objectType string) (*entities.Like, error)
		CreateLike(ctx context.Context, like *entities.Like) error
		SoftDeleteLike(ctx context.Context, like *entities.Like) error
		RestoreLike(ctx context.Context, like *entities.Like) error
	}

	actionRepository struct {
		db *gorm.DB
	}
)

func NewActionRepository(db *gorm.DB) ActionRepository {
	return &actionRepository{db: db}
}

// Collections and likes share one ownership shape, so the lookups and the
// restore go through the same generic helpers.

func findActiveOwned[T any](ctx context.Context, db *gorm.DB, userID, objectID, objectType string) (*T, error) {
	var rec T
	if err := db.WithContext(ctx).
		Where("user_id = ? AND object_id = ? AND object_type = ?", userID, objectID, objectType).
		First(&rec).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

func findDeletedOwned[T any](ctx context.Context, db *gorm.DB, userID, objectID, objectType string) (*T, error) {
	var rec T
	if err := db.WithContext(ctx).Unscoped().
		Where("user_id = ? AND object_id = ? AND object_type = ? AND deleted_at IS NOT NULL", userID, objectID, objectType).
		First(&rec).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

func restoreOwned(ctx context.Context, db *gorm.DB, model interface{}) error {
	return db.WithContext(ctx).Unscoped().Model(model).Update("deleted_at", nil).Error
}

func (r *actionRepository) FindActiveCollection(ctx context.Context, userID, objectID, objectType string) (*entities.Collection, error) {
	return findActiveOwned[entities.Collection](ctx, r.db, userID, objectID, objectType)
}

func (r *actionRepository) FindDeletedCollection(ctx context.Context, userID, objectID, objectType string) (*entities.Collection, error) {
	return findDeletedOwned[entities.Collection](ctx, r.db, userID, objectID, objectType)
}

func (r *actionRepository) CreateCollection(ctx context.Context, collection *entities.Collection) error {
	return r.db.WithContext(ctx).Create(collection).Error
}

func (r *actionRepository) SoftDeleteCollection(ctx context.Context, collection *entities.Collection) error {
	return r.db.WithContext(ctx).Delete(collection).Error
}

func (r *actionRepository) RestoreCollection(ctx context.Context, collection *entities.Collection) error {
	if err := restoreOwned(ctx, r.db, collection); err != nil {
		return err
	}
	collection.DeletedAt = gorm.DeletedAt{}
	return nil
}

func (r *actionRepository) ListCollectedObjectIDs(ctx context.Context, userID string, objectIDs []string, objectType string) ([]string, error) {
	var ids []string
	if len(objectIDs) == 0 {
		return ids, nil
	}
	if err := r.db.WithContext(ctx).Model(&entities.Collection{}).
		Where("user_id = ? AND object_id IN ? AND object_type = ?", userID, objectIDs, objectType).
		Pluck("object_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *actionRepository) FindActiveLike(ctx context.Context, userID, objectID, objectType string) (*entities.Like, error) {
	return findActiveOwned[entities.Like](ctx, r.db, userID, objectID, objectType)
}

func (r *actionRepository) FindDeletedLike(ctx context.Context, userID, objectID, objectType string) (*entities.Like, error) {
	return findDeletedOwned[entities.Like](ctx, r.db, userID, objectID, objectType)
}

func (r *actionRepository) CreateLike(ctx context.Context, like *entities.Like) error {
	return r.db.WithContext(ctx).Create(like).Error
}

func (r *actionRepository) SoftDeleteLike(ctx context.Context, like *entities.Like) error {
	return r.db.WithContext(ctx).Delete(like).Error
}

func (r *actionRepository) RestoreLike(ctx context.Context, like *entities.Like) error {
	if err := restoreOwned(ctx, r.db, like); err != nil {
		return err
	}
	like.DeletedAt = gorm.DeletedAt{}
	return nil
}
