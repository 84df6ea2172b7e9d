package useraction

import (
	"context"
	"errors"

	"TasteTrail-Backend/domain"
	"TasteTrail-Backend/entities"
	"TasteTrail-Backend/pkg/aggregate"
	"TasteTrail-Backend/pkg/dish"
	"TasteTrail-Backend/pkg/dualwrite"
	"TasteTrail-Backend/pkg/merchant"
	"TasteTrail-Backend/pkg/mq"
	"TasteTrail-Backend/pkg/taste"

	"gorm.io/gorm"
)

type (
	ActionService interface {
		CollectDish(ctx context.Context, userID, dishID string) error
		UncollectDish(ctx context.Context, userID, dishID string) error
		LikeTaste(ctx context.Context, userID, tasteID string) error
		UnlikeTaste(ctx context.Context, userID, tasteID string) error
		GetUserMerchantItems(ctx context.Context, userID, merchantID string) (domain.UserMerchantItemsResponse, error)
	}

	actionService struct {
		actionRepository   ActionRepository
		dishRepository     dish.DishRepository
		tasteRepository    taste.TasteRepository
		merchantRepository merchant.MerchantRepository
		aggregateService   aggregate.AggregateService
		coordinator        dualwrite.Coordinator
		publisher          mq.Publisher
	}
)

func NewActionService(
	actionRepository ActionRepository,
	dishRepository dish.DishRepository,
	tasteRepository taste.TasteRepository,
	merchantRepository merchant.MerchantRepository,
	aggregateService aggregate.AggregateService,
	coordinator dualwrite.Coordinator,
	publisher mq.Publisher,
) ActionService {
	return &actionService{
		actionRepository:   actionRepository,
		dishRepository:     dishRepository,
		tasteRepository:    tasteRepository,
		merchantRepository: merchantRepository,
		aggregateService:   aggregateService,
		coordinator:        coordinator,
		publisher:          publisher,
	}
}

// CollectDish follows the tri-state pattern: an active collection rejects,
// a soft-deleted one is restored keeping its id, otherwise a new record is
// created through the dual-write coordinator.
func (s *actionService) CollectDish(ctx context.Context, userID, dishID string) error {
	if userID == "" {
		return domain.ErrUnauthenticated
	}

	if _, err := s.dishRepository.FindActiveByID(ctx, dishID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrDishNotFound
		}
		return err
	}

	active, err := s.actionRepository.FindActiveCollection(ctx, userID, dishID, entities.ObjectTypeDish)
	if err == nil && active != nil {
		return domain.ErrAlreadyCollected
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	deleted, err := s.actionRepository.FindDeletedCollection(ctx, userID, dishID, entities.ObjectTypeDish)
	if err == nil {
		if err := s.actionRepository.RestoreCollection(ctx, deleted); err != nil {
			return err
		}
		s.coordinator.Restore(ctx, dualwrite.KindCollection, deleted.ID)
	} else {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		id, _ := s.coordinator.Write(ctx, dualwrite.KindCollection, map[string]interface{}{
			"user":       userID,
			"object":     dishID,
			"objectType": entities.ObjectTypeDish,
		})
		collection := &entities.Collection{
			ID:         id,
			UserID:     userID,
			ObjectID:   dishID,
			ObjectType: entities.ObjectTypeDish,
		}
		if err := s.actionRepository.CreateCollection(ctx, collection); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return domain.ErrAlreadyCollected
			}
			return err
		}
	}

	s.publisher.PublishDishCollect(mq.DishCollectMessage{
		UserID: userID,
		DishID: dishID,
		State:  mq.CollectStateCollect,
	})
	return nil
}

func (s *actionService) UncollectDish(ctx context.Context, userID, dishID string) error {
	if userID == "" {
		return domain.ErrUnauthenticated
	}

	collection, err := s.actionRepository.FindActiveCollection(ctx, userID, dishID, entities.ObjectTypeDish)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotCollectedYet
		}
		return err
	}

	if err := s.actionRepository.SoftDeleteCollection(ctx, collection); err != nil {
		return err
	}
	s.coordinator.Remove(ctx, dualwrite.KindCollection, collection.ID)

	s.publisher.PublishDishCollect(mq.DishCollectMessage{
		UserID: userID,
		DishID: dishID,
		State:  mq.CollectStateUncollect,
	})
	return nil
}

func (s *actionService) LikeTaste(ctx context.Context, userID, tasteID string) error {
	if userID == "" {
		return domain.ErrUnauthenticated
	}

	if _, err := s.tasteRepository.FindActiveByID(ctx, tasteID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrTasteNotFound
		}
		return err
	}

	active, err := s.actionRepository.FindActiveLike(ctx, userID, tasteID, entities.ObjectTypeTaste)
	if err == nil && active != nil {
		return domain.ErrAlreadyLiked
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	deleted, err := s.actionRepository.FindDeletedLike(ctx, userID, tasteID, entities.ObjectTypeTaste)
	if err == nil {
		if err := s.actionRepository.RestoreLike(ctx, deleted); err != nil {
			return err
		}
		s.coordinator.Restore(ctx, dualwrite.KindLike, deleted.ID)
	} else {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		id, _ := s.coordinator.Write(ctx, dualwrite.KindLike, map[string]interface{}{
			"user":       userID,
			"object":     tasteID,
			"objectType": entities.ObjectTypeTaste,
		})
		like := &entities.Like{
			ID:         id,
			UserID:     userID,
			ObjectID:   tasteID,
			ObjectType: entities.ObjectTypeTaste,
		}
		if err := s.actionRepository.CreateLike(ctx, like); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return domain.ErrAlreadyLiked
			}
			return err
		}
	}

	return s.aggregateService.RecountTasteUseful(ctx, tasteID)
}

func (s *actionService) UnlikeTaste(ctx context.Context, userID, tasteID string) error {
	if userID == "" {
		return domain.ErrUnauthenticated
	}

	like, err := s.actionRepository.FindActiveLike(ctx, userID, tasteID, entities.ObjectTypeTaste)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotLikedYet
		}
		return err
	}

	if err := s.actionRepository.SoftDeleteLike(ctx, like); err != nil {
		return err
	}
	s.coordinator.Remove(ctx, dualwrite.KindLike, like.ID)

	return s.aggregateService.RecountTasteUseful(ctx, tasteID)
}

// GetUserMerchantItems lists the dishes the user has collected and the
// dishes they hold an active taste for, within one merchant.
func (s *actionService) GetUserMerchantItems(ctx context.Context, userID, merchantID string) (domain.UserMerchantItemsResponse, error) {
	if userID == "" {
		return domain.UserMerchantItemsResponse{}, domain.ErrUnauthenticated
	}

	m, err := s.merchantRepository.FindByID(ctx, merchantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserMerchantItemsResponse{}, domain.ErrMerchantNotFound
		}
		return domain.UserMerchantItemsResponse{}, err
	}

	dishes, err := s.dishRepository.ListByMerchant(ctx, merchantID)
	if err != nil {
		return domain.UserMerchantItemsResponse{}, err
	}

	dishIDs := make([]string, 0, len(dishes))
	for _, d := range dishes {
		dishIDs = append(dishIDs, d.ID)
	}

	collected, err := s.actionRepository.ListCollectedObjectIDs(ctx, userID, dishIDs, entities.ObjectTypeDish)
	if err != nil {
		return domain.UserMerchantItemsResponse{}, err
	}

	recommended, err := s.tasteRepository.ListActiveDishIDsByUser(ctx, userID, dishIDs)
	if err != nil {
		return domain.UserMerchantItemsResponse{}, err
	}

	return domain.UserMerchantItemsResponse{
		Collected:   collected,
		Recommended: recommended,
		Merchant: domain.MerchantSummary{
			ID:   m.ID,
			Name: m.Name,
		},
	}, nil
}
