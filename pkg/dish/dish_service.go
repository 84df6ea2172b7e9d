package dish

import (
	"context"
	"errors"

	"TasteTrail-Backend/domain"
	"TasteTrail-Backend/entities"
	"TasteTrail-Backend/internal/utils"
	"TasteTrail-Backend/pkg/media"
	"TasteTrail-Backend/pkg/merchant"
	"TasteTrail-Backend/pkg/mq"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	DishService interface {
		CreateDish(ctx context.Context, req domain.CreateDishRequest, userID string) (domain.DishResponse, error)
		UpdateDish(ctx context.Context, id string, req domain.UpdateDishRequest, userID string) (domain.DishResponse, error)
		DeleteDish(ctx context.Context, id string, userID string) error
		RestoreDish(ctx context.Context, id string, userID string) (domain.DishResponse, error)
		BulkDeleteDishes(ctx context.Context, req domain.BulkDeleteDishesRequest, userID string) (domain.BulkDeleteDishesResponse, error)
		GetDishOverview(ctx context.Context, id string, userLat, userLon *float64) (domain.DishOverviewResponse, error)
	}

	dishService struct {
		dishRepository     DishRepository
		merchantRepository merchant.MerchantRepository
		mediaRepository    media.MediaRepository
		publisher          mq.Publisher
	}
)

func NewDishService(
	dishRepository DishRepository,
	merchantRepository merchant.MerchantRepository,
	mediaRepository media.MediaRepository,
	publisher mq.Publisher,
) DishService {
	return &dishService{
		dishRepository:     dishRepository,
		merchantRepository: merchantRepository,
		mediaRepository:    mediaRepository,
		publisher:          publisher,
	}
}

func (s *dishService) CreateDish(ctx context.Context, req domain.CreateDishRequest, userID string) (domain.DishResponse, error) {
	if _, err := s.merchantRepository.FindByID(ctx, req.MerchantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.DishResponse{}, domain.ErrMerchantNotFound
		}
		return domain.DishResponse{}, err
	}

	if err := s.validateMediaIDs(ctx, req.MediaIDs); err != nil {
		return domain.DishResponse{}, err
	}

	dish := &entities.Dish{
		ID:             uuid.New().String(),
		Title:          req.Title,
		Price:          req.Price,
		Description:    req.Description,
		Characteristic: req.Characteristic,
		MediaIDs:       req.MediaIDs,
		MerchantID:     req.MerchantID,
		CreatedBy:      userID,
	}

	if err := s.dishRepository.Create(ctx, dish); err != nil {
		return domain.DishResponse{}, err
	}

	s.publisher.PublishTasteAddDish(mq.TasteAddDishMessage{
		ID:             dish.ID,
		UserID:         userID,
		MerchantID:     dish.MerchantID,
		Name:           dish.Title,
		Price:          dish.Price,
		MediaIDs:       dish.MediaIDs,
		Description:    dish.Description,
		Characteristic: dish.Characteristic,
	})

	return toDishResponse(dish), nil
}

func (s *dishService) UpdateDish(ctx context.Context, id string, req domain.UpdateDishRequest, userID string) (domain.DishResponse, error) {
	dish, err := s.dishRepository.FindActiveByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.DishResponse{}, domain.ErrDishNotFound
		}
		return domain.DishResponse{}, err
	}

	if dish.CreatedBy != userID {
		return domain.DishResponse{}, domain.ErrUserNotAllowed
	}

	if req.Title != "" {
		dish.Title = req.Title
	}
	if req.Price != nil {
		dish.Price = *req.Price
	}
	if req.Description != nil {
		dish.Description = *req.Description
	}
	if req.Characteristic != nil {
		dish.Characteristic = *req.Characteristic
	}
	if req.MediaIDs != nil {
		if err := s.validateMediaIDs(ctx, req.MediaIDs); err != nil {
			return domain.DishResponse{}, err
		}
		dish.MediaIDs = req.MediaIDs
	}

	if err := s.dishRepository.Update(ctx, dish); err != nil {
		return domain.DishResponse{}, err
	}

	return toDishResponse(dish), nil
}

func (s *dishService) DeleteDish(ctx context.Context, id string, userID string) error {
	dish, err := s.dishRepository.FindActiveByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrDishNotFound
		}
		return err
	}

	if dish.CreatedBy != userID {
		return domain.ErrUserNotAllowed
	}

	return s.dishRepository.SoftDelete(ctx, id)
}

func (s *dishService) RestoreDish(ctx context.Context, id string, userID string) (domain.DishResponse, error) {
	dish, err := s.dishRepository.FindDeletedByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.DishResponse{}, domain.ErrDishNotDeleted
		}
		return domain.DishResponse{}, err
	}

	if dish.CreatedBy != userID {
		return domain.DishResponse{}, domain.ErrUserNotAllowed
	}

	if err := s.dishRepository.Restore(ctx, dish); err != nil {
		return domain.DishResponse{}, err
	}

	return toDishResponse(dish), nil
}

func (s *dishService) BulkDeleteDishes(ctx context.Context, req domain.BulkDeleteDishesRequest, userID string) (domain.BulkDeleteDishesResponse, error) {
	if len(req.DishIDs) == 0 {
		return domain.BulkDeleteDishesResponse{}, domain.ErrEmptyDishIDs
	}

	deleted, err := s.dishRepository.BulkSoftDelete(ctx, req.DishIDs, userID)
	if err != nil {
		return domain.BulkDeleteDishesResponse{}, err
	}

	return domain.BulkDeleteDishesResponse{Deleted: deleted}, nil
}

func (s *dishService) GetDishOverview(ctx context.Context, id string, userLat, userLon *float64) (domain.DishOverviewResponse, error) {
	dish, err := s.dishRepository.FindActiveByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.DishOverviewResponse{}, domain.ErrDishNotFound
		}
		return domain.DishOverviewResponse{}, err
	}

	m, err := s.merchantRepository.FindByID(ctx, dish.MerchantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.DishOverviewResponse{}, domain.ErrMerchantNotFound
		}
		return domain.DishOverviewResponse{}, err
	}

	overview := domain.DishOverviewResponse{
		Dish: toDishResponse(dish),
		Merchant: domain.MerchantSummary{
			ID:   m.ID,
			Name: m.Name,
		},
	}

	if userLat != nil && userLon != nil {
		distance := utils.HaversineDistance(*userLat, *userLon, m.Latitude, m.Longitude)
		overview.DistanceMeters = &distance
	}

	return overview, nil
}

func (s *dishService) validateMediaIDs(ctx context.Context, mediaIDs []string) error {
	if len(mediaIDs) == 0 {
		return nil
	}
	medias, err := s.mediaRepository.ListByIDs(ctx, mediaIDs)
	if err != nil {
		return err
	}
	if len(medias) != len(mediaIDs) {
		return domain.ErrMediaNotFound
	}
	return nil
}

func toDishResponse(dish *entities.Dish) domain.DishResponse {
	return domain.DishResponse{
		ID:               dish.ID,
		Title:            dish.Title,
		Price:            dish.Price,
		Description:      dish.Description,
		Characteristic:   dish.Characteristic,
		MediaIDs:         dish.MediaIDs,
		RecommendedCount: dish.RecommendedCount,
		MerchantID:       dish.MerchantID,
		CreatedAt:        dish.CreatedAt,
	}
}
