package taste

import (
	"context"
	"errors"

	"TasteTrail-Backend/domain"
	"TasteTrail-Backend/entities"
	"TasteTrail-Backend/pkg/aggregate"
	"TasteTrail-Backend/pkg/dish"
	"TasteTrail-Backend/pkg/dualwrite"
	"TasteTrail-Backend/pkg/media"
	"TasteTrail-Backend/pkg/mq"

	"gorm.io/gorm"
)

type (
	TasteService interface {
		ProcessTaste(ctx context.Context, req domain.ProcessTasteRequest, userID string) (domain.ProcessTasteResponse, error)
		RecommendDish(ctx context.Context, dishID string, userID string) (domain.ProcessTasteResponse, error)
		UnrecommendDish(ctx context.Context, dishID string, userID string) (domain.ProcessTasteResponse, error)
		GetTasteByID(ctx context.Context, id string) (domain.TasteResponse, error)
	}

	tasteService struct {
		tasteRepository  TasteRepository
		dishRepository   dish.DishRepository
		mediaRepository  media.MediaRepository
		aggregateService aggregate.AggregateService
		coordinator      dualwrite.Coordinator
		publisher        mq.Publisher
	}
)

func NewTasteService(
	tasteRepository TasteRepository,
	dishRepository dish.DishRepository,
	mediaRepository media.MediaRepository,
	aggregateService aggregate.AggregateService,
	coordinator dualwrite.Coordinator,
	publisher mq.Publisher,
) TasteService {
	return &tasteService{
		tasteRepository:  tasteRepository,
		dishRepository:   dishRepository,
		mediaRepository:  mediaRepository,
		aggregateService: aggregateService,
		coordinator:      coordinator,
		publisher:        publisher,
	}
}

// ProcessTaste runs the full lifecycle: resolve the existing record among
// active and soft-deleted rows, then create, update, restore or delete it.
// A nil RecommendState means "delete my taste".
func (s *tasteService) ProcessTaste(ctx context.Context, req domain.ProcessTasteRequest, userID string) (domain.ProcessTasteResponse, error) {
	if userID == "" {
		return domain.ProcessTasteResponse{}, domain.ErrUnauthenticated
	}
	if req.Mood < entities.MoodDefault || req.Mood > entities.MoodWorthAShot {
		return domain.ProcessTasteResponse{}, domain.ErrInvalidMood
	}
	if req.RecommendState != nil &&
		(*req.RecommendState < entities.RecommendDefault || *req.RecommendState > entities.RecommendNo) {
		return domain.ProcessTasteResponse{}, domain.ErrInvalidRecommendState
	}

	active, deleted, dishID, err := s.resolveExisting(ctx, req, userID)
	if err != nil {
		return domain.ProcessTasteResponse{}, err
	}

	if req.RecommendState == nil {
		return s.deleteTaste(ctx, active, dishID)
	}

	if err := s.validateMediaIDs(ctx, req.MediaIDs); err != nil {
		return domain.ProcessTasteResponse{}, err
	}

	switch {
	case active != nil:
		return s.updateTaste(ctx, active, req, domain.TasteActionUpdated)
	case deleted != nil:
		return s.restoreTaste(ctx, deleted, req)
	default:
		return s.createTaste(ctx, req, userID, dishID)
	}
}

// RecommendDish is the one-tap action: recommendState YES without content.
// Unlike ProcessTaste it never touches an existing taste's comment, media,
// tags or mood.
func (s *tasteService) RecommendDish(ctx context.Context, dishID string, userID string) (domain.ProcessTasteResponse, error) {
	if userID == "" {
		return domain.ProcessTasteResponse{}, domain.ErrUnauthenticated
	}

	if _, err := s.dishRepository.FindActiveByID(ctx, dishID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ProcessTasteResponse{}, domain.ErrDishNotFound
		}
		return domain.ProcessTasteResponse{}, err
	}

	active, deleted, err := s.findByUserDish(ctx, userID, dishID)
	if err != nil {
		return domain.ProcessTasteResponse{}, err
	}

	switch {
	case active != nil:
		if active.RecommendState == entities.RecommendYes {
			return domain.ProcessTasteResponse{}, domain.ErrAlreadyRecommended
		}
		active.RecommendState = entities.RecommendYes
		active.State = active.CalculateState()
		err := s.tasteRepository.Transaction(ctx, func(repo TasteRepository, agg aggregate.AggregateRepository) error {
			if err := repo.Update(ctx, active); err != nil {
				return err
			}
			return s.aggregateService.WithRepository(agg).RecountDishRecommendations(ctx, dishID)
		})
		if err != nil {
			return domain.ProcessTasteResponse{}, err
		}
		s.coordinator.Update(ctx, dualwrite.KindTaste, active.ID, map[string]interface{}{
			"recommendState": active.RecommendState,
			"state":          active.State,
		})
		return s.finish(active, domain.TasteActionUpdated), nil

	case deleted != nil:
		err := s.tasteRepository.Transaction(ctx, func(repo TasteRepository, agg aggregate.AggregateRepository) error {
			if err := repo.Restore(ctx, deleted); err != nil {
				return err
			}
			deleted.RecommendState = entities.RecommendYes
			deleted.State = deleted.CalculateState()
			if err := repo.Update(ctx, deleted); err != nil {
				return err
			}
			return s.aggregateService.WithRepository(agg).RecountDishRecommendations(ctx, dishID)
		})
		if err != nil {
			return domain.ProcessTasteResponse{}, err
		}
		s.coordinator.Restore(ctx, dualwrite.KindTaste, deleted.ID)
		s.coordinator.Update(ctx, dualwrite.KindTaste, deleted.ID, map[string]interface{}{
			"recommendState": deleted.RecommendState,
			"state":          deleted.State,
		})
		return s.finish(deleted, domain.TasteActionRestored), nil

	default:
		yes := entities.RecommendYes
		return s.createTaste(ctx, domain.ProcessTasteRequest{RecommendState: &yes}, userID, dishID)
	}
}

func (s *tasteService) UnrecommendDish(ctx context.Context, dishID string, userID string) (domain.ProcessTasteResponse, error) {
	if userID == "" {
		return domain.ProcessTasteResponse{}, domain.ErrUnauthenticated
	}

	active, err := s.tasteRepository.FindActiveByUserDish(ctx, userID, dishID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ProcessTasteResponse{}, domain.ErrNotRecommendedYet
		}
		return domain.ProcessTasteResponse{}, err
	}

	return s.deleteTaste(ctx, active, dishID)
}

func (s *tasteService) GetTasteByID(ctx context.Context, id string) (domain.TasteResponse, error) {
	taste, err := s.tasteRepository.FindActiveByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.TasteResponse{}, domain.ErrTasteNotFound
		}
		return domain.TasteResponse{}, err
	}

	return domain.TasteResponse{
		ID:             taste.ID,
		UserID:         taste.UserID,
		DishID:         taste.DishID,
		Comment:        taste.Comment,
		RecommendState: taste.RecommendState,
		Mood:           taste.Mood,
		Tags:           taste.Tags,
		MediaIDs:       taste.MediaIDs,
		UsefulTotal:    taste.UsefulTotal,
		State:          taste.State,
		IsVerified:     taste.IsVerified,
	}, nil
}

// resolveExisting finds the record targeted by the request, searching
// active rows first and soft-deleted rows second.
func (s *tasteService) resolveExisting(ctx context.Context, req domain.ProcessTasteRequest, userID string) (active, deleted *entities.Taste, dishID string, err error) {
	if req.TasteID != "" {
		taste, ferr := s.tasteRepository.FindByIDIncludingDeleted(ctx, req.TasteID)
		if ferr != nil {
			if errors.Is(ferr, gorm.ErrRecordNotFound) {
				return nil, nil, "", domain.ErrTasteNotFound
			}
			return nil, nil, "", ferr
		}
		if taste.UserID != userID {
			return nil, nil, "", domain.ErrUserNotAllowed
		}
		if taste.IsDeleted() {
			return nil, taste, taste.DishID, nil
		}
		return taste, nil, taste.DishID, nil
	}

	if _, ferr := s.dishRepository.FindActiveByID(ctx, req.DishID); ferr != nil {
		if errors.Is(ferr, gorm.ErrRecordNotFound) {
			return nil, nil, "", domain.ErrDishNotFound
		}
		return nil, nil, "", ferr
	}

	active, deleted, err = s.findByUserDish(ctx, userID, req.DishID)
	return active, deleted, req.DishID, err
}

func (s *tasteService) findByUserDish(ctx context.Context, userID, dishID string) (*entities.Taste, *entities.Taste, error) {
	active, err := s.tasteRepository.FindActiveByUserDish(ctx, userID, dishID)
	if err == nil {
		return active, nil, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, err
	}

	deleted, err := s.tasteRepository.FindDeletedByUserDish(ctx, userID, dishID)
	if err == nil {
		return nil, deleted, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, err
	}
	return nil, nil, nil
}

func (s *tasteService) createTaste(ctx context.Context, req domain.ProcessTasteRequest, userID, dishID string) (domain.ProcessTasteResponse, error) {
	// Secondary store first so it can mint the shared id; on failure the
	// coordinator falls back to a local uuid and the write proceeds.
	id, _ := s.coordinator.Write(ctx, dualwrite.KindTaste, map[string]interface{}{
		"userId":         userID,
		"dishId":         dishID,
		"comment":        req.Comment,
		"recommendState": *req.RecommendState,
		"mood":           req.Mood,
		"tags":           req.Tags,
		"mediaIds":       req.MediaIDs,
		"usefulTotal":    0,
		"isVerified":     false,
	})

	taste := &entities.Taste{
		ID:             id,
		UserID:         userID,
		DishID:         dishID,
		Comment:        req.Comment,
		RecommendState: *req.RecommendState,
		Mood:           req.Mood,
		Tags:           req.Tags,
		MediaIDs:       req.MediaIDs,
		IsVerified:     false,
	}
	taste.State = taste.CalculateState()

	err := s.tasteRepository.Transaction(ctx, func(repo TasteRepository, agg aggregate.AggregateRepository) error {
		if err := repo.Create(ctx, taste); err != nil {
			return err
		}
		return s.aggregateService.WithRepository(agg).RecountDishRecommendations(ctx, dishID)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost a concurrent create race. The unique index rejected us,
			// so an active row now exists: retry as an update.
			existing, ferr := s.tasteRepository.FindActiveByUserDish(ctx, userID, dishID)
			if ferr != nil {
				return domain.ProcessTasteResponse{}, err
			}
			return s.updateTaste(ctx, existing, req, domain.TasteActionUpdated)
		}
		return domain.ProcessTasteResponse{}, err
	}

	return s.finish(taste, domain.TasteActionCreated), nil
}

func (s *tasteService) updateTaste(ctx context.Context, taste *entities.Taste, req domain.ProcessTasteRequest, action string) (domain.ProcessTasteResponse, error) {
	s.applyContent(taste, req)

	err := s.tasteRepository.Transaction(ctx, func(repo TasteRepository, agg aggregate.AggregateRepository) error {
		if err := repo.Update(ctx, taste); err != nil {
			return err
		}
		return s.aggregateService.WithRepository(agg).RecountDishRecommendations(ctx, taste.DishID)
	})
	if err != nil {
		return domain.ProcessTasteResponse{}, err
	}

	s.coordinator.Update(ctx, dualwrite.KindTaste, taste.ID, s.contentFields(taste))
	return s.finish(taste, action), nil
}

// restoreTaste reactivates a soft-deleted record in place, keeping its
// original id and createdAt rather than inserting a fresh row.
func (s *tasteService) restoreTaste(ctx context.Context, taste *entities.Taste, req domain.ProcessTasteRequest) (domain.ProcessTasteResponse, error) {
	err := s.tasteRepository.Transaction(ctx, func(repo TasteRepository, agg aggregate.AggregateRepository) error {
		if err := repo.Restore(ctx, taste); err != nil {
			return err
		}
		s.applyContent(taste, req)
		if err := repo.Update(ctx, taste); err != nil {
			return err
		}
		return s.aggregateService.WithRepository(agg).RecountDishRecommendations(ctx, taste.DishID)
	})
	if err != nil {
		return domain.ProcessTasteResponse{}, err
	}

	s.coordinator.Restore(ctx, dualwrite.KindTaste, taste.ID)
	s.coordinator.Update(ctx, dualwrite.KindTaste, taste.ID, s.contentFields(taste))
	return s.finish(taste, domain.TasteActionRestored), nil
}

// deleteTaste soft-deletes the active record. The recommend state is left
// untouched: deletedAt alone encodes "inactive". Only the published event
// carries a NOT_RECOMMEND sentinel for downstream consumers.
func (s *tasteService) deleteTaste(ctx context.Context, active *entities.Taste, dishID string) (domain.ProcessTasteResponse, error) {
	if active == nil {
		return domain.ProcessTasteResponse{}, domain.ErrTasteNotFound
	}

	err := s.tasteRepository.Transaction(ctx, func(repo TasteRepository, agg aggregate.AggregateRepository) error {
		if err := repo.SoftDelete(ctx, active); err != nil {
			return err
		}
		return s.aggregateService.WithRepository(agg).RecountDishRecommendations(ctx, dishID)
	})
	if err != nil {
		return domain.ProcessTasteResponse{}, err
	}

	s.coordinator.Remove(ctx, dualwrite.KindTaste, active.ID)

	s.publisher.PublishTasteCreate(mq.TasteCreateMessage{
		ID:             active.ID,
		UserID:         active.UserID,
		DishID:         active.DishID,
		Comment:        active.Comment,
		RecommendState: entities.RecommendNo,
		MediaIDs:       active.MediaIDs,
	})

	return domain.ProcessTasteResponse{
		ID:             active.ID,
		State:          active.State,
		RecommendState: active.RecommendState,
		Action:         domain.TasteActionDeleted,
	}, nil
}

// finish publishes the committed taste and shapes the response. It runs
// only after the transaction holding the mutation and the recount has
// committed; publishing is best effort and never fails the operation.
func (s *tasteService) finish(taste *entities.Taste, action string) domain.ProcessTasteResponse {
	s.publisher.PublishTasteCreate(mq.TasteCreateMessage{
		ID:             taste.ID,
		UserID:         taste.UserID,
		DishID:         taste.DishID,
		Comment:        taste.Comment,
		RecommendState: taste.RecommendState,
		MediaIDs:       taste.MediaIDs,
	})

	return domain.ProcessTasteResponse{
		ID:             taste.ID,
		State:          taste.State,
		RecommendState: taste.RecommendState,
		Action:         action,
	}
}

func (s *tasteService) applyContent(taste *entities.Taste, req domain.ProcessTasteRequest) {
	taste.Comment = req.Comment
	taste.MediaIDs = req.MediaIDs
	taste.Mood = req.Mood
	taste.Tags = req.Tags
	taste.RecommendState = *req.RecommendState
	taste.IsVerified = false
	taste.State = taste.CalculateState()
}

func (s *tasteService) contentFields(taste *entities.Taste) map[string]interface{} {
	return map[string]interface{}{
		"comment":        taste.Comment,
		"mediaIds":       []string(taste.MediaIDs),
		"mood":           taste.Mood,
		"tags":           []string(taste.Tags),
		"recommendState": taste.RecommendState,
		"isVerified":     taste.IsVerified,
		"state":          taste.State,
	}
}

func (s *tasteService) validateMediaIDs(ctx context.Context, mediaIDs []string) error {
	if len(mediaIDs) == 0 {
		return nil
	}

	// IN queries collapse repeated ids, so the count check must compare
	// against the distinct set.
	seen := make(map[string]struct{}, len(mediaIDs))
	unique := make([]string, 0, len(mediaIDs))
	for _, id := range mediaIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	medias, err := s.mediaRepository.ListByIDs(ctx, unique)
	if err != nil {
		return err
	}
	if len(medias) != len(unique) {
		return domain.ErrMediaNotFound
	}
	return nil
}
