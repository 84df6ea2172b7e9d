package delivery

import (
	"context"
	"errors"

	"TasteTrail-Backend/domain"
	"TasteTrail-Backend/entities"
	"TasteTrail-Backend/pkg/merchant"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	DeliveryService interface {
		GetMerchantDeliveryLinks(ctx context.Context, merchantID string) (domain.MerchantDeliveryLinksResponse, error)
		GetDeliveryLink(ctx context.Context, merchantID, platformName string) (domain.DeliveryLink, error)
		CreatePlatform(ctx context.Context, req domain.CreatePlatformRequest) error
		UpdateMerchantExternalIDs(ctx context.Context, merchantID string, req domain.UpdateExternalIDsRequest) error
	}

	deliveryService struct {
		deliveryRepository DeliveryRepository
		merchantRepository merchant.MerchantRepository
	}
)

func NewDeliveryService(deliveryRepository DeliveryRepository, merchantRepository merchant.MerchantRepository) DeliveryService {
	return &deliveryService{
		deliveryRepository: deliveryRepository,
		merchantRepository: merchantRepository,
	}
}

func (s *deliveryService) GetMerchantDeliveryLinks(ctx context.Context, merchantID string) (domain.MerchantDeliveryLinksResponse, error) {
	m, err := s.merchantRepository.FindByID(ctx, merchantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.MerchantDeliveryLinksResponse{}, domain.ErrMerchantNotFound
		}
		return domain.MerchantDeliveryLinksResponse{}, err
	}

	platforms, err := s.deliveryRepository.ListActivePlatforms(ctx)
	if err != nil {
		return domain.MerchantDeliveryLinksResponse{}, err
	}

	links := make([]domain.DeliveryLink, 0, len(platforms))
	for _, p := range platforms {
		platform, ok := ParsePlatform(p.Name)
		if !ok {
			continue
		}
		externalID := ExternalID(m, platform)
		if externalID == "" {
			continue
		}
		if url := p.ConstructURL(externalID); url != "" {
			links = append(links, domain.DeliveryLink{
				PlatformID:  p.ID,
				Platform:    p.Name,
				RedirectURL: url,
				Icon:        p.Icon,
			})
		}
	}

	return domain.MerchantDeliveryLinksResponse{
		MerchantID:     m.ID,
		MerchantName:   m.Name,
		DeliveryLinks:  links,
		TotalPlatforms: len(links),
	}, nil
}

func (s *deliveryService) GetDeliveryLink(ctx context.Context, merchantID, platformName string) (domain.DeliveryLink, error) {
	platform, ok := ParsePlatform(platformName)
	if !ok {
		return domain.DeliveryLink{}, domain.ErrUnknownPlatform
	}

	m, err := s.merchantRepository.FindByID(ctx, merchantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.DeliveryLink{}, domain.ErrMerchantNotFound
		}
		return domain.DeliveryLink{}, err
	}

	p, err := s.deliveryRepository.FindPlatformByName(ctx, platformName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.DeliveryLink{}, domain.ErrPlatformNotFound
		}
		return domain.DeliveryLink{}, err
	}

	externalID := ExternalID(m, platform)
	if externalID == "" {
		return domain.DeliveryLink{}, domain.ErrMerchantNotOnPlatform
	}

	return domain.DeliveryLink{
		PlatformID:  p.ID,
		Platform:    p.Name,
		RedirectURL: p.ConstructURL(externalID),
		Icon:        p.Icon,
	}, nil
}

func (s *deliveryService) CreatePlatform(ctx context.Context, req domain.CreatePlatformRequest) error {
	if _, ok := ParsePlatform(req.Name); !ok {
		return domain.ErrUnknownPlatform
	}

	return s.deliveryRepository.CreatePlatform(ctx, &entities.DeliveryPlatform{
		ID:          uuid.New().String(),
		Name:        req.Name,
		URLTemplate: req.URLTemplate,
		Icon:        req.Icon,
		IsActive:    true,
	})
}

func (s *deliveryService) UpdateMerchantExternalIDs(ctx context.Context, merchantID string, req domain.UpdateExternalIDsRequest) error {
	m, err := s.merchantRepository.FindByID(ctx, merchantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrMerchantNotFound
		}
		return err
	}

	for name, externalID := range req.ExternalIDs {
		platform, ok := ParsePlatform(name)
		if !ok {
			return domain.ErrUnknownPlatform
		}
		SetExternalID(m, platform, externalID)
	}

	return s.merchantRepository.Update(ctx, m)
}
