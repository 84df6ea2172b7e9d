package domain

import (
	"errors"
)

var (
	MessageSuccessGetDeliveryLinks   = "delivery links retrieved successfully"
	MessageSuccessCreatePlatform     = "delivery platform created successfully"
	MessageSuccessUpdateExternalIDs  = "merchant external ids updated successfully"

	MessageFailedGetDeliveryLinks  = "failed to retrieve delivery links"
	MessageFailedCreatePlatform    = "failed to create delivery platform"
	MessageFailedUpdateExternalIDs = "failed to update merchant external ids"

	ErrPlatformNotFound     = errors.New("delivery platform not found")
	ErrUnknownPlatform      = errors.New("unknown delivery platform")
	ErrMerchantNotOnPlatform = errors.New("merchant not available on platform")
)

type (
	DeliveryLink struct {
		PlatformID  string `json:"platform_id"`
		Platform    string `json:"platform"`
		RedirectURL string `json:"redirect_url"`
		Icon        string `json:"icon,omitempty"`
	}

	MerchantDeliveryLinksResponse struct {
		MerchantID     string         `json:"merchant_id"`
		MerchantName   string         `json:"merchant_name"`
		DeliveryLinks  []DeliveryLink `json:"delivery_links"`
		TotalPlatforms int            `json:"total_platforms"`
	}

	CreatePlatformRequest struct {
		Name        string `json:"name" validate:"required,max=50"`
		URLTemplate string `json:"url_template" validate:"required,max=300"`
		Icon        string `json:"icon" validate:"omitempty,url"`
	}

	UpdateExternalIDsRequest struct {
		ExternalIDs map[string]string `json:"external_ids" validate:"required,min=1"`
	}
)
