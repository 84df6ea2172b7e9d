package entities

import (
	"strings"
)

// DeliveryPlatform is a third party delivery service. URLTemplate carries
// a "{external_id}" placeholder filled with the merchant's listing id.
type DeliveryPlatform struct {
	ID          string `gorm:"type:varchar(50);primaryKey" json:"id"`
	Name        string `gorm:"type:varchar(50);not null;uniqueIndex" json:"name"`
	URLTemplate string `gorm:"type:varchar(300);not null" json:"url_template"`
	Icon        string `gorm:"type:varchar(300)" json:"icon,omitempty"`
	IsActive    bool   `gorm:"not null;default:true" json:"is_active"`

	Timestamp
}

func (p *DeliveryPlatform) ConstructURL(externalID string) string {
	if externalID == "" {
		return ""
	}
	if strings.Contains(p.URLTemplate, "{external_id}") {
		return strings.ReplaceAll(p.URLTemplate, "{external_id}", externalID)
	}
	return strings.TrimSuffix(p.URLTemplate, "/") + "/" + externalID
}
