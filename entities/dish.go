package entities

import (
	"gorm.io/datatypes"
)

// Dish belongs to a merchant. RecommendedCount is denormalized and owned
// by the aggregate recount, user actions never write it directly.
type Dish struct {
	ID               string                      `gorm:"type:varchar(100);primaryKey" json:"id"`
	Title            string                      `gorm:"type:varchar(100);not null" json:"title"`
	Price            int                         `json:"price"`
	Description      string                      `gorm:"type:varchar(200)" json:"description,omitempty"`
	Characteristic   string                      `gorm:"type:varchar(100)" json:"characteristic,omitempty"`
	MediaIDs         datatypes.JSONSlice[string] `gorm:"column:media_ids" json:"media_ids"`
	RecommendedCount int                         `gorm:"column:taste_recommend_total;not null;default:0" json:"recommended_count"`
	MerchantID       string                      `gorm:"type:varchar(50);not null" json:"merchant_id"`
	CreatedBy        string                      `gorm:"type:varchar(50)" json:"created_by"`

	Merchant *Merchant `gorm:"foreignKey:MerchantID"`
	Timestamp
}
