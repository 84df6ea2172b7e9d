package entities

import (
	"time"

	"gorm.io/gorm"
)

// Timestamp is embedded by every table. DeletedAt drives GORM's soft delete:
// scoped queries skip rows with a deletion time, Unscoped reaches them.
type Timestamp struct {
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (t Timestamp) IsDeleted() bool {
	return t.DeletedAt.Valid
}
