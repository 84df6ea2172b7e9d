package entities

import (
	"github.com/google/uuid"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name     string    `gorm:"type:varchar(100);not null" json:"name"`
	Email    string    `gorm:"type:varchar(100);not null;uniqueIndex" json:"email"`
	Password string    `gorm:"type:varchar(100);not null" json:"-"`
	Role     string    `gorm:"type:varchar(20);not null;default:'user'" json:"role"`

	Timestamp
}
