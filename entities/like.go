package entities

// Like tracks which user liked which taste. Drives Taste.UsefulTotal
// through the aggregate recount, never through direct increments.
type Like struct {
	ID         string `gorm:"type:varchar(50);primaryKey" json:"id"`
	UserID     string `gorm:"column:user_id;type:varchar(50);not null;uniqueIndex:uq_like_user_object" json:"user_id"`
	ObjectID   string `gorm:"column:object_id;type:varchar(50);not null;uniqueIndex:uq_like_user_object" json:"object_id"`
	ObjectType string `gorm:"type:varchar(20);not null;uniqueIndex:uq_like_user_object" json:"object_type"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
