package entities

// Object types a collection or like can point at.
const (
	ObjectTypeDish  = "DISH"
	ObjectTypeTaste = "TASTE"
)

// Collection is a user bookmarking an object, currently always a dish.
type Collection struct {
	ID         string `gorm:"type:varchar(50);primaryKey" json:"id"`
	UserID     string `gorm:"column:user_id;type:varchar(50);not null;uniqueIndex:uq_collection_user_object" json:"user_id"`
	ObjectID   string `gorm:"column:object_id;type:varchar(50);not null;uniqueIndex:uq_collection_user_object" json:"object_id"`
	ObjectType string `gorm:"type:varchar(20);not null;uniqueIndex:uq_collection_user_object" json:"object_type"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
