package entities

type Merchant struct {
	ID        string  `gorm:"type:varchar(50);primaryKey" json:"id"`
	Name      string  `gorm:"type:varchar(100);not null" json:"name"`
	Address   string  `gorm:"type:varchar(200)" json:"address,omitempty"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`

	// One column per delivery platform the merchant is listed on.
	ExternalIDDoorDash      string `gorm:"column:external_id_doordash;type:varchar(200)" json:"external_id_doordash,omitempty"`
	ExternalIDUberEats      string `gorm:"column:external_id_uber_eats;type:varchar(200)" json:"external_id_uber_eats,omitempty"`
	ExternalIDFantuan       string `gorm:"column:external_id_fantuan;type:varchar(200)" json:"external_id_fantuan,omitempty"`
	ExternalIDSkipTheDishes string `gorm:"column:external_id_skip_the_dishes;type:varchar(200)" json:"external_id_skip_the_dishes,omitempty"`

	Dishes []Dish `gorm:"foreignKey:MerchantID" json:"-"`
	Timestamp
}
