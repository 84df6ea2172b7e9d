package entities

const (
	MediaTypeImage = "IMAGE"
	MediaTypeVideo = "VIDEO"
)

const (
	MediaSourceInternet   = "INTERNET"
	MediaSourceUserAvatar = "USER_AVATAR"
	MediaSourceUpload     = "UPLOAD"
)

const (
	MediaStatusPending   = "Pending"
	MediaStatusProcessed = "Processed"
	MediaStatusFailed    = "Failed"
)

type Media struct {
	ID       string `gorm:"type:varchar(50);primaryKey" json:"id"`
	UserID   string `gorm:"type:varchar(50)" json:"user_id"`
	Type     string `gorm:"type:varchar(20);not null" json:"type"`
	Source   string `gorm:"type:varchar(20);not null" json:"source"`
	URL      string `gorm:"type:varchar(500);not null" json:"url"`
	Blurhash string `gorm:"type:varchar(100)" json:"blurhash,omitempty"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Status   string `gorm:"type:varchar(20);not null;default:'Pending'" json:"status"`

	Timestamp
}
