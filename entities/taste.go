package entities

import (
	"strings"

	"gorm.io/datatypes"
)

// Recommend states carried by a taste.
const (
	RecommendDefault = 0 // eaten, no opinion
	RecommendYes     = 1
	RecommendNo      = 2
)

// Moods a user can attach to a taste. Never part of the state code.
const (
	MoodDefault      = 0
	MoodMustTry      = 1
	MoodToBeRepeated = 2
	MoodWorthAShot   = 3
)

// Taste state codes. The code encodes which content the taste carries
// (comment, media, both, neither) combined with the recommend flag.
const (
	StateDefault                        = 0
	StateRecommend                      = 1
	StateNotRecommend                   = 2
	StateCommentAndRecommend            = 3
	StateMediaAndRecommend              = 4
	StateCommentAndMedia                = 5
	StateComment                        = 30
	StateCommentAndNotRecommend         = 31
	StateMedia                          = 40
	StateMediaAndNotRecommend           = 41
	StateCommentAndMediaAndRecommend    = 100
	StateCommentAndMediaAndNotRecommend = 101
)

// Taste is one user's experience record for one dish. At most one active
// row may exist per (user, dish) pair; the service checks soft-deleted rows
// before insert and the unique index backs it up against races.
type Taste struct {
	ID             string                      `gorm:"type:varchar(50);primaryKey" json:"id"`
	UserID         string                      `gorm:"type:varchar(50);not null;uniqueIndex:uq_taste_user_dish" json:"user_id"`
	DishID         string                      `gorm:"type:varchar(50);not null;uniqueIndex:uq_taste_user_dish" json:"dish_id"`
	Comment        string                      `json:"comment"`
	IsVerified     bool                        `gorm:"not null;default:false" json:"is_verified"`
	RecommendState int                         `gorm:"not null;default:0" json:"recommend_state"`
	UsefulTotal    int                         `gorm:"not null;default:0" json:"useful_total"`
	Mood           int                         `json:"mood"`
	State          int                         `gorm:"not null" json:"state"`
	Tags           datatypes.JSONSlice[string] `json:"tags"`
	MediaIDs       datatypes.JSONSlice[string] `gorm:"column:media_ids" json:"media_ids"`

	User *User `gorm:"foreignKey:UserID"`
	Dish *Dish `gorm:"foreignKey:DishID"`
	Timestamp
}

// CalculateState derives the state code from the taste's content.
// Most specific content wins; tags and mood never participate.
func (t *Taste) CalculateState() int {
	hasComment := strings.TrimSpace(t.Comment) != ""
	hasMedia := len(t.MediaIDs) > 0

	switch {
	case hasComment && hasMedia:
		switch t.RecommendState {
		case RecommendYes:
			return StateCommentAndMediaAndRecommend
		case RecommendNo:
			return StateCommentAndMediaAndNotRecommend
		default:
			return StateCommentAndMedia
		}
	case hasComment:
		switch t.RecommendState {
		case RecommendYes:
			return StateCommentAndRecommend
		case RecommendNo:
			return StateCommentAndNotRecommend
		default:
			return StateComment
		}
	case hasMedia:
		switch t.RecommendState {
		case RecommendYes:
			return StateMediaAndRecommend
		case RecommendNo:
			return StateMediaAndNotRecommend
		default:
			return StateMedia
		}
	default:
		switch t.RecommendState {
		case RecommendYes:
			return StateRecommend
		case RecommendNo:
			return StateNotRecommend
		default:
			return StateDefault
		}
	}
}
