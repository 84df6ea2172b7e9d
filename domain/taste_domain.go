package domain

import (
	"errors"
)

// Lifecycle actions reported back by the taste service.
const (
	TasteActionCreated  = "created"
	TasteActionUpdated  = "updated"
	TasteActionRestored = "restored"
	TasteActionDeleted  = "deleted"
)

var (
	MessageSuccessProcessTaste = "taste processed successfully"
	MessageSuccessGetTaste     = "taste retrieved successfully"
	MessageSuccessRecommend    = "recommended successfully"
	MessageSuccessUnrecommend  = "unrecommended successfully"

	MessageFailedProcessTaste = "failed to process taste"
	MessageFailedGetTaste     = "failed to retrieve taste"
	MessageFailedRecommend    = "failed to recommend"
	MessageFailedUnrecommend  = "failed to unrecommend"

	ErrDishNotFound           = errors.New("dish not found")
	ErrTasteNotFound          = errors.New("taste not found")
	ErrInvalidMood            = errors.New("invalid mood")
	ErrInvalidRecommendState  = errors.New("invalid recommend state")
	ErrMediaNotFound          = errors.New("media not found")
	ErrAlreadyRecommended     = errors.New("already recommended")
	ErrNotRecommendedYet      = errors.New("not recommended yet")
)

type (
	// ProcessTasteRequest carries one full taste submission. RecommendState
	// nil means "delete my taste". TasteID may target an existing record
	// directly, otherwise the (user, dish) pair resolves it.
	ProcessTasteRequest struct {
		TasteID        string   `json:"taste_id" validate:"omitempty"`
		DishID         string   `json:"dish_id" validate:"required_without=TasteID"`
		Comment        string   `json:"comment" validate:"omitempty,max=500"`
		MediaIDs       []string `json:"media_ids" validate:"omitempty,dive,required"`
		Mood           int      `json:"mood"`
		Tags           []string `json:"tags" validate:"omitempty,dive,required"`
		RecommendState *int     `json:"recommend_state"`
	}

	ProcessTasteResponse struct {
		ID             string `json:"id"`
		State          int    `json:"state"`
		RecommendState int    `json:"recommend_state"`
		Action         string `json:"action"`
	}

	TasteResponse struct {
		ID             string   `json:"id"`
		UserID         string   `json:"user_id"`
		DishID         string   `json:"dish_id"`
		Comment        string   `json:"comment"`
		RecommendState int      `json:"recommend_state"`
		Mood           int      `json:"mood"`
		Tags           []string `json:"tags"`
		MediaIDs       []string `json:"media_ids"`
		UsefulTotal    int      `json:"useful_total"`
		State          int      `json:"state"`
		IsVerified     bool     `json:"is_verified"`
	}
)
