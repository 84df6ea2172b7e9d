package domain

import (
	"errors"
)

var (
	MessageSuccessCollect      = "collected successfully"
	MessageSuccessUncollect    = "uncollected successfully"
	MessageSuccessLike         = "liked successfully"
	MessageSuccessUnlike       = "unliked successfully"
	MessageSuccessGetUserItems = "user items retrieved successfully"

	MessageFailedCollect      = "failed to collect"
	MessageFailedUncollect    = "failed to uncollect"
	MessageFailedLike         = "failed to like"
	MessageFailedUnlike       = "failed to unlike"
	MessageFailedGetUserItems = "failed to retrieve user items"

	ErrAlreadyCollected = errors.New("already collected")
	ErrNotCollectedYet  = errors.New("not collected yet")
	ErrAlreadyLiked     = errors.New("already liked")
	ErrNotLikedYet      = errors.New("not liked yet")
)

type (
	MerchantSummary struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}

	// UserMerchantItemsResponse lists the dishes a user has collected and
	// recommended within one merchant.
	UserMerchantItemsResponse struct {
		Collected   []string        `json:"collected"`
		Recommended []string        `json:"recommended"`
		Merchant    MerchantSummary `json:"merchant"`
	}
)
