package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateDish      = "dish created successfully"
	MessageSuccessUpdateDish      = "dish updated successfully"
	MessageSuccessDeleteDish      = "dish deleted successfully"
	MessageSuccessRestoreDish     = "dish restored successfully"
	MessageSuccessBulkDeleteDish  = "dishes deleted successfully"
	MessageSuccessGetDishOverview = "dish overview retrieved successfully"

	MessageFailedCreateDish      = "failed to create dish"
	MessageFailedUpdateDish      = "failed to update dish"
	MessageFailedDeleteDish      = "failed to delete dish"
	MessageFailedRestoreDish     = "failed to restore dish"
	MessageFailedBulkDeleteDish  = "failed to delete dishes"
	MessageFailedGetDishOverview = "failed to retrieve dish overview"

	ErrMerchantNotFound = errors.New("merchant not found")
	ErrDishNotDeleted   = errors.New("dish is not deleted")
	ErrEmptyDishIDs     = errors.New("no dish ids provided")
)

type (
	CreateDishRequest struct {
		Title          string   `json:"title" validate:"required,max=100"`
		MerchantID     string   `json:"merchant_id" validate:"required"`
		Price          int      `json:"price" validate:"omitempty,min=0"`
		Description    string   `json:"description" validate:"omitempty,max=200"`
		Characteristic string   `json:"characteristic" validate:"omitempty,max=100"`
		MediaIDs       []string `json:"media_ids" validate:"omitempty,dive,required"`
	}

	UpdateDishRequest struct {
		Title          string   `json:"title" validate:"omitempty,max=100"`
		Price          *int     `json:"price" validate:"omitempty,min=0"`
		Description    *string  `json:"description" validate:"omitempty,max=200"`
		Characteristic *string  `json:"characteristic" validate:"omitempty,max=100"`
		MediaIDs       []string `json:"media_ids" validate:"omitempty,dive,required"`
	}

	BulkDeleteDishesRequest struct {
		DishIDs []string `json:"dish_ids" validate:"required,min=1,dive,required"`
	}

	BulkDeleteDishesResponse struct {
		Deleted int64 `json:"deleted"`
	}

	DishResponse struct {
		ID               string    `json:"id"`
		Title            string    `json:"title"`
		Price            int       `json:"price"`
		Description      string    `json:"description,omitempty"`
		Characteristic   string    `json:"characteristic,omitempty"`
		MediaIDs         []string  `json:"media_ids"`
		RecommendedCount int       `json:"recommended_count"`
		MerchantID       string    `json:"merchant_id"`
		CreatedAt        time.Time `json:"created_at"`
	}

	DishOverviewResponse struct {
		Dish           DishResponse    `json:"dish"`
		Merchant       MerchantSummary `json:"merchant"`
		DistanceMeters *float64        `json:"distance_meters,omitempty"`
	}
)
