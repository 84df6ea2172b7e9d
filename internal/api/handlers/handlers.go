package handlers

import (
	"errors"

	"TasteTrail-Backend/domain"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// statusOf maps service errors onto HTTP status codes so every handler
// reports conflicts and missing records consistently.
func statusOf(err error) int {
	switch {
	case errors.Is(err, domain.ErrDishNotFound),
		errors.Is(err, domain.ErrTasteNotFound),
		errors.Is(err, domain.ErrMediaNotFound),
		errors.Is(err, domain.ErrMerchantNotFound),
		errors.Is(err, domain.ErrPlatformNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrAlreadyRecommended),
		errors.Is(err, domain.ErrNotRecommendedYet),
		errors.Is(err, domain.ErrAlreadyCollected),
		errors.Is(err, domain.ErrNotCollectedYet),
		errors.Is(err, domain.ErrAlreadyLiked),
		errors.Is(err, domain.ErrNotLikedYet),
		errors.Is(err, domain.ErrEmailAlreadyExists):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrUserNotAllowed):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrUnauthenticated),
		errors.Is(err, domain.ErrCredentialsInvalid):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrInvalidMood),
		errors.Is(err, domain.ErrInvalidRecommendState),
		errors.Is(err, domain.ErrInvalidMediaType),
		errors.Is(err, domain.ErrInvalidContentType),
		errors.Is(err, domain.ErrImageFetchFailed),
		errors.Is(err, domain.ErrUnknownPlatform),
		errors.Is(err, domain.ErrMerchantNotOnPlatform),
		errors.Is(err, domain.ErrDishNotDeleted),
		errors.Is(err, domain.ErrEmptyDishIDs):
		return fiber.StatusBadRequest
	default:
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return fiber.StatusBadRequest
		}
		return fiber.StatusInternalServerError
	}
}
