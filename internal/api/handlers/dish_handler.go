package handlers

import (
	"strconv"

	"TasteTrail-Backend/domain"
	"TasteTrail-Backend/internal/api/presenters"
	"TasteTrail-Backend/pkg/dish"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	DishHandler interface {
		CreateDish(c *fiber.Ctx) error
		UpdateDish(c *fiber.Ctx) error
		DeleteDish(c *fiber.Ctx) error
		RestoreDish(c *fiber.Ctx) error
		BulkDeleteDishes(c *fiber.Ctx) error
		GetDishOverview(c *fiber.Ctx) error
	}

	dishHandler struct {
		dishService dish.DishService
		validator   *validator.Validate
	}
)

func NewDishHandler(dishService dish.DishService, validator *validator.Validate) DishHandler {
	return &dishHandler{
		dishService: dishService,
		validator:   validator,
	}
}

func (h *dishHandler) CreateDish(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CreateDishRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateDish, err)
	}

	res, err := h.dishService.CreateDish(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusOf(err), domain.MessageFailedCreateDish, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateDish)
}

func (h *dishHandler) UpdateDish(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	dishID := c.Params("id")
	req := new(domain.UpdateDishRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateDish, err)
	}

	res, err := h.dishService.UpdateDish(c.Context(), dishID, *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusOf(err), domain.MessageFailedUpdateDish, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateDish)
}

func (h *dishHandler) DeleteDish(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	dishID := c.Params("id")

	if err := h.dishService.DeleteDish(c.Context(), dishID, userID); err != nil {
		return presenters.ErrorResponse(c, statusOf(err), domain.MessageFailedDeleteDish, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteDish)
}

func (h *dishHandler) RestoreDish(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	dishID := c.Params("id")

	res, err := h.dishService.RestoreDish(c.Context(), dishID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusOf(err), domain.MessageFailedRestoreDish, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessRestoreDish)
}

func (h *dishHandler) BulkDeleteDishes(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.BulkDeleteDishesRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBulkDeleteDish, err)
	}

	res, err := h.dishService.BulkDeleteDishes(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusOf(err), domain.MessageFailedBulkDeleteDish, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessBulkDeleteDish)
}

func (h *dishHandler) GetDishOverview(c *fiber.Ctx) error {
	dishID := c.Params("id")

	var userLat, userLon *float64
	if raw := c.Query("lat"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			userLat = &v
		}
	}
	if raw := c.Query("lon"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			userLon = &v
		}
	}

	res, err := h.dishService.GetDishOverview(c.Context(), dishID, userLat, userLon)
	if err != nil {
		return presenters.ErrorResponse(c, statusOf(err), domain.MessageFailedGetDishOverview, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetDishOverview)
}
