package handlers

import (
	"TasteTrail-Backend/domain"
	"TasteTrail-Backend/internal/api/presenters"
	"TasteTrail-Backend/pkg/useraction"

	"github.com/gofiber/fiber/v2"
)

type (
	ActionHandler interface {
		CollectDish(c *fiber.Ctx) error
		UncollectDish(c *fiber.Ctx) error
		LikeTaste(c *fiber.Ctx) error
		UnlikeTaste(c *fiber.Ctx) error
		GetUserMerchantItems(c *fiber.Ctx) error
	}

	actionHandler struct {
		actionService useraction.ActionService
	}
)

func NewActionHandler(actionService useraction.ActionService) ActionHandler {
	return &actionHandler{actionService: actionService}
}

func (h *actionHandler) CollectDish(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	dishID := c.Params("id")

	if err := h.actionService.CollectDish(c.Context(), userID, dishID); err != nil {
		return presenters.ErrorResponse(c, statusOf(err), domain.MessageFailedCollect, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessCollect)
}

func (h *actionHandler) UncollectDish(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	dishID := c.Params("id")

	if err := h.actionService.UncollectDish(c.Context(), userID, dishID); err != nil {
		return presenters.ErrorResponse(c, statusOf(err), domain.MessageFailedUncollect, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUncollect)
}

func (h *actionHandler) LikeTaste(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	tasteID := c.Params("id")

	if err := h.actionService.LikeTaste(c.Context(), userID, tasteID); err != nil {
		return presenters.ErrorResponse(c, statusOf(err), domain.MessageFailedLike, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessLike)
}

func (h *actionHandler) UnlikeTaste(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	tasteID := c.Params("id")

	if err := h.actionService.UnlikeTaste(c.Context(), userID, tasteID); err != nil {
		return presenters.ErrorResponse(c, statusOf(err), domain.MessageFailedUnlike, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUnlike)
}

func (h *actionHandler) GetUserMerchantItems(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	merchantID := c.Params("id")

	res, err := h.actionService.GetUserMerchantItems(c.Context(), userID, merchantID)
	if err != nil {
		return presenters.ErrorResponse(c, statusOf(err), domain.MessageFailedGetUserItems, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetUserItems)
}
