package handlers

import (
	"TasteTrail-Backend/domain"
	"TasteTrail-Backend/internal/api/presenters"
	"TasteTrail-Backend/pkg/taste"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	TasteHandler interface {
		ProcessTaste(c *fiber.Ctx) error
		GetTaste(c *fiber.Ctx) error
		RecommendDish(c *fiber.Ctx) error
		UnrecommendDish(c *fiber.Ctx) error
	}

	tasteHandler struct {
		tasteService taste.TasteService
		validator    *validator.Validate
	}
)

func NewTasteHandler(tasteService taste.TasteService, validator *validator.Validate) TasteHandler {
	return &tasteHandler{
		tasteService: tasteService,
		validator:    validator,
	}
}

func (h *tasteHandler) ProcessTaste(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.ProcessTasteRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedProcessTaste, err)
	}

	res, err := h.tasteService.ProcessTaste(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusOf(err), domain.MessageFailedProcessTaste, err)
	}

	code := fiber.StatusOK
	if res.Action == domain.TasteActionCreated {
		code = fiber.StatusCreated
	}
	return presenters.SuccessResponse(c, res, code, domain.MessageSuccessProcessTaste)
}

func (h *tasteHandler) GetTaste(c *fiber.Ctx) error {
	tasteID := c.Params("id")

	res, err := h.tasteService.GetTasteByID(c.Context(), tasteID)
	if err != nil {
		return presenters.ErrorResponse(c, statusOf(err), domain.MessageFailedGetTaste, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetTaste)
}

func (h *tasteHandler) RecommendDish(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	dishID := c.Params("id")

	res, err := h.tasteService.RecommendDish(c.Context(), dishID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusOf(err), domain.MessageFailedRecommend, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessRecommend)
}

func (h *tasteHandler) UnrecommendDish(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	dishID := c.Params("id")

	res, err := h.tasteService.UnrecommendDish(c.Context(), dishID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusOf(err), domain.MessageFailedUnrecommend, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUnrecommend)
}
