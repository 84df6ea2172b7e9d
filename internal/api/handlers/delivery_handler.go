package handlers

import (
	"TasteTrail-Backend/domain"
	"TasteTrail-Backend/internal/api/presenters"
	"TasteTrail-Backend/pkg/delivery"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	DeliveryHandler interface {
		GetMerchantDeliveryLinks(c *fiber.Ctx) error
		GetDeliveryLink(c *fiber.Ctx) error
		CreatePlatform(c *fiber.Ctx) error
		UpdateMerchantExternalIDs(c *fiber.Ctx) error
	}

	deliveryHandler struct {
		deliveryService delivery.DeliveryService
		validator       *validator.Validate
	}
)

func NewDeliveryHandler(deliveryService delivery.DeliveryService, validator *validator.Validate) DeliveryHandler {
	return &deliveryHandler{
		deliveryService: deliveryService,
		validator:       validator,
	}
}

func (h *deliveryHandler) GetMerchantDeliveryLinks(c *fiber.Ctx) error {
	merchantID := c.Params("id")

	res, err := h.deliveryService.GetMerchantDeliveryLinks(c.Context(), merchantID)
	if err != nil {
		return presenters.ErrorResponse(c, statusOf(err), domain.MessageFailedGetDeliveryLinks, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetDeliveryLinks)
}

func (h *deliveryHandler) GetDeliveryLink(c *fiber.Ctx) error {
	merchantID := c.Params("id")
	platformName := c.Params("platform")

	res, err := h.deliveryService.GetDeliveryLink(c.Context(), merchantID, platformName)
	if err != nil {
		return presenters.ErrorResponse(c, statusOf(err), domain.MessageFailedGetDeliveryLinks, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetDeliveryLinks)
}

func (h *deliveryHandler) CreatePlatform(c *fiber.Ctx) error {
	req := new(domain.CreatePlatformRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreatePlatform, err)
	}

	if err := h.deliveryService.CreatePlatform(c.Context(), *req); err != nil {
		return presenters.ErrorResponse(c, statusOf(err), domain.MessageFailedCreatePlatform, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusCreated, domain.MessageSuccessCreatePlatform)
}

func (h *deliveryHandler) UpdateMerchantExternalIDs(c *fiber.Ctx) error {
	merchantID := c.Params("id")
	req := new(domain.UpdateExternalIDsRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateExternalIDs, err)
	}

	if err := h.deliveryService.UpdateMerchantExternalIDs(c.Context(), merchantID, *req); err != nil {
		return presenters.ErrorResponse(c, statusOf(err), domain.MessageFailedUpdateExternalIDs, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateExternalIDs)
}
