package handlers

import (
	"TasteTrail-Backend/domain"
	"TasteTrail-Backend/internal/api/presenters"
	"TasteTrail-Backend/pkg/media"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	MediaHandler interface {
		GeneratePresignedURL(c *fiber.Ctx) error
		CreateMedia(c *fiber.Ctx) error
		GetMedia(c *fiber.Ctx) error
	}

	mediaHandler struct {
		mediaService media.MediaService
		validator    *validator.Validate
	}
)

func NewMediaHandler(mediaService media.MediaService, validator *validator.Validate) MediaHandler {
	return &mediaHandler{
		mediaService: mediaService,
		validator:    validator,
	}
}

func (h *mediaHandler) GeneratePresignedURL(c *fiber.Ctx) error {
	req := new(domain.PresignedURLRequest)

	if err := c.QueryParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedPresignedURL, err)
	}

	res, err := h.mediaService.GeneratePresignedURL(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusOf(err), domain.MessageFailedPresignedURL, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessPresignedURL)
}

func (h *mediaHandler) CreateMedia(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CreateMediaRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateMedia, err)
	}

	res, err := h.mediaService.CreateMedia(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusOf(err), domain.MessageFailedCreateMedia, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateMedia)
}

func (h *mediaHandler) GetMedia(c *fiber.Ctx) error {
	mediaID := c.Params("id")

	res, err := h.mediaService.GetMediaByID(c.Context(), mediaID)
	if err != nil {
		return presenters.ErrorResponse(c, statusOf(err), domain.MessageFailedGetMedia, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetMedia)
}
