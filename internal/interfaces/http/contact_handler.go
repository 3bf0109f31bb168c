package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/egemed/clinic_backend/internal/application"
)

// ContactHandler is the admin side of the contact inbox; the public submit
// lives on PublicHandler.
type ContactHandler struct {
	service *application.ContactService
}

func NewContactHandler(service *application.ContactService) *ContactHandler {
	return &ContactHandler{service: service}
}

func (h *ContactHandler) List(c *fiber.Ctx) error {
	list, err := h.service.List(c.Context(), listQuery(c))
	if err != nil {
		return fail(c, requestLocale(c), err)
	}
	return c.JSON(list)
}

func (h *ContactHandler) MarkRead(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}
	if err := h.service.MarkRead(c.Context(), id); err != nil {
		return fail(c, requestLocale(c), err)
	}
	return c.JSON(fiber.Map{"message": "Message marked as read"})
}

func (h *ContactHandler) MarkReplied(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}
	if err := h.service.MarkReplied(c.Context(), id); err != nil {
		return fail(c, requestLocale(c), err)
	}
	return c.JSON(fiber.Map{"message": "Message marked as replied"})
}

func (h *ContactHandler) Delete(c *fiber.Ctx) error {
	locale := requestLocale(c)
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}
	if !confirmRequested(c) {
		return confirmRequired(c, locale)
	}
	if err := h.service.Delete(c.Context(), id); err != nil {
		return fail(c, locale, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
