package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/egemed/clinic_backend/internal/application"
	"github.com/egemed/clinic_backend/internal/domain"
)

type CategoryHandler struct {
	service *application.CategoryService
}

func NewCategoryHandler(service *application.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: service}
}

func (h *CategoryHandler) List(c *fiber.Ctx) error {
	categories, err := h.service.List(c.Context(), requestLocale(c))
	if err != nil {
		return fail(c, requestLocale(c), err)
	}
	return c.JSON(categories)
}

func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in domain.CategoryInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	category, err := h.service.Create(c.Context(), in)
	if err != nil {
		return fail(c, requestLocale(c), err)
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}

func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}
	var in domain.CategoryInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	category, err := h.service.Update(c.Context(), id, in)
	if err != nil {
		return fail(c, requestLocale(c), err)
	}
	return c.JSON(category)
}

func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
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
