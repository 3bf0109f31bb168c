package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/egemed/clinic_backend/internal/application"
	"github.com/egemed/clinic_backend/internal/domain"
	"github.com/egemed/clinic_backend/internal/i18n"
)

type FAQHandler struct {
	service *application.FAQService
}

func NewFAQHandler(service *application.FAQService) *FAQHandler {
	return &FAQHandler{service: service}
}

func (h *FAQHandler) List(c *fiber.Ctx) error {
	list, err := h.service.List(c.Context(), requestLocale(c), listQuery(c))
	if err != nil {
		return fail(c, requestLocale(c), err)
	}
	return c.JSON(list)
}

func (h *FAQHandler) Create(c *fiber.Ctx) error {
	var in domain.FAQInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	faq, err := h.service.Create(c.Context(), in)
	if err != nil {
		return fail(c, requestLocale(c), err)
	}
	return c.Status(fiber.StatusCreated).JSON(faq)
}

func (h *FAQHandler) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}
	var in domain.FAQInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	faq, err := h.service.Update(c.Context(), id, in)
	if err != nil {
		return fail(c, requestLocale(c), err)
	}
	return c.JSON(faq)
}

func (h *FAQHandler) Delete(c *fiber.Ctx) error {
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

func (h *FAQHandler) Move(c *fiber.Ctx) error {
	locale := requestLocale(c)
	if reorderBlocked(c) {
		return reorderFiltered(c, locale)
	}
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}
	var req struct {
		Direction string `json:"direction"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	dir, ok := parseDirection(req.Direction)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "direction must be \"up\" or \"down\""})
	}

	list, status, err := h.service.Move(c.Context(), locale, id, dir)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error":  i18n.T(locale, "error.generic"),
			"status": reorderStatusLabel(status),
			"data":   list,
		})
	}
	return c.JSON(fiber.Map{"status": reorderStatusLabel(status), "data": list})
}
