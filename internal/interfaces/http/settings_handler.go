package http

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"

	"github.com/egemed/clinic_backend/internal/application"
)

type SettingsHandler struct {
	service *application.SettingsService
}

func NewSettingsHandler(service *application.SettingsService) *SettingsHandler {
	return &SettingsHandler{service: service}
}

func (h *SettingsHandler) GetSection(c *fiber.Ctx) error {
	payload, err := h.service.GetSection(c.Context(), c.Params("section"))
	if err != nil {
		return fail(c, requestLocale(c), err)
	}
	c.Set("Content-Type", "application/json")
	return c.Send(payload)
}

func (h *SettingsHandler) UpdateSection(c *fiber.Ctx) error {
	body := json.RawMessage(c.Body())
	if err := h.service.UpdateSection(c.Context(), c.Params("section"), body); err != nil {
		return fail(c, requestLocale(c), err)
	}
	return c.JSON(fiber.Map{"message": "Settings updated"})
}
