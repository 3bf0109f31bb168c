package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/egemed/clinic_backend/internal/application"
)

type DashboardHandler struct {
	service *application.DashboardService
}

func NewDashboardHandler(service *application.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	return c.JSON(h.service.Stats(c.Context(), requestLocale(c)))
}
