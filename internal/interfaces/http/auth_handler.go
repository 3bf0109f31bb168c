package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/egemed/clinic_backend/internal/session"
	"github.com/egemed/clinic_backend/internal/upstream"
)

type AuthHandler struct {
	api   *upstream.Client
	store *session.Store
}

func NewAuthHandler(api *upstream.Client, store *session.Store) *AuthHandler {
	return &AuthHandler{api: api, store: store}
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	result, err := h.api.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return fail(c, requestLocale(c), err)
	}
	h.store.Login(result.Token)
	return c.JSON(fiber.Map{"token": result.Token})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.store.Logout()
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"logged_in": h.store.LoggedIn()})
}
