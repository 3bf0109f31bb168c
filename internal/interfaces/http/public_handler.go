package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/egemed/clinic_backend/internal/application"
	"github.com/egemed/clinic_backend/internal/domain"
	"github.com/egemed/clinic_backend/internal/i18n"
)

// PublicHandler serves the locale-prefixed read endpoints of the marketing
// site plus the contact form submit. Reads never fail: the services degrade
// to neutral defaults.
type PublicHandler struct {
	public   *application.PublicService
	contacts *application.ContactService
	limiter  *application.RateLimiter
}

func NewPublicHandler(public *application.PublicService, contacts *application.ContactService, limiter *application.RateLimiter) *PublicHandler {
	return &PublicHandler{public: public, contacts: contacts, limiter: limiter}
}

func (h *PublicHandler) Blogs(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "9"))
	return c.JSON(h.public.Blogs(c.Context(), requestLocale(c), page, limit))
}

func (h *PublicHandler) BlogBySlug(c *fiber.Ctx) error {
	locale := requestLocale(c)
	blog := h.public.BlogBySlug(c.Context(), locale, c.Params("slug"))
	if blog == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": i18n.T(locale, "error.not_found")})
	}
	return c.JSON(blog)
}

func (h *PublicHandler) Specialties(c *fiber.Ctx) error {
	return c.JSON(h.public.Specialties(c.Context(), requestLocale(c)))
}

func (h *PublicHandler) SpecialtyBySlug(c *fiber.Ctx) error {
	locale := requestLocale(c)
	sp := h.public.SpecialtyBySlug(c.Context(), locale, c.Params("slug"))
	if sp == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": i18n.T(locale, "error.not_found")})
	}
	return c.JSON(sp)
}

func (h *PublicHandler) Gallery(c *fiber.Ctx) error {
	return c.JSON(h.public.Gallery(c.Context()))
}

func (h *PublicHandler) FAQs(c *fiber.Ctx) error {
	return c.JSON(h.public.FAQs(c.Context(), requestLocale(c)))
}

func (h *PublicHandler) Config(c *fiber.Ctx) error {
	cfg := h.public.Config(c.Context())
	if cfg == nil {
		return c.JSON(fiber.Map{})
	}
	return c.JSON(cfg)
}

func (h *PublicHandler) About(c *fiber.Ctx) error {
	about := h.public.About(c.Context(), requestLocale(c))
	if about == nil {
		return c.JSON(nil)
	}
	c.Set("Content-Type", "application/json")
	return c.Send(about)
}

func (h *PublicHandler) SubmitContact(c *fiber.Ctx) error {
	locale := requestLocale(c)

	if ok, _ := h.limiter.Allow(c.IP()); !ok {
		return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
			"error": i18n.T(locale, "error.rate_limited"),
		})
	}

	var in domain.ContactInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	msg, err := h.contacts.Submit(c.Context(), in)
	if err != nil {
		return fail(c, locale, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": i18n.T(locale, "contact.received"),
		"id":      msg.ID,
	})
}
