package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/egemed/clinic_backend/internal/application"
	"github.com/egemed/clinic_backend/internal/domain"
	"github.com/egemed/clinic_backend/internal/i18n"
)

type SpecialtyHandler struct {
	service *application.SpecialtyService
}

func NewSpecialtyHandler(service *application.SpecialtyService) *SpecialtyHandler {
	return &SpecialtyHandler{service: service}
}

func (h *SpecialtyHandler) List(c *fiber.Ctx) error {
	list, err := h.service.List(c.Context(), requestLocale(c), listQuery(c))
	if err != nil {
		return fail(c, requestLocale(c), err)
	}
	return c.JSON(list)
}

func (h *SpecialtyHandler) Get(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}
	sp, err := h.service.Get(c.Context(), id)
	if err != nil {
		return fail(c, requestLocale(c), err)
	}
	return c.JSON(sp)
}

func (h *SpecialtyHandler) Create(c *fiber.Ctx) error {
	in, err := specialtyInput(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	sp, err := h.service.Create(c.Context(), in)
	if err != nil {
		return fail(c, requestLocale(c), err)
	}
	return c.Status(fiber.StatusCreated).JSON(sp)
}

func (h *SpecialtyHandler) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}
	in, err := specialtyInput(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	sp, err := h.service.Update(c.Context(), id, in)
	if err != nil {
		return fail(c, requestLocale(c), err)
	}
	return c.JSON(sp)
}

func (h *SpecialtyHandler) Delete(c *fiber.Ctx) error {
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

// Move reorders a specialty within the current page. The page/limit of the
// list view travel along so the batch covers exactly what the admin sees.
func (h *SpecialtyHandler) Move(c *fiber.Ctx) error {
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

	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	list, status, err := h.service.Move(c.Context(), locale, page, limit, id, dir)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error":  i18n.T(locale, "error.generic"),
			"status": reorderStatusLabel(status),
			"data":   list,
		})
	}
	return c.JSON(fiber.Map{"status": reorderStatusLabel(status), "data": list})
}

func specialtyInput(c *fiber.Ctx) (domain.SpecialtyInput, error) {
	var in domain.SpecialtyInput
	if !isMultipart(c) {
		if err := c.BodyParser(&in); err != nil {
			return in, err
		}
		return in, nil
	}

	in.Title = c.FormValue("title")
	in.Slug = c.FormValue("slug")
	in.Summary = c.FormValue("summary")
	in.Content = c.FormValue("content")
	in.ImageURL = c.FormValue("image_url")
	in.CategoryID, _ = strconv.Atoi(c.FormValue("category_id"))
	in.Order = formOrder(c)
	in.Locale = domain.Locale(c.FormValue("locale"))
	in.Published = c.FormValue("published") == "true"

	image, filename, err := formImage(c, "image")
	if err != nil {
		return in, err
	}
	in.Image = image
	in.ImageFilename = filename
	return in, nil
}
