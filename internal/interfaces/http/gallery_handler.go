package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/egemed/clinic_backend/internal/application"
	"github.com/egemed/clinic_backend/internal/domain"
	"github.com/egemed/clinic_backend/internal/i18n"
)

type GalleryHandler struct {
	service *application.GalleryService
}

func NewGalleryHandler(service *application.GalleryService) *GalleryHandler {
	return &GalleryHandler{service: service}
}

func (h *GalleryHandler) List(c *fiber.Ctx) error {
	list, err := h.service.List(c.Context(), listQuery(c))
	if err != nil {
		return fail(c, requestLocale(c), err)
	}
	return c.JSON(list)
}

func (h *GalleryHandler) Create(c *fiber.Ctx) error {
	in, err := galleryInput(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	photo, err := h.service.Create(c.Context(), in)
	if err != nil {
		return fail(c, requestLocale(c), err)
	}
	return c.Status(fiber.StatusCreated).JSON(photo)
}

func (h *GalleryHandler) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}
	in, err := galleryInput(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	photo, err := h.service.Update(c.Context(), id, in)
	if err != nil {
		return fail(c, requestLocale(c), err)
	}
	return c.JSON(photo)
}

func (h *GalleryHandler) Delete(c *fiber.Ctx) error {
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

func (h *GalleryHandler) Move(c *fiber.Ctx) error {
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

	list, status, err := h.service.Move(c.Context(), id, dir)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error":  i18n.T(locale, "error.generic"),
			"status": reorderStatusLabel(status),
			"data":   list,
		})
	}
	return c.JSON(fiber.Map{"status": reorderStatusLabel(status), "data": list})
}

func galleryInput(c *fiber.Ctx) (domain.GalleryPhotoInput, error) {
	var in domain.GalleryPhotoInput
	if !isMultipart(c) {
		if err := c.BodyParser(&in); err != nil {
			return in, err
		}
		return in, nil
	}

	in.URL = c.FormValue("url")
	in.Title = c.FormValue("title")
	in.AltText = c.FormValue("alt_text")
	in.Order = formOrder(c)
	in.Active = c.FormValue("active") != "false"

	image, filename, err := formImage(c, "image")
	if err != nil {
		return in, err
	}
	in.Image = image
	in.ImageFilename = filename
	return in, nil
}
