package http

import (
	"io"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/egemed/clinic_backend/internal/application"
	"github.com/egemed/clinic_backend/internal/domain"
)

type BlogHandler struct {
	service *application.BlogService
}

func NewBlogHandler(service *application.BlogService) *BlogHandler {
	return &BlogHandler{service: service}
}

func (h *BlogHandler) List(c *fiber.Ctx) error {
	list, err := h.service.List(c.Context(), requestLocale(c), listQuery(c))
	if err != nil {
		return fail(c, requestLocale(c), err)
	}
	return c.JSON(list)
}

func (h *BlogHandler) Get(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}
	blog, err := h.service.Get(c.Context(), id)
	if err != nil {
		return fail(c, requestLocale(c), err)
	}
	return c.JSON(blog)
}

func (h *BlogHandler) Create(c *fiber.Ctx) error {
	in, err := blogInput(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	blog, err := h.service.Create(c.Context(), in)
	if err != nil {
		return fail(c, requestLocale(c), err)
	}
	return c.Status(fiber.StatusCreated).JSON(blog)
}

func (h *BlogHandler) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}
	in, err := blogInput(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	blog, err := h.service.Update(c.Context(), id, in)
	if err != nil {
		return fail(c, requestLocale(c), err)
	}
	return c.JSON(blog)
}

func (h *BlogHandler) Delete(c *fiber.Ctx) error {
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

// blogInput reads the admin form either as JSON or as multipart with an
// attached image; the choice upstream (JSON vs multipart) follows from
// whether a file arrived.
func blogInput(c *fiber.Ctx) (domain.BlogInput, error) {
	var in domain.BlogInput
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

func isMultipart(c *fiber.Ctx) bool {
	return strings.HasPrefix(c.Get(fiber.HeaderContentType), "multipart/form-data")
}

// formImage returns the uploaded file bytes, or nil when the field is
// absent (the form submitted a URL instead).
func formImage(c *fiber.Ctx, field string) ([]byte, string, error) {
	header, err := c.FormFile(field)
	if err != nil {
		return nil, "", nil
	}
	f, err := header.Open()
	if err != nil {
		return nil, "", err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, "", err
	}
	return data, header.Filename, nil
}
