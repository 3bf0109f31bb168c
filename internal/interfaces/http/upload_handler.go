package http

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/egemed/clinic_backend/internal/i18n"
	"github.com/egemed/clinic_backend/internal/media"
)

// UploadHandler pushes a file straight to the media backend and answers
// with its public URL; the editor uses it for toolbar image inserts.
type UploadHandler struct {
	uploader media.Uploader
}

func NewUploadHandler(uploader media.Uploader) *UploadHandler {
	return &UploadHandler{uploader: uploader}
}

func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	locale := requestLocale(c)
	if h.uploader == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "no media backend is configured",
		})
	}

	header, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing file field"})
	}
	f, err := header.Open()
	if err != nil {
		log.Printf("failed to open uploaded file: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": i18n.T(locale, "error.generic")})
	}
	defer f.Close()

	url, err := h.uploader.Upload(c.Context(), header.Filename, header.Header.Get("Content-Type"), f)
	if err != nil {
		if strings.Contains(err.Error(), "unsupported image content type") {
			return c.Status(fiber.StatusUnsupportedMediaType).JSON(fiber.Map{
				"error": i18n.T(locale, "error.unsupported_format"),
			})
		}
		log.Printf("failed to upload file: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": i18n.T(locale, "error.generic")})
	}
	return c.JSON(fiber.Map{"url": url})
}
