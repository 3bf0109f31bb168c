package http

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/egemed/clinic_backend/internal/application"
	"github.com/egemed/clinic_backend/internal/domain"
	"github.com/egemed/clinic_backend/internal/i18n"
	"github.com/egemed/clinic_backend/internal/upstream"
)

// requestLocale resolves the locale for a request: the path parameter on
// public routes, the locale query on admin routes, the default otherwise.
func requestLocale(c *fiber.Ctx) domain.Locale {
	if l := c.Params("locale"); domain.ValidLocale(l) {
		return domain.Locale(l)
	}
	if l := c.Query("locale"); domain.ValidLocale(l) {
		return domain.Locale(l)
	}
	return domain.DefaultLocale
}

func listQuery(c *fiber.Ctx) domain.ListQuery {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	return domain.ListQuery{
		Search: strings.TrimSpace(c.Query("search")),
		Page:   page,
		Limit:  limit,
	}.Normalize()
}

// fail converts an error into the localized inline message the admin and
// public UIs show. Upstream status codes pass through, with the two ad-hoc
// upload mappings the forms rely on (413, 415); validation failures answer
// 400 before anything was sent upstream.
func fail(c *fiber.Ctx, locale domain.Locale, err error) error {
	var verr *application.ValidationError
	if errors.As(err, &verr) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": i18n.T(locale, verr.Key),
			"field": verr.Field,
		})
	}

	var aerr *upstream.APIError
	if errors.As(err, &aerr) {
		switch aerr.StatusCode {
		case fiber.StatusRequestEntityTooLarge:
			return c.Status(aerr.StatusCode).JSON(fiber.Map{"error": i18n.T(locale, "error.file_too_large")})
		case fiber.StatusUnsupportedMediaType:
			return c.Status(aerr.StatusCode).JSON(fiber.Map{"error": i18n.T(locale, "error.unsupported_format")})
		case fiber.StatusNotFound:
			return c.Status(aerr.StatusCode).JSON(fiber.Map{"error": i18n.T(locale, "error.not_found")})
		}
		status := aerr.StatusCode
		if status < 400 {
			status = fiber.StatusBadGateway
		}
		message := aerr.Message
		if message == "" || message == "request failed" {
			message = i18n.T(locale, "error.generic")
		}
		return c.Status(status).JSON(fiber.Map{"error": message})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}

// confirmRequested is the delete-confirmation contract at the HTTP
// boundary: the destructive call is not even attempted without it.
func confirmRequested(c *fiber.Ctx) bool {
	v := c.Query("confirm")
	return v == "true" || v == "1"
}

func confirmRequired(c *fiber.Ctx, locale domain.Locale) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": i18n.T(locale, "error.confirm_required"),
	})
}

// reorderBlocked reports whether a search filter forbids the move: visual
// index and server-side order diverge under a filter.
func reorderBlocked(c *fiber.Ctx) bool {
	return strings.TrimSpace(c.Query("search")) != ""
}

func reorderFiltered(c *fiber.Ctx, locale domain.Locale) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
		"error": i18n.T(locale, "error.reorder_filtered"),
	})
}

// formOrder reads the optional order field of a multipart form: nil when
// the form did not send one, so an explicit 0 stays distinct from "not
// chosen".
func formOrder(c *fiber.Ctx) *int {
	v := c.FormValue("order")
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil
	}
	return &n
}

func parseDirection(s string) (application.Direction, bool) {
	switch s {
	case "up":
		return application.MoveUp, true
	case "down":
		return application.MoveDown, true
	}
	return 0, false
}

func reorderStatusLabel(status application.ReorderStatus) string {
	switch status {
	case application.ReorderConfirmed:
		return "confirmed"
	case application.ReorderRolledBack:
		return "rolled_back"
	default:
		return "noop"
	}
}
