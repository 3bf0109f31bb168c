package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/egemed/clinic_backend/internal/domain"
	"github.com/egemed/clinic_backend/internal/i18n"
	"github.com/egemed/clinic_backend/internal/session"
)

// LocaleGate redirects any public request whose path does not start with a
// recognized locale prefix to the same path under the default locale.
// Admin and health routes are exempt.
func LocaleGate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := c.Path()
		if path == "/healthz" || strings.HasPrefix(path, "/api/admin") {
			return c.Next()
		}
		first := path
		first = strings.TrimPrefix(first, "/")
		if idx := strings.IndexByte(first, '/'); idx >= 0 {
			first = first[:idx]
		}
		if domain.ValidLocale(first) {
			return c.Next()
		}
		target := "/" + string(domain.DefaultLocale) + path
		if q := string(c.Request().URI().QueryString()); q != "" {
			target += "?" + q
		}
		return c.Redirect(target, fiber.StatusTemporaryRedirect)
	}
}

// RequireAdmin gates the admin surface on a live session token.
func RequireAdmin(store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !store.LoggedIn() {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": i18n.T(requestLocale(c), "error.unauthorized"),
			})
		}
		return c.Next()
	}
}
