package http

import (
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/egemed/clinic_backend/internal/session"
)

func newLocaleGateApp() *fiber.App {
	app := fiber.New()
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/api/admin/faqs", func(c *fiber.Ctx) error { return c.SendString("admin") })
	app.Use(LocaleGate())
	app.Get("/:locale/api/faqs", func(c *fiber.Ctx) error { return c.SendString("public") })
	return app
}

func TestLocaleGate(t *testing.T) {
	tests := []struct {
		name         string
		path         string
		wantStatus   int
		wantLocation string
	}{
		{"valid tr prefix passes", "/tr/api/faqs", 200, ""},
		{"valid en prefix passes", "/en/api/faqs", 200, ""},
		{"missing locale redirects to default", "/api/faqs", 307, "/tr/api/faqs"},
		{"unknown locale redirects to default", "/de/api/faqs", 307, "/tr/de/api/faqs"},
		{"query survives the redirect", "/api/faqs?page=2", 307, "/tr/api/faqs?page=2"},
		{"healthz is exempt", "/healthz", 200, ""},
		{"admin surface is exempt", "/api/admin/faqs", 200, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newLocaleGateApp()
			req := httptest.NewRequest(nethttp.MethodGet, tt.path, nil)
			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			if tt.wantLocation != "" {
				assert.Equal(t, tt.wantLocation, resp.Header.Get("Location"))
			}
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	store := session.NewStore()
	app := fiber.New()
	app.Use(RequireAdmin(store))
	app.Get("/api/admin/dashboard", func(c *fiber.Ctx) error { return c.SendString("ok") })

	resp, err := app.Test(httptest.NewRequest(nethttp.MethodGet, "/api/admin/dashboard", nil))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, nethttp.StatusUnauthorized, resp.StatusCode)

	store.Login("opaque-token")
	resp, err = app.Test(httptest.NewRequest(nethttp.MethodGet, "/api/admin/dashboard", nil))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
}
