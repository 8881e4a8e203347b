package auth_test

import (
	"net/http/httptest"
	"testing"

	"inventory-manager/core/middleware/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func newApp(cfg auth.Config) *fiber.App {
	app := fiber.New()
	app.Use(auth.New(cfg))
	app.Get("/ok", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/health", func(c *fiber.Ctx) error { return c.SendString("up") })
	return app
}

func TestAuth(t *testing.T) {
	tests := []struct {
		name   string
		cfg    auth.Config
		target string
		header string
		want   int
	}{
		{"Disabled", auth.Config{}, "/ok", "", fiber.StatusOK},
		{"MissingKey", auth.Config{ApiKey: "secret"}, "/ok", "", fiber.StatusUnauthorized},
		{"WrongKey", auth.Config{ApiKey: "secret"}, "/ok", "nope", fiber.StatusUnauthorized},
		{"HeaderKey", auth.Config{ApiKey: "secret"}, "/ok", "secret", fiber.StatusOK},
		{"QueryKey", auth.Config{ApiKey: "secret"}, "/ok?api_key=secret", "", fiber.StatusOK},
		{"SkippedPath", auth.Config{ApiKey: "secret", Skip: []string{"/health"}}, "/health", "", fiber.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newApp(tt.cfg)
			req := httptest.NewRequest("GET", tt.target, nil)
			if tt.header != "" {
				req.Header.Set(auth.HeaderName, tt.header)
			}

			resp, err := app.Test(req)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}
