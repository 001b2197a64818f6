package middleware

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vestniklab/Vestnik/internal/pkg/usercontext"
)

func newGuardTestApp(viewer usercontext.UserContext) (*fiber.App, *int) {
	reached := 0
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(usercontext.KeyUserContext, viewer)
		return c.Next()
	})
	app.Post("/api/guarded", RequireAPISessionAuth, func(c *fiber.Ctx) error {
		reached++
		return c.SendStatus(fiber.StatusOK)
	})
	return app, &reached
}

func TestRequireAPISessionAuthAnonymous(t *testing.T) {
	app, reached := newGuardTestApp(usercontext.UserContext{})

	req := httptest.NewRequest(fiber.MethodPost, "/api/guarded", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, 0, *reached)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "unauthorized", body["error"])
}

func TestRequireAPISessionAuthLoggedIn(t *testing.T) {
	app, reached := newGuardTestApp(usercontext.UserContext{UserID: 7, IsLoggedIn: true})

	req := httptest.NewRequest(fiber.MethodPost, "/api/guarded", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, *reached)
}
