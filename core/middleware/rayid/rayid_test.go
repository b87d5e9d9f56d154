package rayid_test

import (
	"net/http/httptest"
	"testing"

	"sptid/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupApp() *fiber.App {
	app := fiber.New()
	app.Use(rayid.New())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(c.Locals(rayid.LocalsKey).(string))
	})
	return app
}

func TestNew_GeneratesID(t *testing.T) {
	resp, err := setupApp().Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)

	id := resp.Header.Get(rayid.Header)
	_, err = uuid.Parse(id)
	assert.NoError(t, err)
}

func TestNew_KeepsCallerID(t *testing.T) {
	want := uuid.NewString()
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(rayid.Header, want)

	resp, err := setupApp().Test(req)
	require.NoError(t, err)
	assert.Equal(t, want, resp.Header.Get(rayid.Header))
}

func TestNew_ReplacesInvalidID(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(rayid.Header, "not-a-uuid")

	resp, err := setupApp().Test(req)
	require.NoError(t, err)
	assert.NotEqual(t, "not-a-uuid", resp.Header.Get(rayid.Header))
}
