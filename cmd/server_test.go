package cmd

import (
	"context"
	"io"
	"net/http/httptest"
	"testing"

	"sptid/core/middleware/auth"
	"sptid/core/server"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewApp(t *testing.T) {
	cfg := testConfig(t)
	cfg.Server = server.Config{Host: "127.0.0.1", Port: "9090", ApiKey: "secret"}

	rt, err := openRuntime(context.Background(), cfg, zap.NewNop(), true)
	require.NoError(t, err)
	app, err := newApp(cfg, zap.NewNop(), rt)
	require.NoError(t, err)

	t.Run("API docs are public", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/swagger/doc.json", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Contains(t, string(body), `"/items/{id}"`)
		assert.Contains(t, string(body), `"/ids/scan"`)
		assert.Contains(t, string(body), `"host": "127.0.0.1:9090"`)
	})

	t.Run("Lookups require the key", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/items/"+rustyKeyID, nil))
		require.NoError(t, err)
		assert.Equal(t, 401, resp.StatusCode)

		req := httptest.NewRequest("GET", "/items/"+rustyKeyID, nil)
		req.Header.Set(auth.Header, "secret")
		resp, err = app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("Custom items resolve through the API", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/items/"+customID+"/text", nil)
		req.Header.Set(auth.Header, "secret")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Contains(t, string(body), "Custom Rifle")
	})
}
