package logger

import (
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	t.Run("Console", func(t *testing.T) {
		l, err := New(&Config{Level: "info", Format: "console", Console: true})
		require.NoError(t, err)
		assert.True(t, l.Core().Enabled(zap.InfoLevel))
		assert.False(t, l.Core().Enabled(zap.DebugLevel))
	})

	t.Run("Debug", func(t *testing.T) {
		l, err := New(&Config{Level: "debug", Format: "json", Console: true})
		require.NoError(t, err)
		assert.True(t, l.Core().Enabled(zap.DebugLevel))
	})

	t.Run("Disabled", func(t *testing.T) {
		l, err := New(&Config{Level: "info"})
		require.NoError(t, err)
		assert.False(t, l.Core().Enabled(zap.ErrorLevel))
	})

	t.Run("InvalidLevel", func(t *testing.T) {
		_, err := New(&Config{Level: "loud", Console: true})
		assert.Error(t, err)
	})

	t.Run("File", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "app.log")
		l, err := New(&Config{Level: "info", Format: "json", File: true, FilePath: path})
		require.NoError(t, err)

		l.Info("written to file")
		_ = l.Sync()

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "written to file")
	})
}

func TestWithRayID(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	base := zap.New(core)

	app := fiber.New()
	app.Get("/plain", func(c *fiber.Ctx) error {
		WithRayID(base, c).Info("no ray")
		return nil
	})
	app.Get("/traced", func(c *fiber.Ctx) error {
		c.Locals("ray_id", "abc-123")
		WithRayID(base, c).Info("with ray")
		return nil
	})

	_, err := app.Test(httptest.NewRequest("GET", "/plain", nil))
	require.NoError(t, err)
	_, err = app.Test(httptest.NewRequest("GET", "/traced", nil))
	require.NoError(t, err)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Empty(t, entries[0].Context)
	assert.Equal(t, "abc-123", entries[1].ContextMap()["ray_id"])
}
