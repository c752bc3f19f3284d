package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "quotes-lake", cfg.App.ProjectName)
	assert.False(t, cfg.App.Debug)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "localhost:9000", cfg.Storage.Endpoint)
	assert.Equal(t, "minio_local_storage", cfg.Storage.LocalDir)
	assert.Equal(t, 30, cfg.Storage.TimeoutSeconds)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.True(t, cfg.Log.Console)
	assert.False(t, cfg.Log.File)
	assert.Equal(t, "https://quotes.toscrape.com", cfg.Scraper.BaseURL)
	assert.Equal(t, time.Second, cfg.Scraper.Delay)
	assert.Equal(t, 30*time.Second, cfg.Scraper.Timeout)
	assert.Equal(t, 2, cfg.Scraper.FetchAttempts)
	assert.Equal(t, 20, cfg.Scraper.MaxPages)
	assert.Equal(t, "bucket-bronze", cfg.Scraper.Bucket)
}

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("STORAGE_ENDPOINT", "minio:9000")
	t.Setenv("STORAGE_USE_SSL", "yes")
	t.Setenv("APP_DEBUG", "y")
	t.Setenv("LOG_CONSOLE", "no")
	t.Setenv("DATABASE_DSN", "postgres://etl@db/etl")
	t.Setenv("SCRAPER_DELAY", "250ms")
	t.Setenv("SCRAPER_MAX_PAGES", "3")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "minio:9000", cfg.Storage.Endpoint)
	assert.True(t, cfg.Storage.UseSSL)
	assert.True(t, cfg.App.Debug)
	assert.False(t, cfg.Log.Console)
	assert.Equal(t, "postgres://etl@db/etl", cfg.Database.DSN)
	assert.Equal(t, 250*time.Millisecond, cfg.Scraper.Delay)
	assert.Equal(t, 3, cfg.Scraper.MaxPages)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	content := "SERVER_PORT=9999\nSTORAGE_ACCESS_KEY=root\nSERVER_ALLOW_RESET=1\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(content), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("SERVER_PORT")
		os.Unsetenv("STORAGE_ACCESS_KEY")
		os.Unsetenv("SERVER_ALLOW_RESET")
	})

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "9999", cfg.Server.Port)
	assert.Equal(t, "root", cfg.Storage.AccessKey)
	assert.True(t, cfg.Server.AllowReset)
}
