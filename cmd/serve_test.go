package cmd

import (
	"net/http/httptest"
	"testing"

	"quotes-lake/core/config"
	"quotes-lake/core/middleware/auth"
	"quotes-lake/core/storage/layout"
	"quotes-lake/core/storage/mocks"
	"quotes-lake/feature/lake"
	"quotes-lake/feature/quotes"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRuntime(t *testing.T) *runtime {
	t.Helper()
	cfg := &config.Config{}
	cfg.Server.ApiKey = "secret"
	cfg.Scraper = quotes.Config{
		BaseURL:       "http://quotes.example",
		FetchAttempts: 1,
		Bucket:        "bucket-bronze",
		Space:         "space-site-quotes",
	}

	client := new(mocks.Client)
	store, err := lake.NewStore(client, layout.Default(), t.TempDir(), zap.NewNop(), false)
	require.NoError(t, err)

	return &runtime{cfg: cfg, logger: zap.NewNop(), client: client, store: store}
}

func TestNewApp_PublicEndpoints(t *testing.T) {
	app := newApp(newTestRuntime(t))

	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/metrics", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestNewApp_RequiresApiKey(t *testing.T) {
	app := newApp(newTestRuntime(t))

	resp, err := app.Test(httptest.NewRequest("GET", "/lake/layout", nil))
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)

	req := httptest.NewRequest("GET", "/lake/layout", nil)
	req.Header.Set(auth.Header, "secret")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Ray-ID"))
}

func TestNewApp_QuotesListWithoutDatabase(t *testing.T) {
	app := newApp(newTestRuntime(t))

	req := httptest.NewRequest("GET", "/quotes?api_key=secret", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 503, resp.StatusCode)
}

func TestRuntime_RunsTarget(t *testing.T) {
	rt := newTestRuntime(t)
	target := rt.runsTarget()
	sp, ok := layout.Default().Space("bucket-bronze", "space-site-quotes")
	require.True(t, ok)

	assert.Equal(t, "bucket-bronze", target.Bucket)
	assert.Equal(t, sp.BackupPath(), target.Prefix)

	rt.cfg.Scraper.Space = "unknown"
	assert.Empty(t, rt.runsTarget().Prefix)
}
