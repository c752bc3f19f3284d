package quotes

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestHandleRun(t *testing.T) {
	placer := &fakePlacer{dir: t.TempDir()}
	pipeline := NewPipeline(testConfig("http://x"), &fakeSource{result: scraped(2)}, nil, placer, zap.NewNop())

	app := fiber.New()
	NewHandler(pipeline, nil, zap.NewNop()).RegisterRoutes(app)

	resp, err := app.Test(httptest.NewRequest("POST", "/quotes/run?pages=1", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var report RunReport
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
	assert.Equal(t, 2, report.Quotes)
	assert.NotEmpty(t, report.RunID)
}

func TestHandleRun_Failure(t *testing.T) {
	placer := &fakePlacer{dir: t.TempDir()}
	pipeline := NewPipeline(testConfig("http://x"), &fakeSource{err: errors.New("offline")}, nil, placer, zap.NewNop())

	app := fiber.New()
	NewHandler(pipeline, nil, zap.NewNop()).RegisterRoutes(app)

	resp, err := app.Test(httptest.NewRequest("POST", "/quotes/run", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

func TestHandleList_NoDatabase(t *testing.T) {
	app := fiber.New()
	NewHandler(nil, nil, zap.NewNop()).RegisterRoutes(app)

	resp, err := app.Test(httptest.NewRequest("GET", "/quotes", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
}

func TestHandleList(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRepository(db)

	rows := sqlmock.NewRows([]string{"id", "run_id", "text", "author", "author_url", "tags", "page_url", "scraped_at"}).
		AddRow(1, nil, "a", "A", "", []byte(`["x"]`), "http://x/", time.Now())
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "raw_quotes"`)).WillReturnRows(rows)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "raw_quotes"`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	app := fiber.New()
	NewHandler(nil, repo, zap.NewNop()).RegisterRoutes(app)

	resp, err := app.Test(httptest.NewRequest("GET", "/quotes?limit=5", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body struct {
		Total  int64            `json:"total"`
		Quotes []map[string]any `json:"quotes"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, int64(7), body.Total)
	require.Len(t, body.Quotes, 1)
	assert.Equal(t, "A", body.Quotes[0]["author"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoader(t *testing.T) {
	feature := NewFeature(nil, nil, zap.NewNop())
	assert.Equal(t, "quotes", feature.Name())
	assert.True(t, feature.IsEnabled())
	assert.NoError(t, feature.Load(fiber.New()))
}
