package integrity

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"quotes-lake/core/storage/mocks"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T, withDB bool) (*fiber.App, *mocks.Client, sqlmock.Sqlmock) {
	app := fiber.New()
	store, client := newStore(t)
	var sqlMock sqlmock.Sqlmock
	svc := NewService(store, nil, testRuns, zap.NewNop())
	if withDB {
		db, m := setupMockDB(t)
		svc = NewService(store, db, testRuns, zap.NewNop())
		sqlMock = m
	}
	NewHandler(svc).RegisterRoutes(app)
	return app, client, sqlMock
}

func TestHandleStorageCheck(t *testing.T) {
	app, client, _ := setupTestApp(t, false)
	client.On("BucketExists", mock.Anything, "bucket-bronze").Return(true, nil)
	client.On("ListObjects", mock.Anything, "bucket-bronze", mock.Anything).Return(mocks.Objects())

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity/storage", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "missing", body["status"])
	assert.Len(t, body["missing_folders"], 2)
	client.AssertNotCalled(t, "PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestHandleStorageCheck_Fix(t *testing.T) {
	app, client, _ := setupTestApp(t, false)
	client.On("BucketExists", mock.Anything, "bucket-bronze").Return(true, nil)
	client.On("ListObjects", mock.Anything, "bucket-bronze", mock.Anything).Return(mocks.Objects()).Times(4)
	client.On("PutObject", mock.Anything, "bucket-bronze", mock.Anything, mock.Anything, int64(0), mock.Anything).
		Return(minio.UploadInfo{}, nil)
	client.On("ListObjects", mock.Anything, "bucket-bronze", mock.Anything).
		Return(mocks.Objects(minio.ObjectInfo{Key: "marker"})).Once()
	client.On("ListObjects", mock.Anything, "bucket-bronze", mock.Anything).
		Return(mocks.Objects(minio.ObjectInfo{Key: "marker"})).Once()

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity/storage?fix=true", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "fixed", body["status"])
	client.AssertNumberOfCalls(t, "PutObject", 2)
}

func TestHandleStorageCheck_Error(t *testing.T) {
	app, client, _ := setupTestApp(t, false)
	client.On("BucketExists", mock.Anything, "bucket-bronze").Return(false, assert.AnError)

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity/storage", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

func TestHandleDatabaseCheck(t *testing.T) {
	app, _, sqlMock := setupTestApp(t, true)
	expectSchema(sqlMock)

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity/database", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["matched"])
}

func TestHandleDatabaseCheck_NotConfigured(t *testing.T) {
	app, _, _ := setupTestApp(t, false)

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity/database", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
}

func TestHandleIntegrityCheck(t *testing.T) {
	app, client, sqlMock := setupTestApp(t, true)
	client.On("BucketExists", mock.Anything, "bucket-bronze").Return(false, nil)
	client.On("ListObjects", mock.Anything, "bucket-bronze", mock.Anything).Return(mocks.Objects())
	expectSchema(sqlMock)
	expectRuns(sqlMock, sqlmock.NewRows([]string{"id", "status", "backup_key"}))

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, false, body["healthy"])
	assert.Contains(t, body, "storage")
	assert.Contains(t, body, "database")
	assert.Contains(t, body, "runs")
}

func TestHandleRunsCheck(t *testing.T) {
	app, client, sqlMock := setupTestApp(t, true)
	client.On("ListObjects", mock.Anything, "bucket-bronze", mock.Anything).Return(mocks.Objects())
	expectRuns(sqlMock, sqlmock.NewRows([]string{"id", "status", "backup_key"}).
		AddRow("run-1", "succeeded", "space-site-quotes/backup-dir/quotes-run-1.jsonl"))

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity/runs", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "error", body["status"])
	assert.Equal(t, []any{"run-1"}, body["missing_backups"])
}

func TestHandleRunsCheck_NotConfigured(t *testing.T) {
	app, _, _ := setupTestApp(t, false)

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity/runs", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
}
