package checks

import (
	"context"
	"errors"
	"testing"

	"quotes-lake/feature/lake"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type fakeProvisioner struct {
	reports   []*lake.StructureReport
	calls     int
	ensured   bool
	statusErr error
	ensureErr error
}

func (f *fakeProvisioner) Status(ctx context.Context) (*lake.StructureReport, error) {
	if f.statusErr != nil {
		return nil, f.statusErr
	}
	r := f.reports[min(f.calls, len(f.reports)-1)]
	f.calls++
	return r, nil
}

func (f *fakeProvisioner) EnsureLayout(ctx context.Context) error {
	f.ensured = true
	return f.ensureErr
}

func missingReport() *lake.StructureReport {
	return &lake.StructureReport{
		MissingBuckets: []string{"bucket-gold"},
		MissingFolders: []string{"bucket-gold/space-site-quotes/flow-dir"},
	}
}

func okReport() *lake.StructureReport {
	return &lake.StructureReport{MissingBuckets: []string{}, MissingFolders: []string{}}
}

func TestCheckStorage(t *testing.T) {
	report, err := CheckStorage(context.Background(), &fakeProvisioner{reports: []*lake.StructureReport{missingReport()}})
	require.NoError(t, err)
	assert.Equal(t, "missing", report.Status)
	assert.Equal(t, []string{"bucket-gold"}, report.MissingBuckets)

	report, err = CheckStorage(context.Background(), &fakeProvisioner{reports: []*lake.StructureReport{okReport()}})
	require.NoError(t, err)
	assert.Equal(t, "ok", report.Status)

	_, err = CheckStorage(context.Background(), &fakeProvisioner{statusErr: errors.New("offline")})
	assert.ErrorContains(t, err, "offline")
}

func TestFixStorage(t *testing.T) {
	t.Run("Fixes", func(t *testing.T) {
		p := &fakeProvisioner{reports: []*lake.StructureReport{missingReport(), okReport()}}
		report, err := FixStorage(context.Background(), p, zap.NewNop())
		require.NoError(t, err)
		assert.True(t, p.ensured)
		assert.Equal(t, "fixed", report.Status)
		assert.Equal(t, []string{"bucket-gold", "bucket-gold/space-site-quotes/flow-dir"}, report.Fixed)
	})

	t.Run("NothingToFix", func(t *testing.T) {
		p := &fakeProvisioner{reports: []*lake.StructureReport{okReport()}}
		report, err := FixStorage(context.Background(), p, zap.NewNop())
		require.NoError(t, err)
		assert.False(t, p.ensured)
		assert.Equal(t, "ok", report.Status)
	})

	t.Run("EnsureFails", func(t *testing.T) {
		p := &fakeProvisioner{reports: []*lake.StructureReport{missingReport()}, ensureErr: errors.New("denied")}
		_, err := FixStorage(context.Background(), p, zap.NewNop())
		assert.ErrorContains(t, err, "denied")
	})
}

func setupPostgresDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db, DriverName: "postgres"}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}
	return gormDB, mock
}

func columnRows(cols ...[2]string) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"field", "type", "null", "default"})
	for _, c := range cols {
		rows.AddRow(c[0], c[1], "YES", nil)
	}
	return rows
}

var runColumns = [][2]string{
	{"id", "varchar"}, {"source", "text"}, {"status", "text"}, {"started_at", "timestamptz"},
	{"finished_at", "timestamptz"}, {"pages", "int8"}, {"quotes_count", "int8"},
	{"flow_key", "text"}, {"backup_key", "text"}, {"error", "text"},
}

func TestCheckDatabase_NilDB(t *testing.T) {
	report, err := CheckDatabase(nil)
	assert.Error(t, err)
	assert.Nil(t, report)
}

func TestCheckDatabase_Postgres(t *testing.T) {
	db, mock := setupPostgresDB(t)

	mock.ExpectQuery("FROM information_schema.columns").WithArgs("etl_runs").
		WillReturnRows(columnRows(runColumns...))
	mock.ExpectQuery("FROM information_schema.columns").WithArgs("raw_quotes").
		WillReturnRows(columnRows(
			[2]string{"id", "int8"}, [2]string{"run_id", "varchar"}, [2]string{"text", "text"},
			[2]string{"author", "text"}, [2]string{"author_url", "text"}, [2]string{"tags", "json"},
			[2]string{"scraped_at", "timestamptz"},
		))

	report, err := CheckDatabase(db)
	require.NoError(t, err)
	assert.Equal(t, "postgres", report.Dialect)
	assert.False(t, report.Matched)

	assert.Equal(t, "ok", report.Tables["etl_runs"].Status)
	quotes := report.Tables["raw_quotes"]
	assert.Equal(t, "error", quotes.Status)
	assert.Equal(t, []string{"page_url"}, quotes.MissingColumns)
	assert.Equal(t, []string{"tags: expected jsonb, got json"}, quotes.TypeMismatches)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCheckDatabase_MissingTable(t *testing.T) {
	db, mock := setupPostgresDB(t)

	mock.ExpectQuery("FROM information_schema.columns").WithArgs("etl_runs").WillReturnRows(columnRows())
	mock.ExpectQuery("FROM information_schema.columns").WithArgs("raw_quotes").WillReturnError(errors.New("permission denied"))

	report, err := CheckDatabase(db)
	require.NoError(t, err)
	assert.False(t, report.Matched)
	assert.Equal(t, "missing", report.Tables["etl_runs"].Status)
	require.Len(t, report.Errors, 1)
	assert.Contains(t, report.Errors[0], "permission denied")
}

func TestCheckDatabase_MySQLSkipsTypes(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	showRows := func(cols ...string) *sqlmock.Rows {
		rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"})
		for _, c := range cols {
			rows.AddRow(c, "longtext", "YES", "", nil, "")
		}
		return rows
	}
	mock.ExpectQuery("SHOW COLUMNS FROM `etl_runs`").WillReturnRows(showRows(
		"id", "source", "status", "started_at", "finished_at", "pages", "quotes_count", "flow_key", "backup_key", "error"))
	mock.ExpectQuery("SHOW COLUMNS FROM `raw_quotes`").WillReturnRows(showRows(
		"id", "run_id", "text", "author", "author_url", "tags", "page_url", "scraped_at"))

	report, err := CheckDatabase(db)
	require.NoError(t, err)
	assert.Equal(t, "mysql", report.Dialect)
	assert.True(t, report.Matched)
}

type fakeLister struct {
	entries []lake.ObjectEntry
	err     error
	prefix  string
}

func (f *fakeLister) List(ctx context.Context, bucket, prefix string) ([]lake.ObjectEntry, error) {
	f.prefix = prefix
	return f.entries, f.err
}

func TestCheckRuns(t *testing.T) {
	db, mock := setupPostgresDB(t)
	rows := sqlmock.NewRows([]string{"id", "status", "backup_key"}).
		AddRow("run-a", "succeeded", "space-site-quotes/backup-dir/quotes-a.jsonl").
		AddRow("run-b", "succeeded", "space-site-quotes/backup-dir/quotes-b.jsonl")
	mock.ExpectQuery(`SELECT \* FROM "etl_runs" WHERE status = \$1 AND backup_key <> \$2`).
		WithArgs("succeeded", "").
		WillReturnRows(rows)

	lister := &fakeLister{entries: []lake.ObjectEntry{
		{Name: "space-site-quotes/backup-dir/"},
		{Name: "space-site-quotes/backup-dir/quotes-a.jsonl"},
		{Name: "space-site-quotes/backup-dir/manual.csv"},
	}}

	report, err := CheckRuns(context.Background(), db, lister, RunsTarget{Bucket: "bucket-bronze", Prefix: "space-site-quotes/backup-dir"})
	require.NoError(t, err)
	assert.Equal(t, "space-site-quotes/backup-dir/", lister.prefix)
	assert.Equal(t, "error", report.Status)
	assert.Equal(t, 2, report.Runs)
	assert.Equal(t, []string{"run-b"}, report.MissingBackups)
	assert.Equal(t, []string{"space-site-quotes/backup-dir/manual.csv"}, report.Orphans)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCheckRuns_Errors(t *testing.T) {
	_, err := CheckRuns(context.Background(), nil, &fakeLister{}, RunsTarget{})
	assert.Error(t, err)

	db, mock := setupPostgresDB(t)
	mock.ExpectQuery(`FROM "etl_runs"`).WillReturnRows(sqlmock.NewRows([]string{"id"}))
	_, err = CheckRuns(context.Background(), db, &fakeLister{err: errors.New("bucket gone")}, RunsTarget{Bucket: "b", Prefix: "p"})
	assert.ErrorContains(t, err, "bucket gone")
}
