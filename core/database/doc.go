// Package database handles database connections, schema bootstrap and inspection.
//
// It wraps GORM with the postgres driver (default) or the mysql driver, selected by
// DATABASE_DRIVER. A full DATABASE_DSN overrides the individual host/user fields.
//
// # Schema
//
// EnsureSchema executes the embedded sql/schema_<dialect>.sql script, creating the
// etl_runs and raw_quotes tables if they are missing. The script is idempotent.
//
// # Inspection
//
// GetTableColumns lists live columns (information_schema on postgres, SHOW COLUMNS on
// mysql); the integrity feature compares them with the GORM models.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//	err = database.EnsureSchema(ctx, db)
package database
