package database

import (
	"context"
	"embed"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

//go:embed sql/*.sql
var schemaFiles embed.FS

// SchemaSQL returns the schema bootstrap script for a dialect.
func SchemaSQL(dialect string) (string, error) {
	name := "sql/schema_postgres.sql"
	if dialect == DriverMySQL {
		name = "sql/schema_mysql.sql"
	}
	data, err := schemaFiles.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("schema not found for dialect %s: %w", dialect, err)
	}
	return string(data), nil
}

// EnsureSchema creates the ETL tables if they do not exist.
// The script is executed statement by statement, in file order.
func EnsureSchema(ctx context.Context, db *gorm.DB) error {
	script, err := SchemaSQL(db.Dialector.Name())
	if err != nil {
		return err
	}

	for _, stmt := range splitStatements(script) {
		if err := db.WithContext(ctx).Exec(stmt).Error; err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}

func splitStatements(script string) []string {
	var stmts []string
	var current strings.Builder
	for _, line := range strings.Split(script, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "--") {
			continue
		}
		current.WriteString(line)
		current.WriteString("\n")
		if strings.HasSuffix(trimmed, ";") {
			stmts = append(stmts, strings.TrimSpace(current.String()))
			current.Reset()
		}
	}
	if rest := strings.TrimSpace(current.String()); rest != "" {
		stmts = append(stmts, rest)
	}
	return stmts
}
