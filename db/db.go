// Package db owns the schema migrations for the reviews table. Migrations
// are embedded so the API server can apply them idempotently at startup.
package db

import (
	"database/sql"
	"embed"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Up applies any pending migrations. Calling it when the schema is current
// is a no-op, so it runs on every server start.
func Up(sqlDB *sql.DB) error {
	goose.SetBaseFS(migrationsFS)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.Up(sqlDB, "migrations")
}

// Reset rolls the schema all the way down and back up. Test isolation only.
func Reset(sqlDB *sql.DB) error {
	goose.SetBaseFS(migrationsFS)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	if err := goose.DownTo(sqlDB, "migrations", 0); err != nil {
		return err
	}
	return goose.Up(sqlDB, "migrations")
}
