// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed sqlite/*.sql postgres/*.sql
var embedMigrations embed.FS

// Migrate brings the schema of db up to date. dialect is "sqlite3" or
// "postgres".
func Migrate(db *sql.DB, dialect string) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	gooseDialect, dir, err := migrationSet(dialect)
	if err != nil {
		return err
	}

	goose.SetBaseFS(embedMigrations)

	if err = goose.SetDialect(gooseDialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err = goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

func migrationSet(dialect string) (gooseDialect, dir string, err error) {
	switch dialect {
	case "sqlite3", "sqlite":
		return "sqlite3", "sqlite", nil
	case "postgres", "pgx":
		return "pgx", "postgres", nil
	default:
		return "", "", fmt.Errorf("migration error: unknown dialect %q", dialect)
	}
}
