package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/garrettladley/earth/internal/migrations"
)

const driverName = "sqlite3"

// Open opens the sqlite database at path and applies pending migrations.
func Open(ctx context.Context, path string) (*sql.DB, Querier, error) {
	sqlDB, err := sql.Open(driverName, path+"?_busy_timeout=5000&_foreign_keys=on")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	// a single writer keeps sqlite from returning SQLITE_BUSY under the TUI's
	// concurrent commands
	sqlDB.SetMaxOpenConns(1)

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := migrations.Apply(ctx, sqlDB); err != nil {
		_ = sqlDB.Close()
		return nil, nil, fmt.Errorf("failed to apply migrations: %w", err)
	}

	return sqlDB, New(sqlDB), nil
}
