package database

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"

	"github.com/Dhayanand17/AQI/internal/shared/config"
	"github.com/Dhayanand17/AQI/internal/shared/database/migrations"
)

// NewDB opens the SQLite credential store and applies the embedded schema
// migrations. Migration runs are idempotent, so opening an existing database
// is a no-op beyond the connection itself.
func NewDB(cfg *config.Config, logger zerolog.Logger) (*sql.DB, error) {
	logger.Debug().Str("path", cfg.DatabasePath).Msg("Opening database")

	db, err := sql.Open("sqlite", cfg.DatabasePath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to open database")
		return nil, err
	}

	// SQLite serializes writers; a single connection avoids SQLITE_BUSY
	// under concurrent sign-ups.
	db.SetMaxOpenConns(1)

	if err := RunMigrations(context.Background(), db); err != nil {
		logger.Error().Err(err).Msg("Failed to run migrations")
		db.Close()
		return nil, err
	}

	logger.Debug().Msg("Database ready")
	return db, nil
}

// RunMigrations applies the embedded goose migrations.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}

	return goose.UpContext(ctx, db, ".")
}
