// Package migrations applies the embedded goose SQL migrations.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"log/slog"
	"time"

	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"

	// Registers the "pgx" database/sql driver.
	_ "github.com/jackc/pgx/v5/stdlib"
)

const migrationTimeout = 60 * time.Second

//go:embed sql/*.sql
var embedMigrations embed.FS

// Commands lists the goose commands accepted by Run.
var Commands = []string{"up", "up-by-one", "down", "redo", "reset", "status", "version"}

// Open opens a database/sql handle through the pgx driver.
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "sql open")
	}

	return db, nil
}

// Run executes a goose command against db.
func Run(ctx context.Context, logger *slog.Logger, db *sql.DB, command string) error {
	migrationCtx, cancel := context.WithTimeout(ctx, migrationTimeout)
	defer cancel()

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Wrap(err, "failed to set dialect")
	}

	logger.Info("Running migrations", slog.String("command", command))

	if err := goose.RunContext(migrationCtx, command, db, "sql"); err != nil {
		return errors.Wrapf(err, "goose %s", command)
	}

	version, err := goose.GetDBVersionContext(migrationCtx, db)
	if err != nil {
		return errors.Wrap(err, "failed to read schema version")
	}

	logger.Info("Migrations finished", slog.Int64("version", version))

	return nil
}
