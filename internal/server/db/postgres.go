// Package db opens the users-service database and applies embedded
// migrations.
package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joshradin/federeddit/internal/server/migrations"
	"github.com/pressly/goose/v3"
)

// Open connects to PostgreSQL via the pgx stdlib driver and runs any
// pending goose migrations.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	conn, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	if err := conn.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return nil, err
	}
	if err := goose.UpContext(ctx, conn, "."); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return conn, nil
}
