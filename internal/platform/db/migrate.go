package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/for-hk/linkup-auth/internal/platform/db/migrations"
	"github.com/pressly/goose/v3"
)

// Migrate brings the schema up to date using the embedded migrations.
func Migrate(ctx context.Context, conn *sql.DB) error {
	goose.SetBaseFS(migrations.FS)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, conn, "."); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	return nil
}
