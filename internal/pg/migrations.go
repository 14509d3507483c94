package pg

import (
	"context"
	"fmt"
	"strings"

	"github.com/GlebRadaev/teamvest/migrations"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
)

// gooseLogger routes goose output to the global zap logger.
type gooseLogger struct{}

func (gooseLogger) Printf(format string, v ...any) {
	zap.L().Info(strings.TrimSpace(fmt.Sprintf(format, v...)), zap.String("component", "migrations"))
}

func (gooseLogger) Fatalf(format string, v ...any) {
	zap.L().Fatal(strings.TrimSpace(fmt.Sprintf(format, v...)), zap.String("component", "migrations"))
}

// Migrate applies the embedded schema migrations and returns the resulting
// schema version.
func Migrate(ctx context.Context, pool *pgxpool.Pool) (int64, error) {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(gooseLogger{})
	if err := goose.SetDialect("postgres"); err != nil {
		return 0, fmt.Errorf("failed to set goose dialect: %w", err)
	}

	db := stdlib.OpenDBFromPool(pool)
	defer func() {
		if err := db.Close(); err != nil {
			zap.L().Warn("failed to close migration connection", zap.Error(err))
		}
	}()

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return 0, fmt.Errorf("failed to run migrations: %w", err)
	}
	version, err := goose.GetDBVersionContext(ctx, db)
	if err != nil {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	return version, nil
}
