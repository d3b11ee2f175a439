package bootstrap

import (
	"context"
	"log/slog"

	"venue-deals/internal/infra/db"
	"venue-deals/internal/pkg/config"
	"venue-deals/migrations"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	if cfg.DB.AutoMigrate {
		if err := db.RunMigrations(cfg.DB.BuildDSN(), migrations.FS); err != nil {
			return nil, err
		}
		logger.Info("マイグレーションを適用しました", "database", cfg.DB.DBName)
	}

	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return pool, nil
}
