package repository

import (
	"context"
	"fmt"

	"github.com/polidog/web/internal/config"
	"github.com/polidog/web/internal/infrastructure/database"
	"github.com/polidog/web/internal/logger"
)

// Open connects the store selected by cfg.StoreMode. With migrate set the
// schema is brought up to date first: embedded SQL migrations for
// Postgres, AutoMigrate for the local SQLite file.
func Open(ctx context.Context, cfg *config.Config, migrate bool) (Store, error) {
	if cfg.MissingRemoteStore() {
		logger.Warn("DATABASE_URL not set in production; using the local store", "path", cfg.DatabasePath)
	}

	switch cfg.StoreMode() {
	case config.StorePostgres:
		if migrate {
			if err := database.MigratePostgres(cfg.DatabaseURL, cfg.DatabaseAuthToken); err != nil {
				return nil, err
			}
		}
		pool, err := database.NewPostgres(ctx, database.PoolConfig{
			URL:               cfg.DatabaseURL,
			AuthToken:         cfg.DatabaseAuthToken,
			MaxConns:          cfg.DBMaxConns,
			MinConns:          cfg.DBMinConns,
			MaxConnLifetime:   cfg.DBMaxConnLifetime,
			MaxConnIdleTime:   cfg.DBMaxConnIdleTime,
			HealthCheckPeriod: cfg.DBHealthCheckPeriod,
		})
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		return NewPostgresStore(pool), nil

	default:
		db, err := database.NewSQLite(database.SQLiteConfig{Path: cfg.DatabasePath})
		if err != nil {
			return nil, err
		}
		if migrate {
			if err := AutoMigrate(db); err != nil {
				if sqlDB, dbErr := db.DB(); dbErr == nil {
					_ = sqlDB.Close()
				}
				return nil, fmt.Errorf("migrate sqlite: %w", err)
			}
		}
		return NewGormStore(db), nil
	}
}
