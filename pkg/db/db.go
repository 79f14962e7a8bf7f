package db

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"github.com/nexcubelabs/nexcube/internal/config"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormprometheus "gorm.io/plugin/prometheus"
)

// Open connects gorm using the configured driver. sqlite is the default for
// local and single-host deployments; postgres for anything shared.
func Open(cfg config.Config, log *zap.Logger) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Database.Driver {
	case "postgres":
		dialector = postgres.Open(cfg.Database.DSN)
	case "sqlite", "":
		dialector = sqlite.Open(cfg.Database.DSN)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}

	gdb, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if cfg.Database.Metrics {
		if err := gdb.Use(gormprometheus.New(gormprometheus.Config{
			DBName:          "nexcube",
			RefreshInterval: 15,
		})); err != nil {
			return nil, fmt.Errorf("register db metrics: %w", err)
		}
	}

	log.Info("database connected", zap.String("driver", cfg.Database.Driver))
	return gdb, nil
}
