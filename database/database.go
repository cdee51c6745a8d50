package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"stockroom/config"
	"stockroom/models"
)

// Connect opens the configured database and makes sure both tables exist.
func Connect(cfg config.Database, log *slog.Logger) (*gorm.DB, error) {
	dialector, err := dialectorFor(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: gormLogger(log)})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s database: %w", cfg.Driver, err)
	}

	// SQLite allows a single writer; one connection keeps every statement on it.
	if cfg.Driver == "sqlite" {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}

	if err := Migrate(db); err != nil {
		_ = Close(db)
		return nil, err
	}

	log.Debug("database ready", "driver", cfg.Driver)
	return db, nil
}

// Migrate creates the products and history tables when they are missing.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Product{}, &models.HistoryEntry{}); err != nil {
		return fmt.Errorf("failed to migrate the database: %w", err)
	}
	return nil
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func dialectorFor(cfg config.Database) (gorm.Dialector, error) {
	switch cfg.Driver {
	case "sqlite":
		return sqlite.Open(cfg.DSN), nil
	case "mysql":
		return mysql.Open(cfg.DSN), nil
	case "postgres":
		return postgres.Open(cfg.DSN), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// slogWriter feeds gorm's printf-style logger into slog.
type slogWriter struct {
	log   *slog.Logger
	level slog.Level
}

func (w slogWriter) Printf(format string, args ...interface{}) {
	w.log.Log(context.Background(), w.level, fmt.Sprintf(format, args...), "component", "gorm")
}

func gormLogger(log *slog.Logger) logger.Interface {
	level, writeAt := logger.Warn, slog.LevelWarn
	if log.Enabled(context.Background(), slog.LevelDebug) {
		level, writeAt = logger.Info, slog.LevelDebug
	}
	return logger.New(slogWriter{log: log, level: writeAt}, logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}
