package db

import (
	"fmt"
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"assettracker/internal/config"
	"assettracker/internal/models"
)

// Connect opens the configured database, runs migrations and optionally
// seeds an empty database with sample data. TranslateError makes duplicate
// key violations surface as gorm.ErrDuplicatedKey on every driver.
func Connect(cfg config.Config) (*gorm.DB, error) {
	gcfg := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	}

	var gdb *gorm.DB
	var err error
	switch cfg.DBDriver {
	case "mysql":
		gdb, err = gorm.Open(mysql.Open(cfg.DBDSN), gcfg)
	case "postgres":
		gdb, err = gorm.Open(postgres.Open(cfg.DBDSN), gcfg)
	case "sqlite", "":
		gdb, err = openSQLite(cfg, gcfg)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
	if err != nil {
		return nil, err
	}

	if err := gdb.AutoMigrate(&models.Asset{}, &models.Relationship{}); err != nil {
		return nil, err
	}

	if cfg.SeedSampleData {
		if err := Seed(gdb); err != nil {
			return nil, err
		}
	}
	return gdb, nil
}

// openSQLite tries the primary file path and falls back to the alternate
// path once if the open fails. The fallback happens only at init, never at
// runtime.
func openSQLite(cfg config.Config, gcfg *gorm.Config) (*gorm.DB, error) {
	path := cfg.SQLitePath
	if cfg.DBDSN != "" {
		path = cfg.DBDSN
	}

	gdb, err := gorm.Open(sqlite.Open(path), gcfg)
	if err != nil && cfg.SQLiteFallbackPath != "" && cfg.SQLiteFallbackPath != path {
		log.Printf("sqlite open failed at %s, falling back to %s: %v", path, cfg.SQLiteFallbackPath, err)
		gdb, err = gorm.Open(sqlite.Open(cfg.SQLiteFallbackPath), gcfg)
	}
	if err == nil {
		log.Printf("connected to sqlite database")
	}
	return gdb, err
}
