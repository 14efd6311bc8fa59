// Package database provides the GORM-backed request log
package database

import (
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"toolkitaccess.app/internal/config"
	"toolkitaccess.app/pkg/errors"
)

// InitDB opens the configured database and migrates the schema
func InitDB(cfg config.SQLConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case "postgres":
		dialector = postgres.Open(cfg.DSN)
	case "sqlite":
		dialector = sqlite.Open(cfg.DSN)
	default:
		return nil, errors.NewConfigurationError("unsupported SQL driver: "+cfg.Driver, nil)
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		return nil, errors.NewDatabaseError("connect to database", err)
	}

	if cfg.Driver == "sqlite" {
		// one connection keeps in-memory databases shared and serializes writers
		sqlDB, err := db.DB()
		if err != nil {
			return nil, errors.NewDatabaseError("get sql handle", err)
		}
		sqlDB.SetMaxOpenConns(1)
	}

	if err := RunMigrations(db); err != nil {
		_ = CloseDB(db)
		return nil, err
	}

	return db, nil
}

// RunMigrations executes database schema migrations
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(&AccessRequestModel{}); err != nil {
		return errors.NewDatabaseError("run migrations", err)
	}
	return nil
}

// CloseDB safely closes the database connection
func CloseDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
