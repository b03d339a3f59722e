package database

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pixelforge/studio-console/internal/config"
	"github.com/pixelforge/studio-console/internal/models"
)

// Open connects to the backing store. The default DSN is a shared in-memory
// SQLite database: the store is process-local and deliberately non-durable;
// only the session cookie survives a restart.
func Open(cfg *config.Config) (*gorm.DB, error) {
	logMode := logger.Silent
	if cfg.GinMode != "release" {
		logMode = logger.Warn
	}

	db, err := gorm.Open(sqlite.Open(cfg.DatabaseDSN), &gorm.Config{
		Logger: logger.Default.LogMode(logMode),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return db, nil
}

// Migrate creates the schema for all store collections.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Task{},
		&models.Project{},
		&models.Invoice{},
		&models.ApprovalRequest{},
		&models.BlogPost{},
		&models.PortfolioItem{},
		&models.MediaAsset{},
		&models.ActivityEntry{},
		&models.ScheduleItem{},
		&models.Submission{},
		&models.Message{},
		&models.Announcement{},
		&models.RevenuePoint{},
		&models.GrowthPoint{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}
