package database

import (
	"fmt"
	"time"

	"bleck-backend/internal/database/models"
	applogger "bleck-backend/internal/logger"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Options struct {
	LogLevel        logger.LogLevel
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	SkipMigrate     bool
}

// Initialize opens a Postgres connection and migrates the credential store schema
func Initialize(dsn string, opts *Options) (*gorm.DB, error) {
	log := applogger.New().WithField("component", "database")
	log.Info("Initializing database...")

	if opts == nil {
		opts = &Options{}
	}
	if opts.LogLevel == 0 {
		opts.LogLevel = logger.Error
	}
	if opts.MaxOpenConns == 0 {
		opts.MaxOpenConns = 20
	}
	if opts.MaxIdleConns == 0 {
		opts.MaxIdleConns = 10
	}
	if opts.ConnMaxLifetime == 0 {
		opts.ConnMaxLifetime = 30 * time.Minute
	}
	if opts.ConnMaxIdleTime == 0 {
		opts.ConnMaxIdleTime = 10 * time.Minute
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(opts.LogLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)
		sqlDB.SetConnMaxIdleTime(opts.ConnMaxIdleTime)
	}

	if !opts.SkipMigrate {
		if err := Migrate(db); err != nil {
			return nil, err
		}
	}

	log.Info("Initializing database done.")
	return db, nil
}

// Migrate creates the platform_tokens table and its lookup index
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.PlatformToken{}); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	if err := CreateIndexes(db); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// CreateIndexes adds the indexes AutoMigrate does not derive from struct tags
func CreateIndexes(db *gorm.DB) error {
	// latest credential per (user, platform)
	if err := db.Exec(`CREATE INDEX IF NOT EXISTS platform_tokens_user_platform_updated ON platform_tokens (user_id, platform, updated_at DESC)`).Error; err != nil {
		return fmt.Errorf("create index platform_tokens.user_id+platform+updated_at: %w", err)
	}
	return nil
}
