package database

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"github.com/sangkips/canteen-pos/internal/config"
	"github.com/sangkips/canteen-pos/internal/domain/entity"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open opens (or creates) the local SQLite bill store. One register, one
// writer: the connection pool is pinned to a single connection so reads never
// interleave with a half-finished write.
func Open(cfg *config.StoreConfig, log *zap.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.Path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open bill store %s: %w", cfg.Path, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	log.Info("bill store opened", zap.String("path", cfg.Path))
	return db, nil
}

// AutoMigrate creates the bills and bill_items tables. The column set matches
// the schema earlier builds of the register wrote, so an existing store file
// keeps working.
func AutoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&entity.Bill{},
		&entity.BillItem{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// Close releases the store's underlying connection.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
