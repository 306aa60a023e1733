package storage

import (
	"fmt"
	"log"

	"github.com/JheyDev/Kanban/internal/config"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Open connects the backend named by cfg.StorageDriver. The returned
// function releases it.
func Open(cfg *config.Config) (KeyValueStore, func() error, error) {
	switch cfg.StorageDriver {
	case config.DriverMemory:
		return NewMemoryStore(), func() error { return nil }, nil

	case config.DriverSQLite:
		s, err := NewSQLiteStore(cfg.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("❌ failed to open sqlite store: %w", err)
		}
		log.Printf("✅ Opened sqlite store at %s", cfg.SQLitePath)
		return s, s.Close, nil

	case config.DriverPostgres:
		db, err := gorm.Open(postgres.Open(cfg.PostgresDSN()), &gorm.Config{})
		if err != nil {
			return nil, nil, fmt.Errorf("❌ failed to connect to DB: %w", err)
		}
		log.Println("✅ Connected to database")
		if err := Migrate(db); err != nil {
			return nil, nil, fmt.Errorf("❌ failed to migrate DB: %w", err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, nil, err
		}
		return NewPostgresStore(db), sqlDB.Close, nil
	}
	return nil, nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.StorageDriver)
}
