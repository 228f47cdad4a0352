package db

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/smagulov/flightlog/internal/models"
)

// Open connects to the SQLite database at path and runs migrations.
// An empty path falls back to FLIGHTLOG_DB, then to
// ~/.flightlog/flightlog.db.
func Open(path string) (*Store, error) {
	if path == "" {
		path = os.Getenv("FLIGHTLOG_DB")
	}
	if path == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get database path: %w", err)
		}
		path = filepath.Join(homeDir, ".flightlog", "flightlog.db")
	}

	// Ensure the directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create flightlog directory: %w", err)
	}

	// Open database connection
	g, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // Quiet by default
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Run auto-migrations
	if err := g.AutoMigrate(&models.Pilot{}, &models.FlightRecord{}); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &Store{db: g, locks: make(map[int64]*sync.Mutex)}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
