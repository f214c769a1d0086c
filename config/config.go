package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/neimasilk/healthycoaching-id-sub000/logger"
	"github.com/neimasilk/healthycoaching-id-sub000/models"
)

var DB *gorm.DB

// Getenv returns the variable or the fallback when unset.
func Getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// GetenvInt returns the variable parsed as int, or the fallback.
func GetenvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

// GetenvDuration returns the variable parsed as a duration, or the fallback.
func GetenvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

// Load reads .env when present. Missing files are fine: in containers the
// environment arrives from the orchestrator.
func Load() {
	if err := godotenv.Load(); err != nil {
		logger.L().Info("no .env file, using process environment")
	}
}

// InitDB opens the configured database and migrates the schema. The default
// is the embedded sqlite file (local-first); DB_DRIVER=postgres switches to
// the hosted option.
func InitDB() error {
	var (
		db  *gorm.DB
		err error
	)
	switch driver := Getenv("DB_DRIVER", "sqlite"); driver {
	case "sqlite":
		path := Getenv("DB_PATH", "healthycoaching.db")
		dsn := fmt.Sprintf("%s?_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", path)
		db, err = gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	case "postgres":
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			Getenv("DB_HOST", "localhost"),
			Getenv("DB_USER", "postgres"),
			Getenv("DB_PASSWORD", ""),
			Getenv("DB_NAME", "healthycoaching"),
			Getenv("DB_PORT", "5432"),
		)
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	default:
		return fmt.Errorf("config: unknown DB_DRIVER %q", driver)
	}
	if err != nil {
		return fmt.Errorf("config: open database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return err
	}

	DB = db
	logger.L().Info("database ready", zap.String("driver", Getenv("DB_DRIVER", "sqlite")))
	return nil
}

// Migrate applies the schema to an already-open connection. Split out so
// tests can migrate their own temporary databases.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.FoodItem{},
		&models.LogEntry{},
		&models.DailySummary{},
		&models.Alert{},
		&models.ChangeRecord{},
		&models.SyncState{},
	)
	if err != nil {
		return fmt.Errorf("config: automigrate: %w", err)
	}
	return nil
}
