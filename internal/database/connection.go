package database

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
}

const connectAttempts = 5

// InitDatabase opens the store described by cfg and verifies it with a
// ping. The Postgres container tends to come up after the app in compose
// setups, so connection attempts back off exponentially (1s, 2s, ... 16s)
// before giving up.
func InitDatabase(cfg Config) (*gorm.DB, error) {
	driver := strings.ToLower(cfg.Driver)

	log.WithFields(logrus.Fields{
		"driver": driver,
		"config": cfg.String(),
	}).Info("Connecting to database")

	var db *gorm.DB
	var err error

	for attempt := 1; attempt <= connectAttempts; attempt++ {
		db, err = open(driver, cfg)
		if err == nil {
			var sqlDB *sql.DB
			sqlDB, err = db.DB()
			if err == nil {
				if err = sqlDB.Ping(); err == nil {
					configurePool(sqlDB)
					log.WithFields(logrus.Fields{
						"driver":  driver,
						"attempt": attempt,
					}).Info("Database ready")
					return db, nil
				}
			}
		}

		if attempt == connectAttempts {
			break
		}

		delay := time.Duration(1<<(attempt-1)) * time.Second
		log.WithFields(logrus.Fields{
			"attempt": attempt,
			"delay":   delay.String(),
			"error":   err.Error(),
		}).Warn("Database not reachable yet, retrying")
		time.Sleep(delay)
	}

	return nil, fmt.Errorf("database unreachable after %d attempts: %w", connectAttempts, err)
}

func open(driver string, cfg Config) (*gorm.DB, error) {
	switch driver {
	case "postgres", "postgresql":
		return gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	case "sqlite", "":
		return gorm.Open(sqlite.Open(cfg.DSN()), &gorm.Config{})
	default:
		return nil, fmt.Errorf("unsupported database driver: %s (supported: postgres, sqlite)", driver)
	}
}

// configurePool sizes the pool for a single storefront instance. Traffic
// peaks around dinner time but stays small; ten connections cover it with
// headroom for the fulfillment integration.
func configurePool(sqlDB *sql.DB) {
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(2)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
}
