package database

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"bookshop-app/config"
)

// Connect opens the MySQL connection described by cfg and configures pooling.
func Connect(cfg config.DatabaseConfig) (*gorm.DB, error) {
	dsn := buildDSN(cfg)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

// buildDSN prefers DATABASE_URL when set, converting mysql:// or mariadb://
// URLs to DSN form, and otherwise assembles the DSN from components.
func buildDSN(cfg config.DatabaseConfig) string {
	if cfg.URL == "" {
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name)
	}

	dsn := cfg.URL
	rawDSN := dsn
	switch {
	case strings.HasPrefix(dsn, "mysql://"):
		rawDSN = strings.TrimPrefix(dsn, "mysql://")
	case strings.HasPrefix(dsn, "mariadb://"):
		rawDSN = strings.TrimPrefix(dsn, "mariadb://")
	default:
		return dsn
	}

	// Standard URL: user:pass@host:port/dbname -> user:pass@tcp(host:port)/dbname?params
	parts := strings.SplitN(rawDSN, "@", 2)
	if len(parts) != 2 {
		return dsn
	}
	creds, rest := parts[0], parts[1]

	hostParts := strings.SplitN(rest, "/", 2)
	if len(hostParts) != 2 {
		return dsn
	}
	hostPort, dbName := hostParts[0], hostParts[1]

	params := "?charset=utf8mb4&parseTime=True&loc=Local"
	if strings.Contains(dbName, "?") {
		dbParts := strings.SplitN(dbName, "?", 2)
		dbName = dbParts[0]
		params = "?" + dbParts[1]
	}

	return fmt.Sprintf("%s@tcp(%s)/%s%s", creds, hostPort, dbName, params)
}
