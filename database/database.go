// Package database picks the store backend named by DB_DRIVER.
package database

import (
	"fmt"
	"os"

	"PortfolioGolang/database/postgres"
	"PortfolioGolang/database/sqlite"

	"github.com/jmoiron/sqlx"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// DriverFromEnv returns DB_DRIVER, defaulting to postgres.
func DriverFromEnv() string {
	if driver := os.Getenv("DB_DRIVER"); driver != "" {
		return driver
	}
	return DriverPostgres
}

func New(driver string) (*sqlx.DB, error) {
	switch driver {
	case DriverPostgres:
		return postgres.New()
	case DriverSQLite:
		return sqlite.New()
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}
}

// Migrate applies the embedded schema for whichever driver db was opened with.
func Migrate(db *sqlx.DB) error {
	switch db.DriverName() {
	case DriverPostgres:
		return postgres.Migrate(db)
	case DriverSQLite:
		return sqlite.Migrate(db)
	default:
		return fmt.Errorf("no schema for driver %q", db.DriverName())
	}
}
