package database

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

var (
	db         *sql.DB
	driverName string
)

// OpenDB opens the store connection. When databaseURL is set the store
// is Postgres; otherwise a local SQLite file at sqlitePath is used.
func OpenDB(databaseURL, sqlitePath string) error {
	driver := "sqlite3"
	// Busy timeout keeps concurrent writers (audit log) from failing
	// with SQLITE_BUSY
	dsn := sqlitePath + "?_busy_timeout=5000"
	if databaseURL != "" {
		driver = "postgres"
		dsn = databaseURL
	}

	var err error
	db, err = sql.Open(driver, dsn)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	// Test the connection
	if err = db.Ping(); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	driverName = driver
	return nil
}

// InitializeDatabase opens the store, creates the schema and seeds the
// default admin account. Runs synchronously before the server starts.
func InitializeDatabase(databaseURL, sqlitePath string) error {
	if err := OpenDB(databaseURL, sqlitePath); err != nil {
		return err
	}

	if err := CreateSchema(db, driverName); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	if err := EnsureDefaultAdmin(db); err != nil {
		return fmt.Errorf("failed to seed default admin: %w", err)
	}

	return nil
}

// GetDB returns the database connection
func GetDB() *sql.DB {
	return db
}

// Driver returns the name of the active database/sql driver
func Driver() string {
	return driverName
}

// CloseDB closes the database connection
func CloseDB() error {
	if db != nil {
		return db.Close()
	}
	return nil
}
