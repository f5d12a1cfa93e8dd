package database

import (
	"database/sql"
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"
)

// Default credentials seeded on first boot. The password is only ever
// stored as a bcrypt hash.
const (
	DefaultAdminUsername = "admin"
	defaultAdminPassword = "adm4125"
)

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS equivalencias (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		disciplina_adm TEXT NOT NULL,
		codigo_adm TEXT NOT NULL,
		ch_adm TEXT NOT NULL,
		disciplina_equiv TEXT NOT NULL,
		codigo_equiv TEXT NOT NULL,
		curso_equiv TEXT NOT NULL,
		ch_equiv TEXT NOT NULL,
		justificativa TEXT NOT NULL,
		data_criacao DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	);`,
	`CREATE TABLE IF NOT EXISTS admins (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS audit_log (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp DATETIME NOT NULL,
		username TEXT NOT NULL,
		method TEXT NOT NULL,
		path TEXT NOT NULL,
		user_agent TEXT NOT NULL,
		ip_address TEXT NOT NULL
	);`,
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS equivalencias (
		id SERIAL PRIMARY KEY,
		disciplina_adm TEXT NOT NULL,
		codigo_adm TEXT NOT NULL,
		ch_adm TEXT NOT NULL,
		disciplina_equiv TEXT NOT NULL,
		codigo_equiv TEXT NOT NULL,
		curso_equiv TEXT NOT NULL,
		ch_equiv TEXT NOT NULL,
		justificativa TEXT NOT NULL,
		data_criacao TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);`,
	`CREATE TABLE IF NOT EXISTS admins (
		id SERIAL PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS audit_log (
		id BIGSERIAL PRIMARY KEY,
		timestamp TIMESTAMP NOT NULL,
		username TEXT NOT NULL,
		method TEXT NOT NULL,
		path TEXT NOT NULL,
		user_agent TEXT NOT NULL,
		ip_address TEXT NOT NULL
	);`,
}

// CreateSchema creates the tables if they do not exist. Idempotent.
func CreateSchema(db *sql.DB, driver string) error {
	schema := sqliteSchema
	if driver == "postgres" {
		schema = postgresSchema
	}

	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to execute schema statement: %w", err)
		}
	}

	return nil
}

// EnsureDefaultAdmin inserts the default admin account if no account
// with that username exists yet. An existing account is left untouched.
func EnsureDefaultAdmin(db *sql.DB) error {
	var count int
	err := db.QueryRow(`SELECT COUNT(*) FROM admins WHERE username = $1`, DefaultAdminUsername).Scan(&count)
	if err != nil {
		return fmt.Errorf("failed to check for default admin: %w", err)
	}

	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(defaultAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash default admin password: %w", err)
	}

	if _, err := db.Exec(`INSERT INTO admins (username, password_hash) VALUES ($1, $2)`,
		DefaultAdminUsername, string(hash)); err != nil {
		return fmt.Errorf("failed to insert default admin: %w", err)
	}

	log.Printf("Default admin account created: %s", DefaultAdminUsername)
	return nil
}
