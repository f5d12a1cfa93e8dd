package repositories

import (
	"database/sql"
	"errors"
)

// ErrNotFound is returned when a record with the requested id or key
// does not exist.
var ErrNotFound = errors.New("record not found")

// Repositories struct holds all repository interfaces
type Repositories struct {
	Equivalence EquivalenceRepository
	Admin       AdminRepository
	Audit       AuditRepository
}

// NewRepositories creates and initializes all repositories.
// Queries use $n placeholders, which both lib/pq and go-sqlite3 accept
// as long as they appear in ascending order.
func NewRepositories(db *sql.DB) *Repositories {
	return &Repositories{
		Equivalence: NewEquivalenceRepository(db),
		Admin:       NewAdminRepository(db),
		Audit:       NewAuditRepository(db),
	}
}
