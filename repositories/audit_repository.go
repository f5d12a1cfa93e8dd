package repositories

import (
	"database/sql"
	"time"

	"github.com/ufsm/equivalencias/models"
)

// AuditRepository handles audit log persistence
type AuditRepository interface {
	Create(entry *models.AuditLogEntry) error
}

type auditRepository struct {
	db *sql.DB
}

// NewAuditRepository creates a new audit repository
func NewAuditRepository(db *sql.DB) AuditRepository {
	return &auditRepository{db: db}
}

// Create inserts a new audit log entry
func (r *auditRepository) Create(entry *models.AuditLogEntry) error {
	query := `
		INSERT INTO audit_log (timestamp, username, method, path, user_agent, ip_address)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(
		query,
		time.Now(),
		entry.Username,
		entry.Method,
		entry.Path,
		entry.UserAgent,
		entry.IPAddress,
	)

	return err
}
