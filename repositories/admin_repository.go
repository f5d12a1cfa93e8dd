package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ufsm/equivalencias/models"
)

// AdminRepository interface defines admin account database operations
type AdminRepository interface {
	GetByUsername(ctx context.Context, username string) (*models.Admin, error)
}

// adminRepository implements AdminRepository interface
type adminRepository struct {
	db *sql.DB
}

// NewAdminRepository creates a new admin repository
func NewAdminRepository(db *sql.DB) AdminRepository {
	return &adminRepository{db: db}
}

// GetByUsername retrieves an admin account by exact username match
func (r *adminRepository) GetByUsername(ctx context.Context, username string) (*models.Admin, error) {
	query := `SELECT id, username, password_hash FROM admins WHERE username = $1`

	var admin models.Admin
	err := r.db.QueryRowContext(ctx, query, username).Scan(
		&admin.ID,
		&admin.Username,
		&admin.PasswordHash,
	)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get admin: %w", err)
	}

	return &admin, nil
}
