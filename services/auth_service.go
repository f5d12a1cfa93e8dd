package services

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/ufsm/equivalencias/models"
	"github.com/ufsm/equivalencias/repositories"
)

// ErrInvalidCredentials is returned for an unknown username and for a
// wrong password alike, so a caller cannot tell which one failed.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService interface defines credential verification
type AuthService interface {
	Login(ctx context.Context, username, password string) (*models.Admin, error)
}

// authService implements AuthService interface
type authService struct {
	adminRepo repositories.AdminRepository
}

// NewAuthService creates a new auth service
func NewAuthService(adminRepo repositories.AdminRepository) AuthService {
	return &authService{adminRepo: adminRepo}
}

// Login verifies the credentials against the admin store and returns
// the matching account
func (s *authService) Login(ctx context.Context, username, password string) (*models.Admin, error) {
	admin, err := s.adminRepo.GetByUsername(ctx, username)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up admin: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	return admin, nil
}
