package services

import (
	"github.com/ufsm/equivalencias/repositories"
)

// Services holds all service instances
type Services struct {
	Auth        AuthService
	Equivalence EquivalenceService
}

// NewServices creates and initializes all service instances
func NewServices(repos *repositories.Repositories) *Services {
	return &Services{
		Auth:        NewAuthService(repos.Admin),
		Equivalence: NewEquivalenceService(repos.Equivalence),
	}
}
