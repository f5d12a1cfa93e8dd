package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/ufsm/equivalencias/models"
	"github.com/ufsm/equivalencias/repositories"
)

// ErrEquivalenceNotFound is returned when the requested record id does
// not exist in the store.
var ErrEquivalenceNotFound = errors.New("equivalence not found")

// EquivalenceService interface defines equivalence business logic
type EquivalenceService interface {
	GetAll(ctx context.Context) ([]models.Equivalence, error)
	Create(ctx context.Context, form *models.EquivalenceForm) (*models.Equivalence, error)
	Update(ctx context.Context, id int, update *models.EquivalenceUpdate) error
	Delete(ctx context.Context, id int) error
}

// equivalenceService implements EquivalenceService interface
type equivalenceService struct {
	equivRepo repositories.EquivalenceRepository
}

// NewEquivalenceService creates a new equivalence service
func NewEquivalenceService(equivRepo repositories.EquivalenceRepository) EquivalenceService {
	return &equivalenceService{equivRepo: equivRepo}
}

// GetAll retrieves all equivalence records
func (s *equivalenceService) GetAll(ctx context.Context) ([]models.Equivalence, error) {
	return s.equivRepo.GetAll(ctx)
}

// Create validates the form and inserts a new equivalence record.
// Validation runs before any mutation; the first missing field fails
// the whole request.
func (s *equivalenceService) Create(ctx context.Context, form *models.EquivalenceForm) (*models.Equivalence, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}

	equiv := &models.Equivalence{
		DisciplinaAdm:   form.DisciplinaAdm,
		CodigoAdm:       form.CodigoAdm,
		ChAdm:           form.ChAdm,
		DisciplinaEquiv: form.DisciplinaEquiv,
		CodigoEquiv:     form.CodigoEquiv,
		CursoEquiv:      form.CursoEquiv,
		ChEquiv:         form.ChEquiv,
		Justificativa:   form.Justificativa,
	}

	if err := s.equivRepo.Create(ctx, equiv); err != nil {
		return nil, fmt.Errorf("failed to create equivalence: %w", err)
	}

	return equiv, nil
}

// Update applies the fields present in the update to an existing
// record. Present fields are taken verbatim, empty or not.
func (s *equivalenceService) Update(ctx context.Context, id int, update *models.EquivalenceUpdate) error {
	equiv, err := s.equivRepo.GetByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrEquivalenceNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to load equivalence: %w", err)
	}

	update.Apply(equiv)

	if err := s.equivRepo.Update(ctx, equiv); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrEquivalenceNotFound
		}
		return fmt.Errorf("failed to update equivalence: %w", err)
	}

	return nil
}

// Delete removes an equivalence record by id
func (s *equivalenceService) Delete(ctx context.Context, id int) error {
	if err := s.equivRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrEquivalenceNotFound
		}
		return fmt.Errorf("failed to delete equivalence: %w", err)
	}

	return nil
}
