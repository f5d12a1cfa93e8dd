package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ufsm/equivalencias/models"
)

// EquivalenceRepository interface defines equivalence database operations
type EquivalenceRepository interface {
	GetAll(ctx context.Context) ([]models.Equivalence, error)
	GetByID(ctx context.Context, id int) (*models.Equivalence, error)
	Create(ctx context.Context, equiv *models.Equivalence) error
	Update(ctx context.Context, equiv *models.Equivalence) error
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int, error)
}

// equivalenceRepository implements EquivalenceRepository interface
type equivalenceRepository struct {
	db *sql.DB
}

// NewEquivalenceRepository creates a new equivalence repository
func NewEquivalenceRepository(db *sql.DB) EquivalenceRepository {
	return &equivalenceRepository{db: db}
}

// GetAll retrieves all equivalence records ordered by id
func (r *equivalenceRepository) GetAll(ctx context.Context) ([]models.Equivalence, error) {
	query := `
		SELECT id, disciplina_adm, codigo_adm, ch_adm,
		       disciplina_equiv, codigo_equiv, curso_equiv, ch_equiv,
		       justificativa, data_criacao
		FROM equivalencias
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query equivalences: %w", err)
	}
	defer rows.Close()

	var equivs []models.Equivalence
	for rows.Next() {
		var e models.Equivalence
		err := rows.Scan(
			&e.ID,
			&e.DisciplinaAdm,
			&e.CodigoAdm,
			&e.ChAdm,
			&e.DisciplinaEquiv,
			&e.CodigoEquiv,
			&e.CursoEquiv,
			&e.ChEquiv,
			&e.Justificativa,
			&e.DataCriacao,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan equivalence: %w", err)
		}
		equivs = append(equivs, e)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating equivalences: %w", err)
	}

	return equivs, nil
}

// GetByID retrieves an equivalence record by ID
func (r *equivalenceRepository) GetByID(ctx context.Context, id int) (*models.Equivalence, error) {
	query := `
		SELECT id, disciplina_adm, codigo_adm, ch_adm,
		       disciplina_equiv, codigo_equiv, curso_equiv, ch_equiv,
		       justificativa, data_criacao
		FROM equivalencias
		WHERE id = $1
	`

	var e models.Equivalence
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&e.ID,
		&e.DisciplinaAdm,
		&e.CodigoAdm,
		&e.ChAdm,
		&e.DisciplinaEquiv,
		&e.CodigoEquiv,
		&e.CursoEquiv,
		&e.ChEquiv,
		&e.Justificativa,
		&e.DataCriacao,
	)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get equivalence: %w", err)
	}

	return &e, nil
}

// Create inserts a new equivalence record inside its own transaction.
// The store-assigned id and creation timestamp are written back into
// the given struct.
func (r *equivalenceRepository) Create(ctx context.Context, equiv *models.Equivalence) error {
	query := `
		INSERT INTO equivalencias
			(disciplina_adm, codigo_adm, ch_adm,
			 disciplina_equiv, codigo_equiv, curso_equiv, ch_equiv,
			 justificativa, data_criacao)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC().Truncate(time.Second)

	var id int
	err = tx.QueryRowContext(ctx, query,
		equiv.DisciplinaAdm,
		equiv.CodigoAdm,
		equiv.ChAdm,
		equiv.DisciplinaEquiv,
		equiv.CodigoEquiv,
		equiv.CursoEquiv,
		equiv.ChEquiv,
		equiv.Justificativa,
		now,
	).Scan(&id)
	if err != nil {
		return fmt.Errorf("failed to create equivalence: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit equivalence: %w", err)
	}

	equiv.ID = id
	equiv.DataCriacao = now
	return nil
}

// Update overwrites the mutable fields of an existing record. The
// creation timestamp is never modified.
func (r *equivalenceRepository) Update(ctx context.Context, equiv *models.Equivalence) error {
	query := `
		UPDATE equivalencias
		SET disciplina_adm = $1, codigo_adm = $2, ch_adm = $3,
		    disciplina_equiv = $4, codigo_equiv = $5, curso_equiv = $6,
		    ch_equiv = $7, justificativa = $8
		WHERE id = $9
	`

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, query,
		equiv.DisciplinaAdm,
		equiv.CodigoAdm,
		equiv.ChAdm,
		equiv.DisciplinaEquiv,
		equiv.CodigoEquiv,
		equiv.CursoEquiv,
		equiv.ChEquiv,
		equiv.Justificativa,
		equiv.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update equivalence: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit equivalence update: %w", err)
	}

	return nil
}

// Delete removes an equivalence record by ID
func (r *equivalenceRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM equivalencias WHERE id = $1`

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete equivalence: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit equivalence delete: %w", err)
	}

	return nil
}

// Count returns the total number of equivalence records
func (r *equivalenceRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM equivalencias`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count equivalences: %w", err)
	}

	return count, nil
}
