package models

import (
	"fmt"
	"time"
)

// Equivalence represents one course-credit equivalence record
type Equivalence struct {
	ID              int       `json:"id" db:"id"`
	DisciplinaAdm   string    `json:"disciplina_adm" db:"disciplina_adm"`
	CodigoAdm       string    `json:"codigo_adm" db:"codigo_adm"`
	ChAdm           string    `json:"ch_adm" db:"ch_adm"`
	DisciplinaEquiv string    `json:"disciplina_equiv" db:"disciplina_equiv"`
	CodigoEquiv     string    `json:"codigo_equiv" db:"codigo_equiv"`
	CursoEquiv      string    `json:"curso_equiv" db:"curso_equiv"`
	ChEquiv         string    `json:"ch_equiv" db:"ch_equiv"`
	Justificativa   string    `json:"justificativa" db:"justificativa"`
	DataCriacao     time.Time `json:"data_criacao" db:"data_criacao"`
}

// EquivalenceForm represents the request body for creating an equivalence.
// All eight fields are required.
type EquivalenceForm struct {
	DisciplinaAdm   string `json:"disciplina_adm"`
	CodigoAdm       string `json:"codigo_adm"`
	ChAdm           string `json:"ch_adm"`
	DisciplinaEquiv string `json:"disciplina_equiv"`
	CodigoEquiv     string `json:"codigo_equiv"`
	CursoEquiv      string `json:"curso_equiv"`
	ChEquiv         string `json:"ch_equiv"`
	Justificativa   string `json:"justificativa"`
}

// ValidationError reports a missing required field
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("Campo %s é obrigatório", e.Field)
}

// Validate checks that every required field is present, reporting the
// first missing one by name
func (f *EquivalenceForm) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"disciplina_adm", f.DisciplinaAdm},
		{"codigo_adm", f.CodigoAdm},
		{"ch_adm", f.ChAdm},
		{"disciplina_equiv", f.DisciplinaEquiv},
		{"codigo_equiv", f.CodigoEquiv},
		{"curso_equiv", f.CursoEquiv},
		{"ch_equiv", f.ChEquiv},
		{"justificativa", f.Justificativa},
	}

	for _, field := range required {
		if field.value == "" {
			return &ValidationError{Field: field.name}
		}
	}

	return nil
}

// EquivalenceUpdate represents a partial update: one optional slot per
// mutable field. Only fields present in the request body are applied.
// Provided fields are accepted verbatim, empty or not.
type EquivalenceUpdate struct {
	DisciplinaAdm   *string `json:"disciplina_adm"`
	CodigoAdm       *string `json:"codigo_adm"`
	ChAdm           *string `json:"ch_adm"`
	DisciplinaEquiv *string `json:"disciplina_equiv"`
	CodigoEquiv     *string `json:"codigo_equiv"`
	CursoEquiv      *string `json:"curso_equiv"`
	ChEquiv         *string `json:"ch_equiv"`
	Justificativa   *string `json:"justificativa"`
}

// Apply overwrites the equivalence's fields with the values present in
// the update. ID and DataCriacao are never touched.
func (u *EquivalenceUpdate) Apply(e *Equivalence) {
	if u.DisciplinaAdm != nil {
		e.DisciplinaAdm = *u.DisciplinaAdm
	}
	if u.CodigoAdm != nil {
		e.CodigoAdm = *u.CodigoAdm
	}
	if u.ChAdm != nil {
		e.ChAdm = *u.ChAdm
	}
	if u.DisciplinaEquiv != nil {
		e.DisciplinaEquiv = *u.DisciplinaEquiv
	}
	if u.CodigoEquiv != nil {
		e.CodigoEquiv = *u.CodigoEquiv
	}
	if u.CursoEquiv != nil {
		e.CursoEquiv = *u.CursoEquiv
	}
	if u.ChEquiv != nil {
		e.ChEquiv = *u.ChEquiv
	}
	if u.Justificativa != nil {
		e.Justificativa = *u.Justificativa
	}
}
