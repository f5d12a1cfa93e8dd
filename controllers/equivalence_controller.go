package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ufsm/equivalencias/adminctx"
	"github.com/ufsm/equivalencias/models"
	"github.com/ufsm/equivalencias/services"
)

// EquivalenceController handles equivalence CRUD requests
type EquivalenceController struct {
	services *services.Services
}

// NewEquivalenceController creates a new equivalence controller
func NewEquivalenceController(services *services.Services) *EquivalenceController {
	return &EquivalenceController{services: services}
}

// List handles GET /api/equivalencias. Public, no session required.
func (c *EquivalenceController) List(w http.ResponseWriter, r *http.Request) {
	equivs, err := c.services.Equivalence.GetAll(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Erro ao listar equivalências")
		return
	}

	if equivs == nil {
		equivs = []models.Equivalence{}
	}
	respondJSON(w, http.StatusOK, equivs)
}

// Create handles POST /api/equivalencias
func (c *EquivalenceController) Create(w http.ResponseWriter, r *http.Request) {
	var form models.EquivalenceForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		respondError(w, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}

	equiv, err := c.services.Equivalence.Create(r.Context(), &form)
	var validationErr *models.ValidationError
	if errors.As(err, &validationErr) {
		respondError(w, http.StatusBadRequest, validationErr.Error())
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Erro ao criar equivalência")
		return
	}

	log.Printf("Equivalence %d created by %s", equiv.ID, adminctx.Username(r.Context()))
	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Equivalência criada com sucesso",
		"id":      equiv.ID,
	})
}

// Update handles PUT /api/equivalencias/{id}
func (c *EquivalenceController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var update models.EquivalenceUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		respondError(w, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}

	err := c.services.Equivalence.Update(r.Context(), id, &update)
	if errors.Is(err, services.ErrEquivalenceNotFound) {
		respondError(w, http.StatusNotFound, "Equivalência não encontrada")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Erro ao atualizar equivalência")
		return
	}

	log.Printf("Equivalence %d updated by %s", id, adminctx.Username(r.Context()))
	respondJSON(w, http.StatusOK, map[string]string{
		"message": "Equivalência atualizada com sucesso",
	})
}

// Delete handles DELETE /api/equivalencias/{id}
func (c *EquivalenceController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	err := c.services.Equivalence.Delete(r.Context(), id)
	if errors.Is(err, services.ErrEquivalenceNotFound) {
		respondError(w, http.StatusNotFound, "Equivalência não encontrada")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Erro ao deletar equivalência")
		return
	}

	log.Printf("Equivalence %d deleted by %s", id, adminctx.Username(r.Context()))
	respondJSON(w, http.StatusOK, map[string]string{
		"message": "Equivalência deletada com sucesso",
	})
}

// parseID reads the id route parameter. A non-integer id identifies no
// record, so it reads as not found.
func parseID(w http.ResponseWriter, r *http.Request) (int, bool) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		respondError(w, http.StatusNotFound, "Equivalência não encontrada")
		return 0, false
	}
	return id, true
}
