package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/ufsm/equivalencias/services"
)

// respondJSON writes v as a JSON response with the given status code
func respondJSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

// respondError writes the API's error body: {"error": message}
func respondError(w http.ResponseWriter, statusCode int, message string) {
	respondJSON(w, statusCode, map[string]string{"error": message})
}

// Controllers holds all controller instances
type Controllers struct {
	Auth        *AuthController
	Equivalence *EquivalenceController
}

// NewControllers creates and initializes all controller instances
func NewControllers(services *services.Services) *Controllers {
	return &Controllers{
		Auth:        NewAuthController(services),
		Equivalence: NewEquivalenceController(services),
	}
}
