package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"gitea.com/go-chi/session"

	"github.com/ufsm/equivalencias/services"
)

// AuthController handles login, logout and session checks
type AuthController struct {
	services *services.Services
}

// NewAuthController creates a new auth controller
func NewAuthController(services *services.Services) *AuthController {
	return &AuthController{services: services}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login handles POST /api/login
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}

	if req.Username == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "Username e password são obrigatórios")
		return
	}

	admin, err := c.services.Auth.Login(r.Context(), req.Username, req.Password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		respondError(w, http.StatusUnauthorized, "Credenciais inválidas")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Erro ao verificar credenciais")
		return
	}

	sess := session.GetSession(r)
	if err := sess.Set("admin_id", admin.ID); err != nil {
		respondError(w, http.StatusInternalServerError, "Erro ao criar sessão")
		return
	}
	if err := sess.Set("admin_username", admin.Username); err != nil {
		respondError(w, http.StatusInternalServerError, "Erro ao criar sessão")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message":       "Login realizado com sucesso",
		"username":      admin.Username,
		"authenticated": true,
	})
}

// Logout handles POST /api/logout. Destroying a session that does not
// exist is fine; logout always succeeds.
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	sess := session.GetSession(r)
	_ = sess.Flush()
	_ = sess.Destroy(w, r)

	respondJSON(w, http.StatusOK, map[string]string{
		"message": "Logout realizado com sucesso",
	})
}

// CheckAuth handles GET /api/check-auth. Never fails: an absent
// session simply reads as unauthenticated.
func (c *AuthController) CheckAuth(w http.ResponseWriter, r *http.Request) {
	sess := session.GetSession(r)

	if _, ok := sess.Get("admin_id").(int); ok {
		username, _ := sess.Get("admin_username").(string)
		respondJSON(w, http.StatusOK, map[string]interface{}{
			"authenticated": true,
			"username":      username,
		})
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"authenticated": false,
	})
}
