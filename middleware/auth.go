package middleware

import (
	"encoding/json"
	"net/http"

	"gitea.com/go-chi/session"

	"github.com/ufsm/equivalencias/adminctx"
)

// RequireSession ensures the request carries an authenticated admin
// session. Unauthenticated requests get the 401 JSON body the API
// contract defines; the wrapped handler is never reached.
func RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := session.GetSession(r)

		adminID, okID := sess.Get("admin_id").(int)
		username, okName := sess.Get("admin_username").(string)
		if !okID || !okName {
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{
				"error": "Acesso negado. Login necessário.",
			})
			return
		}

		// Add the admin identity to the request context for use in handlers
		ctx := adminctx.WithAdmin(r.Context(), adminID, username)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
