package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"gitea.com/go-chi/session"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ufsm/equivalencias/controllers"
	"github.com/ufsm/equivalencias/database"
	authmiddleware "github.com/ufsm/equivalencias/middleware"
	"github.com/ufsm/equivalencias/repositories"
	"github.com/ufsm/equivalencias/services"
)

func main() {
	// Load environment variables from .env file, if present
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	// Initialize database: schema creation and admin seed run here,
	// before any request is served
	databaseURL := os.Getenv("DATABASE_URL")
	sqlitePath := getenv("EQUIVALENCIAS_DB", "equivalencias.db")
	if err := database.InitializeDatabase(databaseURL, sqlitePath); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.CloseDB()

	// Get database connection
	db := database.GetDB()

	// Initialize repositories
	repos := repositories.NewRepositories(db)

	// Initialize services
	srvs := services.NewServices(repos)

	// Initialize controllers
	ctrl := controllers.NewControllers(srvs)

	// Set up router
	r, err := setupRouter(ctrl, repos.Audit)
	if err != nil {
		log.Fatalf("Failed to setup router: %v", err)
	}

	// Get port from environment or use default
	port := getenv("PORT", "8080")

	fmt.Printf("Equivalências API listening on port %s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, r))
}

// setupRouter configures all routes
func setupRouter(ctrl *controllers.Controllers, auditRepo repositories.AuditRepository) (*chi.Mux, error) {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	// Determine if we should use secure cookies (HTTPS)
	useSecureCookies := os.Getenv("USE_HTTPS") == "true"

	// Session middleware. The file provider keeps sessions across
	// restarts; a valid cookie from a prior run still authenticates.
	sessionHandler, err := session.Sessioner(session.Options{
		Provider:       getenv("SESSION_PROVIDER", "memory"),
		ProviderConfig: os.Getenv("SESSION_PROVIDER_CONFIG"),
		CookieName:     "equivalencias_session",
		Secure:         useSecureCookies,
		Gclifetime:     3600,
		Maxlifetime:    3600,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize session: %w", err)
	}
	r.Use(sessionHandler)

	r.Route("/api", func(r chi.Router) {
		r.Use(authmiddleware.AuditLogger(auditRepo))

		// PUBLIC ROUTES (no session required)
		r.Post("/login", ctrl.Auth.Login)
		r.Post("/logout", ctrl.Auth.Logout)
		r.Get("/check-auth", ctrl.Auth.CheckAuth)
		r.Get("/equivalencias", ctrl.Equivalence.List)
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			fmt.Fprintf(w, `{"status": "healthy", "service": "equivalencias-api"}`)
		})

		// PROTECTED ROUTES (session required)
		r.Group(func(r chi.Router) {
			r.Use(authmiddleware.RequireSession)

			r.Post("/equivalencias", ctrl.Equivalence.Create)
			r.Put("/equivalencias/{id}", ctrl.Equivalence.Update)
			r.Delete("/equivalencias/{id}", ctrl.Equivalence.Delete)
		})
	})

	return r, nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
