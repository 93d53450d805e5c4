package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"gitea.com/go-chi/session"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/destegai/scan-server/authenticator"
	"github.com/destegai/scan-server/classifier"
	"github.com/destegai/scan-server/controllers"
	"github.com/destegai/scan-server/database"
	authmiddleware "github.com/destegai/scan-server/middleware"
	"github.com/destegai/scan-server/repositories"
	"github.com/destegai/scan-server/services"
	"github.com/destegai/scan-server/storage"
)

// defaultMaxUploadBytes caps scan uploads at 10 MiB unless configured
const defaultMaxUploadBytes = 10 << 20

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	// Initialize database
	dbPath := envOr("DB_PATH", "destegai.db")
	if err := database.InitializeDatabase(dbPath); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.CloseDB()

	// Get database connection
	db := database.GetDB()

	// Initialize repositories
	repos := repositories.NewRepositories(db)

	// Blob store for scan images and avatars
	blobs := storage.NewDiskStore(envOr("STORAGE_DIR", "blobs"), "/files")

	// Remote classifier client; the timeout bounds every classify call
	classifierTimeout := time.Duration(envInt("CLASSIFIER_TIMEOUT_SECONDS", 30)) * time.Second
	client := classifier.NewHTTPClient(envOr("CLASSIFIER_URL", "http://localhost:5000"), classifierTimeout)

	// Initialize services
	scanConfig := services.ScanConfig{
		MaxUploadBytes: int64(envInt("MAX_UPLOAD_BYTES", defaultMaxUploadBytes)),
	}
	srvs := services.NewServices(repos, client, blobs, scanConfig)

	// Initialize controllers
	ctrl := controllers.NewControllers(srvs, blobs)

	// Initialize OIDC provider
	auth, err := authenticator.NewOpenIDProvider(authenticator.OpenIDConfig{
		IssuerURL:    os.Getenv("OIDC_ISSUER_URL"),
		ClientID:     os.Getenv("OIDC_CLIENT_ID"),
		ClientSecret: os.Getenv("OIDC_CLIENT_SECRET"),
		CallbackURL:  os.Getenv("OIDC_CALLBACK_URL"),
	})
	if err != nil {
		log.Fatalf("Failed to initialize OIDC provider: %v", err)
	}

	// Set up router
	r, err := setupRouter(ctrl, auth, blobs)
	if err != nil {
		log.Fatalf("Failed to setup router: %v", err)
	}

	// Get port from environment or use default
	port := envOr("PORT", "8080")

	fmt.Printf("DeStegAi scan server starting on port %s\n", port)
	fmt.Printf("Database: %s\n", dbPath)

	log.Fatal(http.ListenAndServe(":"+port, r))
}

// setupRouter configures all routes
func setupRouter(ctrl *controllers.Controllers, auth authenticator.Provider, blobs *storage.DiskStore) (*chi.Mux, error) {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(middleware.Compress(5))

	// Determine if we should use secure cookies (HTTPS)
	useSecureCookies := os.Getenv("USE_HTTPS") == "true"

	// Session middleware
	sessionHandler, err := session.Sessioner(session.Options{
		Provider:       "memory",
		ProviderConfig: "",
		CookieName:     "destegai_session",
		Secure:         useSecureCookies,
		Gclifetime:     3600,
		Maxlifetime:    3600,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize session: %w", err)
	}
	r.Use(sessionHandler)

	// Stored blobs (scan images, avatars)
	r.Handle("/files/*", http.StripPrefix("/files/", http.FileServer(http.Dir(blobs.Root()))))

	// PUBLIC ROUTES (no authentication required)
	r.Get("/login", ctrl.Auth.Login(auth))
	r.Get("/callback", ctrl.Auth.Callback(auth))
	r.Get("/logout", ctrl.Auth.Logout)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"status": "healthy", "service": "destegai-scan-server"}`)
	})

	// PROTECTED ROUTES (authentication required)
	r.Group(func(r chi.Router) {
		r.Use(authmiddleware.RequireAuth)

		// Scan pipeline routes
		r.Route("/api/scans", func(r chi.Router) {
			r.Post("/classify", ctrl.Scan.Classify)
			r.Post("/", ctrl.Scan.Save)
			r.Get("/", ctrl.Scan.History)
			r.Get("/report", ctrl.Scan.Report)
		})

		// Activity log routes
		r.Route("/api/activity", func(r chi.Router) {
			r.Get("/", ctrl.Activity.Index)
			r.Get("/pdf", ctrl.Activity.Download)
		})

		// Profile routes
		r.Route("/api/profile", func(r chi.Router) {
			r.Get("/", ctrl.Profile.Show)
			r.Post("/name", ctrl.Profile.UpdateName)
			r.Post("/avatar", ctrl.Profile.UpdateAvatar)
			r.Post("/email", ctrl.Profile.RequestEmailChange)
		})

		// ADMIN ROUTES (admin role required)
		r.Route("/api/admin", func(r chi.Router) {
			r.Use(authmiddleware.RequireAdmin)

			r.Get("/overview", ctrl.Admin.Overview)
			r.Get("/scans", ctrl.Admin.AllScans)
			r.Get("/scans/report", ctrl.Admin.ScansReport)
			r.Get("/users/{email}/scans", ctrl.Admin.UserScans)
			r.Get("/users/{email}/activity", ctrl.Admin.UserActivity)
		})
	})

	return r, nil
}

// envOr reads an environment variable with a fallback
func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// envInt reads an integer environment variable with a fallback
func envInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Invalid %s=%q, using %d", key, value, fallback)
		return fallback
	}
	return parsed
}
