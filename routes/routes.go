package routes

import (
	"net/http"
	"os"
	"strings"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"digistore/controllers"
	"digistore/metrics"
	"digistore/middleware"
)

func optionsHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

// InitRouter wires the full HTTP surface: global middleware, public catalog
// routes, the authenticated user surface and the admin surface.
func InitRouter() *mux.Router {
	r := mux.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RecoveryMiddleware)
	r.Use(middleware.SecurityHeadersMiddleware)
	r.Use(middleware.MaxBodyMiddleware)
	r.Use(middleware.TimeoutMiddleware)
	r.Use(middleware.RequestLogMiddleware)

	// CORS origins from CORS_ALLOWED_ORIGINS (comma-separated) or localhost defaults
	origins := []string{
		"http://localhost:3000", "http://localhost:8080",
		"http://127.0.0.1:3000", "http://127.0.0.1:8080",
	}
	if env := os.Getenv("CORS_ALLOWED_ORIGINS"); env != "" {
		for _, p := range strings.Split(env, ",") {
			if o := strings.TrimSpace(p); o != "" {
				origins = append(origins, o)
			}
		}
	}
	r.Use(func(next http.Handler) http.Handler {
		return handlers.CORS(
			handlers.AllowedOrigins(origins),
			handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"}),
			handlers.AllowedHeaders([]string{"Content-Type", "Authorization", "X-Requested-With", "X-Request-ID"}),
			handlers.AllowCredentials(),
		)(next)
	})

	r.HandleFunc("/", controllers.RootHandler).Methods(http.MethodGet)
	r.HandleFunc("/health", controllers.HealthHandler).Methods(http.MethodGet)
	r.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.PathPrefix("/").HandlerFunc(optionsHandler).Methods(http.MethodOptions)

	UsersRoutes(api)
	AdminRoutes(api)

	return r
}
