package handler

import (
	"net/http"

	"academic-assistant/internal/domain"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// Handlers groups the endpoint handlers mounted by NewRouter.
type Handlers struct {
	Config    *ConfigHandler
	Synthesis *SynthesisHandler
	Writing   *WritingHandler
	Health    *HealthHandler
}

// NewRouter creates a new HTTP router with all routes configured
func NewRouter(h Handlers, middlewares ...mux.MiddlewareFunc) http.Handler {
	router := mux.NewRouter()
	for _, mw := range middlewares {
		router.Use(mw)
	}

	router.HandleFunc("/health", h.Health.Health).Methods(http.MethodGet)

	api := router.PathPrefix("/api").Subrouter()

	// Config routes
	api.HandleFunc("/config/get-api-key", h.Config.GetAPIKeyStatus).Methods(http.MethodGet)
	api.HandleFunc("/config/set-api-key", h.Config.SetAPIKey).Methods(http.MethodPost)

	// Synthesis routes
	api.HandleFunc("/synthesis/upload", h.Synthesis.Upload).Methods(http.MethodPost)

	// Writing aid routes
	api.HandleFunc("/paraphrase", h.Writing.Paraphrase).Methods(http.MethodPost)
	api.HandleFunc("/quote-check", h.Writing.QuoteCheck).Methods(http.MethodPost)

	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "Not found")
	})
	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	// The browser front end may be served from anywhere.
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Content-Type",
		},
		MaxAge: 300, // Maximum value not ignored by any of major browsers
	})

	return c.Handler(router)
}

// DefaultMiddlewares returns the standard middleware chain.
func DefaultMiddlewares(logger domain.Logger, maxBodyBytes int64) []mux.MiddlewareFunc {
	return []mux.MiddlewareFunc{
		LoggingMiddleware(logger),
		BodyLimitMiddleware(maxBodyBytes),
	}
}
