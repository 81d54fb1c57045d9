package rest

import (
	"net/http"

	querybus "designaudit/application/queries/bus"
	"designaudit/infrastructure/config"
	"designaudit/interfaces/http/rest/handlers"
	"designaudit/interfaces/http/rest/middleware"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// Router creates and configures the HTTP router
type Router struct {
	queryBus *querybus.QueryBus
	cfg      *config.Config
	logger   *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(
	queryBus *querybus.QueryBus,
	cfg *config.Config,
	logger *zap.Logger,
) *Router {
	return &Router{
		queryBus: queryBus,
		cfg:      cfg,
		logger:   logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger))

	// CORS configuration
	if rt.cfg.EnableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"X-Request-ID"},
			AllowCredentials: false,
			MaxAge:           300,
		}))
	}

	// Health check
	router.Get("/health", rt.healthCheck)
	router.Get("/ready", rt.readinessCheck)

	// API v1 routes
	router.Route("/api/v1", func(r chi.Router) {
		// Apply authentication middleware for API routes
		r.Use(middleware.Authenticate(rt.cfg, rt.logger))

		// File audit endpoints
		r.Route("/files/{fileKey}", func(r chi.Router) {
			fileHandler := handlers.NewFileHandler(rt.queryBus, rt.logger)
			r.Get("/", fileHandler.GetOverview)
			r.Get("/components", fileHandler.ListComponents)
			r.Get("/components/search", fileHandler.SearchComponents)
			r.Get("/styles", fileHandler.ListStyles)
			r.Get("/naming", fileHandler.AnalyzeNaming)

			// Node detail passthrough
			nodeHandler := handlers.NewNodeHandler(rt.queryBus, rt.logger)
			r.Get("/nodes/{nodeID}", nodeHandler.GetNode)
		})
	})

	return router
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}

// readinessCheck handles readiness check requests
func (rt *Router) readinessCheck(w http.ResponseWriter, req *http.Request) {
	// The service has no stateful dependencies; ready as soon as it serves.
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ready"}`))
}
