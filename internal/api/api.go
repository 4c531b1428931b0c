// Package api implements the orbit HTTP API.
//
// The API exposes the layout calculator and the plan store over JSON:
//
//	POST   /v1/layout/straight   compute a straight layout
//	POST   /v1/layout/arc        compute an arc layout
//	POST   /v1/plans             build a plan and persist it
//	GET    /v1/plans             list stored plans
//	GET    /v1/plans/{id}        fetch a stored plan
//	DELETE /v1/plans/{id}        remove a stored plan
//	GET    /healthz              liveness probe
//
// Layout responses are cached keyed by a hash of the request, so identical
// geometry requests skip recomputation when a shared cache (Redis) backs the
// server. Errors carry the machine-readable codes from pkg/errors.
package api

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mkuchta/orbit/pkg/cache"
	"github.com/mkuchta/orbit/pkg/store"
)

// layoutTTL is how long cached layout responses stay valid. Layout output is
// deterministic, so the TTL only bounds cache growth.
const layoutTTL = 24 * time.Hour

// Server holds the API's dependencies.
type Server struct {
	store  store.Store
	cache  cache.Cache
	keyer  cache.Keyer
	logger *log.Logger
}

// New creates an API server. A nil cache disables caching, a nil logger
// falls back to the default logger. The store is required.
func New(st store.Store, c cache.Cache, logger *log.Logger) *Server {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		store:  st,
		cache:  c,
		keyer:  cache.NewDefaultKeyer(),
		logger: logger,
	}
}

// Router builds the chi router with all routes and middleware registered.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(requestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)

	r.Route("/v1", func(r chi.Router) {
		r.Post("/layout/straight", s.handleStraight)
		r.Post("/layout/arc", s.handleArc)

		r.Route("/plans", func(r chi.Router) {
			r.Post("/", s.handleCreatePlan)
			r.Get("/", s.handleListPlans)
			r.Get("/{id}", s.handleGetPlan)
			r.Delete("/{id}", s.handleDeletePlan)
		})
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
