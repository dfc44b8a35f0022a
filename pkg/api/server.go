// Package api exposes the group-theory toolkit over HTTP as a small JSON
// API. Routes:
//
//	GET  /healthz            liveness probe
//	POST /v1/sign            sign and cycle structure of a permutation
//	POST /v1/conjugate       conjugacy test and conjugator construction
//	POST /v1/closure         normal closure within S_n or A_n
//	GET  /v1/closures        recent persisted closure records
//	GET  /v1/closures/{id}   one persisted record
//	GET  /v1/simple/a5       simplicity of the alternating group on 5 points
//
// Closure results are persisted through a [store.Store] and memoized
// through a [cache.Cache]; both default to in-memory backends.
package api

import (
	"net/http"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/permtower/pkg/cache"
	"github.com/matzehuels/permtower/pkg/store"
)

// Server holds the API's shared state.
type Server struct {
	logger    *charmlog.Logger
	store     store.Store
	cache     cache.Cache
	keyer     cache.Keyer
	maxDegree int
	cacheTTL  time.Duration
}

// Options configures a [Server]. Zero-valued fields fall back to in-memory
// backends, a degree cap of 10, and a one-week cache TTL.
type Options struct {
	Logger    *charmlog.Logger
	Store     store.Store
	Cache     cache.Cache
	Keyer     cache.Keyer
	MaxDegree int
	CacheTTL  time.Duration
}

// NewServer creates a server with the given options.
func NewServer(opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = charmlog.Default()
	}
	if opts.Store == nil {
		opts.Store = store.NewMemoryStore()
	}
	if opts.Cache == nil {
		opts.Cache = cache.NewMemoryCache()
	}
	if opts.Keyer == nil {
		opts.Keyer = cache.NewDefaultKeyer()
	}
	if opts.MaxDegree <= 0 {
		opts.MaxDegree = 10
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = 7 * 24 * time.Hour
	}
	return &Server{
		logger:    opts.Logger,
		store:     opts.Store,
		cache:     opts.Cache,
		keyer:     opts.Keyer,
		maxDegree: opts.MaxDegree,
		cacheTTL:  opts.CacheTTL,
	}
}

// Router builds the chi router with all routes and middleware attached.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(s.requestID)
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/sign", s.handleSign)
		r.Post("/conjugate", s.handleConjugate)
		r.Post("/closure", s.handleClosure)
		r.Get("/closures", s.handleRecentClosures)
		r.Get("/closures/{id}", s.handleGetClosure)
		r.Get("/simple/a5", s.handleSimpleA5)
	})
	return r
}

// ListenAndServe runs the server on addr until the listener fails.
func (s *Server) ListenAndServe(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	s.logger.Infof("Listening on %s", addr)
	return srv.ListenAndServe()
}
