package httpserver

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/filmgrid/movies-api/internal/catalog"
	"github.com/filmgrid/movies-api/internal/config"
	"github.com/filmgrid/movies-api/internal/store"
)

// apiKeyHeader is the shared-secret header checked on mutating routes.
const apiKeyHeader = "x-api-key"

// Server wires HTTP routing, middleware, and the request pipeline: decode,
// validate, dispatch to exactly one handler, project, respond.
type Server struct {
	cfg     config.Config
	store   *store.Store
	svc     *catalog.Service
	valid   *catalog.Validator
	logger  zerolog.Logger
	router  chi.Router
	httpSrv *http.Server
}

// New constructs the HTTP server with base middleware and routes.
func New(cfg config.Config, st *store.Store, svc *catalog.Service, logger zerolog.Logger) *Server {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	s := &Server{
		cfg:    cfg,
		store:  st,
		svc:    svc,
		valid:  catalog.NewValidator(),
		logger: logger,
		router: r,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.router.Get("/healthz", s.handleHealthz)

	s.router.Route("/actors", func(r chi.Router) {
		r.Get("/", s.handleListActors)
		r.Get("/{id}", s.handleGetActor)
		r.Group(func(r chi.Router) {
			r.Use(s.requireAPIKey)
			r.Post("/", s.handleCreateActor)
			r.Put("/{id}", s.handleUpdateActor)
			r.Delete("/{id}", s.handleDeleteActor)
		})
	})

	s.router.Route("/movies", func(r chi.Router) {
		r.Get("/", s.handleListMovies)
		r.Get("/{id}", s.handleGetMovie)
		r.Group(func(r chi.Router) {
			r.Use(s.requireAPIKey)
			r.Post("/", s.handleCreateMovie)
			r.Put("/{id}", s.handleUpdateMovie)
			r.Delete("/{id}", s.handleDeleteMovie)
			r.Post("/{id}/rate", s.handleRateMovie)
		})
	})
}

// requireAPIKey gates mutating routes behind an exact header comparison. The
// check runs before any handler dispatch, so an unauthenticated request never
// touches the store.
func (s *Server) requireAPIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get(apiKeyHeader) != s.cfg.APIKey {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Start boots the HTTP server and blocks until it fails or ctx is done.
func (s *Server) Start(ctx context.Context) error {
	s.httpSrv = &http.Server{
		Addr:         ":" + s.cfg.Port,
		Handler:      s.router,
		ReadTimeout:  time.Duration(s.cfg.ReadTimeoutSecs) * time.Second,
		WriteTimeout: time.Duration(s.cfg.WriteTimeoutSecs) * time.Second,
		IdleTimeout:  time.Duration(s.cfg.IdleTimeoutSecs) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := s.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.httpSrv.Shutdown(shutdownCtx)
		return ctx.Err()
	case err := <-errCh:
		return err
	}
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpSrv == nil {
		return nil
	}
	return s.httpSrv.Shutdown(ctx)
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := s.store.HealthCheck(ctx); err != nil {
		http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
