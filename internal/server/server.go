package server

import (
	"context"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/blackhillsconsortium/annualreport/internal/pages"
	"github.com/blackhillsconsortium/annualreport/internal/report"
	"github.com/blackhillsconsortium/annualreport/internal/site"
	"github.com/blackhillsconsortium/annualreport/internal/snapshot"
)

// Config holds server configuration.
type Config struct {
	Port       int
	AllowAll   bool // allow all CORS origins (dev mode)
	LiveReload bool // inject the reload script and mount /ws/reload
	Site       pages.Site
}

// Snapshots is the read side of the snapshot cache.
type Snapshots interface {
	Latest(ctx context.Context, kind snapshot.Kind, subject string) (snapshot.Snapshot, error)
}

// Server renders the report over HTTP.
type Server struct {
	cfg        Config
	builder    atomic.Pointer[pages.Builder]
	renderer   *site.Renderer
	hub        *site.Hub
	snapshots  Snapshots
	logger     *zap.Logger
	router     chi.Router
	httpServer *http.Server
}

// New creates a server for ds. snapshots may be nil, in which case
// /api/remote answers 503.
func New(cfg Config, ds *report.Dataset, snapshots Snapshots, logger *zap.Logger) (*Server, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	renderer, err := site.NewRenderer()
	if err != nil {
		return nil, err
	}
	renderer.LiveReload = cfg.LiveReload

	s := &Server{
		cfg:       cfg,
		renderer:  renderer,
		hub:       site.NewHub(logger),
		snapshots: snapshots,
		logger:    logger,
	}
	s.SetDataset(ds)
	s.router = s.buildRouter()
	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	return s, nil
}

// SetDataset swaps the dataset served by every later request.
func (s *Server) SetDataset(ds *report.Dataset) {
	s.builder.Store(pages.New(ds, s.cfg.Site))
}

// Builder returns the page builder for the current dataset.
func (s *Server) Builder() *pages.Builder { return s.builder.Load() }

// Hub returns the live reload hub.
func (s *Server) Hub() *site.Hub { return s.hub }

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// The websocket outlives the request timeout.
	if s.cfg.LiveReload {
		r.Handle("/ws/reload", s.hub)
	}

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(60 * time.Second))
		s.registerPages(r)
		s.registerAPI(r)
		r.Get("/static/{file}", s.handleStatic)
	})
	r.NotFound(s.handleNotFound)

	return r
}

// Router returns the chi router for registering additional routes.
func (s *Server) Router() chi.Router { return s.router }

// Start begins listening on the configured port. After Shutdown it returns
// http.ErrServerClosed without listening.
func (s *Server) Start() error {
	s.logger.Info("annual report server listening", zap.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown disconnects live reload clients and gracefully stops the server.
// It is safe to call before Start.
func (s *Server) Shutdown(ctx context.Context) error {
	s.hub.Close()
	return s.httpServer.Shutdown(ctx)
}
