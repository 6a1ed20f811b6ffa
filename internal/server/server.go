package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/ziadkadry99/serviqo/internal/activity"
	"github.com/ziadkadry99/serviqo/internal/content"
	"github.com/ziadkadry99/serviqo/internal/db"
	"github.com/ziadkadry99/serviqo/internal/hostsignal"
	"github.com/ziadkadry99/serviqo/internal/logging"
	"github.com/ziadkadry99/serviqo/internal/prefs"
	"github.com/ziadkadry99/serviqo/internal/site"
	"github.com/ziadkadry99/serviqo/internal/subscribers"
	"github.com/ziadkadry99/serviqo/internal/themeapi"
	"github.com/ziadkadry99/serviqo/internal/visitor"
)

// Config holds server configuration.
type Config struct {
	Port              int
	AllowAll          bool          // allow all CORS and websocket origins (dev mode)
	StorageKey        string        // preference slot key
	VisitorCookie     string        // visitor id cookie name
	ActivityRetention time.Duration // zero keeps activity forever
	RequestTimeout    time.Duration
}

// Server serves the marketing site, the theme API and the supporting
// activity and newsletter endpoints.
type Server struct {
	cfg         Config
	logger      *zap.Logger
	db          *db.DB
	source      *content.Source
	activity    *activity.Store
	subscribers *subscribers.Store
	router      chi.Router
	httpServer  *http.Server
}

// New creates a server with all routes registered.
func New(cfg Config, database *db.DB, source *content.Source, logger *zap.Logger) (*Server, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 60 * time.Second
	}

	s := &Server{
		cfg:         cfg,
		logger:      logger,
		db:          database,
		source:      source,
		activity:    activity.NewStore(database),
		subscribers: subscribers.NewStore(database),
	}

	router, err := s.buildRouter()
	if err != nil {
		return nil, err
	}
	s.router = router
	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	return s, nil
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() (chi.Router, error) {
	renderer, err := site.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("creating renderer: %w", err)
	}
	sessions := themeapi.NewSessions(prefs.NewStore(s.db), s.activity, s.logger, s.cfg.StorageKey)
	api := themeapi.New(sessions, s.logger, s.cfg.AllowAll)

	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logging.AccessLog(s.logger))
	r.Use(middleware.Recoverer)

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", hostsignal.ClientHintHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	r.Use(visitor.Middleware(s.cfg.VisitorCookie))
	r.Use(hostsignal.AdvertiseHints)

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	themeapi.RegisterSocket(r, api)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(s.cfg.RequestTimeout))

		site.RegisterRoutes(r, site.NewHandler(renderer, s.source, sessions, s.logger))
		themeapi.RegisterRoutes(r, api)
		activity.RegisterRoutes(r, s.activity)
		subscribers.RegisterRoutes(r, s.subscribers)
	})

	return r, nil
}

// Router returns the chi router.
func (s *Server) Router() chi.Router { return s.router }

// Database returns the database connection.
func (s *Server) Database() *db.DB { return s.db }

// ServerConfig returns the server configuration.
func (s *Server) ServerConfig() Config { return s.cfg }

// PruneActivity deletes activity entries older than the retention window.
// It is a no-op when retention is disabled.
func (s *Server) PruneActivity(ctx context.Context, now time.Time) (int64, error) {
	if s.cfg.ActivityRetention <= 0 {
		return 0, nil
	}
	n, err := s.activity.DeleteBefore(ctx, now.Add(-s.cfg.ActivityRetention))
	if err != nil {
		return 0, err
	}
	if n > 0 {
		s.logger.Info("pruned activity entries", zap.Int64("deleted", n))
	}
	return n, nil
}

// RunMaintenance prunes activity on the given interval until ctx is done.
func (s *Server) RunMaintenance(ctx context.Context, interval time.Duration) {
	if s.cfg.ActivityRetention <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if _, err := s.PruneActivity(ctx, time.Now()); err != nil {
			s.logger.Warn("pruning activity", zap.Error(err))
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// Start begins listening on the configured port. After Shutdown it returns
// http.ErrServerClosed immediately.
func (s *Server) Start() error {
	s.logger.Info("serviqo server listening", zap.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server. It may be called before or
// concurrently with Start.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
