package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/shubh-37/website-section-generator/internal/metrics"
	"github.com/shubh-37/website-section-generator/internal/service"
	"go.uber.org/zap"
)

const maxRequestBody = 1 << 20

type Server struct {
	svc            *service.GeneratorService
	collector      *metrics.Collector
	logger         *zap.Logger
	allowedOrigins []string
	slackCommands  http.Handler
	slackEvents    http.Handler
}

type Option func(*Server)

// WithSlackCommands mounts the Slack slash command endpoint
func WithSlackCommands(h http.Handler) Option {
	return func(s *Server) { s.slackCommands = h }
}

// WithSlackEvents mounts the Slack Events API endpoint
func WithSlackEvents(h http.Handler) Option {
	return func(s *Server) { s.slackEvents = h }
}

func WithAllowedOrigins(origins []string) Option {
	return func(s *Server) { s.allowedOrigins = origins }
}

func NewServer(svc *service.GeneratorService, collector *metrics.Collector, logger *zap.Logger, opts ...Option) *Server {
	s := &Server{
		svc:            svc,
		collector:      collector,
		logger:         logger,
		allowedOrigins: []string{"*"},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Routes builds the router with all middleware and endpoints
func (s *Server) Routes() http.Handler {
	router := chi.NewRouter()

	router.Use(RequestID)
	router.Use(Recovery(s.logger))
	router.Use(Logger(s.logger))
	router.Use(Metrics(s.collector))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", RequestIDHeader},
		ExposedHeaders: []string{RequestIDHeader},
		MaxAge:         300,
	}))

	router.NotFound(s.notFound)
	router.MethodNotAllowed(s.methodNotAllowed)

	router.Get("/health", s.healthCheck)
	router.Handle("/metrics", s.collector.Handler())

	router.Route("/api", func(r chi.Router) {
		r.Post("/generate-sections", s.generateSections)
		r.Get("/sections", s.getAllSections)
		r.Get("/sections/{websiteIdeaId}", s.getSectionsByWebsiteID)
		r.Get("/ideas", s.listIdeas)
		r.Get("/ideas/{websiteIdeaId}", s.getIdea)
	})

	if s.slackCommands != nil {
		router.Method(http.MethodPost, "/slack/commands", s.slackCommands)
	}
	if s.slackEvents != nil {
		router.Method(http.MethodPost, "/slack/events", s.slackEvents)
	}

	return router
}

// Run serves HTTP on the given port until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) Run(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server starting",
			zap.String("addr", srv.Addr),
			zap.String("store", s.svc.StoreName()),
			zap.Bool("slack", s.slackCommands != nil || s.slackEvents != nil),
		)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
