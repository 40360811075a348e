// Package server exposes the record lifecycle over a local HTTP API.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/iudanet/drfriend/internal/config"
	"github.com/iudanet/drfriend/internal/lifecycle"
	"github.com/iudanet/drfriend/internal/profile"
	"github.com/iudanet/drfriend/internal/server/handlers"
	"github.com/iudanet/drfriend/internal/server/middleware"
	"github.com/iudanet/drfriend/internal/storage"
)

// Deps содержит зависимости HTTP API
type Deps struct {
	KV        storage.KV
	Lifecycle lifecycle.Service
	Profile   profile.Service
	Registry  *prometheus.Registry
	Logger    *slog.Logger
	Version   string
}

// Server HTTP-сервер drfriend
type Server struct {
	httpServer *http.Server
	logger     *slog.Logger
	cfg        *config.Config
}

// New создает HTTP-сервер с настроенными маршрутами и middleware.
// ctx ограничивает время жизни фоновой очистки rate limiter.
func New(ctx context.Context, cfg *config.Config, deps Deps) *Server {
	router := chi.NewRouter()

	router.Use(
		chimw.RequestID,
		middleware.LoggingWithSkip(deps.Logger, "/health", "/metrics"),
		middleware.NewMetrics(deps.Registry).Handler,
		middleware.Recovery(deps.Logger),
	)

	health := handlers.NewHealthHandler(deps.Logger, deps.KV, deps.Version)
	records := handlers.NewRecordsHandler(deps.Logger, deps.Lifecycle, cfg.MaxUploadBytes)
	trash := handlers.NewTrashHandler(deps.Logger, deps.Lifecycle)
	prof := handlers.NewProfileHandler(deps.Logger, deps.Profile)
	chat := handlers.NewChatHandler(deps.Logger)

	// Лимит применяется только к изменяющим запросам
	limit := func(next http.Handler) http.Handler { return next }
	if cfg.RateLimit > 0 {
		limit = middleware.NewRateLimiter(ctx, cfg.RateLimit, time.Minute, deps.Logger).Handler
	}

	router.Get("/health", health.Health)
	router.Handle("/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/counts", records.Counts)

		r.Route("/records/{category}", func(r chi.Router) {
			r.Get("/", records.List)
			r.With(limit).Post("/", records.Upload)
			r.Get("/{id}/download", records.Download)
			r.With(limit).Delete("/{id}", records.Delete)
		})

		r.Route("/trash", func(r chi.Router) {
			r.Get("/", trash.List)
			r.With(limit).Post("/{id}/restore", trash.Restore)
			r.With(limit).Delete("/{id}", trash.Purge)
		})

		r.Route("/profile", func(r chi.Router) {
			r.Get("/", prof.Get)
			r.With(limit).Put("/", prof.Put)
			r.With(limit).Delete("/", prof.Delete)
		})

		r.With(limit).Post("/chat", chat.Reply)
	})

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       2 * time.Minute,
	}

	return &Server{
		httpServer: srv,
		logger:     deps.Logger,
		cfg:        cfg,
	}
}

// Handler возвращает корневой обработчик с маршрутами API
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Run слушает cfg.Addr и обслуживает запросы до отмены ctx
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.cfg.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve обслуживает запросы на ln до отмены ctx.
// После отмены выполняется graceful shutdown с таймаутом cfg.ShutdownTimeout.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	errCh := make(chan error, 1)

	go func() {
		s.logger.Info("HTTP server started", slog.String("addr", ln.Addr().String()))

		err := s.httpServer.Serve(ln)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("Shutdown requested")
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("HTTP server failed: %w", err)
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down HTTP server: %w", err)
	}

	s.logger.Info("HTTP server stopped")
	return nil
}
