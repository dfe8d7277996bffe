// Package landing hosts the browser-facing landing page service.
package landing

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/rotaract-dypcoe/landing/internal/carousel"
	"github.com/rotaract-dypcoe/landing/internal/content"
	"github.com/rotaract-dypcoe/landing/internal/platform/assets/imagecdn"
	"github.com/rotaract-dypcoe/landing/internal/platform/timeouts"
	landingapp "github.com/rotaract-dypcoe/landing/internal/services/landing/app"
	module "github.com/rotaract-dypcoe/landing/internal/services/landing/module"
	"github.com/rotaract-dypcoe/landing/internal/services/landing/modules"
	"github.com/rotaract-dypcoe/landing/internal/services/landing/platform/httpx"
	"github.com/rotaract-dypcoe/landing/internal/services/landing/platform/observability"
	"go.uber.org/zap"
)

// Config defines startup inputs for the landing service.
type Config struct {
	HTTPAddr      string
	AssetBaseURL  string
	PublicDir     string
	SlideInterval time.Duration
	Logger        *zap.Logger
	// Site overrides the embedded site content.
	Site *content.Site
	// TickerFunc overrides carousel timers, for tests.
	TickerFunc carousel.TickerFunc
}

// Server hosts the landing HTTP surface and lifecycle.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	registry   *carousel.Registry
	logger     *zap.Logger
	// cancelRequests ends every in-flight request context, including open
	// carousel streams, which otherwise never go idle.
	cancelRequests context.CancelFunc
}

// NewDependencies loads site content and builds the shared module
// dependencies described by cfg.
func NewDependencies(cfg Config) (module.Dependencies, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	var site content.Site
	if cfg.Site != nil {
		if err := cfg.Site.Validate(); err != nil {
			return module.Dependencies{}, err
		}
		site = *cfg.Site
	} else {
		loaded, err := content.Default()
		if err != nil {
			return module.Dependencies{}, fmt.Errorf("load site content: %w", err)
		}
		site = loaded
	}
	deck, err := site.Deck()
	if err != nil {
		return module.Dependencies{}, fmt.Errorf("build carousel deck: %w", err)
	}

	interval := cfg.SlideInterval
	if interval <= 0 {
		interval = carousel.DefaultInterval
	}
	opts := []carousel.Option{carousel.WithInterval(interval)}
	if cfg.TickerFunc != nil {
		opts = append(opts, carousel.WithTicker(cfg.TickerFunc))
	}
	return module.Dependencies{
		Site:      site,
		Deck:      deck,
		Registry:  carousel.NewRegistry(deck, opts...),
		Images:    imagecdn.New(cfg.AssetBaseURL),
		Interval:  interval,
		Logger:    logger,
		PublicDir: strings.TrimSpace(cfg.PublicDir),
	}, nil
}

// NewHandler builds the root handler with the default module set.
func NewHandler(deps module.Dependencies) (http.Handler, error) {
	h, err := landingapp.Compose(landingapp.Config{
		Dependencies: deps,
		Modules:      modules.Default(),
	})
	if err != nil {
		return nil, err
	}
	return httpx.Chain(h,
		httpx.RecoverPanic(deps.Log()),
		httpx.RequestID(),
		observability.Tracing(),
		observability.RequestLogger(deps.Log()),
	), nil
}

// NewServer validates config and constructs a landing server.
func NewServer(_ context.Context, cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	deps, err := NewDependencies(cfg)
	if err != nil {
		return nil, err
	}
	handler, err := NewHandler(deps)
	if err != nil {
		return nil, fmt.Errorf("compose landing handler: %w", err)
	}
	requestsCtx, cancelRequests := context.WithCancel(context.Background())
	httpServer := &http.Server{
		Addr:              httpAddr,
		Handler:           handler,
		ReadHeaderTimeout: timeouts.ReadHeader,
		BaseContext:       func(net.Listener) context.Context { return requestsCtx },
	}
	httpServer.RegisterOnShutdown(cancelRequests)
	return &Server{
		httpAddr:       httpAddr,
		httpServer:     httpServer,
		registry:       deps.Registry,
		logger:         deps.Log(),
		cancelRequests: cancelRequests,
	}, nil
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	if s == nil {
		return ""
	}
	return s.httpAddr
}

// ListenAndServe serves HTTP traffic until context cancellation or server stop.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("landing server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	go func() {
		s.logger.Info("landing listening", zap.String("addr", s.httpAddr))
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown landing http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve landing http: %w", err)
	}
}

// Close closes open server resources.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	_ = s.httpServer.Close()
	if s.cancelRequests != nil {
		s.cancelRequests()
	}
	if s.registry != nil {
		s.registry.CloseAll()
	}
}
