// Package server serves the site pages, the contact form, static assets and
// the carousel JSON component over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	tarotsite "github.com/goliatone/go-tarotsite"
	carouselcomponent "github.com/goliatone/go-tarotsite/components/carousel"
	"github.com/goliatone/go-tarotsite/pkg/content"
	"github.com/goliatone/go-tarotsite/pkg/enquiry"
	"github.com/goliatone/go-tarotsite/pkg/render"
)

// DefaultShutdownTimeout bounds how long in-flight requests may take once the
// serve context is cancelled.
const DefaultShutdownTimeout = 10 * time.Second

// Option configures a Server.
type Option func(*config)

type config struct {
	logger          *zap.Logger
	validator       *enquiry.Validator
	submitter       enquiry.Submitter
	phone           string
	publicDir       string
	carouselWindow  int
	autoAdvance     time.Duration
	shutdownTimeout time.Duration
}

// WithLogger sets the request and lifecycle logger.
func WithLogger(logger *zap.Logger) Option {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithValidator overrides the enquiry validator.
func WithValidator(v *enquiry.Validator) Option {
	return func(cfg *config) {
		if v != nil {
			cfg.validator = v
		}
	}
}

// WithSubmitter sets where valid enquiries go. The default discards them.
func WithSubmitter(s enquiry.Submitter) Option {
	return func(cfg *config) {
		if s != nil {
			cfg.submitter = s
		}
	}
}

// WithPhone overrides the chat phone number of every content set served.
func WithPhone(phone string) Option {
	return func(cfg *config) {
		cfg.phone = strings.TrimSpace(phone)
	}
}

// WithPublicDir serves extra static files (logo, icons) from dir.
func WithPublicDir(dir string) Option {
	return func(cfg *config) {
		cfg.publicDir = strings.TrimSpace(dir)
	}
}

// WithCarouselWindow sets how many testimonials are visible at once.
func WithCarouselWindow(size int) Option {
	return func(cfg *config) {
		if size > 0 {
			cfg.carouselWindow = size
		}
	}
}

// WithAutoAdvance sets the auto-advance interval published on the home page.
// Zero disables auto-advance.
func WithAutoAdvance(d time.Duration) Option {
	return func(cfg *config) {
		if d >= 0 {
			cfg.autoAdvance = d
		}
	}
}

// WithShutdownTimeout bounds graceful shutdown.
func WithShutdownTimeout(d time.Duration) Option {
	return func(cfg *config) {
		if d > 0 {
			cfg.shutdownTimeout = d
		}
	}
}

// Server holds the current content set and the routes serving it. Content is
// swapped atomically so reloads never block requests.
type Server struct {
	cfg      config
	registry *render.Registry
	site     atomic.Pointer[content.Site]
	router   chi.Router
}

// New builds a Server rendering site through registry.
func New(registry *render.Registry, site *content.Site, options ...Option) (*Server, error) {
	if registry == nil {
		return nil, errors.New("server: registry is required")
	}
	cfg := config{
		logger:          zap.NewNop(),
		submitter:       enquiry.DiscardSubmitter{},
		carouselWindow:  render.DefaultCarouselWindow,
		shutdownTimeout: DefaultShutdownTimeout,
	}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.validator == nil {
		v, err := enquiry.NewValidator()
		if err != nil {
			return nil, fmt.Errorf("server: %w", err)
		}
		cfg.validator = v
	}

	s := &Server{cfg: cfg, registry: registry}
	if err := s.SetSite(site); err != nil {
		return nil, err
	}
	router, err := s.routes()
	if err != nil {
		return nil, err
	}
	s.router = router
	return s, nil
}

// Site returns the content set currently served.
func (s *Server) Site() *content.Site {
	return s.site.Load()
}

// SetSite replaces the content set. It is safe to call while serving.
func (s *Server) SetSite(site *content.Site) error {
	if site == nil {
		return render.ErrMissingContent
	}
	if s.cfg.phone != "" {
		copied := *site
		copied.Contact.Phone = s.cfg.phone
		site = &copied
	}
	s.site.Store(site)
	return nil
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() (chi.Router, error) {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.cfg.logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.GetHead)

	r.Get("/healthz", s.handleHealth)
	r.Get("/openapi.yaml", s.handleOpenAPI)
	r.Handle(tarotsite.AssetsPrefix+"*", http.StripPrefix(tarotsite.AssetsPrefix, http.FileServerFS(tarotsite.AssetsFS())))

	if _, err := carouselcomponent.RegisterRoutes(r, "/api",
		carouselcomponent.WithSource(carouselcomponent.SiteSource(s.Site)),
		carouselcomponent.WithDefaultWindow(s.cfg.carouselWindow),
	); err != nil {
		return nil, fmt.Errorf("server: %w", err)
	}

	r.Get("/", s.handlePage)
	r.Get("/{file}", s.handleFile)
	r.Post("/"+contactPath, s.handleContact)
	return r, nil
}

// ListenAndServe listens on addr and serves until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("server: listen %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled, then shuts down
// gracefully within the configured timeout.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	httpServer := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.Serve(ln)
	}()
	s.cfg.logger.Info("server started", zap.String("addr", ln.Addr().String()))

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.shutdownTimeout)
	defer cancel()
	s.cfg.logger.Info("server stopping")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server: %w", err)
	}
	s.cfg.logger.Info("server stopped")
	return nil
}
