// ABOUTME: bridgeplay HTTP server: sample listing, player page, and raw sample files
// ABOUTME: behind a single chi router, plus embedded or on-disk static assets.
package web

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/2389-research/bridgeplay/catalog"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// DefaultTitle is shown in the page header when no title is configured.
const DefaultTitle = "WebMSX JS Bridge Examples"

// shutdownTimeout bounds how long in-flight requests get after cancellation.
const shutdownTimeout = 5 * time.Second

// Server serves the sample catalog. It holds no mutable state after
// NewServer returns, so handlers run concurrently without locking.
type Server struct {
	catalog   *catalog.Catalog
	samples   fs.FS
	static    fs.FS
	templates *TemplateEngine
	urls      *URLBuilder
	router    chi.Router
	addr      string
	title     string
	logger    *log.Logger
}

// ServerConfig holds the configuration for the web server.
type ServerConfig struct {
	Addr       string           // listen address (default: "127.0.0.1:2389")
	Title      string           // page title (default: DefaultTitle)
	Catalog    *catalog.Catalog // required
	SamplesDir string           // directory holding the sample HTML files, required
	StaticDir  string           // optional on-disk override for the embedded static assets
	Logger     *log.Logger      // default: log.Default()
}

// NewServer creates a Server with the given configuration and sets up
// routing. The samples directory is not inspected here: each request checks
// for its file on its own.
func NewServer(cfg ServerConfig) (*Server, error) {
	if cfg.Addr == "" {
		cfg.Addr = "127.0.0.1:2389"
	}
	if cfg.Title == "" {
		cfg.Title = DefaultTitle
	}
	if cfg.Catalog == nil {
		return nil, errors.New("Catalog must not be nil")
	}
	if cfg.SamplesDir == "" {
		return nil, errors.New("SamplesDir must not be empty")
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}

	static, err := staticFS(cfg.StaticDir)
	if err != nil {
		return nil, err
	}

	tmpl, err := NewTemplateEngine()
	if err != nil {
		return nil, fmt.Errorf("initializing templates: %w", err)
	}

	s := &Server{
		catalog:   cfg.Catalog,
		samples:   os.DirFS(cfg.SamplesDir),
		static:    static,
		templates: tmpl,
		urls:      NewURLBuilder(defaultRoutes),
		addr:      cfg.Addr,
		title:     cfg.Title,
		logger:    cfg.Logger,
	}

	s.router = s.buildRouter()
	return s, nil
}

// staticFS returns the on-disk static directory when dir is set, else the
// embedded assets rooted at static/.
func staticFS(dir string) (fs.FS, error) {
	if dir != "" {
		info, err := os.Stat(dir)
		if err != nil {
			return nil, fmt.Errorf("static dir: %w", err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("static dir %s is not a directory", dir)
		}
		return os.DirFS(dir), nil
	}
	sub, err := fs.Sub(StaticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("embedded static assets: %w", err)
	}
	return sub, nil
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.addr
}

// ServeHTTP delegates to the chi router, satisfying http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe listens on the configured address and serves until ctx is
// cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled. It uses timeouts
// that keep slow clients from holding connections open indefinitely.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      5 * time.Minute,
		IdleTimeout:       2 * time.Minute,
		ErrorLog:          s.logger,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down: %w", err)
		}
		return nil
	}
}

// buildRouter constructs the chi router with all routes and middleware.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(webRequestLogger(s.logger))
	r.Use(middleware.Recoverer)

	r.Get(s.urls.Pattern(routeIndex), s.handleIndex)
	r.Get(s.urls.Pattern(routePlay), s.handlePlay)
	r.Get(s.urls.Pattern(routeServeSample), s.handleServeSample)
	r.Get(s.urls.Pattern(routeHealth), s.handleHealth)

	staticPrefix := s.urls.Pattern(routeStatic)
	r.Handle(staticPrefix+"/*", http.StripPrefix(staticPrefix+"/", http.FileServer(http.FS(s.static))))

	return r
}
