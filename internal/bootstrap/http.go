package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"time"

	staffportal "github.com/moness/staff-portal"
	"github.com/moness/staff-portal/config"
	httpx "github.com/moness/staff-portal/internal/http"
)

// HTTPServerConfig contains configuration for the HTTP server.
type HTTPServerConfig struct {
	Config   *config.AppConfig
	Services ServiceContainer
	Logger   *slog.Logger
}

// StartHTTPServer builds the handler stack and starts the HTTP server.
// Returns the server instance for graceful shutdown.
func StartHTTPServer(cfg *HTTPServerConfig) (*http.Server, error) {
	if cfg == nil || cfg.Config == nil {
		return nil, errors.New("http server config is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	renderer, err := buildRenderer(cfg.Config.IsDev, logger)
	if err != nil {
		return nil, err
	}

	router := httpx.NewRouter(httpx.RouterServices{
		Auth:      cfg.Services.Auth,
		Bookings:  cfg.Services.Bookings,
		Menu:      cfg.Services.Menu,
		Employees: cfg.Services.Employees,
		Alerts:    cfg.Services.Alerts,
		Renderer:  renderer,
		Logger:    logger,
	})

	// Order: Recover -> Logging -> Session -> CSRF -> Router
	h := httpx.CSRFProtection(httpx.CSRFConfig{
		CookieDomain: cfg.Config.HTTP.CookieDomain,
	})(router)
	h = httpx.Session(httpx.SessionConfig{
		Store:        cfg.Services.Sessions,
		CookieDomain: cfg.Config.HTTP.CookieDomain,
		TTL:          cfg.Config.Session.TTL,
		Logger:       logger,
	})(h)
	h = httpx.Logging(logger)(h)
	h = httpx.Recover(logger)(h)

	return startServer(logger, h, cfg.Config.HTTP.Addr), nil
}

// buildRenderer parses templates from disk in dev mode so edits show up
// without a rebuild, and from the embedded filesystem otherwise.
func buildRenderer(isDev bool, logger *slog.Logger) (*httpx.TemplateRenderer, error) {
	var templateFS fs.FS
	if isDev {
		templateFS = os.DirFS("web/templates")
	} else {
		sub, err := fs.Sub(staffportal.TemplateFS, "web/templates")
		if err != nil {
			return nil, fmt.Errorf("embedded templates: %w", err)
		}
		templateFS = sub
	}

	renderer, err := httpx.NewTemplateRenderer(httpx.TemplateRendererConfig{
		TemplateFS: templateFS,
		Logger:     logger,
	})
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return renderer, nil
}

func startServer(logger *slog.Logger, handler http.Handler, addr string) *http.Server {
	if addr == "" {
		addr = ":8080"
	}

	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Info("starting HTTP server", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server failed", "error", err)
		}
	}()

	return server
}

// ShutdownHTTPServer drains in-flight requests before stopping.
func ShutdownHTTPServer(ctx context.Context, server *http.Server, logger *slog.Logger) error {
	if server == nil {
		return nil
	}
	shutdownCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	if logger != nil {
		logger.Info("HTTP server stopped")
	}
	return nil
}
