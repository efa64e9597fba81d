package ui

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"prnbook/app"
	"prnbook/internal"
)

//go:embed templates/*.html
var embeddedFiles embed.FS

// Converter runs a conversion over one folder
type Converter interface {
	Convert(ctx context.Context, folder string) (*app.Report, error)
}

// App is the local web front end: a folder field, a Process button and a
// Close button that stops the server.
type App struct {
	router    *chi.Mux
	converter Converter
	templates *template.Template
	logger    *internal.Logger
	config    Config

	mu      sync.Mutex // serializes conversions
	closeCh chan struct{}
	once    sync.Once
}

// Config holds UI application configuration
type Config struct {
	Addr          string
	DefaultFolder string
}

// NewApp creates a new UI application
func NewApp(config Config, converter Converter, logger *internal.Logger) (*App, error) {
	if converter == nil {
		return nil, fmt.Errorf("converter cannot be nil")
	}
	if logger == nil {
		logger = internal.DefaultLogger
	}

	templates, err := template.ParseFS(embeddedFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	a := &App{
		router:    chi.NewRouter(),
		converter: converter,
		templates: templates,
		logger:    logger,
		config:    config,
		closeCh:   make(chan struct{}),
	}

	a.setupMiddleware()
	a.setupRoutes()

	return a, nil
}

// setupMiddleware configures HTTP middleware
func (a *App) setupMiddleware() {
	a.router.Use(middleware.RequestID)
	a.router.Use(middleware.Recoverer)
}

// setupRoutes configures the application routes
func (a *App) setupRoutes() {
	a.router.Get("/", a.handleIndex)
	a.router.Post("/process", a.handleProcess)
	a.router.Post("/close", a.handleClose)
}

// Handler exposes the router for tests and embedding
func (a *App) Handler() http.Handler {
	return a.router
}

// Closed is closed once the Close button has been pressed
func (a *App) Closed() <-chan struct{} {
	return a.closeCh
}

// Start serves until ctx is cancelled or the Close button is pressed
func (a *App) Start(ctx context.Context) error {
	addr := a.config.Addr
	if addr == "" {
		addr = "127.0.0.1:8090"
	}
	srv := &http.Server{
		Addr:              addr,
		Handler:           a.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("prnbook UI listening on http://%s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	case <-a.closeCh:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop UI server: %w", err)
	}
	return nil
}

// Template helpers
func (a *App) renderTemplate(w http.ResponseWriter, templateName string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := a.templates.ExecuteTemplate(w, templateName, data); err != nil {
		a.logger.Error("template error: %v", err)
		http.Error(w, "Template error", http.StatusInternalServerError)
	}
}
