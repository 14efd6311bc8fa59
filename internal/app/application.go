package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"toolkitaccess.app/internal/adapters/api"
	"toolkitaccess.app/internal/config"
	"toolkitaccess.app/internal/core/access"
	"toolkitaccess.app/internal/ports"
)

type Application struct {
	config *config.Config

	// Use Cases
	accessUseCase *access.UseCase

	// Adapters
	httpServer *http.Server
	handler    http.Handler

	// Infrastructure
	deps  *DependencyContainer
	ports *ports.ApplicationPorts
}

func NewApplication() (*Application, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	return NewApplicationWithConfig(cfg)
}

// NewApplicationWithConfig wires the application from an already loaded configuration
func NewApplicationWithConfig(cfg *config.Config) (*Application, error) {
	deps, err := NewDependencyContainer(cfg)
	if err != nil {
		return nil, fmt.Errorf("create dependency container: %w", err)
	}

	app := &Application{
		config: cfg,
		deps:   deps,
		ports:  deps.ApplicationPorts(),
	}

	if err := app.initializeUseCases(); err != nil {
		_ = deps.Cleanup()
		return nil, fmt.Errorf("initialize use cases: %w", err)
	}

	if err := app.initializeAdapters(); err != nil {
		_ = deps.Cleanup()
		return nil, fmt.Errorf("initialize adapters: %w", err)
	}

	return app, nil
}

func (a *Application) initializeUseCases() error {
	slog.Info("Initializing use cases...")

	accessUseCase, err := access.NewUseCase(access.UseCaseDependencies{
		RequestLog:  a.ports.RequestLog,
		EmailSender: a.ports.EmailSender,
		Config:      a.ports.ConfigProvider,
		Logger:      a.ports.Logger,
		Metrics:     a.ports.Metrics,
	})
	if err != nil {
		return fmt.Errorf("create access use case: %w", err)
	}
	a.accessUseCase = accessUseCase

	slog.Info("Use cases initialized successfully")
	return nil
}

func (a *Application) initializeAdapters() error {
	slog.Info("Initializing adapters...")

	httpAdapter, err := api.NewHTTPServerAdapter(api.ServerOptions{
		Config: api.ServerConfig{
			ServiceName:    a.config.Server.ServiceName,
			AllowedOrigins: a.config.CORS.AllowedOrigins,
		},
		AccessUseCase: a.accessUseCase,
		HealthChecker: a.ports.HealthChecker,
		Gatherer:      a.deps.Registry(),
		Logger:        a.ports.Logger,
	})
	if err != nil {
		return fmt.Errorf("create HTTP adapter: %w", err)
	}

	a.handler = httpAdapter.Handler()

	// WriteTimeout leaves room for a slow Code Engine call inside a request
	a.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", a.config.Server.Port),
		Handler:           a.handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      time.Duration(a.config.Domo.TimeoutSeconds+15) * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	slog.Info("Adapters initialized successfully")
	return nil
}

// Start serves HTTP until Shutdown is called
func (a *Application) Start(ctx context.Context) error {
	slog.Info("Starting HTTP server",
		"port", a.config.Server.Port,
		"service", a.config.Server.ServiceName,
		"store", a.config.Store.Type.String(),
		"email_provider", a.config.Email.Provider.String())

	if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	return nil
}

func (a *Application) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down application...")

	if err := a.httpServer.Shutdown(ctx); err != nil {
		slog.Error("Error shutting down HTTP server", "error", err)
		return fmt.Errorf("shutdown HTTP server: %w", err)
	}

	if err := a.deps.Cleanup(); err != nil {
		slog.Warn("Error releasing resources", "error", err)
	}

	slog.Info("Application shutdown complete")
	return nil
}

// Config returns the application configuration
func (a *Application) Config() *config.Config {
	return a.config
}

// Handler returns the HTTP handler for testing
func (a *Application) Handler() http.Handler {
	return a.handler
}
