// Package api provides HTTP adapters for the hexagonal architecture
// These adapters handle incoming HTTP requests and translate them to use cases
package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"toolkitaccess.app/internal/core/access"
	"toolkitaccess.app/internal/ports"
	"toolkitaccess.app/pkg/errors"
)

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	ServiceName    string
	AllowedOrigins []string
}

// HTTPServerAdapter implements HTTP server using Gin framework
type HTTPServerAdapter struct {
	router        *gin.Engine
	config        ServerConfig
	accessUseCase AccessUseCase
	healthChecker ports.SystemHealthChecker
	gatherer      prometheus.Gatherer
	logger        ports.Logger
}

// AccessUseCase is the use case the HTTP adapter depends on
type AccessUseCase interface {
	Submit(ctx context.Context, params access.SubmitParams) (*access.SubmitResult, error)
	ListRequests(ctx context.Context) (*access.RequestList, error)
}

// ServerOptions represents options for creating the HTTP server
type ServerOptions struct {
	Config        ServerConfig
	AccessUseCase AccessUseCase
	HealthChecker ports.SystemHealthChecker
	Gatherer      prometheus.Gatherer
	Logger        ports.Logger
}

// NewHTTPServerAdapter creates a new HTTP server adapter
func NewHTTPServerAdapter(opts ServerOptions) (*HTTPServerAdapter, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(gin.Recovery(), requestID(), accessLog(opts.Logger))
	if len(opts.Config.AllowedOrigins) > 0 {
		router.Use(corsMiddleware(opts.Config.AllowedOrigins))
	}

	server := &HTTPServerAdapter{
		router:        router,
		config:        opts.Config,
		accessUseCase: opts.AccessUseCase,
		healthChecker: opts.HealthChecker,
		gatherer:      opts.Gatherer,
		logger:        opts.Logger,
	}

	server.setupRoutes()
	return server, nil
}

// Validate checks if all required dependencies are provided
func (opts *ServerOptions) Validate() error {
	if opts.Config.ServiceName == "" {
		return errors.NewValidationError("service name is required")
	}
	if opts.AccessUseCase == nil {
		return errors.NewValidationError("access use case is required")
	}
	if opts.HealthChecker == nil {
		return errors.NewValidationError("health checker is required")
	}
	if opts.Gatherer == nil {
		return errors.NewValidationError("metrics gatherer is required")
	}
	if opts.Logger == nil {
		return errors.NewValidationError("logger is required")
	}
	return nil
}

// setupRoutes configures all HTTP routes
func (s *HTTPServerAdapter) setupRoutes() {
	api := s.router.Group("/api")
	{
		api.POST("/request-access", s.requestAccess)
		api.GET("/requests", s.listRequests)
		api.GET("/health", s.health)
		api.GET("/status", s.status)
	}

	s.router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})))
}

// Handler returns the router as an http.Handler
func (s *HTTPServerAdapter) Handler() http.Handler {
	return s.router
}
