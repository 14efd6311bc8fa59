package app

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"toolkitaccess.app/internal/adapters/external"
	"toolkitaccess.app/internal/adapters/infrastructure"
	"toolkitaccess.app/internal/config"
	"toolkitaccess.app/internal/ports"
)

type DependencyContainer struct {
	config   *config.Config
	ports    *ports.ApplicationPorts
	registry *prometheus.Registry
	closers  []io.Closer
}

func NewDependencyContainer(cfg *config.Config) (*DependencyContainer, error) {
	container := &DependencyContainer{
		config:   cfg,
		registry: prometheus.NewRegistry(),
	}

	if err := container.initializePorts(); err != nil {
		_ = container.Cleanup()
		return nil, fmt.Errorf("initialize ports: %w", err)
	}

	return container, nil
}

func (c *DependencyContainer) initializePorts() error {
	slog.Info("Initializing ports...")

	logger := c.initializeLogger()

	requestLog, err := external.NewRequestLogFactory().CreateRequestLog(&c.config.Store)
	if err != nil {
		return fmt.Errorf("create request log: %w", err)
	}
	if closer, ok := requestLog.(io.Closer); ok {
		c.closers = append(c.closers, closer)
	}
	slog.Info("Request log initialized", "type", c.config.Store.Type.String())

	emailSender, emailChecker, err := c.initializeEmailSender(logger)
	if err != nil {
		return fmt.Errorf("create email sender: %w", err)
	}

	c.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics, err := infrastructure.NewPrometheusMetricsAdapter(c.registry)
	if err != nil {
		return fmt.Errorf("register metrics: %w", err)
	}

	configProvider := infrastructure.NewConfigProviderAdapter(c.config)

	healthChecker := infrastructure.NewSystemHealthChecker(infrastructure.SystemHealthCheckerConfig{
		RequestLogChecker:  infrastructure.NewRequestLogHealthChecker(c.config.Store.Type.String(), requestLog),
		EmailSenderChecker: emailChecker,
		ConfigProvider:     configProvider,
	})

	c.ports = &ports.ApplicationPorts{
		RequestLog:     requestLog,
		EmailSender:    emailSender,
		ConfigProvider: configProvider,
		Logger:         logger,
		Metrics:        metrics,
		HealthChecker:  healthChecker,
	}

	slog.Info("Ports initialized successfully")
	return nil
}

// initializeLogger logs through slog and, when LOG_FILE_PATH is set, also to that file
func (c *DependencyContainer) initializeLogger() ports.Logger {
	var logger ports.Logger = infrastructure.NewSlogLoggerAdapter(nil)

	if c.config.Log.FilePath == "" {
		return logger
	}

	fileLogger, err := infrastructure.NewFileLoggerAdapter(c.config.Log.FilePath)
	if err != nil {
		slog.Warn("Failed to create file logger, falling back to slog", "error", err)
		return logger
	}

	c.closers = append(c.closers, fileLogger)
	slog.Info("File logging enabled", "path", c.config.Log.FilePath)
	return infrastructure.NewMultiLogger(logger, fileLogger)
}

func (c *DependencyContainer) initializeEmailSender(logger ports.Logger) (ports.EmailSender, ports.HealthChecker, error) {
	switch c.config.Email.Provider {
	case config.EmailProviderDomo:
		sender, err := external.NewDomoEmailSenderAdapter(external.DomoEmailSenderConfig{
			BaseURL:        c.config.Domo.EndpointBaseURL(),
			AccessToken:    c.config.Domo.AccessToken,
			PackageID:      c.config.Domo.PackageID,
			PackageVersion: c.config.Domo.PackageVersion,
			Timeout:        time.Duration(c.config.Domo.TimeoutSeconds) * time.Second,
		}, nil, logger)
		if err != nil {
			return nil, nil, err
		}

		configured := c.config.Domo.AccessToken != ""
		if !configured {
			slog.Warn("DOMO_ACCESS_TOKEN is not set, notification emails will be rejected")
		}
		return sender, infrastructure.NewEmailSenderHealthChecker("domo", sender.Endpoint(), configured), nil

	case config.EmailProviderSMTP:
		sender := external.NewSMTPEmailSenderAdapter(external.SMTPEmailSenderConfig{
			Host:     c.config.Email.SMTPHost,
			Port:     c.config.Email.SMTPPort,
			Username: c.config.Email.SMTPUsername,
			Password: c.config.Email.SMTPPassword,
			FromName: c.config.Email.FromName,
			FromAddr: c.config.Email.FromAddress,
		})
		if err := sender.ValidateConfiguration(); err != nil {
			return nil, nil, err
		}
		return sender, infrastructure.NewEmailSenderHealthChecker("smtp", sender.Endpoint(), true), nil

	default:
		return nil, nil, fmt.Errorf("unsupported email provider: %s", c.config.Email.Provider.String())
	}
}

func (c *DependencyContainer) ApplicationPorts() *ports.ApplicationPorts {
	return c.ports
}

// Registry returns the Prometheus registry served on /metrics
func (c *DependencyContainer) Registry() *prometheus.Registry {
	return c.registry
}

// Cleanup closes resources in reverse order of creation
func (c *DependencyContainer) Cleanup() error {
	var firstErr error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i].Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	c.closers = nil
	return firstErr
}
