package infrastructure

import (
	"context"

	"toolkitaccess.app/internal/ports"
)

// SystemHealthChecker aggregates all health checks
type SystemHealthChecker struct {
	requestLogChecker  ports.HealthChecker
	emailSenderChecker ports.HealthChecker
	configProvider     ports.ConfigProvider
}

// SystemHealthCheckerConfig holds the configuration for creating a system health checker
type SystemHealthCheckerConfig struct {
	RequestLogChecker  ports.HealthChecker
	EmailSenderChecker ports.HealthChecker
	ConfigProvider     ports.ConfigProvider
}

// NewSystemHealthChecker creates a new system health checker
func NewSystemHealthChecker(config SystemHealthCheckerConfig) *SystemHealthChecker {
	return &SystemHealthChecker{
		requestLogChecker:  config.RequestLogChecker,
		emailSenderChecker: config.EmailSenderChecker,
		configProvider:     config.ConfigProvider,
	}
}

// CheckAll performs health checks on all components
func (s *SystemHealthChecker) CheckAll(ctx context.Context) map[string]ports.HealthStatus {
	results := make(map[string]ports.HealthStatus)

	if s.requestLogChecker != nil {
		results["requestLog"] = s.requestLogChecker.Check(ctx)
	}

	if s.emailSenderChecker != nil {
		results["emailSender"] = s.emailSenderChecker.Check(ctx)
	}

	if s.configProvider != nil {
		service := s.configProvider.GetServiceConfig()
		notification := s.configProvider.GetNotificationConfig()
		results["config"] = ports.HealthStatus{
			Component: "config",
			Status:    ports.StatusHealthy,
			Details: map[string]interface{}{
				"service":   service.Name,
				"recipient": notification.Recipient,
			},
		}
	}

	return results
}
