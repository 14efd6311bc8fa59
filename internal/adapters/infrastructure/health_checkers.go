package infrastructure

import (
	"context"

	"toolkitaccess.app/internal/ports"
)

// RequestLogHealthChecker reports on the request log backend
type RequestLogHealthChecker struct {
	backend string
	log     ports.RequestLog
}

// NewRequestLogHealthChecker creates a checker for log; backend names the store type
func NewRequestLogHealthChecker(backend string, log ports.RequestLog) *RequestLogHealthChecker {
	return &RequestLogHealthChecker{backend: backend, log: log}
}

// Check pings remote backends; in-process logs are always healthy
func (r *RequestLogHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "requestLog",
		Status:    ports.StatusHealthy,
		Details: map[string]interface{}{
			"backend": r.backend,
		},
	}

	if r.log == nil {
		status.Status = ports.StatusUnhealthy
		status.Error = "request log is not configured"
		return status
	}

	if pinger, ok := r.log.(ports.Pinger); ok {
		if err := pinger.Ping(ctx); err != nil {
			status.Status = ports.StatusUnhealthy
			status.Error = err.Error()
		}
	}

	return status
}

// EmailSenderHealthChecker reports the email sender configuration.
// It never calls the remote function.
type EmailSenderHealthChecker struct {
	provider   string
	endpoint   string
	configured bool
}

// NewEmailSenderHealthChecker creates a new email sender health checker
func NewEmailSenderHealthChecker(provider, endpoint string, configured bool) *EmailSenderHealthChecker {
	return &EmailSenderHealthChecker{provider: provider, endpoint: endpoint, configured: configured}
}

// Check reports the sender as unhealthy when its credentials are missing
func (e *EmailSenderHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "emailSender",
		Status:    ports.StatusHealthy,
		Details: map[string]interface{}{
			"provider": e.provider,
			"endpoint": e.endpoint,
		},
	}

	if !e.configured {
		status.Status = ports.StatusUnhealthy
		status.Error = "email sender credentials are not configured"
	}

	return status
}
