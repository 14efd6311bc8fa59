package ports

// ApplicationPorts aggregates all ports for dependency injection
type ApplicationPorts struct {
	// Access requests
	RequestLog RequestLog

	// Communication
	EmailSender EmailSender

	// Infrastructure
	ConfigProvider ConfigProvider
	Logger         Logger
	Metrics        AccessMetrics
	HealthChecker  SystemHealthChecker
}
