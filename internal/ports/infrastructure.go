package ports

import "time"

// NotificationConfig describes who gets notified about new access requests
type NotificationConfig struct {
	Recipient           string
	RecipientName       string
	RepositoryAccessURL string
}

// ServiceConfig represents service identity settings
type ServiceConfig struct {
	Name string
	Port int
}

// ConfigProvider defines the contract for configuration management
type ConfigProvider interface {
	GetNotificationConfig() NotificationConfig
	GetServiceConfig() ServiceConfig
}

// Logger defines the contract for structured logging
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// Field represents a log field
type Field struct {
	Key   string
	Value interface{}
}

// F creates a log field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// Submission outcomes recorded by AccessMetrics
const (
	OutcomeAccepted = "accepted"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

// AccessMetrics defines the contract for metrics collection
type AccessMetrics interface {
	RecordSubmission(outcome string)
	RecordEmail(sent bool, duration time.Duration)
}
