package infrastructure

import (
	"toolkitaccess.app/internal/config"
	"toolkitaccess.app/internal/ports"
)

// ConfigProviderAdapter implements the ConfigProvider port
type ConfigProviderAdapter struct {
	config *config.Config
}

// NewConfigProviderAdapter creates a new config provider adapter
func NewConfigProviderAdapter(cfg *config.Config) *ConfigProviderAdapter {
	return &ConfigProviderAdapter{
		config: cfg,
	}
}

// GetNotificationConfig returns who is notified about access requests
func (c *ConfigProviderAdapter) GetNotificationConfig() ports.NotificationConfig {
	return ports.NotificationConfig{
		Recipient:           c.config.Notification.Recipient,
		RecipientName:       c.config.Notification.RecipientName,
		RepositoryAccessURL: c.config.Notification.RepositoryAccessURL,
	}
}

// GetServiceConfig returns service identity settings
func (c *ConfigProviderAdapter) GetServiceConfig() ports.ServiceConfig {
	return ports.ServiceConfig{
		Name: c.config.Server.ServiceName,
		Port: c.config.Server.Port,
	}
}
