package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"toolkitaccess.app/pkg/errors"
)

func TestLoadConfig(t *testing.T) {
	t.Run("DefaultValues", func(t *testing.T) {
		os.Clearenv()

		config, err := LoadConfig()

		require.NoError(t, err)
		require.NotNil(t, config)
		assert.Equal(t, 8080, config.Server.Port)
		assert.Equal(t, "toolkit-access-api", config.Server.ServiceName)
		assert.Equal(t, "domo.domo.com", config.Domo.Instance)
		assert.Equal(t, "", config.Domo.AccessToken)
		assert.Equal(t, "https://domo.domo.com", config.Domo.EndpointBaseURL())
		assert.Equal(t, "03ba6971-98d0-4654-9bfd-aa897816df33", config.Domo.PackageID)
		assert.Equal(t, "2.1.13", config.Domo.PackageVersion)
		assert.Equal(t, 30, config.Domo.TimeoutSeconds)
		assert.Equal(t, "jake.heaps@domo.com", config.Notification.Recipient)
		assert.Equal(t, "Jake", config.Notification.RecipientName)
		assert.Equal(t, EmailProviderDomo, config.Email.Provider)
		assert.Equal(t, StoreTypeMemory, config.Store.Type)
		assert.Equal(t, "toolkit:access_requests", config.Store.Redis.Key)
		assert.Equal(t, "sqlite", config.Store.SQL.Driver)
		assert.Equal(t, []string{
			"https://jakeheaps-coder.github.io",
			"http://localhost:*",
			"http://127.0.0.1:*",
		}, config.CORS.AllowedOrigins)
		assert.Equal(t, "info", config.Log.Level)
	})

	t.Run("CustomValues", func(t *testing.T) {
		os.Clearenv()

		require.NoError(t, os.Setenv("PORT", "9090"))
		require.NoError(t, os.Setenv("DOMO_INSTANCE", "acme.domo.com"))
		require.NoError(t, os.Setenv("DOMO_ACCESS_TOKEN", "dev-token"))
		require.NoError(t, os.Setenv("NOTIFY_EMAIL", "ops@acme.com"))
		require.NoError(t, os.Setenv("NOTIFY_NAME", "Ops"))
		require.NoError(t, os.Setenv("STORE_TYPE", "redis"))
		require.NoError(t, os.Setenv("REDIS_ADDR", "redis:6379"))
		require.NoError(t, os.Setenv("REDIS_REQUESTS_TTL_MINUTES", "60"))
		require.NoError(t, os.Setenv("CORS_ALLOWED_ORIGINS", "https://acme.github.io"))

		config, err := LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, 9090, config.Server.Port)
		assert.Equal(t, "https://acme.domo.com", config.Domo.EndpointBaseURL())
		assert.Equal(t, "dev-token", config.Domo.AccessToken)
		assert.Equal(t, "ops@acme.com", config.Notification.Recipient)
		assert.Equal(t, "Ops", config.Notification.RecipientName)
		assert.Equal(t, StoreTypeRedis, config.Store.Type)
		assert.Equal(t, "redis:6379", config.Store.Redis.Addr)
		assert.Equal(t, 60, config.Store.Redis.TTLMinutes)
		assert.Equal(t, []string{"https://acme.github.io"}, config.CORS.AllowedOrigins)
	})

	t.Run("InvalidStoreType", func(t *testing.T) {
		os.Clearenv()
		require.NoError(t, os.Setenv("STORE_TYPE", "dynamo"))

		config, err := LoadConfig()

		assert.Nil(t, config)
		require.Error(t, err)
		assert.True(t, errors.IsConfigurationError(err))
		assert.Contains(t, err.Error(), "STORE_TYPE must be one of")
	})

	t.Run("MalformedPort", func(t *testing.T) {
		os.Clearenv()
		require.NoError(t, os.Setenv("PORT", "eighty"))

		config, err := LoadConfig()

		assert.Nil(t, config)
		assert.True(t, errors.IsConfigurationError(err))
	})
}

func TestDomoConfig_EndpointBaseURL(t *testing.T) {
	assert.Equal(t, "https://acme.domo.com", DomoConfig{Instance: "acme.domo.com"}.EndpointBaseURL())
	assert.Equal(t, "http://127.0.0.1:9999", DomoConfig{Instance: "acme.domo.com", BaseURL: "http://127.0.0.1:9999/"}.EndpointBaseURL())
}

func validConfig() *Config {
	return &Config{
		Server: ServerConfig{Port: 8080, ServiceName: "toolkit-access-api"},
		Domo: DomoConfig{
			Instance:       "domo.domo.com",
			PackageID:      "03ba6971-98d0-4654-9bfd-aa897816df33",
			PackageVersion: "2.1.13",
			TimeoutSeconds: 30,
		},
		Notification: NotificationConfig{
			Recipient:           "jake.heaps@domo.com",
			RecipientName:       "Jake",
			RepositoryAccessURL: "https://github.com/jakeheaps-coder/domo-toolkit/settings/access",
		},
		Email: EmailConfig{Provider: EmailProviderDomo},
		Store: StoreConfig{Type: StoreTypeMemory},
		CORS:  CORSConfig{AllowedOrigins: []string{"http://localhost:*"}},
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(c *Config)
		expectErr string
	}{
		{"Valid", func(c *Config) {}, ""},
		{"PortTooHigh", func(c *Config) { c.Server.Port = 70000 }, "PORT must be between"},
		{"EmptyServiceName", func(c *Config) { c.Server.ServiceName = "" }, "SERVICE_NAME"},
		{"NoInstance", func(c *Config) { c.Domo.Instance = "" }, "DOMO_INSTANCE"},
		{"BadBaseURL", func(c *Config) { c.Domo.BaseURL = "domo.local" }, "DOMO_BASE_URL"},
		{"ZeroTimeout", func(c *Config) { c.Domo.TimeoutSeconds = 0 }, "DOMO_TIMEOUT_SECONDS"},
		{"BadRecipient", func(c *Config) { c.Notification.Recipient = "jake" }, "NOTIFY_EMAIL"},
		{"MultipleRecipients", func(c *Config) { c.Notification.Recipient = "a@domo.com,b@domo.com" }, ""},
		{"BadAccessURL", func(c *Config) { c.Notification.RepositoryAccessURL = "github.com" }, "REPOSITORY_ACCESS_URL"},
		{"UnknownProvider", func(c *Config) { c.Email.Provider = EmailProviderUnknown }, "EMAIL_PROVIDER"},
		{"SMTPWithoutHost", func(c *Config) {
			c.Email = EmailConfig{Provider: EmailProviderSMTP, SMTPPort: 25, FromName: "x", FromAddress: "x@y.z"}
		}, "EMAIL_SMTP_HOST"},
		{"SMTPHalfCredentials", func(c *Config) {
			c.Email = EmailConfig{Provider: EmailProviderSMTP, SMTPHost: "h", SMTPPort: 25, SMTPUsername: "u", FromName: "x", FromAddress: "x@y.z"}
		}, "EMAIL_SMTP_USERNAME and EMAIL_SMTP_PASSWORD"},
		{"RedisWithoutKey", func(c *Config) {
			c.Store = StoreConfig{Type: StoreTypeRedis, Redis: RedisConfig{Addr: "localhost:6379", DialTimeout: 1, ReadTimeout: 1, WriteTimeout: 1}}
		}, "REDIS_REQUESTS_KEY"},
		{"RedisBadDB", func(c *Config) {
			c.Store = StoreConfig{Type: StoreTypeRedis, Redis: RedisConfig{Addr: "localhost:6379", DB: 16, DialTimeout: 1, ReadTimeout: 1, WriteTimeout: 1, Key: "k"}}
		}, "REDIS_DB"},
		{"SQLBadDriver", func(c *Config) {
			c.Store = StoreConfig{Type: StoreTypeSQL, SQL: SQLConfig{Driver: "oracle", DSN: "x"}}
		}, "SQL_DRIVER"},
		{"SQLNoDSN", func(c *Config) {
			c.Store = StoreConfig{Type: StoreTypeSQL, SQL: SQLConfig{Driver: "postgres"}}
		}, "SQL_DSN"},
		{"CORSDoubleWildcard", func(c *Config) { c.CORS.AllowedOrigins = []string{"http://*.local:*"} }, "at most one wildcard"},
		{"CORSNoScheme", func(c *Config) { c.CORS.AllowedOrigins = []string{"localhost:3000"} }, "must start with"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.expectErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.IsConfigurationError(err))
			assert.Contains(t, err.Error(), tt.expectErr)
		})
	}
}

func TestEnumParsing(t *testing.T) {
	assert.Equal(t, StoreTypeSQL, StoreTypeFromString("SQL"))
	assert.Equal(t, StoreTypeUnknown, StoreTypeFromString("s3"))
	assert.Equal(t, "redis", StoreTypeRedis.String())
	assert.Equal(t, EmailProviderSMTP, EmailProviderTypeFromString("smtp"))
	assert.Equal(t, "unknown", EmailProviderUnknown.String())

	var st StoreType
	require.NoError(t, st.UnmarshalText([]byte("memory")))
	assert.Equal(t, StoreTypeMemory, st)
	text, err := st.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "memory", string(text))
}
