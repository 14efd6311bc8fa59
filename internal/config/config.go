package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"toolkitaccess.app/pkg/errors"
	"toolkitaccess.app/pkg/validation"
)

const (
	maxRedisDB         = 15
	maxPortNumber      = 65535
	maxTimeoutSeconds  = 300
	maxRedisTTLMinutes = 525600
)

// Config represents the application configuration structure
type Config struct {
	Server       ServerConfig       `split_words:"true"`
	Domo         DomoConfig         `split_words:"true"`
	Notification NotificationConfig `split_words:"true"`
	Email        EmailConfig        `split_words:"true"`
	Store        StoreConfig        `split_words:"true"`
	CORS         CORSConfig         `split_words:"true"`
	Log          LogConfig          `split_words:"true"`
}

type ServerConfig struct {
	Port        int    `envconfig:"PORT" default:"8080"`
	ServiceName string `envconfig:"SERVICE_NAME" default:"toolkit-access-api"`
}

// DomoConfig locates the Code Engine sendEmail function
type DomoConfig struct {
	Instance       string `envconfig:"DOMO_INSTANCE" default:"domo.domo.com"`
	AccessToken    string `envconfig:"DOMO_ACCESS_TOKEN"`
	BaseURL        string `envconfig:"DOMO_BASE_URL"`
	PackageID      string `envconfig:"DOMO_EMAIL_PACKAGE_ID" default:"03ba6971-98d0-4654-9bfd-aa897816df33"`
	PackageVersion string `envconfig:"DOMO_EMAIL_PACKAGE_VERSION" default:"2.1.13"`
	TimeoutSeconds int    `envconfig:"DOMO_TIMEOUT_SECONDS" default:"30"`
}

// EndpointBaseURL returns the explicit base URL or one derived from the instance host
func (d DomoConfig) EndpointBaseURL() string {
	if d.BaseURL != "" {
		return strings.TrimRight(d.BaseURL, "/")
	}
	return "https://" + d.Instance
}

type NotificationConfig struct {
	Recipient           string `envconfig:"NOTIFY_EMAIL" default:"jake.heaps@domo.com"`
	RecipientName       string `envconfig:"NOTIFY_NAME" default:"Jake"`
	RepositoryAccessURL string `envconfig:"REPOSITORY_ACCESS_URL" default:"https://github.com/jakeheaps-coder/domo-toolkit/settings/access"`
}

// EmailProviderType selects the Email Sender implementation
type EmailProviderType int

const (
	EmailProviderUnknown EmailProviderType = iota
	EmailProviderDomo
	EmailProviderSMTP
)

// String returns the string representation of the email provider type
func (e EmailProviderType) String() string {
	switch e {
	case EmailProviderDomo:
		return "domo"
	case EmailProviderSMTP:
		return "smtp"
	default:
		return "unknown"
	}
}

// IsValid checks if the email provider type is valid
func (e EmailProviderType) IsValid() bool {
	return e == EmailProviderDomo || e == EmailProviderSMTP
}

// EmailProviderTypeFromString converts string to EmailProviderType enum
func EmailProviderTypeFromString(s string) EmailProviderType {
	switch strings.ToLower(s) {
	case "domo":
		return EmailProviderDomo
	case "smtp":
		return EmailProviderSMTP
	default:
		return EmailProviderUnknown
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for envconfig
func (e *EmailProviderType) UnmarshalText(text []byte) error {
	*e = EmailProviderTypeFromString(string(text))
	return nil
}

// MarshalText implements encoding.TextMarshaler for envconfig
func (e EmailProviderType) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

type EmailConfig struct {
	Provider     EmailProviderType `envconfig:"EMAIL_PROVIDER" default:"domo"`
	SMTPHost     string            `envconfig:"EMAIL_SMTP_HOST" default:"smtp.gmail.com"`
	SMTPPort     int               `envconfig:"EMAIL_SMTP_PORT" default:"587"`
	SMTPUsername string            `envconfig:"EMAIL_SMTP_USERNAME"`
	SMTPPassword string            `envconfig:"EMAIL_SMTP_PASSWORD"`
	FromName     string            `envconfig:"EMAIL_FROM_NAME" default:"Domo Toolkit"`
	FromAddress  string            `envconfig:"EMAIL_FROM_ADDRESS" default:"no-reply@domo-toolkit.app"`
}

// StoreType represents the backend of the request log
type StoreType int

const (
	StoreTypeUnknown StoreType = iota
	StoreTypeMemory
	StoreTypeRedis
	StoreTypeSQL
)

// String returns the string representation of store type
func (s StoreType) String() string {
	switch s {
	case StoreTypeMemory:
		return "memory"
	case StoreTypeRedis:
		return "redis"
	case StoreTypeSQL:
		return "sql"
	default:
		return "unknown"
	}
}

// IsValid checks if the store type is valid
func (s StoreType) IsValid() bool {
	return s == StoreTypeMemory || s == StoreTypeRedis || s == StoreTypeSQL
}

// StoreTypeFromString converts string to StoreType enum
func StoreTypeFromString(s string) StoreType {
	switch strings.ToLower(s) {
	case "memory":
		return StoreTypeMemory
	case "redis":
		return StoreTypeRedis
	case "sql":
		return StoreTypeSQL
	default:
		return StoreTypeUnknown
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for envconfig
func (s *StoreType) UnmarshalText(text []byte) error {
	*s = StoreTypeFromString(string(text))
	return nil
}

// MarshalText implements encoding.TextMarshaler for envconfig
func (s StoreType) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

type StoreConfig struct {
	Type  StoreType   `envconfig:"STORE_TYPE" default:"memory"`
	Redis RedisConfig `split_words:"true"`
	SQL   SQLConfig   `split_words:"true"`
}

type RedisConfig struct {
	Addr         string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password     string `envconfig:"REDIS_PASSWORD" default:""`
	DB           int    `envconfig:"REDIS_DB" default:"0"`
	DialTimeout  int    `envconfig:"REDIS_DIAL_TIMEOUT" default:"5"`
	ReadTimeout  int    `envconfig:"REDIS_READ_TIMEOUT" default:"3"`
	WriteTimeout int    `envconfig:"REDIS_WRITE_TIMEOUT" default:"3"`
	Key          string `envconfig:"REDIS_REQUESTS_KEY" default:"toolkit:access_requests"`
	TTLMinutes   int    `envconfig:"REDIS_REQUESTS_TTL_MINUTES" default:"0"`
}

type SQLConfig struct {
	Driver string `envconfig:"SQL_DRIVER" default:"sqlite"`
	DSN    string `envconfig:"SQL_DSN" default:"file::memory:?cache=shared"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"https://jakeheaps-coder.github.io,http://localhost:*,http://127.0.0.1:*"`
}

type LogConfig struct {
	Level    string `envconfig:"LOG_LEVEL" default:"info"`
	FilePath string `envconfig:"LOG_FILE_PATH"`
}

func LoadConfig() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewConfigurationError("error processing config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Domo.Validate(); err != nil {
		return err
	}
	if err := c.Notification.Validate(); err != nil {
		return err
	}
	if err := c.Email.Validate(); err != nil {
		return err
	}
	if err := c.Store.Validate(); err != nil {
		return err
	}
	if err := c.CORS.Validate(); err != nil {
		return err
	}
	return nil
}

func (s *ServerConfig) Validate() error {
	if s.Port < 1 || s.Port > maxPortNumber {
		return errors.NewConfigurationError("PORT must be between 1 and 65535", nil)
	}
	if s.ServiceName == "" {
		return errors.NewConfigurationError("SERVICE_NAME cannot be empty", nil)
	}
	return nil
}

func (d *DomoConfig) Validate() error {
	if d.Instance == "" && d.BaseURL == "" {
		return errors.NewConfigurationError("DOMO_INSTANCE cannot be empty", nil)
	}
	if d.BaseURL != "" && !validation.IsHTTPURL(d.BaseURL) {
		return errors.NewConfigurationError("DOMO_BASE_URL must start with http:// or https://", nil)
	}
	if d.PackageID == "" {
		return errors.NewConfigurationError("DOMO_EMAIL_PACKAGE_ID cannot be empty", nil)
	}
	if d.PackageVersion == "" {
		return errors.NewConfigurationError("DOMO_EMAIL_PACKAGE_VERSION cannot be empty", nil)
	}
	if d.TimeoutSeconds < 1 || d.TimeoutSeconds > maxTimeoutSeconds {
		return errors.NewConfigurationError("DOMO_TIMEOUT_SECONDS must be between 1 and 300", nil)
	}
	return nil
}

func (n *NotificationConfig) Validate() error {
	if n.Recipient == "" {
		return errors.NewConfigurationError("NOTIFY_EMAIL cannot be empty", nil)
	}
	for _, addr := range strings.Split(n.Recipient, ",") {
		if !validation.IsValidEmail(addr) {
			return errors.NewConfigurationError(fmt.Sprintf("NOTIFY_EMAIL contains an invalid address: %q", addr), nil)
		}
	}
	if n.RecipientName == "" {
		return errors.NewConfigurationError("NOTIFY_NAME cannot be empty", nil)
	}
	if !validation.IsHTTPURL(n.RepositoryAccessURL) {
		return errors.NewConfigurationError("REPOSITORY_ACCESS_URL must start with http:// or https://", nil)
	}
	return nil
}

func (e *EmailConfig) Validate() error {
	if !e.Provider.IsValid() {
		return errors.NewConfigurationError("EMAIL_PROVIDER must be one of: domo, smtp", nil)
	}
	if e.Provider != EmailProviderSMTP {
		return nil
	}
	if e.SMTPHost == "" {
		return errors.NewConfigurationError("EMAIL_SMTP_HOST cannot be empty", nil)
	}
	if e.SMTPPort < 1 || e.SMTPPort > maxPortNumber {
		return errors.NewConfigurationError("EMAIL_SMTP_PORT must be between 1 and 65535", nil)
	}
	if (e.SMTPUsername == "") != (e.SMTPPassword == "") {
		return errors.NewConfigurationError("EMAIL_SMTP_USERNAME and EMAIL_SMTP_PASSWORD must both be provided or both be empty", nil)
	}
	if e.FromName == "" {
		return errors.NewConfigurationError("EMAIL_FROM_NAME cannot be empty", nil)
	}
	if !strings.Contains(e.FromAddress, "@") {
		return errors.NewConfigurationError("EMAIL_FROM_ADDRESS must be a valid email address", nil)
	}
	return nil
}

func (s *StoreConfig) Validate() error {
	if !s.Type.IsValid() {
		return errors.NewConfigurationError("STORE_TYPE must be one of: memory, redis, sql", nil)
	}

	switch s.Type {
	case StoreTypeRedis:
		return s.Redis.Validate()
	case StoreTypeSQL:
		return s.SQL.Validate()
	}

	return nil
}

func (r *RedisConfig) Validate() error {
	if r.Addr == "" {
		return errors.NewConfigurationError("REDIS_ADDR cannot be empty when using the redis store", nil)
	}
	if r.DB < 0 || r.DB > maxRedisDB {
		return errors.NewConfigurationError("REDIS_DB must be between 0 and 15", nil)
	}
	if r.DialTimeout < 1 {
		return errors.NewConfigurationError("REDIS_DIAL_TIMEOUT must be at least 1 second", nil)
	}
	if r.ReadTimeout < 1 {
		return errors.NewConfigurationError("REDIS_READ_TIMEOUT must be at least 1 second", nil)
	}
	if r.WriteTimeout < 1 {
		return errors.NewConfigurationError("REDIS_WRITE_TIMEOUT must be at least 1 second", nil)
	}
	if r.Key == "" {
		return errors.NewConfigurationError("REDIS_REQUESTS_KEY cannot be empty", nil)
	}
	if r.TTLMinutes < 0 || r.TTLMinutes > maxRedisTTLMinutes {
		return errors.NewConfigurationError("REDIS_REQUESTS_TTL_MINUTES must be between 0 and 525600", nil)
	}
	return nil
}

func (s *SQLConfig) Validate() error {
	validDrivers := []string{"sqlite", "postgres"}
	valid := false
	for _, d := range validDrivers {
		if s.Driver == d {
			valid = true
			break
		}
	}
	if !valid {
		return errors.NewConfigurationError(
			fmt.Sprintf("SQL_DRIVER must be one of: %s", strings.Join(validDrivers, ", ")), nil)
	}
	if s.DSN == "" {
		return errors.NewConfigurationError("SQL_DSN cannot be empty when using the sql store", nil)
	}
	return nil
}

func (c *CORSConfig) Validate() error {
	for _, origin := range c.AllowedOrigins {
		if strings.Count(origin, "*") > 1 {
			return errors.NewConfigurationError(fmt.Sprintf("CORS origin %q may contain at most one wildcard", origin), nil)
		}
		if !validation.IsHTTPURL(origin) {
			return errors.NewConfigurationError(fmt.Sprintf("CORS origin %q must start with http:// or https://", origin), nil)
		}
	}
	return nil
}
