package external

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"toolkitaccess.app/internal/ports"
	"toolkitaccess.app/pkg/errors"
)

const (
	domoTokenHeader     = "X-DOMO-Developer-Token"
	maxErrorBodySnippet = 300
)

// HTTPClient interface for dependency injection in tests
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// DomoEmailSenderConfig locates the Code Engine sendEmail function
type DomoEmailSenderConfig struct {
	BaseURL        string
	AccessToken    string
	PackageID      string
	PackageVersion string
	Timeout        time.Duration
}

// DomoEmailSenderAdapter implements EmailSender via a Domo Code Engine function
type DomoEmailSenderAdapter struct {
	endpoint    string
	accessToken string
	timeout     time.Duration
	httpClient  HTTPClient
	logger      ports.Logger
}

type codeEngineRequest struct {
	InputVariables codeEngineEmail    `json:"inputVariables"`
	Settings       codeEngineSettings `json:"settings"`
}

type codeEngineEmail struct {
	RecipientEmails string `json:"recipientEmails"`
	Subject         string `json:"subject"`
	Body            string `json:"body"`
}

type codeEngineSettings struct {
	GetLogs bool `json:"getLogs"`
}

// NewDomoEmailSenderAdapter creates a Code Engine email sender.
// A nil httpClient gets a client bounded by config.Timeout.
func NewDomoEmailSenderAdapter(config DomoEmailSenderConfig, httpClient HTTPClient, logger ports.Logger) (*DomoEmailSenderAdapter, error) {
	if config.BaseURL == "" {
		return nil, errors.NewConfigurationError("domo base URL cannot be empty", nil)
	}
	if config.PackageID == "" || config.PackageVersion == "" {
		return nil, errors.NewConfigurationError("domo email package id and version are required", nil)
	}
	if config.Timeout <= 0 {
		return nil, errors.NewConfigurationError("domo timeout must be positive", nil)
	}
	if logger == nil {
		return nil, errors.NewConfigurationError("logger is required", nil)
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: config.Timeout}
	}

	return &DomoEmailSenderAdapter{
		endpoint: fmt.Sprintf("%s/api/codeengine/v2/packages/%s/versions/%s/functions/sendEmail",
			config.BaseURL, config.PackageID, config.PackageVersion),
		accessToken: config.AccessToken,
		timeout:     config.Timeout,
		httpClient:  httpClient,
		logger:      logger,
	}, nil
}

// Endpoint returns the sendEmail function URL
func (d *DomoEmailSenderAdapter) Endpoint() string {
	return d.endpoint
}

// SendEmail posts the message to Code Engine. Any non-2xx status is a failure.
func (d *DomoEmailSenderAdapter) SendEmail(ctx context.Context, params ports.EmailParams) error {
	if params.To == "" {
		return errors.NewValidationError("recipient email cannot be empty")
	}
	if params.Subject == "" {
		return errors.NewValidationError("email subject cannot be empty")
	}
	if params.Body == "" {
		return errors.NewValidationError("email body cannot be empty")
	}

	payload, err := json.Marshal(codeEngineRequest{
		InputVariables: codeEngineEmail{
			RecipientEmails: params.To,
			Subject:         params.Subject,
			Body:            params.Body,
		},
		Settings: codeEngineSettings{GetLogs: false},
	})
	if err != nil {
		return errors.NewEmailError("failed to encode code engine payload", err)
	}

	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.endpoint, bytes.NewReader(payload))
	if err != nil {
		return errors.NewEmailError("failed to create code engine request", err)
	}
	req.Header.Set(domoTokenHeader, d.accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.httpClient.Do(req)
	if err != nil {
		d.logger.Warn("Code Engine request failed", ports.F("error", err))
		return errors.NewEmailError("code engine request failed", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			d.logger.Debug("Failed to close code engine response body", ports.F("error", closeErr))
		}
	}()

	if resp.StatusCode >= http.StatusMultipleChoices {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySnippet))
		d.logger.Warn("Code Engine email failed",
			ports.F("status", resp.StatusCode),
			ports.F("body", string(snippet)))
		return errors.NewEmailError(
			fmt.Sprintf("code engine returned status %d: %s", resp.StatusCode, snippet), nil)
	}

	_, _ = io.Copy(io.Discard, resp.Body)

	d.logger.Info("Email sent via Code Engine", ports.F("recipient", params.To))
	return nil
}
