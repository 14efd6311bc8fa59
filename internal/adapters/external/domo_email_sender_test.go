package external

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"toolkitaccess.app/internal/adapters/infrastructure"
	"toolkitaccess.app/internal/ports"
	"toolkitaccess.app/pkg/errors"
)

func newTestLogger(buf *bytes.Buffer) ports.Logger {
	var w io.Writer = io.Discard
	if buf != nil {
		w = buf
	}
	return infrastructure.NewSlogLoggerAdapter(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})))
}

func testDomoConfig(baseURL string) DomoEmailSenderConfig {
	return DomoEmailSenderConfig{
		BaseURL:        baseURL,
		AccessToken:    "dev-token",
		PackageID:      "03ba6971-98d0-4654-9bfd-aa897816df33",
		PackageVersion: "2.1.13",
		Timeout:        5 * time.Second,
	}
}

var testEmail = ports.EmailParams{
	To:      "jake.heaps@domo.com",
	Subject: "Domo Toolkit Access Request - Analyst: Ann Lee",
	Body:    "<h2>New Toolkit Access Request</h2>",
	IsHTML:  true,
}

func TestNewDomoEmailSenderAdapter_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *DomoEmailSenderConfig)
	}{
		{"MissingBaseURL", func(c *DomoEmailSenderConfig) { c.BaseURL = "" }},
		{"MissingPackageID", func(c *DomoEmailSenderConfig) { c.PackageID = "" }},
		{"MissingPackageVersion", func(c *DomoEmailSenderConfig) { c.PackageVersion = "" }},
		{"ZeroTimeout", func(c *DomoEmailSenderConfig) { c.Timeout = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testDomoConfig("https://domo.domo.com")
			tt.mutate(&cfg)

			sender, err := NewDomoEmailSenderAdapter(cfg, nil, newTestLogger(nil))

			assert.Nil(t, sender)
			assert.True(t, errors.IsConfigurationError(err))
		})
	}
}

func TestDomoEmailSenderAdapter_Endpoint(t *testing.T) {
	sender, err := NewDomoEmailSenderAdapter(testDomoConfig("https://domo.domo.com"), nil, newTestLogger(nil))
	require.NoError(t, err)

	assert.Equal(t,
		"https://domo.domo.com/api/codeengine/v2/packages/03ba6971-98d0-4654-9bfd-aa897816df33/versions/2.1.13/functions/sendEmail",
		sender.Endpoint())
}

func TestDomoEmailSenderAdapter_SendEmail_Success(t *testing.T) {
	var (
		gotPath    string
		gotToken   string
		gotType    string
		gotPayload map[string]any
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotToken = r.Header.Get("X-DOMO-Developer-Token")
		gotType = r.Header.Get("Content-Type")
		_ = json.NewDecoder(r.Body).Decode(&gotPayload)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}))
	defer server.Close()

	var logs bytes.Buffer
	sender, err := NewDomoEmailSenderAdapter(testDomoConfig(server.URL), nil, newTestLogger(&logs))
	require.NoError(t, err)

	err = sender.SendEmail(context.Background(), testEmail)

	require.NoError(t, err)
	assert.Equal(t, "/api/codeengine/v2/packages/03ba6971-98d0-4654-9bfd-aa897816df33/versions/2.1.13/functions/sendEmail", gotPath)
	assert.Equal(t, "dev-token", gotToken)
	assert.Equal(t, "application/json", gotType)
	assert.Equal(t, map[string]any{
		"inputVariables": map[string]any{
			"recipientEmails": "jake.heaps@domo.com",
			"subject":         "Domo Toolkit Access Request - Analyst: Ann Lee",
			"body":            "<h2>New Toolkit Access Request</h2>",
		},
		"settings": map[string]any{"getLogs": false},
	}, gotPayload)
	assert.Contains(t, logs.String(), "Email sent via Code Engine")
}

func TestDomoEmailSenderAdapter_SendEmail_Non2xx(t *testing.T) {
	longBody := strings.Repeat("x", 1000)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(longBody))
	}))
	defer server.Close()

	var logs bytes.Buffer
	sender, err := NewDomoEmailSenderAdapter(testDomoConfig(server.URL), nil, newTestLogger(&logs))
	require.NoError(t, err)

	err = sender.SendEmail(context.Background(), testEmail)

	require.Error(t, err)
	assert.True(t, errors.IsEmailError(err))
	assert.Contains(t, err.Error(), "status 403")
	assert.Contains(t, err.Error(), strings.Repeat("x", 300))
	assert.NotContains(t, err.Error(), strings.Repeat("x", 301))
	assert.Contains(t, logs.String(), "Code Engine email failed")
}

func TestDomoEmailSenderAdapter_SendEmail_Redirect3xxIsFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotModified)
	}))
	defer server.Close()

	sender, err := NewDomoEmailSenderAdapter(testDomoConfig(server.URL), nil, newTestLogger(nil))
	require.NoError(t, err)

	err = sender.SendEmail(context.Background(), testEmail)

	assert.True(t, errors.IsEmailError(err))
	assert.Contains(t, err.Error(), "status 304")
}

func TestDomoEmailSenderAdapter_SendEmail_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	cfg := testDomoConfig(server.URL)
	cfg.Timeout = 50 * time.Millisecond
	sender, err := NewDomoEmailSenderAdapter(cfg, nil, newTestLogger(nil))
	require.NoError(t, err)

	start := time.Now()
	err = sender.SendEmail(context.Background(), testEmail)

	require.Error(t, err)
	assert.True(t, errors.IsEmailError(err))
	assert.Less(t, time.Since(start), 2*time.Second)
}

type failingHTTPClient struct{}

func (failingHTTPClient) Do(*http.Request) (*http.Response, error) {
	return nil, fmt.Errorf("dial tcp: connection refused")
}

func TestDomoEmailSenderAdapter_SendEmail_TransportError(t *testing.T) {
	sender, err := NewDomoEmailSenderAdapter(testDomoConfig("https://domo.domo.com"), failingHTTPClient{}, newTestLogger(nil))
	require.NoError(t, err)

	err = sender.SendEmail(context.Background(), testEmail)

	require.Error(t, err)
	assert.True(t, errors.IsEmailError(err))
	assert.Contains(t, err.Error(), "connection refused")
}

func TestDomoEmailSenderAdapter_SendEmail_InvalidParams(t *testing.T) {
	sender, err := NewDomoEmailSenderAdapter(testDomoConfig("https://domo.domo.com"), failingHTTPClient{}, newTestLogger(nil))
	require.NoError(t, err)

	tests := []struct {
		name   string
		params ports.EmailParams
	}{
		{"MissingTo", ports.EmailParams{Subject: "s", Body: "b"}},
		{"MissingSubject", ports.EmailParams{To: "a@b.com", Body: "b"}},
		{"MissingBody", ports.EmailParams{To: "a@b.com", Subject: "s"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := sender.SendEmail(context.Background(), tt.params)
			assert.True(t, errors.IsValidationError(err))
		})
	}
}
