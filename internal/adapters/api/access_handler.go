package api

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"toolkitaccess.app/internal/core/access"
	"toolkitaccess.app/internal/ports"
	"toolkitaccess.app/pkg/errors"
)

const (
	maxRequestBodyBytes = 64 << 10

	msgNoData        = "No data provided"
	msgInvalidFormat = "Invalid request format"
)

// AccessRequestBody is the JSON payload of POST /api/request-access.
// identifier is accepted as an alias of username.
type AccessRequestBody struct {
	Name       string `json:"name"`
	Username   string `json:"username"`
	Identifier string `json:"identifier"`
	Role       string `json:"role"`
	Page       string `json:"page"`
}

// SubmitResponse represents the response to an accepted access request
type SubmitResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	EmailSent bool   `json:"email_sent"`
}

// AccessRequestResponse is one entry of the request listing
type AccessRequestResponse struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Page     string `json:"page"`
}

// RequestListResponse represents the response of GET /api/requests
type RequestListResponse struct {
	Requests []AccessRequestResponse `json:"requests"`
	Count    int                     `json:"count"`
}

// HealthResponse represents the liveness response
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// StatusResponse represents the component health response
type StatusResponse struct {
	Status     string                        `json:"status"`
	Service    string                        `json:"service"`
	Components map[string]ports.HealthStatus `json:"components"`
}

// requestAccess handles POST /api/request-access requests
func (s *HTTPServerAdapter) requestAccess(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxRequestBodyBytes)

	raw, err := c.GetRawData()
	if err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{Error: "Request body too large"})
			return
		}
		s.handleError(c, errors.NewValidationError(msgInvalidFormat))
		return
	}

	body, err := decodeAccessRequest(raw)
	if err != nil {
		s.logger.Debug("Rejected access request body", ports.F("error", err))
		s.handleError(c, err)
		return
	}

	result, err := s.accessUseCase.Submit(c.Request.Context(), access.SubmitParams{
		Name:       body.Name,
		Username:   body.Username,
		Identifier: body.Identifier,
		Role:       body.Role,
		Page:       body.Page,
	})
	if err != nil {
		if !errors.IsValidationError(err) {
			s.logger.Error("Access request failed", ports.F("error", err))
		}
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, SubmitResponse{
		Success:   result.Success,
		Message:   result.Message,
		EmailSent: result.EmailSent,
	})
}

// decodeAccessRequest treats an empty body, null and {} as missing data
func decodeAccessRequest(raw []byte) (*AccessRequestBody, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, errors.NewValidationError(msgNoData)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return nil, errors.Wrap(errors.ValidationError, msgInvalidFormat, err)
	}
	if len(fields) == 0 {
		return nil, errors.NewValidationError(msgNoData)
	}

	var body AccessRequestBody
	if err := json.Unmarshal(trimmed, &body); err != nil {
		return nil, errors.Wrap(errors.ValidationError, msgInvalidFormat, err)
	}
	return &body, nil
}

// listRequests handles GET /api/requests requests
func (s *HTTPServerAdapter) listRequests(c *gin.Context) {
	list, err := s.accessUseCase.ListRequests(c.Request.Context())
	if err != nil {
		s.logger.Error("Listing access requests failed", ports.F("error", err))
		s.handleError(c, err)
		return
	}

	resp := RequestListResponse{
		Requests: make([]AccessRequestResponse, 0, len(list.Requests)),
		Count:    list.Count,
	}
	for _, r := range list.Requests {
		resp.Requests = append(resp.Requests, AccessRequestResponse{
			Name:     r.Name,
			Username: r.Username,
			Role:     r.Role,
			Page:     r.Page,
		})
	}

	c.JSON(http.StatusOK, resp)
}

// health handles GET /api/health requests
func (s *HTTPServerAdapter) health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: ports.StatusHealthy, Service: s.config.ServiceName})
}

// status handles GET /api/status requests
func (s *HTTPServerAdapter) status(c *gin.Context) {
	components := s.healthChecker.CheckAll(c.Request.Context())

	overall := ports.StatusHealthy
	for _, component := range components {
		if component.Status != ports.StatusHealthy {
			overall = ports.StatusUnhealthy
			break
		}
	}

	c.JSON(http.StatusOK, StatusResponse{
		Status:     overall,
		Service:    s.config.ServiceName,
		Components: components,
	})
}
