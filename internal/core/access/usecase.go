package access

import (
	"context"
	"fmt"
	"time"

	"toolkitaccess.app/internal/ports"
	"toolkitaccess.app/pkg/errors"
)

type UseCase struct {
	requestLog  ports.RequestLog
	emailSender ports.EmailSender
	config      ports.ConfigProvider
	logger      ports.Logger
	metrics     ports.AccessMetrics
}

type UseCaseDependencies struct {
	RequestLog  ports.RequestLog
	EmailSender ports.EmailSender
	Config      ports.ConfigProvider
	Logger      ports.Logger
	Metrics     ports.AccessMetrics
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.RequestLog == nil {
		return nil, errors.NewValidationError("request log is required")
	}
	if deps.EmailSender == nil {
		return nil, errors.NewValidationError("email sender is required")
	}
	if deps.Config == nil {
		return nil, errors.NewValidationError("config is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if deps.Metrics == nil {
		return nil, errors.NewValidationError("metrics is required")
	}

	return &UseCase{
		requestLog:  deps.RequestLog,
		emailSender: deps.EmailSender,
		config:      deps.Config,
		logger:      deps.Logger,
		metrics:     deps.Metrics,
	}, nil
}

// Submit records a valid access request and notifies the configured
// recipient. Email delivery is best-effort: its outcome only changes the
// message and EmailSent, never Success.
func (uc *UseCase) Submit(ctx context.Context, params SubmitParams) (*SubmitResult, error) {
	req, err := NewAccessRequest(params.Name, params.ResolvedUsername(), params.Role, params.Page)
	if err != nil {
		uc.metrics.RecordSubmission(ports.OutcomeRejected)
		return nil, err
	}

	uc.logger.Info("ACCESS REQUEST",
		ports.F("name", req.Name),
		ports.F("username", req.Username),
		ports.F("role", req.Role))

	if err := uc.requestLog.Append(ctx, req.ToData()); err != nil {
		uc.metrics.RecordSubmission(ports.OutcomeFailed)
		return nil, fmt.Errorf("append access request: %w", err)
	}
	uc.metrics.RecordSubmission(ports.OutcomeAccepted)

	notifyCfg := uc.config.GetNotificationConfig()
	emailSent := uc.notify(ctx, req, notifyCfg)

	return &SubmitResult{
		Success:   true,
		Message:   ResultMessage(emailSent, notifyCfg.RecipientName),
		EmailSent: emailSent,
	}, nil
}

// ListRequests returns every logged request, oldest first
func (uc *UseCase) ListRequests(ctx context.Context) (*RequestList, error) {
	data, err := uc.requestLog.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list access requests: %w", err)
	}

	requests := make([]AccessRequest, 0, len(data))
	for _, d := range data {
		requests = append(requests, FromData(d))
	}

	return &RequestList{
		Requests: requests,
		Count:    len(requests),
	}, nil
}

func (uc *UseCase) notify(ctx context.Context, req *AccessRequest, cfg ports.NotificationConfig) bool {
	notification, err := NewNotification(req, cfg)
	if err != nil {
		uc.logger.Warn("Email failed", ports.F("error", err))
		return false
	}

	// A caller that hangs up must not abort a notification for a request
	// that is already logged; the sender enforces its own timeout.
	sendCtx := context.WithoutCancel(ctx)

	start := time.Now()
	err = uc.emailSender.SendEmail(sendCtx, ports.EmailParams{
		To:      cfg.Recipient,
		Subject: notification.Subject,
		Body:    notification.Body,
		IsHTML:  true,
	})
	uc.metrics.RecordEmail(err == nil, time.Since(start))

	if err != nil {
		uc.logger.Warn("Email failed",
			ports.F("error", err),
			ports.F("recipient", cfg.Recipient),
			ports.F("username", req.Username))
		return false
	}

	uc.logger.Debug("Access request notification sent",
		ports.F("recipient", cfg.Recipient),
		ports.F("username", req.Username))
	return true
}
