package ports

import "context"

// EmailParams represents parameters for sending emails
type EmailParams struct {
	To      string
	Subject string
	Body    string
	IsHTML  bool
}

// EmailSender delivers a notification email. A nil error means the message was accepted.
type EmailSender interface {
	SendEmail(ctx context.Context, params EmailParams) error
}
