package external

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"toolkitaccess.app/internal/ports"
	"toolkitaccess.app/pkg/errors"
)

const defaultSMTPTimeout = 30 * time.Second

// SMTPEmailSenderAdapter implements EmailSender using SMTP
type SMTPEmailSenderAdapter struct {
	host     string
	port     int
	username string
	password string
	fromName string
	fromAddr string
	timeout  time.Duration
}

// SMTPEmailSenderConfig represents SMTP configuration
type SMTPEmailSenderConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	FromName string
	FromAddr string
	Timeout  time.Duration
}

// NewSMTPEmailSenderAdapter creates a new SMTP email sender
func NewSMTPEmailSenderAdapter(config SMTPEmailSenderConfig) *SMTPEmailSenderAdapter {
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = defaultSMTPTimeout
	}

	return &SMTPEmailSenderAdapter{
		host:     config.Host,
		port:     config.Port,
		username: config.Username,
		password: config.Password,
		fromName: config.FromName,
		fromAddr: config.FromAddr,
		timeout:  timeout,
	}
}

// Endpoint returns the host:port the sender dials
func (p *SMTPEmailSenderAdapter) Endpoint() string {
	return net.JoinHostPort(p.host, strconv.Itoa(p.port))
}

// SendEmail delivers the message with STARTTLS when offered and auth when configured.
// params.To may hold several comma-separated recipients.
func (p *SMTPEmailSenderAdapter) SendEmail(ctx context.Context, params ports.EmailParams) error {
	if params.To == "" {
		return errors.NewValidationError("recipient email cannot be empty")
	}
	if params.Subject == "" {
		return errors.NewValidationError("email subject cannot be empty")
	}
	if params.Body == "" {
		return errors.NewValidationError("email body cannot be empty")
	}

	recipients := splitRecipients(params.To)
	if len(recipients) == 0 {
		return errors.NewValidationError("recipient email cannot be empty")
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	dialer := &net.Dialer{}
	conn, err := dialer.DialContext(ctx, "tcp", p.Endpoint())
	if err != nil {
		return errors.NewEmailError("failed to connect to SMTP server", err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	client, err := smtp.NewClient(conn, p.host)
	if err != nil {
		_ = conn.Close()
		return errors.NewEmailError("failed to connect to SMTP server", err)
	}
	defer func() {
		_ = client.Close()
	}()

	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(&tls.Config{ServerName: p.host}); err != nil {
			return errors.NewEmailError("failed to establish secure TLS connection", err)
		}
	}

	if p.username != "" && p.password != "" {
		auth := smtp.PlainAuth("", p.username, p.password, p.host)
		if err := client.Auth(auth); err != nil {
			return errors.NewEmailError("failed to authenticate", err)
		}
	}

	if err := client.Mail(p.fromAddr); err != nil {
		return errors.NewEmailError("failed to set sender", err)
	}
	for _, rcpt := range recipients {
		if err := client.Rcpt(rcpt); err != nil {
			return errors.NewEmailError(fmt.Sprintf("failed to set recipient %s", rcpt), err)
		}
	}

	writer, err := client.Data()
	if err != nil {
		return errors.NewEmailError("failed to get data writer", err)
	}

	from := fmt.Sprintf("%s <%s>", p.fromName, p.fromAddr)
	msg := p.buildMessage(from, strings.Join(recipients, ", "), params.Subject, params.Body, params.IsHTML)
	if _, err := writer.Write([]byte(msg)); err != nil {
		_ = writer.Close()
		return errors.NewEmailError("failed to write message", err)
	}
	// the server accepts the message only once the data writer is closed
	if err := writer.Close(); err != nil {
		return errors.NewEmailError("server rejected message", err)
	}

	if err := client.Quit(); err != nil {
		return errors.NewEmailError("failed to close SMTP session", err)
	}
	return nil
}

// ValidateConfiguration validates the email sender configuration
func (p *SMTPEmailSenderAdapter) ValidateConfiguration() error {
	if p.host == "" {
		return errors.NewConfigurationError("SMTP host cannot be empty", nil)
	}
	if p.port < 1 || p.port > 65535 {
		return errors.NewConfigurationError("SMTP port must be between 1 and 65535", nil)
	}
	if p.fromAddr == "" {
		return errors.NewConfigurationError("from address cannot be empty", nil)
	}
	if p.fromName == "" {
		return errors.NewConfigurationError("from name cannot be empty", nil)
	}
	return nil
}

// buildMessage constructs the email message. Header values are kept on one line.
func (p *SMTPEmailSenderAdapter) buildMessage(from, to, subject, body string, isHTML bool) string {
	contentType := "text/plain"
	if isHTML {
		contentType = "text/html"
	}

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", headerValue(from))
	fmt.Fprintf(&msg, "To: %s\r\n", headerValue(to))
	fmt.Fprintf(&msg, "Subject: %s\r\n", headerValue(subject))
	msg.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&msg, "Content-Type: %s; charset=UTF-8\r\n", contentType)
	msg.WriteString("\r\n")
	msg.WriteString(body)

	return msg.String()
}

func headerValue(s string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(s)
}

func splitRecipients(to string) []string {
	var out []string
	for _, addr := range strings.Split(to, ",") {
		if addr = strings.TrimSpace(addr); addr != "" {
			out = append(out, addr)
		}
	}
	return out
}
