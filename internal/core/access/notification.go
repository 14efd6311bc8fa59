package access

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"toolkitaccess.app/internal/ports"
)

var notificationBody = template.Must(template.New("access-request").Parse(`
<h2>New Toolkit Access Request</h2>
<table style="border-collapse:collapse; font-family:Arial,sans-serif;">
    <tr><td style="padding:6px 12px; font-weight:bold;">Name:</td><td style="padding:6px 12px;">{{.Name}}</td></tr>
    <tr><td style="padding:6px 12px; font-weight:bold;">GitHub Username:</td><td style="padding:6px 12px;">{{.Username}}</td></tr>
    <tr><td style="padding:6px 12px; font-weight:bold;">Role:</td><td style="padding:6px 12px;">{{.Role}}</td></tr>
    <tr><td style="padding:6px 12px; font-weight:bold;">Page:</td><td style="padding:6px 12px;">{{.Page}}</td></tr>
</table>
<br>
<p><strong>Action needed:</strong></p>
<ol>
    <li>Add <strong>{{.Username}}</strong> as a collaborator: <a href="{{.AccessURL}}">GitHub Settings</a></li>
    <li>Add to users.json with role: <strong>{{.RoleKey}}</strong></li>
</ol>
<p style="color:#888; font-size:12px;">Sent from the Domo Toolkit onboarding page.</p>
`))

// Notification is the rendered email for one access request
type Notification struct {
	Subject string
	Body    string
}

type notificationView struct {
	Name      string
	Username  string
	Role      string
	Page      string
	RoleKey   string
	AccessURL string
}

// NewNotification renders the subject and HTML body for req
func NewNotification(req *AccessRequest, cfg ports.NotificationConfig) (*Notification, error) {
	view := notificationView{
		Name:      req.Name,
		Username:  req.Username,
		Role:      req.Role,
		Page:      req.Page,
		RoleKey:   strings.ToLower(req.Role),
		AccessURL: cfg.RepositoryAccessURL,
	}

	var body bytes.Buffer
	if err := notificationBody.Execute(&body, view); err != nil {
		return nil, fmt.Errorf("render notification body: %w", err)
	}

	return &Notification{
		Subject: subjectFor(req),
		Body:    body.String(),
	}, nil
}

// subjectFor keeps the subject on a single line
func subjectFor(req *AccessRequest) string {
	subject := fmt.Sprintf("Domo Toolkit Access Request - %s: %s", req.Role, req.Name)
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(subject)
}

// ResultMessage is the human text returned to the submitter
func ResultMessage(emailSent bool, recipientName string) string {
	if emailSent {
		return fmt.Sprintf("Request sent to %s", recipientName)
	}
	return fmt.Sprintf("Request logged. %s will be notified.", recipientName)
}
