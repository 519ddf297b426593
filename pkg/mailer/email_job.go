package mailer

import (
	"errors"
	"fmt"
	"strings"

	mailtpl "github.com/oksasatya/go-ddd-user-management/pkg/mailer/templates"
)

// EmailJob is the JSON payload put on the RabbitMQ queue for sending email.
// Html is optional; Text is recommended as fallback.
// You can also use a template by specifying Template and Data.
type EmailJob struct {
	To       string         `json:"to"`
	Subject  string         `json:"subject,omitempty"`
	Text     string         `json:"text,omitempty"`
	HTML     string         `json:"html,omitempty"`
	Template string         `json:"template,omitempty"` // welcome, profile_updated, account_deleted
	Data     map[string]any `json:"data,omitempty"`
}

// Message is a rendered email ready to hand to a Sender.
type Message struct {
	To      string
	Subject string
	Text    string
	HTML    string
}

var ErrNoRecipient = errors.New("email job has no recipient")

// Compose renders the job into a Message. Jobs naming a template are
// rendered from it; the rest are sent as given.
func Compose(job EmailJob) (Message, error) {
	to := strings.TrimSpace(job.To)
	if to == "" {
		return Message{}, ErrNoRecipient
	}
	msg := Message{To: to, Subject: job.Subject, Text: job.Text, HTML: job.HTML}
	if job.Template == "" {
		return msg, nil
	}
	if !mailtpl.Known(job.Template) {
		return Message{}, fmt.Errorf("unknown template %q", job.Template)
	}

	data := job.Data
	if data == nil {
		data = map[string]any{}
	}
	if v, ok := data["Email"]; !ok || fmt.Sprint(v) == "" {
		data["Email"] = to
	}
	s, t, h, err := mailtpl.Render(strings.ToLower(job.Template), data)
	if err != nil {
		return Message{}, err
	}
	msg.Subject, msg.Text, msg.HTML = strings.TrimSpace(s), t, h
	return msg, nil
}
