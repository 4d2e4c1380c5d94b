package notify

import (
	"bytes"
	"fmt"
	"html/template"
	"time"
)

// NotificationData is the input to the email template.
type NotificationData struct {
	Message string
	SentAt  time.Time
}

// RenderedMessage is a ready-to-send email.
type RenderedMessage struct {
	Subject string
	Text    string
	HTML    string
}

// HTMLEmailRenderer renders notifications as HTML emails with a plain text fallback.
type HTMLEmailRenderer struct {
	tmpl *template.Template
}

// NewHTMLEmailRenderer creates a renderer with the default email template.
func NewHTMLEmailRenderer() *HTMLEmailRenderer {
	t := template.Must(template.New("email").Parse(emailHTMLTemplate))
	return &HTMLEmailRenderer{tmpl: t}
}

// Render produces an HTML email with plain text alternative.
func (r *HTMLEmailRenderer) Render(data NotificationData) (*RenderedMessage, error) {
	var htmlBuf bytes.Buffer
	if err := r.tmpl.Execute(&htmlBuf, data); err != nil {
		return nil, fmt.Errorf("failed to render HTML template: %w", err)
	}

	return &RenderedMessage{
		Subject: "GMP Alert: " + data.Message,
		Text:    fmt.Sprintf("%s\n\nSent: %s\n", data.Message, data.SentAt.Format("02 Jan 2006 3:04 PM")),
		HTML:    htmlBuf.String(),
	}, nil
}
