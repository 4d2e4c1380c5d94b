package notify

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	gomail "gopkg.in/mail.v2"
)

// EmailConfig holds SMTP configuration for sending emails.
type EmailConfig struct {
	SMTPServer string
	SMTPPort   int
	SMTPUser   string
	SMTPPass   string
	FromEmail  string
	ToEmail    string
}

func (c EmailConfig) Enabled() bool {
	return c.SMTPServer != "" && c.SMTPUser != "" && c.SMTPPass != "" && c.ToEmail != ""
}

type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// EmailSender delivers messages via SMTP.
type EmailSender struct {
	cfg      EmailConfig
	renderer *HTMLEmailRenderer
	logger   *slog.Logger
	dialer   dialer
}

// NewEmailSender creates a sender with the given SMTP configuration.
func NewEmailSender(cfg EmailConfig, logger *slog.Logger) *EmailSender {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.FromEmail == "" {
		cfg.FromEmail = cfg.SMTPUser
	}

	d := gomail.NewDialer(cfg.SMTPServer, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass)
	d.Timeout = 10 * time.Second

	return &EmailSender{
		cfg:      cfg,
		renderer: NewHTMLEmailRenderer(),
		logger:   logger,
		dialer:   d,
	}
}

// Send delivers an email with HTML body and plain text fallback.
func (s *EmailSender) Send(_ context.Context, message string) error {
	if !s.cfg.Enabled() {
		s.logger.Error("smtp settings missing; email not sent", "message", message)
		return nil
	}

	msg, err := s.renderer.Render(NotificationData{Message: message, SentAt: time.Now()})
	if err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.FromEmail)
	m.SetHeader("To", s.cfg.ToEmail)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Text)
	m.AddAlternative("text/html", msg.HTML)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send email to %s (subject: %s): %w", s.cfg.ToEmail, msg.Subject, err)
	}

	s.logger.Debug("email sent", "subject", msg.Subject)
	return nil
}
