// Package email mirrors in-app notifications to SMTP. Delivery failures are
// logged and swallowed by callers; email is a best-effort channel and never
// blocks the workflow transaction that produced the notification.
package email

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"accountsforge/internal/shared/config"
)

type SMTPEmailService struct {
	config config.EmailConfig
	dialer *gomail.Dialer
}

func NewSMTPEmailService(cfg config.EmailConfig) *SMTPEmailService {
	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword)

	return &SMTPEmailService{
		config: cfg,
		dialer: dialer,
	}
}

// Enabled reports whether delivery is configured on.
func (s *SMTPEmailService) Enabled() bool {
	return s.config.Enabled
}

// SendNotificationEmail delivers a notification mirror. htmlBody must already
// be sanitized; plainBody is the text/plain alternative.
func (s *SMTPEmailService) SendNotificationEmail(to, subject, htmlBody, plainBody string) error {
	if !s.config.Enabled {
		return nil
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.config.FromAddress, s.config.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
