// Package mailer sends transactional mail over SMTP. Delivery is
// fire-and-forget at-most-once: callers log failures and move on, and a
// failed send never affects already-committed order state.
package mailer

import (
	"fmt"
	"net/smtp"

	"github.com/rs/zerolog"
)

// Sender sends a single HTML email.
type Sender interface {
	Send(to, subject, htmlBody string) error
}

// smtpSender implements Sender over authenticated SMTP.
type smtpSender struct {
	host     string
	port     int
	username string
	password string
	from     string
	logger   zerolog.Logger
}

// NewSMTPSender creates an SMTP-backed mail sender.
func NewSMTPSender(host string, port int, username, password, from string, logger zerolog.Logger) Sender {
	return &smtpSender{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
		logger:   logger.With().Str("component", "mailer").Logger(),
	}
}

// Send sends one HTML email to a single recipient.
func (s *smtpSender) Send(to, subject, htmlBody string) error {
	msg := fmt.Sprintf(
		"From: \"ezySalad\" <%s>\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n\r\n%s",
		s.from, to, subject, htmlBody,
	)

	addr := fmt.Sprintf("%s:%d", s.host, s.port)
	var auth smtp.Auth
	if s.username != "" {
		auth = smtp.PlainAuth("", s.username, s.password, s.host)
	}

	if err := smtp.SendMail(addr, auth, s.from, []string{to}, []byte(msg)); err != nil {
		s.logger.Error().Err(err).Str("to", to).Str("subject", subject).Msg("failed to send email")
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Debug().Str("to", to).Str("subject", subject).Msg("email sent")
	return nil
}
