package mail

import (
	"fmt"
	"log/slog"
	"net"
	"net/smtp"

	"github.com/clinicapires/backend/internal/config"
)

// SMTPSender sends recovery mail through a plain SMTP relay with STARTTLS.
// Relay credentials come exclusively from configuration.
type SMTPSender struct {
	host     string
	port     string
	username string
	password string
	from     string
	appName  string
	isDev    bool
}

func NewSMTPSender(cfg *config.Config) *SMTPSender {
	return &SMTPSender{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		username: cfg.SMTPUsername,
		password: cfg.SMTPPassword,
		from:     cfg.EmailFrom,
		appName:  cfg.AppName,
		isDev:    cfg.IsDevelopment(),
	}
}

func (s *SMTPSender) SendRecoveryCode(to, code string) error {
	subject, body := recoveryEmailTemplate(code, s.appName)

	if s.isDev {
		slog.Info("email sent (dev mode)", "type", "recovery_code", "to", to, "subject", subject, "code", code)
		return nil
	}

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=UTF-8\r\n\r\n%s\r\n",
		s.from, to, subject, body)

	addr := net.JoinHostPort(s.host, s.port)
	auth := smtp.PlainAuth("", s.username, s.password, s.host)

	err := smtp.SendMail(addr, auth, s.from, []string{to}, []byte(msg))
	if err != nil {
		return fmt.Errorf("failed to send via SMTP relay: %w", err)
	}

	slog.Info("email sent", "type", "recovery_code", "to", to)
	return nil
}
