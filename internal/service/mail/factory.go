package mail

import (
	"fmt"
	"log/slog"

	"github.com/clinicapires/backend/internal/config"
)

// NewSender creates a mail provider based on configuration
func NewSender(cfg *config.Config) (Sender, error) {
	provider := cfg.MailProvider

	slog.Info("initializing mail provider", "provider", provider)

	switch provider {
	case "smtp":
		if !cfg.IsDevelopment() && (cfg.SMTPHost == "" || cfg.SMTPUsername == "" || cfg.SMTPPassword == "") {
			return nil, fmt.Errorf("SMTP_HOST, SMTP_USERNAME and SMTP_PASSWORD are required when using the smtp provider")
		}
		return NewSMTPSender(cfg), nil

	case "resend":
		if !cfg.IsDevelopment() && cfg.ResendAPIKey == "" {
			return nil, fmt.Errorf("RESEND_API_KEY is required when using the resend provider")
		}
		return NewResendSender(cfg), nil

	default:
		return nil, fmt.Errorf("unknown mail provider: %s (supported: smtp, resend)", provider)
	}
}
