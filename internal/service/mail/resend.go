package mail

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/resend/resend-go/v2"

	"github.com/clinicapires/backend/internal/config"
)

// ResendSender sends recovery mail through the Resend API. In development
// the message is logged instead of sent, so local runs need no API key.
type ResendSender struct {
	client  *resend.Client
	from    string
	appName string
	isDev   bool
}

func NewResendSender(cfg *config.Config) *ResendSender {
	var client *resend.Client
	if cfg.ResendAPIKey != "" && !cfg.IsDevelopment() {
		client = resend.NewClient(cfg.ResendAPIKey)
	}

	return &ResendSender{
		client:  client,
		from:    cfg.EmailFrom,
		appName: cfg.AppName,
		isDev:   cfg.IsDevelopment(),
	}
}

func (s *ResendSender) SendRecoveryCode(to, code string) error {
	subject, body := recoveryEmailTemplate(code, s.appName)

	if s.isDev {
		slog.Info("email sent (dev mode)", "type", "recovery_code", "to", to, "subject", subject, "code", code)
		return nil
	}

	if s.client == nil {
		return fmt.Errorf("email service not configured (missing RESEND_API_KEY)")
	}

	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{to},
		Subject: subject,
		Text:    body,
	}

	_, err := s.client.Emails.SendWithContext(context.Background(), params)
	if err == nil {
		slog.Info("email sent", "type", "recovery_code", "to", to)
	}
	return err
}
