package mail

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinicapires/backend/internal/config"
)

func TestRecoveryEmailTemplate(t *testing.T) {
	subject, body := recoveryEmailTemplate("a1b2c3d4", "Clínica Pires")

	assert.Equal(t, "Recuperação de Senha - Clínica Pires", subject)
	assert.Equal(t, "Seu código de recuperação é: a1b2c3d4", body)
}

func TestNewSender(t *testing.T) {
	t.Run("unknown provider", func(t *testing.T) {
		_, err := NewSender(&config.Config{AppEnv: "development", MailProvider: "pigeon"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown mail provider")
	})

	t.Run("smtp without credentials is fine in development", func(t *testing.T) {
		s, err := NewSender(&config.Config{AppEnv: "development", MailProvider: "smtp"})
		require.NoError(t, err)
		assert.IsType(t, &SMTPSender{}, s)
	})

	t.Run("smtp without credentials is rejected outside development", func(t *testing.T) {
		_, err := NewSender(&config.Config{AppEnv: "production", MailProvider: "smtp"})
		assert.Error(t, err)
	})

	t.Run("resend without key is rejected outside development", func(t *testing.T) {
		_, err := NewSender(&config.Config{AppEnv: "production", MailProvider: "resend"})
		assert.Error(t, err)
	})

	t.Run("resend in development", func(t *testing.T) {
		s, err := NewSender(&config.Config{AppEnv: "development", MailProvider: "resend"})
		require.NoError(t, err)
		assert.IsType(t, &ResendSender{}, s)
	})
}

func TestDevModeSendsWithoutRelay(t *testing.T) {
	cfg := &config.Config{AppEnv: "development", AppName: "Clínica Pires", EmailFrom: "noreply@example.com"}

	assert.NoError(t, NewSMTPSender(cfg).SendRecoveryCode("a@example.com", "a1b2c3d4"))
	assert.NoError(t, NewResendSender(cfg).SendRecoveryCode("a@example.com", "a1b2c3d4"))
}
