package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "development")

	cfg := Load()

	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, "8090", cfg.Port)
	assert.Equal(t, "json", cfg.DBDriver)
	assert.Equal(t, "./data/users.json", cfg.UsersPath)
	assert.Equal(t, "./data/posts.json", cfg.PostsPath)
	assert.Equal(t, "local", cfg.StorageDriver)
	assert.Equal(t, "./data/uploads", cfg.UploadDir)
	assert.Equal(t, "smtp", cfg.MailProvider)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("STORAGE_DRIVER", "s3")
	t.Setenv("MAIL_PROVIDER", "resend")
	t.Setenv("PORT", "9000")

	cfg := Load()

	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "s3", cfg.StorageDriver)
	assert.Equal(t, "resend", cfg.MailProvider)
	assert.Equal(t, "9000", cfg.Port)
}

func TestSanitizedExcludesSecrets(t *testing.T) {
	cfg := &Config{
		AppName:      "Clínica Pires",
		AppEnv:       "production",
		SMTPPassword: "relay-secret",
		S3SecretKey:  "s3-secret",
		ResendAPIKey: "re_secret",
		SentryDSN:    "https://key@sentry.example/1",
	}

	safe := cfg.Sanitized()

	assert.Equal(t, "Clínica Pires", safe.AppName)
	assert.Empty(t, safe.SMTPPassword)
	assert.Empty(t, safe.S3SecretKey)
	assert.Empty(t, safe.ResendAPIKey)
	assert.Empty(t, safe.SentryDSN)
}

func TestEnvHelpers(t *testing.T) {
	t.Run("envString falls back", func(t *testing.T) {
		t.Setenv("TEST_STR", "")
		assert.Equal(t, "fallback", envString("TEST_STR", "fallback"))

		t.Setenv("TEST_STR", "set")
		assert.Equal(t, "set", envString("TEST_STR", "fallback"))
	})

	t.Run("envBool parses and falls back on garbage", func(t *testing.T) {
		t.Setenv("TEST_BOOL", "true")
		assert.True(t, envBool("TEST_BOOL", false))

		t.Setenv("TEST_BOOL", "not-a-bool")
		assert.True(t, envBool("TEST_BOOL", true))
	})

	t.Run("envDuration parses and falls back on garbage", func(t *testing.T) {
		t.Setenv("TEST_DUR", "90s")
		require.Equal(t, 90*time.Second, envDuration("TEST_DUR", time.Minute))

		t.Setenv("TEST_DUR", "ninety seconds")
		assert.Equal(t, time.Minute, envDuration("TEST_DUR", time.Minute))
	})
}
