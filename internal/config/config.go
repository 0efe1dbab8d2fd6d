package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Application
	AppName string
	AppEnv  string
	AppURL  string
	Port    string

	// Stores (driver switch via ENV, default: flat JSON documents)
	DBDriver     string // "json", "sqlite" or "pgx"
	DBConnection string
	UsersPath    string
	PostsPath    string

	// Uploads (S3-compatible optional: MinIO, AWS S3, Cloudflare R2, etc.)
	StorageDriver         string // "local" or "s3"
	UploadDir             string
	S3Region              string
	S3Bucket              string
	S3AccessKey           string
	S3SecretKey           string
	S3Endpoint            string
	S3PresignExpiryPublic time.Duration

	// Mail (provider switch via ENV, default: smtp relay)
	MailProvider string // "smtp" or "resend"
	EmailFrom    string
	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	ResendAPIKey string

	// Seeding (admin account created when the credential store is empty)
	AdminEmail    string
	AdminPassword string

	// Observability (optional)
	SentryDSN string
}

func Load() *Config {
	// Load .env file if it exists
	err := godotenv.Load()
	if err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg := &Config{
		// Application
		AppName: envString("APP_NAME", "Clínica Pires"),
		AppEnv:  envRequired("APP_ENV"), // Required: 'development' or 'production'
		AppURL:  envString("APP_URL", "http://localhost:8090"),
		Port:    envString("PORT", "8090"),

		// Stores
		DBDriver:     envString("DB_DRIVER", "json"),
		DBConnection: envString("DB_CONNECTION", "./data/clinica.db?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)"),
		UsersPath:    envString("USERS_PATH", "./data/users.json"),
		PostsPath:    envString("POSTS_PATH", "./data/posts.json"),

		// Uploads
		StorageDriver:         envString("STORAGE_DRIVER", "local"),
		UploadDir:             envString("UPLOAD_DIR", "./data/uploads"),
		S3Region:              envString("S3_REGION", ""),
		S3Bucket:              envString("S3_BUCKET", ""),
		S3AccessKey:           envString("S3_ACCESS_KEY", ""),
		S3SecretKey:           envString("S3_SECRET_KEY", ""),
		S3Endpoint:            envString("S3_ENDPOINT", ""),
		S3PresignExpiryPublic: envDuration("S3_PRESIGN_EXPIRY_PUBLIC", 168*time.Hour),

		// Mail (credentials always come from the environment, never literals)
		MailProvider: envString("MAIL_PROVIDER", "smtp"),
		EmailFrom:    envString("EMAIL_FROM", "noreply@clinicapires.com.br"),
		SMTPHost:     envString("SMTP_HOST", ""),
		SMTPPort:     envString("SMTP_PORT", "587"),
		SMTPUsername: envString("SMTP_USERNAME", ""),
		SMTPPassword: envString("SMTP_PASSWORD", ""),
		ResendAPIKey: envString("RESEND_API_KEY", ""),

		// Seeding
		AdminEmail:    envString("ADMIN_EMAIL", ""),
		AdminPassword: envString("ADMIN_PASSWORD", ""),

		// Observability
		SentryDSN: envString("SENTRY_DSN", ""),
	}

	// Production: validate required services
	if cfg.IsProduction() {
		validateProduction(cfg)
	}

	return cfg
}

// validateProduction ensures the selected mail provider is usable in
// production. Development falls back to log-only sending.
func validateProduction(cfg *Config) {
	switch cfg.MailProvider {
	case "smtp":
		if cfg.SMTPHost == "" || cfg.SMTPUsername == "" || cfg.SMTPPassword == "" {
			slog.Error("production deployment requires SMTP_HOST, SMTP_USERNAME and SMTP_PASSWORD",
				"hint", "set APP_ENV=development for local testing with mail log mode")
			os.Exit(1)
		}
	case "resend":
		if cfg.ResendAPIKey == "" {
			slog.Error("production deployment requires RESEND_API_KEY",
				"hint", "set APP_ENV=development for local testing with mail log mode")
			os.Exit(1)
		}
	}
}

func envString(key, def string) string {
	value := os.Getenv(key)
	if value == "" {
		value = def
	}
	return value
}

func envBool(key string, def bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("config invalid bool, using default", "key", key, "value", v, "default", def)
		return def
	}
	return b
}

func envDuration(key string, def time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("config invalid duration, using default", "key", key, "value", v, "default", def)
		return def
	}
	return d
}

func envRequired(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	slog.Error("config required env var missing", "key", key)
	os.Exit(1)
	return ""
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// Sanitized returns a copy of the config with only public/safe fields.
// All secrets, credentials, and sensitive data are excluded.
func (c *Config) Sanitized() *Config {
	return &Config{
		AppName: c.AppName,
		AppEnv:  c.AppEnv,
		AppURL:  c.AppURL,
		Port:    c.Port,

		DBDriver:      c.DBDriver,
		StorageDriver: c.StorageDriver,
		MailProvider:  c.MailProvider,
		EmailFrom:     c.EmailFrom,

		S3Endpoint: c.S3Endpoint,
	}
}
