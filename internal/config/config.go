package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Server
	Port        string
	CORSOrigins string

	// Kwify webhook (empty secret disables signature verification)
	WebhookSecret string

	// Firebase (identity provider)
	FirebaseProjectID       string
	FirebaseCredentialsFile string
	ProviderTimeout         time.Duration

	// SMTP
	SMTPHost   string
	SMTPPort   int
	SMTPSecure bool
	SMTPUser   string
	SMTPPass   string
	FromName   string
	FromEmail  string

	// Credentials email
	LoginURL       string
	PasswordLength int
}

func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "8080"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),

		WebhookSecret: getEnv("KWIFY_WEBHOOK_SECRET", ""),

		FirebaseProjectID:       getEnv("FIREBASE_PROJECT_ID", ""),
		FirebaseCredentialsFile: getEnv("FIREBASE_CREDENTIALS_FILE", ""),
		ProviderTimeout:         parseDuration(getEnv("PROVIDER_TIMEOUT", "30s")),

		SMTPHost:   getEnv("SMTP_HOST", ""),
		SMTPPort:   parseInt(getEnv("SMTP_PORT", "587"), 587),
		SMTPSecure: getEnv("SMTP_SECURE", "false") == "true",
		SMTPUser:   getEnv("SMTP_USER", ""),
		SMTPPass:   getEnv("SMTP_PASS", ""),
		FromName:   getEnv("FROM_NAME", "Sistema"),
		FromEmail:  getEnv("FROM_EMAIL", ""),

		LoginURL:       getEnv("LOGIN_URL", "#"),
		PasswordLength: parseInt(getEnv("PASSWORD_LENGTH", "12"), 12),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseInt(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func parseDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 30 * time.Second
	}
	return d
}
