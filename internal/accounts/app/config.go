package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	DatabaseFile  string        // Optional: path to SQLite database file (default: ./accounts.db)
	PepperFile    string        // Optional: path to file containing pepper for password hashing (default: ./pepper)
	ResetTokenTTL time.Duration // Optional: password reset token lifetime (default: 60m)

	NotifierMode string // Optional: reset mail delivery (smtp, log) (default: log)
	SMTPHost     string // SMTP server host (required for smtp mode)
	SMTPPort     int    // SMTP server port (default: 587)
	SMTPUser     string // SMTP username (optional, enables auth)
	SMTPPassword string // SMTP password
	MailFrom     string // Sender address for reset mails
	ResetBaseURL string // Base URL used to build reset links (default: http://localhost:8080)

	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Housekeeping interval (default: 1h)
}

func LoadConfig() Config {
	return Config{
		DatabaseFile:  getEnvOrDefault("ACCOUNTS_DATABASE_FILE", "accounts.db"),
		PepperFile:    getEnvOrDefault("ACCOUNTS_PEPPER_FILE", "pepper"),
		ResetTokenTTL: getEnvDurationOrDefault("ACCOUNTS_RESET_TOKEN_TTL", 60*time.Minute),

		NotifierMode: getEnvOrDefault("ACCOUNTS_NOTIFIER_MODE", "log"),
		SMTPHost:     os.Getenv("SMTP_HOST"),
		SMTPPort:     getEnvIntOrDefault("SMTP_PORT", 587),
		SMTPUser:     os.Getenv("SMTP_USER"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		MailFrom:     getEnvOrDefault("MAIL_FROM", "no-reply@edukita.local"),
		ResetBaseURL: getEnvOrDefault("ACCOUNTS_RESET_BASE_URL", "http://localhost:8080"),

		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Parse as a duration string (e.g. "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are treated as minutes
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
