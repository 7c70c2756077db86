package config

import (
	"fmt"
	"os"
	"time"
)

// Config holds application configuration
type Config struct {
	Port           string
	StorePath      string
	LogLevel       string
	JWTSecret      string
	TokenTTL       time.Duration
	BackupDir      string
	BackupSchedule string
	SMTPHost       string
	SMTPPort       string
	SMTPUsername   string
	SMTPPassword   string
	SenderEmail    string
}

// NewConfig loads configuration from environment variables
func NewConfig() (*Config, error) {
	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		StorePath:      getEnv("STORE_PATH", "database.json"),
		LogLevel:       getEnv("LOG_LEVEL", "INFO"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		BackupDir:      getEnv("BACKUP_DIR", ""),
		BackupSchedule: getEnv("BACKUP_SCHEDULE", "@hourly"),
		SMTPHost:       getEnv("SMTP_HOST", ""),
		SMTPPort:       getEnv("SMTP_PORT", "587"),
		SMTPUsername:   getEnv("SMTP_USERNAME", ""),
		SMTPPassword:   getEnv("SMTP_PASSWORD", ""),
		SenderEmail:    getEnv("SENDER_EMAIL", "noreply@localhost"),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	// Short by default, matching the reference behavior; override via TOKEN_TTL.
	ttl, err := time.ParseDuration(getEnv("TOKEN_TTL", "20s"))
	if err != nil {
		return nil, fmt.Errorf("invalid TOKEN_TTL: %w", err)
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("TOKEN_TTL must be positive")
	}
	cfg.TokenTTL = ttl

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
