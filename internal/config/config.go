package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database     DatabaseConfig
	AppStore     AppStoreConfig
	JWT          JWTConfig
	App          AppConfig
	SMTP         SMTPConfig
	Report       ReportConfig
	Notification NotificationConfig
}

// DatabaseConfig holds connection settings for the time-and-attendance
// source database. The source is only ever queried, never written.
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// AppStoreConfig holds connection settings for the portal's own store
// (users, shift configs, notification logs).
type AppStoreConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret            string
	RefreshExpiration string
	AccessExpiration  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
}

// SMTPConfig holds outgoing mail settings
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
}

// ReportConfig holds attendance aggregation settings
type ReportConfig struct {
	// ShiftOutCutoffHours is how far past midnight a punch-out may land
	// and still be attributed to the previous day's shift. Clamped 0..23.
	ShiftOutCutoffHours int
}

// NotificationConfig holds notification dispatch settings
type NotificationConfig struct {
	SendTimeout time.Duration
	DefaultCC   []string
}

func Load() (*Config, error) {
	// .env is optional; deployed instances configure via environment
	_ = godotenv.Load()

	config := &Config{}

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "attendance"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	appDBPort, err := strconv.Atoi(getEnv("APP_DB_PORT", getEnv("DB_PORT", "5432")))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_DB_PORT: %w", err)
	}

	config.AppStore = AppStoreConfig{
		Host:     getEnv("APP_DB_HOST", getEnv("DB_HOST", "localhost")),
		Port:     appDBPort,
		User:     getEnv("APP_DB_USER", getEnv("DB_USER", "postgres")),
		Password: getEnv("APP_DB_PASSWORD", getEnv("DB_PASSWORD", "")),
		Name:     getEnv("APP_DB_NAME", "attendance_portal"),
		SSLMode:  getEnv("APP_DB_SSL_MODE", "disable"),
	}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: strings.TrimRight(getEnv("FRONTEND_BASE_URL", "http://localhost:3000"), "/"),
	}

	config.JWT = JWTConfig{
		Secret:            getEnv("JWT_SECRET_KEY", ""),
		RefreshExpiration: getEnv("JWT_REFRESH_EXPIRATION_TIME", "168h"),
		AccessExpiration:  getEnv("JWT_ACCESS_EXPIRATION_TIME", "8h"),
	}

	smtpPort, err := strconv.Atoi(getEnv("SMTP_PORT", "587"))
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP_PORT: %w", err)
	}

	config.SMTP = SMTPConfig{
		Host:     getEnv("SMTP_HOST", ""),
		Port:     smtpPort,
		Username: getEnv("SMTP_USERNAME", ""),
		Password: getEnv("SMTP_PASSWORD", ""),
		From:     getEnv("SMTP_FROM", ""),
		FromName: getEnv("SMTP_FROM_NAME", "Oilchem HR Admin"),
	}

	cutoff, err := strconv.Atoi(getEnv("SHIFT_OUT_CUTOFF_HOURS", "12"))
	if err != nil {
		return nil, fmt.Errorf("invalid SHIFT_OUT_CUTOFF_HOURS: %w", err)
	}
	config.Report = ReportConfig{
		ShiftOutCutoffHours: clamp(cutoff, 0, 23),
	}

	sendTimeoutSec, err := strconv.Atoi(getEnv("SMTP_TIMEOUT_SECONDS", "20"))
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP_TIMEOUT_SECONDS: %w", err)
	}
	if sendTimeoutSec < 5 {
		sendTimeoutSec = 5
	}
	config.Notification = NotificationConfig{
		SendTimeout: time.Duration(sendTimeoutSec) * time.Second,
		DefaultCC:   getEnvSlice("NOTIFY_CC_LIST"),
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	return nil
}

// DatabaseURL returns the connection string for the attendance source
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// AppStoreURL returns the connection string for the portal store
func (c *Config) AppStoreURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.AppStore.User,
		c.AppStore.Password,
		c.AppStore.Host,
		c.AppStore.Port,
		c.AppStore.Name,
		c.AppStore.SSLMode,
	)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(env string) []string {
	value := getEnv(env, "")
	if value == "" {
		return []string{}
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
