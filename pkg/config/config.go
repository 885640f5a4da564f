package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Server   ServerConfig
	Redis    RedisConfig
	Gemini   GeminiConfig
	Resend   ResendConfig
	Reminder ReminderConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string
	Host            string
	Environment     string
	AllowedOrigins  []string
	ShutdownTimeout int
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// GeminiConfig holds Gemini API configuration
type GeminiConfig struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float64
	MaxTokens   int
	Timeout     time.Duration
	MaxRetries  int
}

// ResendConfig holds Resend email API configuration
type ResendConfig struct {
	APIKey      string
	BaseURL     string
	FromAddress string
	Timeout     time.Duration
}

// ReminderConfig holds the reminder sweep configuration
type ReminderConfig struct {
	// CronSpec follows robfig/cron syntax; default is every day at 09:00
	CronSpec string
	// FallbackRecipient receives reminders until assignees map to user accounts
	FallbackRecipient string
	// SendInterval spaces out reminder emails to respect the provider rate limit
	SendInterval time.Duration
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	config := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			Host:            getEnv("HOST", "0.0.0.0"),
			Environment:     getEnv("ENVIRONMENT", "development"),
			AllowedOrigins:  []string{getEnv("ALLOWED_ORIGINS", "http://localhost:3000")},
			ShutdownTimeout: getEnvAsInt("SHUTDOWN_TIMEOUT", 10),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Gemini: GeminiConfig{
			APIKey:      getEnv("GEMINI_API_KEY", ""),
			BaseURL:     getEnv("GEMINI_API_URL", "https://generativelanguage.googleapis.com"),
			Model:       getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
			Temperature: getEnvAsFloat("GEMINI_TEMPERATURE", 0.3),
			MaxTokens:   getEnvAsInt("GEMINI_MAX_TOKENS", 2000),
			Timeout:     getEnvAsDuration("GEMINI_TIMEOUT", "30s"),
			MaxRetries:  getEnvAsInt("GEMINI_MAX_RETRIES", 3),
		},
		Resend: ResendConfig{
			APIKey:      getEnv("RESEND_API_KEY", ""),
			BaseURL:     getEnv("RESEND_API_URL", "https://api.resend.com"),
			FromAddress: getEnv("RESEND_FROM", "TeamSync <onboarding@resend.dev>"),
			Timeout:     getEnvAsDuration("RESEND_TIMEOUT", "15s"),
		},
		Reminder: ReminderConfig{
			CronSpec:          getEnv("REMINDER_CRON", "0 9 * * *"),
			FallbackRecipient: getEnv("REMINDER_FALLBACK_EMAIL", "test@example.com"),
			SendInterval:      getEnvAsDuration("REMINDER_SEND_INTERVAL", "500ms"),
		},
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.Environment == "test" {
		return nil
	}
	if c.Gemini.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is required")
	}
	if c.Resend.APIKey == "" {
		return fmt.Errorf("RESEND_API_KEY is required")
	}
	return nil
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	duration, err := time.ParseDuration(valueStr)
	if err != nil {
		duration, _ = time.ParseDuration(defaultValue)
	}
	return duration
}
