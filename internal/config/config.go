package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all configuration values
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	SMTP     SMTPConfig
	WhatsApp WhatsAppConfig
	BotCheck BotCheckConfig
	AI       AIConfig
	Security SecurityConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port string
	Env  string
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// URL returns the database connection URL
func (c DatabaseConfig) URL() string {
	return "postgres://" + c.User + ":" + c.Password + "@" + c.Host + ":" + strconv.Itoa(c.Port) + "/" + c.DBName + "?sslmode=" + c.SSLMode
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	URL      string
	Password string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret        string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
}

// SMTPConfig holds transactional email configuration
type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

// WhatsAppConfig holds the WhatsApp gateway configuration
type WhatsAppConfig struct {
	GatewayURL   string
	APIKey       string
	SendTimeout  time.Duration
	PollInterval time.Duration
	CountryCode  string
}

// BotCheckConfig holds the bot-detection service configuration
type BotCheckConfig struct {
	URL     string
	APIKey  string
	Timeout time.Duration
}

// AIConfig holds the completion service configuration
type AIConfig struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

// SecurityConfig holds security encryption keys
type SecurityConfig struct {
	SessionEncryptionKey string
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
			Env:  getEnv("SERVER_ENV", "development"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvAsInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "cvnest"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", "redis://localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
		},
		JWT: JWTConfig{
			Secret:        getEnv("JWT_SECRET", "change-this-in-production"),
			AccessExpiry:  getEnvAsDuration("JWT_ACCESS_EXPIRY", 15*time.Minute),
			RefreshExpiry: getEnvAsDuration("JWT_REFRESH_EXPIRY", 7*24*time.Hour),
		},
		SMTP: SMTPConfig{
			Host:     getEnv("SMTP_HOST", "localhost"),
			Port:     getEnvAsInt("SMTP_PORT", 587),
			User:     getEnv("SMTP_USER", ""),
			Password: getEnv("SMTP_PASSWORD", ""),
			From:     getEnv("SMTP_FROM", "no-reply@cvnest.app"),
		},
		WhatsApp: WhatsAppConfig{
			GatewayURL:   getEnv("WHATSAPP_GATEWAY_URL", "http://localhost:3001"),
			APIKey:       getEnv("WHATSAPP_API_KEY", ""),
			SendTimeout:  getEnvAsDuration("WHATSAPP_SEND_TIMEOUT", 10*time.Second),
			PollInterval: getEnvAsDuration("WHATSAPP_POLL_INTERVAL", 15*time.Second),
			CountryCode:  getEnv("WHATSAPP_COUNTRY_CODE", "90"),
		},
		BotCheck: BotCheckConfig{
			URL:     getEnv("BOTCHECK_URL", "http://localhost:3002/check"),
			APIKey:  getEnv("BOTCHECK_API_KEY", ""),
			Timeout: getEnvAsDuration("BOTCHECK_TIMEOUT", 5*time.Second),
		},
		AI: AIConfig{
			BaseURL: getEnv("AI_BASE_URL", "https://api.openai.com/v1"),
			APIKey:  getEnv("AI_API_KEY", ""),
			Model:   getEnv("AI_MODEL", "gpt-4o-mini"),
			Timeout: getEnvAsDuration("AI_TIMEOUT", 60*time.Second),
		},
		Security: SecurityConfig{
			SessionEncryptionKey: getEnv("SESSION_ENCRYPTION_KEY", "0000000000000000000000000000000000000000000000000000000000000000"), // 32-bytes hex string
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
