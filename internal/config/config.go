package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Logger   LoggerConfig
	Auth     AuthConfig
	Payment  PaymentConfig
	Email    EmailConfig
	Order    OrderConfig
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Host string
	Port int
}

// DatabaseConfig holds database-related configuration.
type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Database        string
	MaxConnections  int
	MinConnections  int
	MaxConnLifetime int // seconds
}

// LoggerConfig holds logger-related configuration.
type LoggerConfig struct {
	Level  string
	Format string // "json" or "console"
}

// AuthConfig holds the API key guarding the admin surface.
type AuthConfig struct {
	AdminAPIKey string
}

// PaymentConfig holds PortOne V2 configuration. The API secret stays
// server-side; only StoreID and ChannelKey are handed to the browser.
type PaymentConfig struct {
	BaseURL        string
	APISecret      string
	StoreID        string
	ChannelKey     string
	Currency       string
	TimeoutSeconds int
}

// EmailConfig holds SMTP configuration for order and contact mail.
type EmailConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	From      string
	Recipient string // operator mailbox for new-order and contact mail
}

// OrderConfig holds order business-rule configuration.
type OrderConfig struct {
	DeliveryFee  int64
	LeadTimeDays int
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnvAsInt("SERVER_PORT", 8080),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnvAsInt("DB_PORT", 5432),
			User:            getEnv("DB_USER", "postgres"),
			Password:        getEnv("DB_PASSWORD", ""),
			Database:        getEnv("DB_NAME", "ezysalad"),
			MaxConnections:  getEnvAsInt("DB_MAX_CONNECTIONS", 25),
			MinConnections:  getEnvAsInt("DB_MIN_CONNECTIONS", 5),
			MaxConnLifetime: getEnvAsInt("DB_MAX_CONN_LIFETIME", 300),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Auth: AuthConfig{
			AdminAPIKey: getEnv("ADMIN_API_KEY", ""),
		},
		Payment: PaymentConfig{
			BaseURL:        getEnv("PORTONE_BASE_URL", "https://api.portone.io"),
			APISecret:      getEnv("PORTONE_API_SECRET", ""),
			StoreID:        getEnv("PORTONE_STORE_ID", ""),
			ChannelKey:     getEnv("PORTONE_CHANNEL_KEY", ""),
			Currency:       getEnv("PAYMENT_CURRENCY", "KRW"),
			TimeoutSeconds: getEnvAsInt("PORTONE_TIMEOUT_SECONDS", 10),
		},
		Email: EmailConfig{
			Host:      getEnv("EMAIL_HOST", "smtp.gmail.com"),
			Port:      getEnvAsInt("EMAIL_PORT", 587),
			Username:  getEnv("EMAIL_USER", ""),
			Password:  getEnv("EMAIL_PASS", ""),
			From:      getEnv("EMAIL_FROM", ""),
			Recipient: getEnv("RECIPIENT_EMAIL", ""),
		},
		Order: OrderConfig{
			DeliveryFee:  int64(getEnvAsInt("ORDER_DELIVERY_FEE", 0)),
			LeadTimeDays: getEnvAsInt("ORDER_LEAD_TIME_DAYS", 2),
		},
	}

	if cfg.Email.From == "" {
		cfg.Email.From = cfg.Email.Username
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}

	if c.Database.Port < 1 || c.Database.Port > 65535 {
		return fmt.Errorf("invalid database port: %d", c.Database.Port)
	}

	if c.Database.User == "" {
		return fmt.Errorf("database user is required")
	}

	if c.Database.Database == "" {
		return fmt.Errorf("database name is required")
	}

	if c.Database.MaxConnections < 1 {
		return fmt.Errorf("database max connections must be at least 1")
	}

	if c.Database.MinConnections < 1 {
		return fmt.Errorf("database min connections must be at least 1")
	}

	if c.Database.MinConnections > c.Database.MaxConnections {
		return fmt.Errorf("database min connections cannot exceed max connections")
	}

	if c.Auth.AdminAPIKey == "" {
		return fmt.Errorf("admin API key is required")
	}

	if c.Payment.APISecret == "" {
		return fmt.Errorf("PortOne API secret is required")
	}

	if c.Payment.StoreID == "" {
		return fmt.Errorf("PortOne store ID is required")
	}

	if c.Payment.ChannelKey == "" {
		return fmt.Errorf("PortOne channel key is required")
	}

	if c.Payment.TimeoutSeconds < 1 {
		return fmt.Errorf("payment timeout must be at least 1 second")
	}

	if c.Order.DeliveryFee < 0 {
		return fmt.Errorf("delivery fee cannot be negative")
	}

	if c.Order.LeadTimeDays < 0 {
		return fmt.Errorf("lead time days cannot be negative")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLogLevels[c.Logger.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.Logger.Format != "json" && c.Logger.Format != "console" {
		return fmt.Errorf("invalid log format: %s (must be json or console)", c.Logger.Format)
	}

	return nil
}

// ConnectionString returns the PostgreSQL connection string.
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.User,
		c.Password,
		c.Host,
		c.Port,
		c.Database,
	)
}

// Address returns the server address.
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value.
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
