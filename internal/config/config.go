package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Budget   BudgetConfig
	Security SecurityConfig
}

type ServerConfig struct {
	Port         string
	Host         string
	Environment  string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type AuthConfig struct {
	// SigningKey verifies HS256 bearer tokens issued by the identity service.
	// Token issuance itself lives outside this API.
	SigningKey string
	Issuer     string
}

// BudgetConfig carries the fallback budget figures used when a user has no
// persisted override for a category. MainBudget is split evenly across the
// categories discovered in a month when no per-category default applies.
type BudgetConfig struct {
	DefaultCategoryBudget decimal.Decimal
	OtherCategoryBudget   decimal.Decimal
	MainBudget            decimal.Decimal
	SplitMainBudget       bool
}

type SecurityConfig struct {
	RateLimitPerSecond int
	RateLimitBurst     int
	MaxIngestBatchSize int
}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Host:         getEnv("SERVER_HOST", "localhost"),
			Environment:  getEnv("APP_ENV", "development"),
			ReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "spendsense_user"),
			Password:        getEnv("DB_PASSWORD", "spendsense_password"),
			Name:            getEnv("DB_NAME", "spendsense_db"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 25),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
		},
		Auth: AuthConfig{
			SigningKey: getEnv("AUTH_SIGNING_KEY", "dev-signing-key"),
			Issuer:     getEnv("AUTH_ISSUER", "spendsense-identity"),
		},
		Budget: BudgetConfig{
			DefaultCategoryBudget: getDecimalEnv("BUDGET_DEFAULT_CATEGORY", decimal.NewFromInt(500)),
			OtherCategoryBudget:   getDecimalEnv("BUDGET_OTHER_CATEGORY", decimal.NewFromInt(200)),
			MainBudget:            getDecimalEnv("BUDGET_MAIN", decimal.NewFromInt(2000)),
			SplitMainBudget:       getBoolEnv("BUDGET_SPLIT_MAIN", false),
		},
		Security: SecurityConfig{
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 5),
			RateLimitBurst:     getIntEnv("RATE_LIMIT_BURST", 10),
			MaxIngestBatchSize: getIntEnv("MAX_INGEST_BATCH_SIZE", 500),
		},
	}
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getDecimalEnv(key string, defaultValue decimal.Decimal) decimal.Decimal {
	if value := os.Getenv(key); value != "" {
		if dec, err := decimal.NewFromString(value); err == nil {
			return dec
		}
	}
	return defaultValue
}
