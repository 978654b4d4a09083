package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm/logger"
)

// DBConfig holds the catalog store database configuration
type DBConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	LogLevel        logger.LogLevel
}

// GetDSN returns the PostgreSQL connection string
func (c *DBConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// ServerConfig holds web console server configuration
type ServerConfig struct {
	Port string
	Env  string
}

// APIConfig holds the two product endpoints the console talks to
type APIConfig struct {
	RecordsURL string
	UploadsURL string
	// Timeout of zero means requests only end when their context does.
	Timeout time.Duration
}

// CatalogConfig holds configuration for the local catalog API stand-in
type CatalogConfig struct {
	Port string
}

// JWTConfig holds service token configuration. An empty SigningKey disables tokens.
type JWTConfig struct {
	SigningKey        string
	ExpirationMinutes int
	Issuer            string
}

// Enabled reports whether service tokens are configured
func (c JWTConfig) Enabled() bool {
	return c.SigningKey != ""
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string
}

// MetricsConfig holds metrics configuration
type MetricsConfig struct {
	Prefix string
}

// Config holds all configuration
type Config struct {
	ServiceName string
	Server      ServerConfig
	API         APIConfig
	Catalog     CatalogConfig
	DB          DBConfig
	JWT         JWTConfig
	Log         LogConfig
	Metrics     MetricsConfig
}

// Load loads configuration from an optional .env file and the environment
func Load(serviceName string) (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	config := &Config{
		ServiceName: serviceName,
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
			Env:  getEnv("APP_ENV", "development"),
		},
		API: APIConfig{
			RecordsURL: getEnv("RECORDS_ENDPOINT", "http://localhost:8081/records"),
			UploadsURL: getEnv("UPLOADS_ENDPOINT", "http://localhost:8081/uploads"),
			Timeout:    getEnvAsDuration("API_TIMEOUT", 0),
		},
		Catalog: CatalogConfig{
			Port: getEnv("CATALOG_PORT", "8081"),
		},
		DB: DBConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "postgres"),
			Password:        getEnv("DB_PASSWORD", "password"),
			DBName:          getEnv("DB_NAME", "catalog"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxIdleConns:    getEnvAsInt("DB_MAX_IDLE_CONNS", 10),
			MaxOpenConns:    getEnvAsInt("DB_MAX_OPEN_CONNS", 100),
			ConnMaxLifetime: getEnvAsDuration("DB_CONN_MAX_LIFETIME", 1*time.Hour),
			LogLevel:        getEnvAsLogLevel("DB_LOG_LEVEL", logger.Warn),
		},
		JWT: JWTConfig{
			SigningKey:        getEnv("JWT_SIGNING_KEY", ""),
			ExpirationMinutes: getEnvAsInt("JWT_EXPIRATION_MINUTES", 5),
			Issuer:            getEnv("JWT_ISSUER", serviceName),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Metrics: MetricsConfig{
			Prefix: getEnv("METRICS_PREFIX", "product_console"),
		},
	}

	if config.API.RecordsURL == "" || config.API.UploadsURL == "" {
		return nil, fmt.Errorf("RECORDS_ENDPOINT and UPLOADS_ENDPOINT must not be empty")
	}

	return config, nil
}

// LogFields returns the configuration as zap fields for startup logging
func (c *Config) LogFields() []zap.Field {
	return []zap.Field{
		zap.String("service", c.ServiceName),
		zap.String("environment", c.Server.Env),
		zap.String("records_endpoint", c.API.RecordsURL),
		zap.String("uploads_endpoint", c.API.UploadsURL),
		zap.Duration("api_timeout", c.API.Timeout),
		zap.Bool("service_tokens", c.JWT.Enabled()),
		zap.String("server_port", c.Server.Port),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
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

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsLogLevel(key string, defaultValue logger.LogLevel) logger.LogLevel {
	switch getEnv(key, "") {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "warn":
		return logger.Warn
	case "info":
		return logger.Info
	default:
		return defaultValue
	}
}
