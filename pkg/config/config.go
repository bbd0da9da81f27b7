package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// APIConfig holds remote POS API configuration
type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

// SessionConfig holds local session store configuration
type SessionConfig struct {
	DataDir string
}

// ServerConfig holds environment configuration
type ServerConfig struct {
	Env string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string
}

// MetricsConfig holds metrics configuration. Port 0 disables the scrape
// listener.
type MetricsConfig struct {
	Prefix string
	Port   int
}

// Config holds all configuration
type Config struct {
	ServiceName string
	API         APIConfig
	Session     SessionConfig
	Server      ServerConfig
	Log         LogConfig
	Metrics     MetricsConfig
}

// Load loads configuration from environment variables
func Load(serviceName string) (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		// Not returning error as .env file is optional
		fmt.Printf("Warning: .env file not found, using environment variables\n")
	}

	config := &Config{
		ServiceName: serviceName,
		API: APIConfig{
			BaseURL: getEnv("API_BASE_URL", "http://localhost:8000/api/v1"),
			Timeout: getEnvAsDuration("API_TIMEOUT", 10*time.Second),
		},
		Session: SessionConfig{
			DataDir: getEnv("SESSION_DATA_DIR", defaultDataDir(serviceName)),
		},
		Server: ServerConfig{
			Env: getEnv("APP_ENV", "development"),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Metrics: MetricsConfig{
			Prefix: getEnv("METRICS_PREFIX", serviceName),
			Port:   getEnvAsInt("METRICS_PORT", 0),
		},
	}

	return config, nil
}

// LogConfig returns the configuration as a zap logger-friendly format
func (c *Config) LogConfig() []zap.Field {
	return []zap.Field{
		zap.String("service", c.ServiceName),
		zap.String("environment", c.Server.Env),
		zap.String("api_base_url", c.API.BaseURL),
		zap.Duration("api_timeout", c.API.Timeout),
		zap.String("session_data_dir", c.Session.DataDir),
	}
}

// defaultDataDir places the session store under the user config directory
func defaultDataDir(serviceName string) string {
	base, err := os.UserConfigDir()
	if err != nil {
		return "." + serviceName
	}
	return base + string(os.PathSeparator) + serviceName
}

// Helper function to get environment variables with defaults
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// Helper function to get environment variables as integers
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// Helper function to get environment variables as durations
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}
