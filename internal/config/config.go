package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Server ServerConfig

	// Database configuration
	Database DatabaseConfig

	// Logging configuration
	Log LogConfig

	// Persona selector UI configuration
	UI UIConfig

	// Session store configuration
	Session SessionConfig

	// Redis configuration (session backend "redis")
	Redis RedisConfig

	// Scores configuration
	Scores ScoresConfig

	// CORS configuration
	CORS CORSConfig
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	MigrationsPath  string
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host         string
	Port         string
	User         string
	Password     string
	Name         string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
	MaxLifetime  time.Duration
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string
	Format string // "json" or "pretty"
	// File, when set, tees the log stream into a rotating file.
	File       string
	MaxSizeMB  int
	MaxBackups int
}

// UIConfig holds persona selector settings
type UIConfig struct {
	Port       string
	APIBaseURL string
	APITimeout time.Duration
}

// SessionConfig holds UI session settings
type SessionConfig struct {
	Backend    string // "memory" or "redis"
	CookieName string
	TTL        time.Duration
	Secure     bool
}

// RedisConfig holds Redis connection settings
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

// ScoresConfig holds settings for the ML score queries
type ScoresConfig struct {
	Year int
}

// CORSConfig holds CORS settings for the API
type CORSConfig struct {
	AllowedOrigins []string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "4000"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 30*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 30*time.Second),
			MigrationsPath:  getEnv("MIGRATIONS_PATH", "./migrations"),
		},
		Database: DatabaseConfig{
			Host:         getEnv("DB_HOST", "localhost"),
			Port:         getEnv("DB_PORT", "5432"),
			User:         getEnv("DB_USER", "postgres"),
			Password:     getEnv("DB_PASSWORD", "postgres"),
			Name:         getEnv("DB_NAME", "best_life"),
			SSLMode:      getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns: getIntEnv("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns: getIntEnv("DB_MAX_IDLE_CONNS", 5),
			MaxLifetime:  getDurationEnv("DB_MAX_LIFETIME", 5*time.Minute),
		},
		Log: LogConfig{
			Level:      getEnv("LOG_LEVEL", "info"),
			Format:     getEnv("LOG_FORMAT", "json"),
			File:       getEnv("LOG_FILE", ""),
			MaxSizeMB:  getIntEnv("LOG_FILE_MAX_SIZE_MB", 100),
			MaxBackups: getIntEnv("LOG_FILE_MAX_BACKUPS", 5),
		},
		UI: UIConfig{
			Port:       getEnv("UI_PORT", "8501"),
			APIBaseURL: getEnv("UI_API_BASE_URL", "http://localhost:4000"),
			APITimeout: getDurationEnv("UI_API_TIMEOUT", 5*time.Second),
		},
		Session: SessionConfig{
			Backend:    getEnv("SESSION_BACKEND", "memory"),
			CookieName: getEnv("SESSION_COOKIE", "best_life_session"),
			TTL:        getDurationEnv("SESSION_TTL", 12*time.Hour),
			Secure:     getBoolEnv("SESSION_COOKIE_SECURE", false),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getIntEnv("REDIS_DB", 0),
			Prefix:   getEnv("REDIS_SESSION_PREFIX", "best-life:session:"),
		},
		Scores: ScoresConfig{
			Year: getIntEnv("SCORE_YEAR", 2022),
		},
		CORS: CORSConfig{
			AllowedOrigins: getListEnv("CORS_ALLOWED_ORIGINS", []string{"*"}),
		},
	}

	// Validate required configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Database.Host == "" {
		return fmt.Errorf("DB_HOST is required")
	}
	if c.Database.Name == "" {
		return fmt.Errorf("DB_NAME is required")
	}
	if c.UI.APIBaseURL == "" {
		return fmt.Errorf("UI_API_BASE_URL is required")
	}
	switch c.Session.Backend {
	case "memory", "redis":
	default:
		return fmt.Errorf("SESSION_BACKEND must be one of: memory, redis (got %q)", c.Session.Backend)
	}
	if c.Session.Backend == "redis" && c.Redis.Addr == "" {
		return fmt.Errorf("REDIS_ADDR is required when SESSION_BACKEND=redis")
	}
	return nil
}

// GetDSN returns the PostgreSQL connection string
func (c *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
	)
}

// Helper functions for environment variable parsing

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

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
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

// getListEnv splits a comma separated value, dropping blanks
func getListEnv(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
