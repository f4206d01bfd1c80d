// Package config provides configuration for the application
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Driver names supported by the storage layer
const (
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"
)

// Config holds all configuration for the application
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Logging  LoggingConfig
	CORS     CORSConfig
	Catalog  CatalogConfig
	Chat     ChatConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Driver     string // "sqlite" (default) or "mysql"
	SQLitePath string
	Host       string
	Port       int
	User       string
	Password   string
	DBName     string
}

// ServerConfig holds server settings
type ServerConfig struct {
	Port int
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level string
}

// CORSConfig holds CORS settings
type CORSConfig struct {
	AllowedOrigins []string
}

// CatalogConfig holds settings for the external video catalog API
type CatalogConfig struct {
	APIKey  string
	BaseURL string
}

// ChatConfig holds settings for the AI chat proxy
type ChatConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (optional)
	godotenv.Load()

	cfg := &Config{}

	// Database configuration. SQLite is the default for a single-user
	// local install; MySQL is available for hosted setups.
	driver := os.Getenv("DB_DRIVER")
	if driver == "" {
		driver = DriverSQLite
	}
	if driver != DriverSQLite && driver != DriverMySQL {
		return nil, fmt.Errorf("unsupported DB_DRIVER: %s", driver)
	}
	cfg.Database.Driver = driver

	switch driver {
	case DriverSQLite:
		sqlitePath := os.Getenv("SQLITE_PATH")
		if sqlitePath == "" {
			sqlitePath = "studytrack.db"
		}
		cfg.Database.SQLitePath = sqlitePath
	case DriverMySQL:
		dbHost := os.Getenv("DB_HOST")
		if dbHost == "" {
			return nil, fmt.Errorf("DB_HOST is required")
		}
		cfg.Database.Host = dbHost

		dbPortStr := os.Getenv("DB_PORT")
		if dbPortStr == "" {
			return nil, fmt.Errorf("DB_PORT is required")
		}
		dbPort, err := strconv.Atoi(dbPortStr)
		if err != nil {
			return nil, fmt.Errorf("invalid DB_PORT: %w", err)
		}
		cfg.Database.Port = dbPort

		dbUser := os.Getenv("DB_USER")
		if dbUser == "" {
			return nil, fmt.Errorf("DB_USER is required")
		}
		cfg.Database.User = dbUser

		dbPassword := os.Getenv("DB_PASSWORD")
		if dbPassword == "" {
			return nil, fmt.Errorf("DB_PASSWORD is required")
		}
		cfg.Database.Password = dbPassword

		dbName := os.Getenv("DB_NAME")
		if dbName == "" {
			return nil, fmt.Errorf("DB_NAME is required")
		}
		cfg.Database.DBName = dbName
	}

	// Server configuration
	serverPortStr := os.Getenv("SERVER_PORT")
	if serverPortStr == "" {
		serverPortStr = "8080" // default port
	}
	serverPort, err := strconv.Atoi(serverPortStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT: %w", err)
	}
	cfg.Server.Port = serverPort

	// Logging configuration
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info" // default level
	}
	cfg.Logging.Level = logLevel

	// CORS configuration
	corsOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
	if corsOrigins == "" {
		// Default to allow all origins if not specified (for development)
		cfg.CORS.AllowedOrigins = []string{"*"}
	} else {
		// Parse comma-separated origins
		origins := strings.Split(corsOrigins, ",")
		cfg.CORS.AllowedOrigins = make([]string, 0, len(origins))
		for _, origin := range origins {
			origin = strings.TrimSpace(origin)
			if origin != "" {
				cfg.CORS.AllowedOrigins = append(cfg.CORS.AllowedOrigins, origin)
			}
		}
		// If no valid origins found, default to allow all
		if len(cfg.CORS.AllowedOrigins) == 0 {
			cfg.CORS.AllowedOrigins = []string{"*"}
		}
	}

	// Video catalog API configuration (optional; playlist sync returns an
	// error at request time when no API key is configured)
	cfg.Catalog.APIKey = os.Getenv("CATALOG_API_KEY")
	cfg.Catalog.BaseURL = os.Getenv("CATALOG_BASE_URL")
	if cfg.Catalog.BaseURL == "" {
		cfg.Catalog.BaseURL = "https://www.googleapis.com/youtube/v3"
	}

	// AI chat proxy configuration (optional; chat endpoint returns an error
	// at request time when no API key is configured)
	cfg.Chat.APIKey = os.Getenv("CHAT_API_KEY")
	cfg.Chat.BaseURL = os.Getenv("CHAT_BASE_URL")
	if cfg.Chat.BaseURL == "" {
		cfg.Chat.BaseURL = "https://api.openai.com/v1"
	}
	cfg.Chat.Model = os.Getenv("CHAT_MODEL")
	if cfg.Chat.Model == "" {
		cfg.Chat.Model = "gpt-4o-mini"
	}

	return cfg, nil
}

// DSN returns the database connection string for the configured driver
func (c *Config) DSN() string {
	switch c.Database.Driver {
	case DriverMySQL:
		// multiStatements is required for the multi-statement migration files
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&charset=utf8mb4&multiStatements=true",
			c.Database.User,
			c.Database.Password,
			c.Database.Host,
			c.Database.Port,
			c.Database.DBName,
		)
	default:
		return c.Database.SQLitePath
	}
}
