package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	Development = "development"
	Production  = "production"
)

type Config struct {
	DatabaseURL  string
	DatabaseName string
	Port         string
	Environment  string
	LogLevel     string

	StoreTimeout                time.Duration
	StoreConnectTimeout         time.Duration
	MongoServerSelectionTimeout time.Duration
	MongoConnectTimeout         time.Duration
	MongoSocketTimeout          time.Duration

	CORSAllowedOrigins []string

	SlackToken         string
	SlackSigningSecret string
	SlackChannelID     string

	// EnvFileErr records why .env could not be loaded, if it could not.
	// Reported once a logger exists.
	EnvFileErr error
}

// LoadConfig loads configuration from environment variables
// It first tries to load from .env file, then falls back to system environment variables
func LoadConfig() *Config {
	envErr := godotenv.Load()

	return &Config{
		DatabaseURL:  getEnv("DATABASE_URL", getEnv("MONGODB_URI", "")),
		DatabaseName: getEnv("DATABASE_NAME", "website_generator"),
		Port:         getEnv("PORT", "5000"),
		Environment:  getEnv("ENVIRONMENT", Development),
		LogLevel:     getEnv("LOG_LEVEL", "info"),

		StoreTimeout:                getEnvDuration("STORE_TIMEOUT", 5*time.Second),
		StoreConnectTimeout:         getEnvDuration("STORE_CONNECT_TIMEOUT", 10*time.Second),
		MongoServerSelectionTimeout: getEnvDuration("MONGO_SERVER_SELECTION_TIMEOUT", 10*time.Second),
		MongoConnectTimeout:         getEnvDuration("MONGO_CONNECT_TIMEOUT", 30*time.Second),
		MongoSocketTimeout:          getEnvDuration("MONGO_SOCKET_TIMEOUT", 45*time.Second),

		CORSAllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS", []string{"*"}),

		SlackToken:         getEnv("SLACK_BOT_TOKEN", ""),
		SlackSigningSecret: getEnv("SLACK_SIGNING_SECRET", ""),
		SlackChannelID:     getEnv("SLACK_CHANNEL_ID", ""),

		EnvFileErr: envErr,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvDuration parses a duration such as "5s". Unparsable values yield
// zero so Validate can reject them.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0
	}
	return d
}

func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return defaultValue
	}
	return items
}

// SlackEnabled reports whether the Slack integration should start
func (c *Config) SlackEnabled() bool {
	return c.SlackToken != ""
}

func (c *Config) Validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("PORT must be a number between 1 and 65535, got %q", c.Port)
	}
	if c.Environment != Development && c.Environment != Production {
		return fmt.Errorf("ENVIRONMENT must be %q or %q, got %q", Development, Production, c.Environment)
	}
	if c.StoreTimeout <= 0 {
		return fmt.Errorf("STORE_TIMEOUT must be a positive duration")
	}
	if c.StoreConnectTimeout <= 0 {
		return fmt.Errorf("STORE_CONNECT_TIMEOUT must be a positive duration")
	}
	if c.MongoServerSelectionTimeout <= 0 || c.MongoConnectTimeout <= 0 || c.MongoSocketTimeout <= 0 {
		return fmt.Errorf("MONGO_*_TIMEOUT values must be positive durations")
	}
	if c.SlackToken != "" && c.SlackSigningSecret == "" {
		return fmt.Errorf("SLACK_SIGNING_SECRET is required when SLACK_BOT_TOKEN is set")
	}
	return nil
}
