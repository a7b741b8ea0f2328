package config_test

import (
	"testing"
	"time"

	"github.com/shubh-37/website-section-generator/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"DATABASE_URL", "MONGODB_URI", "PORT", "ENVIRONMENT", "STORE_TIMEOUT", "STORE_CONNECT_TIMEOUT", "CORS_ALLOWED_ORIGINS", "SLACK_BOT_TOKEN"} {
		t.Setenv(key, "")
	}

	cfg := config.LoadConfig()

	assert.Equal(t, "", cfg.DatabaseURL)
	assert.Equal(t, "website_generator", cfg.DatabaseName)
	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, config.Development, cfg.Environment)
	assert.Equal(t, 5*time.Second, cfg.StoreTimeout)
	assert.Equal(t, 10*time.Second, cfg.StoreConnectTimeout)
	assert.Equal(t, 10*time.Second, cfg.MongoServerSelectionTimeout)
	assert.Equal(t, 30*time.Second, cfg.MongoConnectTimeout)
	assert.Equal(t, 45*time.Second, cfg.MongoSocketTimeout)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.False(t, cfg.SlackEnabled())
	require.NoError(t, cfg.Validate())
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017")
	t.Setenv("PORT", "8080")
	t.Setenv("STORE_TIMEOUT", "250ms")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:5173, https://example.com ,")
	t.Setenv("SLACK_BOT_TOKEN", "xoxb-test")
	t.Setenv("SLACK_SIGNING_SECRET", "secret")

	cfg := config.LoadConfig()

	assert.Equal(t, "mongodb://localhost:27017", cfg.DatabaseURL)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 250*time.Millisecond, cfg.StoreTimeout)
	assert.Equal(t, []string{"http://localhost:5173", "https://example.com"}, cfg.CORSAllowedOrigins)
	assert.True(t, cfg.SlackEnabled())
	require.NoError(t, cfg.Validate())
}

func TestLoadConfig_DatabaseURLWinsOverMongoURI(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/sections")
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017")

	assert.Equal(t, "postgres://localhost/sections", config.LoadConfig().DatabaseURL)
}

func TestConfigValidation(t *testing.T) {
	valid := func() *config.Config {
		return &config.Config{
			Port:                        "5000",
			Environment:                 config.Development,
			StoreTimeout:                time.Second,
			StoreConnectTimeout:         time.Second,
			MongoServerSelectionTimeout: time.Second,
			MongoConnectTimeout:         time.Second,
			MongoSocketTimeout:          time.Second,
		}
	}

	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr string
	}{
		{"valid", func(*config.Config) {}, ""},
		{"non numeric port", func(c *config.Config) { c.Port = "http" }, "PORT"},
		{"port out of range", func(c *config.Config) { c.Port = "70000" }, "PORT"},
		{"unknown environment", func(c *config.Config) { c.Environment = "staging" }, "ENVIRONMENT"},
		{"zero store timeout", func(c *config.Config) { c.StoreTimeout = 0 }, "STORE_TIMEOUT"},
		{"zero connect timeout", func(c *config.Config) { c.StoreConnectTimeout = 0 }, "STORE_CONNECT_TIMEOUT"},
		{"zero mongo timeout", func(c *config.Config) { c.MongoSocketTimeout = 0 }, "MONGO_"},
		{"slack token without secret", func(c *config.Config) { c.SlackToken = "xoxb" }, "SLACK_SIGNING_SECRET"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadConfig_BadDurationFailsValidation(t *testing.T) {
	t.Setenv("PORT", "5000")
	t.Setenv("ENVIRONMENT", "")
	t.Setenv("SLACK_BOT_TOKEN", "")
	t.Setenv("STORE_TIMEOUT", "soon")

	cfg := config.LoadConfig()
	assert.Zero(t, cfg.StoreTimeout)
	assert.Error(t, cfg.Validate())
}
