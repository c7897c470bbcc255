package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// DefaultFeedURL is the public astronomy feed.
const DefaultFeedURL = "https://cdn.jsdelivr.net/gh/GCA-Classroom/apod/data.json"

// Config holds all application configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Feed   FeedConfig   `yaml:"feed"`
	Facts  FactsConfig  `yaml:"facts"`
	Log    LogConfig    `yaml:"log"`
	TUI    TUIConfig    `yaml:"tui"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host         string        `yaml:"host" envconfig:"SERVER_HOST" default:"0.0.0.0"`
	Port         int           `yaml:"port" envconfig:"SERVER_PORT" default:"8080"`
	ReadTimeout  time.Duration `yaml:"read_timeout" envconfig:"SERVER_READ_TIMEOUT" default:"30s"`
	WriteTimeout time.Duration `yaml:"write_timeout" envconfig:"SERVER_WRITE_TIMEOUT" default:"2m"`
}

// FeedConfig holds configuration for the media feed request.
// A zero Timeout waits for the feed indefinitely.
type FeedConfig struct {
	URL          string        `yaml:"url" envconfig:"FEED_URL"`
	UserAgent    string        `yaml:"user_agent" envconfig:"FEED_USER_AGENT" default:"spacegallery/1.0"`
	Timeout      time.Duration `yaml:"timeout" envconfig:"FEED_TIMEOUT" default:"0s"`
	MaxBodyBytes int64         `yaml:"max_body_bytes" envconfig:"FEED_MAX_BODY_BYTES" default:"33554432"` // 32MB
}

// FactsConfig holds fact picker configuration.
type FactsConfig struct {
	Seed   int64  `yaml:"seed" envconfig:"FACTS_SEED"`
	Prefix string `yaml:"prefix" envconfig:"FACTS_PREFIX"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `yaml:"level" envconfig:"LOG_LEVEL" default:"info"`
}

// TUIConfig holds terminal frontend configuration.
type TUIConfig struct {
	// LogFile receives logs while the terminal is in use. Empty discards them.
	LogFile string `yaml:"log_file" envconfig:"TUI_LOG_FILE"`
}

// Load reads configuration from file and environment variables.
// Environment variables override file values.
func Load(configPath string) (*Config, error) {
	cfg := &Config{}

	// Load from YAML file if provided
	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	// Override with environment variables
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("process environment: %w", err)
	}

	if cfg.Feed.URL == "" {
		cfg.Feed.URL = DefaultFeedURL
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// Validate checks that configuration values are usable.
func (c *Config) Validate() error {
	u, err := url.Parse(c.Feed.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("FEED_URL must be an absolute http(s) URL, got %q", c.Feed.URL)
	}
	if c.Feed.Timeout < 0 {
		return fmt.Errorf("FEED_TIMEOUT cannot be negative")
	}
	if c.Feed.MaxBodyBytes <= 0 {
		return fmt.Errorf("FEED_MAX_BODY_BYTES must be positive")
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", c.Server.Port)
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

// Address returns the server address in host:port format.
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// ParseLevel maps a level name to a slog.Level. Empty means info.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("LOG_LEVEL %q is not one of debug, info, warn, error", level)
	}
}
