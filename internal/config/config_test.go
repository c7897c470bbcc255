package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func validConfig() *Config {
	return &Config{
		Server: ServerConfig{Host: "0.0.0.0", Port: 8080},
		Feed: FeedConfig{
			URL:          DefaultFeedURL,
			MaxBodyBytes: 1024,
		},
		Log: LogConfig{Level: "info"},
	}
}

func TestConfig_Validate_Success(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Errorf("Validate() should pass, got %v", err)
	}
}

func TestConfig_Validate_Failures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"empty feed url", func(c *Config) { c.Feed.URL = "" }},
		{"relative feed url", func(c *Config) { c.Feed.URL = "data.json" }},
		{"unsupported scheme", func(c *Config) { c.Feed.URL = "ftp://example.com/data.json" }},
		{"negative timeout", func(c *Config) { c.Feed.Timeout = -time.Second }},
		{"zero body limit", func(c *Config) { c.Feed.MaxBodyBytes = 0 }},
		{"port zero", func(c *Config) { c.Server.Port = 0 }},
		{"port too high", func(c *Config) { c.Server.Port = 70000 }},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestServerConfig_Address(t *testing.T) {
	tests := []struct {
		name string
		cfg  ServerConfig
		want string
	}{
		{
			name: "default",
			cfg:  ServerConfig{Host: "0.0.0.0", Port: 8080},
			want: "0.0.0.0:8080",
		},
		{
			name: "localhost",
			cfg:  ServerConfig{Host: "localhost", Port: 3000},
			want: "localhost:3000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.Address(); got != tt.want {
				t.Errorf("Address() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"", slog.LevelInfo, false},
		{"info", slog.LevelInfo, false},
		{"DEBUG", slog.LevelDebug, false},
		{" warn ", slog.LevelWarn, false},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"trace", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Feed.URL != DefaultFeedURL {
		t.Errorf("Feed.URL = %q, want %q", cfg.Feed.URL, DefaultFeedURL)
	}
	if cfg.Feed.Timeout != 0 {
		t.Errorf("Feed.Timeout = %v, want 0", cfg.Feed.Timeout)
	}
	if cfg.Feed.MaxBodyBytes != 32<<20 {
		t.Errorf("Feed.MaxBodyBytes = %d, want %d", cfg.Feed.MaxBodyBytes, 32<<20)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
}

func TestLoad_FromYAMLFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	// envconfig applies tag defaults over YAML values, so only fields
	// without a default tag are read from the file here.
	yamlContent := `
feed:
  url: "https://example.com/feed.json"
facts:
  seed: 42
  prefix: "*"
tui:
  log_file: "/tmp/spacegallery.log"
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Feed.URL != "https://example.com/feed.json" {
		t.Errorf("Feed.URL = %q", cfg.Feed.URL)
	}
	if cfg.Facts.Seed != 42 || cfg.Facts.Prefix != "*" {
		t.Errorf("Facts = %+v", cfg.Facts)
	}
	if cfg.TUI.LogFile != "/tmp/spacegallery.log" {
		t.Errorf("TUI.LogFile = %q", cfg.TUI.LogFile)
	}
}

func TestLoad_EnvOverridesYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
feed:
  url: "https://example.com/feed.json"
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	t.Setenv("FEED_URL", "https://env.example.com/feed.json")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("FEED_TIMEOUT", "15s")

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Feed.URL != "https://env.example.com/feed.json" {
		t.Errorf("Feed.URL should be from env, got %q", cfg.Feed.URL)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Feed.Timeout != 15*time.Second {
		t.Errorf("Feed.Timeout = %v, want 15s", cfg.Feed.Timeout)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	invalidYAML := `
feed:
  url: "https://example.com
  timeout: 5s
`
	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	if _, err := Load(configPath); err == nil {
		t.Error("Load should fail for invalid YAML")
	}
}

func TestLoad_NonexistentFile(t *testing.T) {
	if _, err := Load("/nonexistent/config.yaml"); err == nil {
		t.Error("Load should fail for nonexistent file")
	}
}

func TestLoad_ValidationFailure(t *testing.T) {
	t.Setenv("FEED_URL", "not a url")

	if _, err := Load(""); err == nil {
		t.Error("Load should fail validation for a bad feed URL")
	}
}
