package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration. It is loaded once at startup
// and immutable for the process lifetime.
type Config struct {
	APIServer struct {
		ServerURL         string  `json:"server_url" yaml:"server_url"`
		ListenPort        int     `json:"listen_port" yaml:"listen_port"`
		Username          string  `json:"username" yaml:"username"`
		Password          string  `json:"password" yaml:"password"`
		SaveToDB          bool    `json:"save_to_db" yaml:"save_to_db"`
		SendTweet         bool    `json:"send_tweet" yaml:"send_tweet"`
		StartingCapital   float64 `json:"starting_capital" yaml:"starting_capital"`
		PositionSize      float64 `json:"position_size" yaml:"position_size"`
		RunInterval       int     `json:"run_interval" yaml:"run_interval"`
		RunCron           string  `json:"run_cron" yaml:"run_cron"`
		APIKey            string  `json:"api_key" yaml:"api_key"`
		APISecretKey      string  `json:"api_secret_key" yaml:"api_secret_key"`
		AccessToken       string  `json:"access_token" yaml:"access_token"`
		AccessTokenSecret string  `json:"access_token_secret" yaml:"access_token_secret"`
	} `json:"api_server" yaml:"api_server"`
	Database struct {
		SQLitePath string `json:"sqlite_path" yaml:"sqlite_path"`
	} `json:"database" yaml:"database"`
	LogLevel string `json:"log_level" yaml:"log_level"`
	Pretty   bool   `json:"pretty" yaml:"pretty"`
}

// Load reads config from a JSON file (or YAML, by extension), then applies
// environment variable overrides and defaults. A missing file is an error:
// the process must not start without configuration.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	default:
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("BOT_SERVER_URL"); v != "" {
		cfg.APIServer.ServerURL = v
	}
	if v := os.Getenv("BOT_USERNAME"); v != "" {
		cfg.APIServer.Username = v
	}
	if v := os.Getenv("BOT_PASSWORD"); v != "" {
		cfg.APIServer.Password = v
	}
	if v := os.Getenv("TWITTER_API_KEY"); v != "" {
		cfg.APIServer.APIKey = v
	}
	if v := os.Getenv("TWITTER_API_SECRET_KEY"); v != "" {
		cfg.APIServer.APISecretKey = v
	}
	if v := os.Getenv("TWITTER_ACCESS_TOKEN"); v != "" {
		cfg.APIServer.AccessToken = v
	}
	if v := os.Getenv("TWITTER_ACCESS_TOKEN_SECRET"); v != "" {
		cfg.APIServer.AccessTokenSecret = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	// Defaults
	if cfg.APIServer.ListenPort == 0 {
		cfg.APIServer.ListenPort = 8080
	}
	if cfg.APIServer.RunInterval == 0 {
		cfg.APIServer.RunInterval = 3600
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "history.db"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if c.APIServer.ServerURL == "" {
		return fmt.Errorf("api_server.server_url is required")
	}
	if c.APIServer.StartingCapital <= 0 {
		return fmt.Errorf("api_server.starting_capital must be positive")
	}
	if c.APIServer.PositionSize <= 0 {
		return fmt.Errorf("api_server.position_size must be positive")
	}
	if c.APIServer.RunCron == "" && c.APIServer.RunInterval <= 0 {
		return fmt.Errorf("api_server.run_interval must be positive")
	}
	return nil
}

// BaseURL returns the control API base URL. A server_url carrying its own
// scheme is used verbatim; otherwise host and port are combined over http.
func (c *Config) BaseURL() string {
	if strings.Contains(c.APIServer.ServerURL, "://") {
		return c.APIServer.ServerURL
	}
	return fmt.Sprintf("http://%s:%d", c.APIServer.ServerURL, c.APIServer.ListenPort)
}
