package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

const sampleJSON = `{
	"api_server": {
		"server_url": "127.0.0.1",
		"listen_port": 8081,
		"username": "bot",
		"password": "hunter2",
		"save_to_db": true,
		"send_tweet": false,
		"starting_capital": 1000,
		"position_size": 50,
		"run_interval": 600
	},
	"database": {"sqlite_path": "test.db"}
}`

func TestLoad_JSON(t *testing.T) {
	cfg, err := Load(writeFile(t, "config.json", sampleJSON))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIServer.ServerURL != "127.0.0.1" || cfg.APIServer.ListenPort != 8081 {
		t.Errorf("unexpected server config: %+v", cfg.APIServer)
	}
	if !cfg.APIServer.SaveToDB || cfg.APIServer.SendTweet {
		t.Errorf("toggles = (%v, %v), want (true, false)", cfg.APIServer.SaveToDB, cfg.APIServer.SendTweet)
	}
	if cfg.APIServer.StartingCapital != 1000 || cfg.APIServer.PositionSize != 50 {
		t.Errorf("capital config: %+v", cfg.APIServer)
	}
	if cfg.Database.SQLitePath != "test.db" {
		t.Errorf("sqlite_path = %q, want test.db", cfg.Database.SQLitePath)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestLoad_YAML(t *testing.T) {
	yaml := `
api_server:
  server_url: localhost
  starting_capital: 500
  position_size: 25
`
	cfg, err := Load(writeFile(t, "config.yaml", yaml))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIServer.ServerURL != "localhost" || cfg.APIServer.StartingCapital != 500 {
		t.Errorf("unexpected config: %+v", cfg.APIServer)
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeFile(t, "config.json", `{"api_server":{"server_url":"h","starting_capital":1,"position_size":1}}`))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIServer.ListenPort != 8080 {
		t.Errorf("listen_port default = %d, want 8080", cfg.APIServer.ListenPort)
	}
	if cfg.APIServer.RunInterval != 3600 {
		t.Errorf("run_interval default = %d, want 3600", cfg.APIServer.RunInterval)
	}
	if cfg.Database.SQLitePath != "history.db" {
		t.Errorf("sqlite_path default = %q, want history.db", cfg.Database.SQLitePath)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("log_level default = %q, want info", cfg.LogLevel)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("BOT_USERNAME", "envuser")
	t.Setenv("SQLITE_PATH", "/tmp/env.db")

	cfg, err := Load(writeFile(t, "config.json", sampleJSON))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIServer.Username != "envuser" {
		t.Errorf("username = %q, want env override", cfg.APIServer.Username)
	}
	if cfg.Database.SQLitePath != "/tmp/env.db" {
		t.Errorf("sqlite_path = %q, want env override", cfg.Database.SQLitePath)
	}
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		cfg := &Config{}
		cfg.APIServer.ServerURL = "127.0.0.1"
		cfg.APIServer.StartingCapital = 1000
		cfg.APIServer.PositionSize = 50
		cfg.APIServer.RunInterval = 600
		return cfg
	}

	if err := base().Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	cfg := base()
	cfg.APIServer.ServerURL = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for missing server_url")
	}

	cfg = base()
	cfg.APIServer.StartingCapital = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for zero starting_capital")
	}

	cfg = base()
	cfg.APIServer.RunInterval = -1
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for negative run_interval")
	}

	// A cron spec stands in for the interval.
	cfg = base()
	cfg.APIServer.RunInterval = -1
	cfg.APIServer.RunCron = "0 0 * * * *"
	if err := cfg.Validate(); err != nil {
		t.Errorf("cron spec should satisfy the schedule requirement: %v", err)
	}
}

func TestBaseURL(t *testing.T) {
	cfg := &Config{}
	cfg.APIServer.ServerURL = "127.0.0.1"
	cfg.APIServer.ListenPort = 8080
	if got := cfg.BaseURL(); got != "http://127.0.0.1:8080" {
		t.Errorf("BaseURL = %q", got)
	}

	cfg.APIServer.ServerURL = "https://bot.example.com"
	if got := cfg.BaseURL(); got != "https://bot.example.com" {
		t.Errorf("BaseURL with scheme = %q", got)
	}
}
