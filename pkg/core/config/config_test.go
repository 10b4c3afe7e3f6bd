package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func TestDuration_UnmarshalText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Duration
		wantErr  bool
	}{
		{"seconds", "30s", 30 * time.Second, false},
		{"minutes", "5m", 5 * time.Minute, false},
		{"composite", "1h30m", 90 * time.Minute, false},
		{"invalid", "not-a-duration", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalText([]byte(tt.input))
			if (err != nil) != tt.wantErr {
				t.Fatalf("UnmarshalText() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && d.Duration != tt.expected {
				t.Errorf("Duration = %v, want %v", d.Duration, tt.expected)
			}
		})
	}
}

func TestLoad_TOML(t *testing.T) {
	path := writeConfig(t, "config.toml", `
[general]
name = "Rechenwerk"
log_level = "debug"

[gauss]
port = 5000
audit_enabled = true

[client]
host = "calc.example.com"
port = 5000
task_timeout = "15s"
retry_limit = 3
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.General.LogLevel != "debug" {
		t.Errorf("LogLevel = %v, want debug", cfg.General.LogLevel)
	}
	if cfg.Gauss.Port != 5000 {
		t.Errorf("Gauss.Port = %d, want 5000", cfg.Gauss.Port)
	}
	if !cfg.Gauss.AuditEnabled {
		t.Error("Gauss.AuditEnabled = false, want true")
	}
	if cfg.Client.Host != "calc.example.com" {
		t.Errorf("Client.Host = %v, want calc.example.com", cfg.Client.Host)
	}
	if cfg.Client.TaskTimeout.Duration != 15*time.Second {
		t.Errorf("TaskTimeout = %v, want 15s", cfg.Client.TaskTimeout.Duration)
	}
	if cfg.Client.RetryLimit != 3 {
		t.Errorf("RetryLimit = %d, want 3", cfg.Client.RetryLimit)
	}
}

func TestLoad_YAML(t *testing.T) {
	path := writeConfig(t, "config.yaml", `
general:
  log_level: warn
gauss:
  port: 5001
client:
  host: calc.example.com
  task_timeout: 20s
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.General.LogLevel != "warn" {
		t.Errorf("LogLevel = %v, want warn", cfg.General.LogLevel)
	}
	if cfg.Gauss.Port != 5001 {
		t.Errorf("Gauss.Port = %d, want 5001", cfg.Gauss.Port)
	}
	if cfg.Client.TaskTimeout.Duration != 20*time.Second {
		t.Errorf("TaskTimeout = %v, want 20s", cfg.Client.TaskTimeout.Duration)
	}
}

func TestLoad_INI(t *testing.T) {
	path := writeConfig(t, "config.ini", `
; rechenwerk configuration
[general]
log_level=trace

[gauss]
port=5002
audit_enabled=true

[client]
host=calc.example.com
task_timeout=25s
retry_limit=4
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.General.LogLevel != "trace" {
		t.Errorf("LogLevel = %v, want trace", cfg.General.LogLevel)
	}
	if cfg.Gauss.Port != 5002 {
		t.Errorf("Gauss.Port = %d, want 5002", cfg.Gauss.Port)
	}
	if !cfg.Gauss.AuditEnabled {
		t.Error("Gauss.AuditEnabled = false, want true")
	}
	if cfg.Client.Host != "calc.example.com" {
		t.Errorf("Client.Host = %v, want calc.example.com", cfg.Client.Host)
	}
	if cfg.Client.TaskTimeout.Duration != 25*time.Second {
		t.Errorf("TaskTimeout = %v, want 25s", cfg.Client.TaskTimeout.Duration)
	}
	if cfg.Client.RetryLimit != 4 {
		t.Errorf("RetryLimit = %d, want 4", cfg.Client.RetryLimit)
	}
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, "config.toml", "")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Gauss.Port != 4242 {
		t.Errorf("Gauss.Port = %d, want 4242", cfg.Gauss.Port)
	}
	if cfg.Gauss.Host != "0.0.0.0" {
		t.Errorf("Gauss.Host = %v, want 0.0.0.0", cfg.Gauss.Host)
	}
	if cfg.Client.Host != "localhost" {
		t.Errorf("Client.Host = %v, want localhost", cfg.Client.Host)
	}
	if cfg.Client.Port != 4242 {
		t.Errorf("Client.Port = %d, want 4242", cfg.Client.Port)
	}
	if cfg.Client.TaskTimeout.Duration != 10*time.Second {
		t.Errorf("TaskTimeout = %v, want 10s", cfg.Client.TaskTimeout.Duration)
	}
	if cfg.General.LogLevel != "info" {
		t.Errorf("LogLevel = %v, want info", cfg.General.LogLevel)
	}
}

func TestLoad_UnsupportedFormat(t *testing.T) {
	path := writeConfig(t, "config.json", "{}")

	if _, err := Load(path); err == nil {
		t.Error("Load() with unsupported extension succeeded, want error")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/config.toml"); err == nil {
		t.Error("Load() with missing file succeeded, want error")
	}
}

func TestConfig_Addresses(t *testing.T) {
	cfg := Default()
	if got := cfg.GaussAddress(); got != "0.0.0.0:4242" {
		t.Errorf("GaussAddress() = %v, want 0.0.0.0:4242", got)
	}
	if got := cfg.ClientTarget(); got != "localhost:4242" {
		t.Errorf("ClientTarget() = %v, want localhost:4242", got)
	}
}

func TestLoad_ExpandsEnvVars(t *testing.T) {
	t.Setenv("RW_TEST_DATA", "/tmp/rwdata")
	path := writeConfig(t, "config.toml", `
[general]
data_dir = "$RW_TEST_DATA"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.General.DataDir != "/tmp/rwdata" {
		t.Errorf("DataDir = %v, want /tmp/rwdata", cfg.General.DataDir)
	}
}
