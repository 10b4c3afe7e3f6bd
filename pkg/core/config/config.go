package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/msto63/rechenwerk/foundation/ini"
)

// Config holds the complete application configuration
type Config struct {
	General GeneralConfig `toml:"general" yaml:"general"`
	Gauss   GaussConfig   `toml:"gauss" yaml:"gauss"`
	Client  ClientConfig  `toml:"client" yaml:"client"`
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	Name        string `toml:"name" yaml:"name"`
	Environment string `toml:"environment" yaml:"environment"`
	DataDir     string `toml:"data_dir" yaml:"data_dir"`
	LogLevel    string `toml:"log_level" yaml:"log_level"`
	LogFile     string `toml:"log_file" yaml:"log_file"`
}

// GaussConfig holds the computation service configuration
type GaussConfig struct {
	Port               int    `toml:"port" yaml:"port"`
	Host               string `toml:"host" yaml:"host"`
	AuditEnabled       bool   `toml:"audit_enabled" yaml:"audit_enabled"`
	AuditPath          string `toml:"audit_path" yaml:"audit_path"`
	AuditRetentionDays int    `toml:"audit_retention_days" yaml:"audit_retention_days"`
}

// ClientConfig holds the client configuration
type ClientConfig struct {
	Host           string   `toml:"host" yaml:"host"`
	Port           int      `toml:"port" yaml:"port"`
	TaskTimeout    Duration `toml:"task_timeout" yaml:"task_timeout"`
	ResolveTimeout Duration `toml:"resolve_timeout" yaml:"resolve_timeout"`
	RetryLimit     int      `toml:"retry_limit" yaml:"retry_limit"`
	RetryBackoff   Duration `toml:"retry_backoff" yaml:"retry_backoff"`
	AutoConnect    bool     `toml:"auto_connect" yaml:"auto_connect"`
}

// Duration wraps time.Duration for TOML and YAML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// UnmarshalYAML parses a duration from a YAML scalar
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	return d.UnmarshalText([]byte(value.Value))
}

// Load loads configuration from a file. The format is chosen by
// extension: .toml, .yaml/.yml, or .ini.
func Load(path string) (*Config, error) {
	// Expand environment variables in path
	path = os.ExpandEnv(path)

	// Check if file exists
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	var cfg Config
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		_, err = toml.DecodeFile(path, &cfg)
	case ".yaml", ".yml":
		var data []byte
		if data, err = os.ReadFile(path); err == nil {
			err = yaml.Unmarshal(data, &cfg)
		}
	case ".ini":
		err = loadINI(path, &cfg)
	default:
		return nil, fmt.Errorf("unsupported config format: %s", filepath.Ext(path))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Apply defaults
	cfg.applyDefaults()

	// Expand environment variables in path fields
	cfg.expandEnvVars()

	return &cfg, nil
}

// LoadFromEnv loads configuration from the RECHENWERK_CONFIG environment
// variable, falling back to the default locations
func LoadFromEnv() (*Config, error) {
	path := os.Getenv("RECHENWERK_CONFIG")
	if path == "" {
		// Try default locations
		defaultPaths := []string{
			"./configs/config.toml",
			"./config.toml",
			filepath.Join(os.Getenv("HOME"), ".config/rechenwerk/config.toml"),
		}
		for _, p := range defaultPaths {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return nil, fmt.Errorf("no config file found, set RECHENWERK_CONFIG or create configs/config.toml")
	}

	return Load(path)
}

// Default returns the configuration with all defaults applied and no file
// read
func Default() *Config {
	var cfg Config
	cfg.applyDefaults()
	return &cfg
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	// General
	if c.General.Name == "" {
		c.General.Name = "Rechenwerk"
	}
	if c.General.Environment == "" {
		c.General.Environment = "development"
	}
	if c.General.DataDir == "" {
		c.General.DataDir = "./data"
	}
	if c.General.LogLevel == "" {
		c.General.LogLevel = "info"
	}

	// Gauss
	if c.Gauss.Port == 0 {
		c.Gauss.Port = 4242
	}
	if c.Gauss.Host == "" {
		c.Gauss.Host = "0.0.0.0"
	}
	if c.Gauss.AuditPath == "" {
		c.Gauss.AuditPath = filepath.Join(c.General.DataDir, "gauss-audit.db")
	}
	if c.Gauss.AuditRetentionDays == 0 {
		c.Gauss.AuditRetentionDays = 30
	}

	// Client
	if c.Client.Host == "" {
		c.Client.Host = "localhost"
	}
	if c.Client.Port == 0 {
		c.Client.Port = 4242
	}
	if c.Client.TaskTimeout.Duration == 0 {
		c.Client.TaskTimeout.Duration = 10 * time.Second
	}
}

// expandEnvVars expands environment variables in configuration values
func (c *Config) expandEnvVars() {
	c.General.DataDir = os.ExpandEnv(c.General.DataDir)
	c.General.LogFile = os.ExpandEnv(c.General.LogFile)
	c.Gauss.AuditPath = os.ExpandEnv(c.Gauss.AuditPath)
}

// GaussAddress returns the listen address of the computation service
func (c *Config) GaussAddress() string {
	return fmt.Sprintf("%s:%d", c.Gauss.Host, c.Gauss.Port)
}

// ClientTarget returns the server address the client connects to
func (c *Config) ClientTarget() string {
	return fmt.Sprintf("%s:%d", c.Client.Host, c.Client.Port)
}

// loadINI fills the config from an INI file using the foundation scanner
func loadINI(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	sections, err := ini.Parse(string(data))
	if err != nil {
		return err
	}

	if general, ok := sections["general"]; ok {
		setString(general, "name", &cfg.General.Name)
		setString(general, "environment", &cfg.General.Environment)
		setString(general, "data_dir", &cfg.General.DataDir)
		setString(general, "log_level", &cfg.General.LogLevel)
		setString(general, "log_file", &cfg.General.LogFile)
	}

	if gauss, ok := sections["gauss"]; ok {
		if err := setInt(gauss, "port", &cfg.Gauss.Port); err != nil {
			return err
		}
		setString(gauss, "host", &cfg.Gauss.Host)
		if err := setBool(gauss, "audit_enabled", &cfg.Gauss.AuditEnabled); err != nil {
			return err
		}
		setString(gauss, "audit_path", &cfg.Gauss.AuditPath)
		if err := setInt(gauss, "audit_retention_days", &cfg.Gauss.AuditRetentionDays); err != nil {
			return err
		}
	}

	if client, ok := sections["client"]; ok {
		setString(client, "host", &cfg.Client.Host)
		if err := setInt(client, "port", &cfg.Client.Port); err != nil {
			return err
		}
		if err := setDuration(client, "task_timeout", &cfg.Client.TaskTimeout); err != nil {
			return err
		}
		if err := setDuration(client, "resolve_timeout", &cfg.Client.ResolveTimeout); err != nil {
			return err
		}
		if err := setInt(client, "retry_limit", &cfg.Client.RetryLimit); err != nil {
			return err
		}
		if err := setDuration(client, "retry_backoff", &cfg.Client.RetryBackoff); err != nil {
			return err
		}
		if err := setBool(client, "auto_connect", &cfg.Client.AutoConnect); err != nil {
			return err
		}
	}

	return nil
}

func setString(section map[string]string, key string, dst *string) {
	if v, ok := section[key]; ok {
		*dst = v
	}
}

func setInt(section map[string]string, key string, dst *int) error {
	v, ok := section[key]
	if !ok {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("invalid integer for %s: %q", key, v)
	}
	*dst = n
	return nil
}

func setBool(section map[string]string, key string, dst *bool) error {
	v, ok := section[key]
	if !ok {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("invalid boolean for %s: %q", key, v)
	}
	*dst = b
	return nil
}

func setDuration(section map[string]string, key string, dst *Duration) error {
	v, ok := section[key]
	if !ok {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("invalid duration for %s: %q", key, v)
	}
	dst.Duration = d
	return nil
}
