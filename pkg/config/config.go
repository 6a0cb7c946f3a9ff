// Package config loads waylink's small YAML configuration: the host
// channel mode and port, the listening endpoint override, the log
// level, and the session history database path. A config file on disk
// is loaded first, environment variables fill in anything left unset,
// and defaults cover the rest before validation.
package config

import (
	"os"
	"path/filepath"
	"strconv"

	"waylink/pkg/errors"

	"gopkg.in/yaml.v3"
)

const (
	DefaultTCPPort   = 9999
	DefaultLogLevel  = "info"
	defaultSocketDir = "/tmp"
	socketName       = "wayland-winway"
)

// Config holds the proxy's runtime configuration.
type Config struct {
	Mode       string `yaml:"mode"`        // "stdio" or "tcp"
	TCPPort    int    `yaml:"tcp_port"`    // used when Mode == "tcp"
	SocketPath string `yaml:"socket_path"` // override for the listening endpoint
	LogLevel   string `yaml:"log_level"`
	HistoryDB  string `yaml:"history_db"` // sqlite path for pkg/history, "" disables
}

// Load reads the config file (if present), applies environment
// overrides, then fills in defaults and validates.
func Load() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, errors.NewWithError(errors.ExitCodeConfig, "failed to get config path", err)
	}
	return loadFromPath(configPath)
}

// GetConfigPath returns the path to the config file.
func GetConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "waylink", "config.yaml"), nil
}

// Save writes cfg to the config file, creating its directory if needed.
func Save(cfg *Config) error {
	configPath, err := GetConfigPath()
	if err != nil {
		return err
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return errors.NewWithError(errors.ExitCodeFileOperation, "failed to create config directory", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.NewWithError(errors.ExitCodeConfig, "failed to marshal config", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return errors.NewWithError(errors.ExitCodeFileOperation, "failed to write config file", err)
	}
	return nil
}

// ListenPath returns the well-known listening endpoint: the configured
// override, else $XDG_RUNTIME_DIR/wayland-winway, else /tmp/wayland-winway.
func (c *Config) ListenPath() string {
	if c.SocketPath != "" {
		return c.SocketPath
	}
	if runtime := os.Getenv("XDG_RUNTIME_DIR"); runtime != "" {
		return filepath.Join(runtime, socketName)
	}
	return filepath.Join(defaultSocketDir, socketName)
}

func loadFromPath(configPath string) (*Config, error) {
	cfg := &Config{}

	if err := loadConfigFile(configPath, cfg); err != nil {
		return nil, err
	}

	applyEnvironmentOverrides(cfg)
	applyDefaults(cfg)

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadConfigFile(path string, cfg *Config) error {
	if _, err := os.Stat(path); err != nil {
		// File doesn't exist, that's okay - we'll use defaults and env vars.
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return errors.NewWithError(errors.ExitCodeFileOperation, "failed to read config file", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return errors.NewWithError(errors.ExitCodeConfig, "failed to parse config file", err)
	}
	return nil
}

func applyEnvironmentOverrides(cfg *Config) {
	if cfg.Mode == "" {
		cfg.Mode = getEnv("WAYLINK_MODE", "")
	}
	if cfg.TCPPort == 0 {
		cfg.TCPPort = getEnvInt("WAYLINK_TCP_PORT", 0)
	}
	if cfg.SocketPath == "" {
		cfg.SocketPath = getEnv("WAYLINK_SOCKET_PATH", "")
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = getEnv("WAYLINK_LOG_LEVEL", "")
	}
	if cfg.HistoryDB == "" {
		cfg.HistoryDB = getEnv("WAYLINK_HISTORY_DB", "")
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Mode == "" {
		cfg.Mode = "stdio"
	}
	if cfg.TCPPort == 0 {
		cfg.TCPPort = DefaultTCPPort
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
}

func validateConfig(cfg *Config) error {
	if cfg.Mode != "stdio" && cfg.Mode != "tcp" {
		return errors.ConfigError("mode must be 'stdio' or 'tcp', got: " + cfg.Mode)
	}
	if cfg.TCPPort <= 0 || cfg.TCPPort > 65535 {
		return errors.ConfigError("tcp_port out of range")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
