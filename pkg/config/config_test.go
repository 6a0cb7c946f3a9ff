package config

import (
	"os"
	"testing"
)

func TestLoadFromPath_Defaults(t *testing.T) {
	tmpDir := t.TempDir()
	missingPath := tmpDir + "/does-not-exist.yaml"

	os.Unsetenv("WAYLINK_MODE")
	os.Unsetenv("WAYLINK_TCP_PORT")
	os.Unsetenv("WAYLINK_SOCKET_PATH")
	os.Unsetenv("WAYLINK_LOG_LEVEL")

	cfg, err := loadFromPath(missingPath)
	if err != nil {
		t.Fatalf("loadFromPath() error = %v", err)
	}
	if cfg.Mode != "stdio" {
		t.Errorf("Mode = %q, want %q", cfg.Mode, "stdio")
	}
	if cfg.TCPPort != DefaultTCPPort {
		t.Errorf("TCPPort = %d, want %d", cfg.TCPPort, DefaultTCPPort)
	}
	if cfg.LogLevel != DefaultLogLevel {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, DefaultLogLevel)
	}
}

func TestLoadFromPath_FileOverridesDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := tmpDir + "/config.yaml"
	content := "mode: tcp\ntcp_port: 7000\nlog_level: debug\n"
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	cfg, err := loadFromPath(configPath)
	if err != nil {
		t.Fatalf("loadFromPath() error = %v", err)
	}
	if cfg.Mode != "tcp" {
		t.Errorf("Mode = %q, want %q", cfg.Mode, "tcp")
	}
	if cfg.TCPPort != 7000 {
		t.Errorf("TCPPort = %d, want %d", cfg.TCPPort, 7000)
	}
}

func TestValidateConfig_RejectsBadMode(t *testing.T) {
	cfg := &Config{Mode: "carrier-pigeon", TCPPort: 9999}
	if err := validateConfig(cfg); err == nil {
		t.Error("validateConfig() error = nil, want error for invalid mode")
	}
}

func TestConfig_ListenPath(t *testing.T) {
	t.Run("explicit override wins", func(t *testing.T) {
		cfg := &Config{SocketPath: "/custom/sock"}
		if got := cfg.ListenPath(); got != "/custom/sock" {
			t.Errorf("ListenPath() = %q, want %q", got, "/custom/sock")
		}
	})

	t.Run("falls back to XDG_RUNTIME_DIR", func(t *testing.T) {
		original := os.Getenv("XDG_RUNTIME_DIR")
		os.Setenv("XDG_RUNTIME_DIR", "/run/user/1000")
		defer os.Setenv("XDG_RUNTIME_DIR", original)

		cfg := &Config{}
		want := "/run/user/1000/wayland-winway"
		if got := cfg.ListenPath(); got != want {
			t.Errorf("ListenPath() = %q, want %q", got, want)
		}
	})

	t.Run("falls back to /tmp when XDG_RUNTIME_DIR is unset", func(t *testing.T) {
		original := os.Getenv("XDG_RUNTIME_DIR")
		os.Unsetenv("XDG_RUNTIME_DIR")
		defer os.Setenv("XDG_RUNTIME_DIR", original)

		cfg := &Config{}
		want := "/tmp/wayland-winway"
		if got := cfg.ListenPath(); got != want {
			t.Errorf("ListenPath() = %q, want %q", got, want)
		}
	})
}
