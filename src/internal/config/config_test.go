package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	configFile := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(configFile, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}
	return configFile
}

func TestLoadConfig_NonExistentFile(t *testing.T) {
	_, err := LoadConfig("/non/existent/file.toml")
	if err == nil {
		t.Fatal("Expected error for non-existent file")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Errorf("Expected not found error, got %v", err)
	}
}

func TestLoadConfig_InvalidTOML(t *testing.T) {
	configFile := writeConfig(t, t.TempDir(), `[device
base_url = "http://192.168.0.1/"`)

	if _, err := LoadConfig(configFile); err == nil {
		t.Error("Expected error for invalid TOML")
	}
}

func TestLoadConfig_UnknownField(t *testing.T) {
	configFile := writeConfig(t, t.TempDir(), `[device]
base_ur = "http://192.168.0.1/"`)

	if _, err := LoadConfig(configFile); err == nil {
		t.Error("Expected error for misspelled field")
	}
}

func TestLoadConfig_ValidConfig(t *testing.T) {
	configFile := writeConfig(t, t.TempDir(), `[device]
base_url = "http://192.168.0.1/"
password = "secret"
timeout_seconds = 3
retries = 2
rate_limit_per_second = 4.5

[api]
listen_addr = "0.0.0.0:9000"`)

	config, err := LoadConfig(configFile)
	if err != nil {
		t.Fatalf("Expected no error for valid config: %v", err)
	}
	if err := config.ValidateConfig(); err != nil {
		t.Fatalf("Expected valid config: %v", err)
	}

	if config.Device.BaseURL != "http://192.168.0.1/" || config.Device.Password != "secret" {
		t.Errorf("Unexpected device config: %+v", config.Device)
	}
	if config.Device.Timeout().Seconds() != 3 || config.Device.Retries != 2 || config.Device.RateLimitPerSecond != 4.5 {
		t.Errorf("Unexpected device tuning: %+v", config.Device)
	}
	if config.Device.CacheTTLSeconds != DefaultCacheTTLSeconds {
		t.Errorf("Expected default cache TTL, got %d", config.Device.CacheTTLSeconds)
	}
	if config.API.ListenAddr != "0.0.0.0:9000" {
		t.Errorf("Unexpected listen address %q", config.API.ListenAddr)
	}
	if config.GetConfigFilePath() != configFile {
		t.Errorf("Expected config path %q, got %q", configFile, config.GetConfigFilePath())
	}
}

func TestLoadConfig_EmptyFileGetsDefaults(t *testing.T) {
	configFile := writeConfig(t, t.TempDir(), "")

	config, err := LoadConfig(configFile)
	if err != nil {
		t.Fatalf("Expected no error: %v", err)
	}
	if err := config.ValidateConfig(); err != nil {
		t.Fatalf("Expected defaults to validate: %v", err)
	}

	if config.Device.BaseURL != "" {
		t.Errorf("Expected empty base URL (gateway discovery), got %q", config.Device.BaseURL)
	}
	if config.Device.TimeoutSeconds != DefaultTimeoutSeconds || config.Device.Retries != DefaultRetries {
		t.Errorf("Expected defaults, got %+v", config.Device)
	}
	if config.API.ListenAddr != DefaultListenAddr {
		t.Errorf("Expected default listen address, got %q", config.API.ListenAddr)
	}
}

func TestLoadConfig_RelativePath(t *testing.T) {
	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, "")

	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("Failed to change directory: %v", err)
	}
	defer func() { _ = os.Chdir(wd) }()

	config, err := LoadConfig("config.toml")
	if err != nil {
		t.Fatalf("Expected no error: %v", err)
	}
	if !filepath.IsAbs(config.GetConfigFilePath()) {
		t.Errorf("Expected absolute config path, got %q", config.GetConfigFilePath())
	}
}

func TestResolvePassword(t *testing.T) {
	tmpDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmpDir, "password.txt"), []byte("from-file\n"), 0600); err != nil {
		t.Fatalf("Failed to write password file: %v", err)
	}

	configFile := writeConfig(t, tmpDir, `[device]
password_file = "password.txt"`)
	config, err := LoadConfig(configFile)
	if err != nil {
		t.Fatalf("Expected no error: %v", err)
	}
	if err := config.ValidateConfig(); err != nil {
		t.Fatalf("Expected valid config: %v", err)
	}

	password, err := config.Device.ResolvePassword(config.GetConfigDir())
	if err != nil {
		t.Fatalf("Expected no error: %v", err)
	}
	if password != "from-file" {
		t.Errorf("Expected password from file, got %q", password)
	}

	inline := &DeviceConfig{Password: "inline"}
	if password, _ := inline.ResolvePassword(tmpDir); password != "inline" {
		t.Errorf("Expected inline password, got %q", password)
	}

	missing := &DeviceConfig{PasswordFile: "missing.txt"}
	if _, err := missing.ResolvePassword(tmpDir); err == nil {
		t.Error("Expected error for missing password file")
	}
}

func TestSerializeConfig_MasksPassword(t *testing.T) {
	config := DefaultConfig()
	config.Device.BaseURL = "http://192.168.0.1/"
	config.Device.Password = "secret"

	buf, err := config.SerializeConfig()
	if err != nil {
		t.Fatalf("Expected no error: %v", err)
	}

	out := buf.String()
	if strings.Contains(out, "secret") {
		t.Errorf("Expected password to be masked, got:\n%s", out)
	}
	if !strings.Contains(out, `base_url = 'http://192.168.0.1/'`) {
		t.Errorf("Expected base_url in output, got:\n%s", out)
	}
	if config.Device.Password != "secret" {
		t.Errorf("Expected SerializeConfig not to modify the config")
	}

	roundTrip, err := ParseConfig(buf.Bytes())
	if err != nil {
		t.Fatalf("Expected serialized config to parse: %v", err)
	}
	if roundTrip.API.ListenAddr != DefaultListenAddr {
		t.Errorf("Unexpected listen address after round trip: %q", roundTrip.API.ListenAddr)
	}
}
