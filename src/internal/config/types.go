package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/maksimkurb/zte-goform/src/internal/utils"
)

// Defaults applied to zero values.
const (
	DefaultTimeoutSeconds  = 10
	DefaultRetries         = 5
	DefaultCacheTTLSeconds = 5
	DefaultListenAddr      = "127.0.0.1:8090"
)

type Config struct {
	// Device holds the router connection settings.
	Device *DeviceConfig `toml:"device" json:"device"`
	// API holds the local REST bridge settings.
	API *APIConfig `toml:"api" json:"api"`

	_absConfigFilePath string
}

type DeviceConfig struct {
	// BaseURL is the router web UI address (empty = default IPv4 gateway).
	BaseURL string `toml:"base_url" json:"base_url" validate:"base_url_or_empty"`
	// Password enables the authenticated session. Sent base64-encoded, never logged.
	Password string `toml:"password,omitempty" json:"-"`
	// PasswordFile reads the password from a file, relative to the config directory.
	PasswordFile string `toml:"password_file,omitempty" json:"password_file,omitempty"`
	// TimeoutSeconds bounds each HTTP attempt (default: 10).
	TimeoutSeconds int `toml:"timeout_seconds" json:"timeout_seconds" validate:"min=1,max=300"`
	// Retries is the number of attempts made before a timeout is reported (default: 5).
	Retries int `toml:"retries" json:"retries" validate:"min=1,max=100"`
	// CacheTTLSeconds is how long query responses stay fresh (default: 5).
	CacheTTLSeconds int `toml:"cache_ttl_seconds" json:"cache_ttl_seconds" validate:"min=1,max=3600"`
	// RateLimitPerSecond spaces device requests (0 = unlimited).
	RateLimitPerSecond float64 `toml:"rate_limit_per_second" json:"rate_limit_per_second" validate:"min=0"`
}

type APIConfig struct {
	// ListenAddr is the host:port of the REST bridge (default: 127.0.0.1:8090).
	ListenAddr string `toml:"listen_addr" json:"listen_addr" validate:"required,listen_addr"`
}

// DefaultConfig returns a configuration with every default filled in.
func DefaultConfig() *Config {
	c := &Config{}
	c.ApplyDefaults()
	return c
}

// ApplyDefaults fills zero values.
func (c *Config) ApplyDefaults() {
	if c.Device == nil {
		c.Device = &DeviceConfig{}
	}
	if c.Device.TimeoutSeconds == 0 {
		c.Device.TimeoutSeconds = DefaultTimeoutSeconds
	}
	if c.Device.Retries == 0 {
		c.Device.Retries = DefaultRetries
	}
	if c.Device.CacheTTLSeconds == 0 {
		c.Device.CacheTTLSeconds = DefaultCacheTTLSeconds
	}

	if c.API == nil {
		c.API = &APIConfig{}
	}
	if c.API.ListenAddr == "" {
		c.API.ListenAddr = DefaultListenAddr
	}
}

// GetConfigDir returns the directory of the loaded config file, or "" for
// configs that were not read from disk.
func (c *Config) GetConfigDir() string {
	if c._absConfigFilePath == "" {
		return ""
	}
	return filepath.Dir(c._absConfigFilePath)
}

// GetConfigFilePath returns the absolute path the config was loaded from.
func (c *Config) GetConfigFilePath() string {
	return c._absConfigFilePath
}

// Timeout returns the per-attempt timeout.
func (d *DeviceConfig) Timeout() time.Duration {
	return time.Duration(d.TimeoutSeconds) * time.Second
}

// CacheTTL returns the query cache freshness window.
func (d *DeviceConfig) CacheTTL() time.Duration {
	return time.Duration(d.CacheTTLSeconds) * time.Second
}

// ResolvePassword returns the inline password or the trimmed contents of
// PasswordFile, resolved against configDir.
func (d *DeviceConfig) ResolvePassword(configDir string) (string, error) {
	if d.PasswordFile == "" {
		return d.Password, nil
	}

	path := utils.GetAbsolutePath(d.PasswordFile, configDir)
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read password file: %w", err)
	}
	return strings.TrimRight(string(content), "\r\n"), nil
}
