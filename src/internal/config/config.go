package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/maksimkurb/zte-goform/src/internal/log"
)

// LoadConfig reads a TOML config file and fills defaults. It does not validate.
func LoadConfig(configPath string) (*Config, error) {
	configFile := filepath.Clean(configPath)

	if !filepath.IsAbs(configFile) {
		if path, err := filepath.Abs(configFile); err != nil {
			return nil, fmt.Errorf("failed to get absolute path: %v", err)
		} else {
			configFile = path
		}
	}

	content, err := os.ReadFile(configFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("configuration file not found: %s", configFile)
		}
		return nil, fmt.Errorf("failed to read config file: %v", err)
	}

	config, err := ParseConfig(content)
	if err != nil {
		return nil, err
	}
	config._absConfigFilePath = configFile

	log.Debugf("Configuration file path: %s", configFile)

	return config, nil
}

// ParseConfig decodes TOML content and fills defaults.
func ParseConfig(content []byte) (*Config, error) {
	var config Config
	dec := toml.NewDecoder(bytes.NewReader(content))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&config); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			log.Errorf("%s", derr.String())
			row, col := derr.Position()
			log.Errorf("Error at line %d, column %d", row, col)
			return nil, fmt.Errorf("failed to parse config file: %s (line %d, column %d)", derr.Error(), row, col)
		}
		var serr *toml.StrictMissingError
		if errors.As(err, &serr) {
			return nil, fmt.Errorf("failed to parse config file: %s", serr.String())
		}
		return nil, fmt.Errorf("failed to parse config file: %v", err)
	}

	config.ApplyDefaults()
	return &config, nil
}

// SerializeConfig renders the config as TOML. Inline passwords are masked.
func (c *Config) SerializeConfig() (*bytes.Buffer, error) {
	masked := *c
	if c.Device != nil {
		device := *c.Device
		if device.Password != "" {
			device.Password = "********"
		}
		masked.Device = &device
	}

	buf := bytes.Buffer{}
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(&masked); err != nil {
		return nil, err
	}
	return &buf, nil
}
