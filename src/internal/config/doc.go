// Package config handles configuration file parsing and validation for zte-goform.
//
// This package reads TOML configuration files and provides strongly-typed
// structures for accessing configuration data. Missing values are filled with
// defaults, and validation reports every problem at once.
//
// # Configuration Structure
//
// The configuration file defines:
//   - Device settings (web UI address, password, timeouts, retry budget, cache TTL)
//   - REST bridge settings (listen address)
//
// Example:
//
//	[device]
//	base_url = "http://192.168.0.1/"
//	password_file = "password.txt"
//	timeout_seconds = 10
//	retries = 5
//	cache_ttl_seconds = 5
//
//	[api]
//	listen_addr = "127.0.0.1:8090"
//
// # Example Usage
//
//	cfg, err := config.LoadConfig("/etc/zte-goform/config.toml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := cfg.ValidateConfig(); err != nil {
//	    log.Fatal(err)
//	}
//	password, err := cfg.Device.ResolvePassword(cfg.GetConfigDir())
package config
