package commands

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/maksimkurb/zte-goform/src/internal/config"
	"github.com/maksimkurb/zte-goform/src/internal/domain"
	"github.com/maksimkurb/zte-goform/src/internal/log"
)

type Runner interface {
	Init(args []string, globalArgs *AppContext) error
	Run() error
	Name() string
}

type AppContext struct {
	ConfigPath string
	Verbose    bool

	// ConfigOptional allows running with defaults when ConfigPath does not exist.
	ConfigOptional bool

	// BaseURL and Password override the config file when set.
	BaseURL  string
	Password string

	// Stdout receives command output. Defaults to os.Stdout.
	Stdout io.Writer

	// Deps, when set, is used instead of building a client from config.
	Deps *domain.AppDependencies
}

func (ctx *AppContext) stdout() io.Writer {
	if ctx.Stdout == nil {
		return os.Stdout
	}
	return ctx.Stdout
}

// loadAndValidateConfigOrFail loads configuration from file and validates it.
func loadAndValidateConfigOrFail(ctx *AppContext) (*config.Config, error) {
	cfg, err := config.LoadConfig(ctx.ConfigPath)
	if err != nil {
		if !ctx.ConfigOptional || !isNotExist(ctx.ConfigPath) {
			return nil, fmt.Errorf("failed to load configuration: %v", err)
		}
		log.Debugf("Configuration file %s not found, using defaults", ctx.ConfigPath)
		cfg = config.DefaultConfig()
	}

	if ctx.BaseURL != "" {
		cfg.Device.BaseURL = ctx.BaseURL
	}
	if ctx.Password != "" {
		cfg.Device.Password = ctx.Password
		cfg.Device.PasswordFile = ""
	}

	if err := cfg.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %v", err)
	}

	return cfg, nil
}

func isNotExist(path string) bool {
	_, err := os.Stat(path)
	return errors.Is(err, os.ErrNotExist)
}

// dependenciesFromConfig builds the device client described by cfg.
func dependenciesFromConfig(cfg *config.Config) (*domain.AppDependencies, error) {
	password, err := cfg.Device.ResolvePassword(cfg.GetConfigDir())
	if err != nil {
		return nil, err
	}

	return domain.NewAppDependencies(domain.AppConfig{
		BaseURL:   cfg.Device.BaseURL,
		Password:  password,
		Timeout:   cfg.Device.Timeout(),
		Retries:   cfg.Device.Retries,
		CacheTTL:  cfg.Device.CacheTTL(),
		RateLimit: cfg.Device.RateLimitPerSecond,
	})
}

// initDependencies returns ctx.Deps or builds them from the config file.
func initDependencies(ctx *AppContext) (*domain.AppDependencies, *config.Config, error) {
	if ctx.Deps != nil {
		return ctx.Deps, config.DefaultConfig(), nil
	}

	cfg, err := loadAndValidateConfigOrFail(ctx)
	if err != nil {
		return nil, nil, err
	}

	deps, err := dependenciesFromConfig(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create device client: %w", err)
	}
	return deps, cfg, nil
}
