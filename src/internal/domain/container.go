package domain

import (
	"time"

	"github.com/maksimkurb/zte-goform/src/internal/errors"
	"github.com/maksimkurb/zte-goform/src/internal/goform"
	"github.com/maksimkurb/zte-goform/src/internal/log"
	"github.com/maksimkurb/zte-goform/src/internal/networking"
)

// AppDependencies is a dependency injection container that holds all application dependencies.
//
// Usage:
//
//	deps, err := domain.NewAppDependencies(domain.AppConfig{
//	    BaseURL:  "http://192.168.0.1/",
//	    Password: "secret",
//	})
//	values, err := deps.DeviceClient().Query([]string{"ppp_status"})
type AppDependencies struct {
	deviceClient DeviceClient
	gateway      GatewayResolver
}

// AppConfig holds configuration for creating application dependencies.
type AppConfig struct {
	// BaseURL of the device web UI. If empty, the default IPv4 gateway is used.
	BaseURL string

	// Password enables the privileged session.
	Password string

	Timeout   time.Duration
	Retries   int
	CacheTTL  time.Duration
	RateLimit float64

	// Session replaces the built-in session strategies (e.g. a browser bridge).
	Session goform.Session

	// Gateway overrides gateway discovery. Defaults to the netlink resolver.
	Gateway GatewayResolver
}

// NewAppDependencies creates a new dependency container with production implementations.
func NewAppDependencies(cfg AppConfig) (*AppDependencies, error) {
	gateway := cfg.Gateway
	if gateway == nil {
		gateway = networking.NewGatewayResolver()
	}

	// A supplied session reaches the device its own way.
	baseURL := cfg.BaseURL
	if baseURL == "" && cfg.Session == nil {
		discovered, err := gateway.DefaultGatewayURL()
		if err != nil {
			return nil, errors.NewConfigError("base URL is not configured and the default gateway could not be discovered", err)
		}
		log.Infof("Using default gateway %s as device address", discovered)
		baseURL = discovered
	}

	client, err := goform.NewClient(goform.Options{
		BaseURL:   baseURL,
		Password:  cfg.Password,
		Timeout:   cfg.Timeout,
		Retries:   cfg.Retries,
		CacheTTL:  cfg.CacheTTL,
		RateLimit: cfg.RateLimit,
		Session:   cfg.Session,
	})
	if err != nil {
		return nil, err
	}

	return &AppDependencies{
		deviceClient: client,
		gateway:      gateway,
	}, nil
}

// NewTestDependencies creates a dependency container around a prepared client.
func NewTestDependencies(client DeviceClient) *AppDependencies {
	return &AppDependencies{deviceClient: client}
}

// DeviceClient returns the device client.
func (d *AppDependencies) DeviceClient() DeviceClient {
	return d.deviceClient
}
