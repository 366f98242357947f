// Package domain defines core interfaces for dependency injection and abstraction.
//
// This package contains the fundamental interfaces that enable loose coupling between
// components and facilitate testing through dependency injection.
package domain

import "github.com/maksimkurb/zte-goform/src/internal/goform"

// DeviceClient is what commands and the REST bridge need from a device
// connection.
//
// *goform.Client implements it; tests use mocks.MockDeviceClient.
type DeviceClient interface {
	goform.Session

	// Login authenticates unless the device already considers the session
	// logged in. It is a no-op for public sessions.
	Login() error

	// ClearCache drops cached query responses.
	ClearCache()
}

// GatewayResolver finds the device address when none is configured.
type GatewayResolver interface {
	// DefaultGatewayURL returns the base URL of the default IPv4 gateway,
	// e.g. "http://192.168.0.1/".
	DefaultGatewayURL() (string, error)
}
