package api

import "github.com/maksimkurb/zte-goform/src/internal/goform"

// DataResponse wraps successful responses with a "data" field.
type DataResponse struct {
	Data interface{} `json:"data"`
}

// QueryResponse returns raw device values.
type QueryResponse struct {
	Values goform.Values `json:"values"`
}

// CommandResponse reports whether the device accepted a command.
type CommandResponse struct {
	Success bool `json:"success"`
}

// AuthResponse reports the session state.
type AuthResponse struct {
	Authenticated bool `json:"authenticated"`
}

// HealthCheckResponse returns health check results.
type HealthCheckResponse struct {
	Healthy bool   `json:"healthy"`
	Version string `json:"version,omitempty"`
}
