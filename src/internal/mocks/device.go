// Package mocks provides mock implementations for testing.
//
// This package should ONLY be imported in test files (_test.go).
// The Go toolchain will automatically exclude this package from production builds
// since it's not imported in any production code.
package mocks

import (
	"github.com/maksimkurb/zte-goform/src/internal/goform"
)

// MockDeviceClient is a mock implementation of the DeviceClient interface.
//
// It allows tests to provide custom behavior for each method through function fields.
// If a function field is nil, a sensible default implementation is used.
//
// Example usage:
//
//	mock := &MockDeviceClient{
//	    QueryFunc: func(keys []string) (goform.Values, error) {
//	        return goform.Values{"ppp_status": "ppp_disconnected"}, nil
//	    },
//	}
//	conn, err := models.FetchConnection(mock)
type MockDeviceClient struct {
	// QueryFunc is called by Query if not nil
	QueryFunc func(keys []string) (goform.Values, error)

	// CommandFunc is called by Command if not nil
	CommandFunc func(fields goform.Fields) (bool, error)

	// IsAuthenticatedFunc is called by IsAuthenticated if not nil
	IsAuthenticatedFunc func() bool

	// LoginFunc is called by Login if not nil
	LoginFunc func() error

	// Track calls for verification in tests
	QueryCalls           [][]string
	CommandCalls         []goform.Fields
	IsAuthenticatedCalls int
	LoginCalls           int
	ClearCacheCalls      int
}

// NewMockDeviceClient creates a mock backed by a fixed response map. Query
// returns only the requested keys; absent keys come back as "" the way the
// device reports them.
func NewMockDeviceClient(values goform.Values) *MockDeviceClient {
	return &MockDeviceClient{
		QueryFunc: func(keys []string) (goform.Values, error) {
			result := make(goform.Values, len(keys))
			for _, key := range keys {
				if v, ok := values[key]; ok {
					result[key] = v
				} else {
					result[key] = ""
				}
			}
			return result, nil
		},
	}
}

// Query reads keys from the device.
//
// If QueryFunc is set, it calls that function.
// Otherwise, returns an empty response.
func (m *MockDeviceClient) Query(keys []string) (goform.Values, error) {
	m.QueryCalls = append(m.QueryCalls, append([]string(nil), keys...))
	if m.QueryFunc != nil {
		return m.QueryFunc(keys)
	}
	return goform.Values{}, nil
}

// Command applies a write.
//
// If CommandFunc is set, it calls that function.
// Otherwise, the device accepts every command.
func (m *MockDeviceClient) Command(fields goform.Fields) (bool, error) {
	m.CommandCalls = append(m.CommandCalls, fields.Clone())
	if m.CommandFunc != nil {
		return m.CommandFunc(fields)
	}
	return true, nil
}

// IsAuthenticated reports the session state. Defaults to false.
func (m *MockDeviceClient) IsAuthenticated() bool {
	m.IsAuthenticatedCalls++
	if m.IsAuthenticatedFunc != nil {
		return m.IsAuthenticatedFunc()
	}
	return false
}

// Login authenticates. Defaults to success.
func (m *MockDeviceClient) Login() error {
	m.LoginCalls++
	if m.LoginFunc != nil {
		return m.LoginFunc()
	}
	return nil
}

// ClearCache records the call.
func (m *MockDeviceClient) ClearCache() {
	m.ClearCacheCalls++
}
