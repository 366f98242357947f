package mocks

// MockGatewayResolver is a mock implementation of the GatewayResolver interface.
//
// This allows testing base URL discovery without netlink access.
type MockGatewayResolver struct {
	// DefaultGatewayURLFunc is called by DefaultGatewayURL if not nil
	DefaultGatewayURLFunc func() (string, error)

	// Track calls for verification in tests
	DefaultGatewayURLCalls int
}

// DefaultGatewayURL returns the gateway base URL. Defaults to the usual ZTE
// LAN address.
func (m *MockGatewayResolver) DefaultGatewayURL() (string, error) {
	m.DefaultGatewayURLCalls++
	if m.DefaultGatewayURLFunc != nil {
		return m.DefaultGatewayURLFunc()
	}
	return "http://192.168.0.1/", nil
}
