// Package networking discovers the device address from the host's routing
// table.
//
// ZTE routers serve their web UI on the LAN gateway address, so when no base
// URL is configured the default IPv4 gateway of the main routing table is a
// good guess. Discovery uses netlink and is only available on Linux.
//
// # Example Usage
//
//	resolver := networking.NewGatewayResolver()
//	baseURL, err := resolver.DefaultGatewayURL()
//	if err != nil {
//	    log.Fatalf("no device address: %v", err)
//	}
//	// baseURL == "http://192.168.0.1/"
package networking
