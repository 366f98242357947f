package networking

import (
	"fmt"
	"net"
	"net/url"
	"sort"

	"github.com/vishvananda/netlink"

	"github.com/maksimkurb/zte-goform/src/internal/log"
)

// GatewayResolver derives the device base URL from the default route.
type GatewayResolver struct {
	listRoutes func() ([]netlink.Route, error)
	linkName   func(index int) string
}

// NewGatewayResolver creates a resolver reading the main IPv4 routing table.
func NewGatewayResolver() *GatewayResolver {
	return &GatewayResolver{
		listRoutes: listMainIPv4Routes,
		linkName:   linkName,
	}
}

// DefaultGatewayURL returns "http://<gateway>/" for the preferred default route.
func (r *GatewayResolver) DefaultGatewayURL() (string, error) {
	routes, err := r.listRoutes()
	if err != nil {
		return "", fmt.Errorf("failed to list routes: %w", err)
	}

	route, err := SelectDefaultRoute(routes)
	if err != nil {
		return "", err
	}

	log.Debugf("Default gateway %s via dev %s [metric:%d]", route.Gw, r.linkName(route.LinkIndex), route.Priority)
	return BaseURLForGateway(route.Gw), nil
}

// SelectDefaultRoute picks the default IPv4 route with a gateway and the
// lowest metric.
func SelectDefaultRoute(routes []netlink.Route) (*netlink.Route, error) {
	var candidates []netlink.Route
	for _, route := range routes {
		if !isDefaultDst(route.Dst) || route.Gw == nil || route.Gw.To4() == nil {
			continue
		}
		candidates = append(candidates, route)
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("no default IPv4 route with a gateway")
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Priority < candidates[j].Priority
	})
	return &candidates[0], nil
}

// Default routes come back either without Dst or with 0.0.0.0/0 depending on
// the kernel and netlink version.
func isDefaultDst(dst *net.IPNet) bool {
	if dst == nil {
		return true
	}
	ones, _ := dst.Mask.Size()
	return ones == 0 && dst.IP.IsUnspecified()
}

// BaseURLForGateway formats the web UI address for a gateway IP.
func BaseURLForGateway(gw net.IP) string {
	u := url.URL{Scheme: "http", Host: gw.String(), Path: "/"}
	if gw.To4() == nil {
		u.Host = "[" + gw.String() + "]"
	}
	return u.String()
}
