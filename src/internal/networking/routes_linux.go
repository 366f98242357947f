//go:build linux

package networking

import (
	"github.com/vishvananda/netlink"
	"golang.org/x/sys/unix"

	"github.com/maksimkurb/zte-goform/src/internal/log"
)

func listMainIPv4Routes() ([]netlink.Route, error) {
	log.Debugf("Listing IPv4 routes in the main routing table")
	return netlink.RouteListFiltered(netlink.FAMILY_V4, &netlink.Route{Table: unix.RT_TABLE_MAIN}, netlink.RT_FILTER_TABLE)
}
