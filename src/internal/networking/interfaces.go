package networking

import "github.com/vishvananda/netlink"

// linkName resolves an interface index for log output.
func linkName(index int) string {
	if index <= 0 {
		return "<nil>"
	}
	link, err := netlink.LinkByIndex(index)
	if err != nil {
		return "<err: " + err.Error() + ">"
	}
	return link.Attrs().Name
}
