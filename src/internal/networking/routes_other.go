//go:build !linux

package networking

import (
	"errors"

	"github.com/vishvananda/netlink"
)

func listMainIPv4Routes() ([]netlink.Route, error) {
	return nil, errors.New("default gateway discovery is only supported on Linux, set device.base_url")
}
