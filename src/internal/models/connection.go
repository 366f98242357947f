package models

import (
	"fmt"

	"github.com/maksimkurb/zte-goform/src/internal/errors"
	"github.com/maksimkurb/zte-goform/src/internal/goform"
)

// ConnectionKeys are queried together in this order.
var ConnectionKeys = []string{
	"ppp_status",
	"lte_rsrp",
	"Z5g_rsrp",
	"msisdn_prepaid",
	"wan_ipaddr",
	"ipv6_wan_ipaddr",
}

// WAN states reported in ppp_status.
const (
	StateConnected    = "ipv4_ipv6_connected"
	StateDisconnected = "ppp_disconnected"
	StateConnecting   = "ppp_connecting"
)

// goformId values for switching the WAN link.
const (
	GoformConnect    = "CONNECT_NETWORK"
	GoformDisconnect = "DISCONNECT_NETWORK"
)

// Connection is a snapshot of the WAN link. Signal strength and addresses are
// private values.
type Connection struct {
	session goform.Session
	values  goform.Values
}

// FetchConnection queries the connection keys through s.
func FetchConnection(s goform.Session) (*Connection, error) {
	values, err := s.Query(ConnectionKeys)
	if err != nil {
		return nil, err
	}
	return NewConnection(s, values), nil
}

// NewConnection wraps an already fetched response. s is consulted only to
// tell "not revealed" from "not reported" for private values.
func NewConnection(s goform.Session, values goform.Values) *Connection {
	return &Connection{session: s, values: values}
}

// State returns ppp_status, e.g. "ipv4_ipv6_connected".
func (c *Connection) State() string {
	return c.values.String("ppp_status")
}

// IsConnected treats every state other than disconnected/connecting as up;
// firmware variants report several connected states (ipv4_connected, ...).
func (c *Connection) IsConnected() bool {
	state := c.State()
	return state == StateConnected || (state != StateDisconnected && state != StateConnecting)
}

// SignalStrengthLTE returns the LTE RSRP in dBm.
func (c *Connection) SignalStrengthLTE() (int64, error) {
	return c.privateInt("lte_rsrp")
}

// SignalStrength5G returns the 5G RSRP in dBm.
func (c *Connection) SignalStrength5G() (int64, error) {
	return c.privateInt("Z5g_rsrp")
}

// MobileNumber returns the SIM's MSISDN when the device knows it.
func (c *Connection) MobileNumber() (string, error) {
	return c.privateString("msisdn_prepaid")
}

// WANIPv4 returns the WAN IPv4 address. Behind carrier NAT this is not the
// public address.
func (c *Connection) WANIPv4() (string, error) {
	return c.privateString("wan_ipaddr")
}

// WANIPv6 returns the WAN IPv6 address.
func (c *Connection) WANIPv6() (string, error) {
	return c.privateString("ipv6_wan_ipaddr")
}

func (c *Connection) privateString(key string) (string, error) {
	if err := c.checkPrivate(key); err != nil {
		return "", err
	}
	return c.values.String(key), nil
}

func (c *Connection) privateInt(key string) (int64, error) {
	if err := c.checkPrivate(key); err != nil {
		return 0, err
	}
	n, _ := c.values.Int(key)
	return n, nil
}

func (c *Connection) checkPrivate(key string) error {
	if c.values.Has(key) || c.session.IsAuthenticated() {
		return nil
	}
	return errors.NewAccessError(
		fmt.Sprintf("%s is private and the session is not authenticated", key), nil)
}

// ConnectionInfo is a flattened, serializable view of a Connection. Private
// fields are left empty when they could not be read.
type ConnectionInfo struct {
	State     string `json:"state"`
	Connected bool   `json:"connected"`
	SignalLTE *int64 `json:"signal_lte,omitempty"`
	Signal5G  *int64 `json:"signal_5g,omitempty"`
	WANIPv4   string `json:"wan_ipv4,omitempty"`
	WANIPv6   string `json:"wan_ipv6,omitempty"`
	// Private is false when private values were withheld by the device.
	Private bool `json:"private"`
}

// Info flattens the connection, probing authentication at most once.
func (c *Connection) Info() ConnectionInfo {
	info := ConnectionInfo{
		State:     c.State(),
		Connected: c.IsConnected(),
		WANIPv4:   c.values.String("wan_ipaddr"),
		WANIPv6:   c.values.String("ipv6_wan_ipaddr"),
	}
	if n, ok := c.values.Int("lte_rsrp"); ok {
		info.SignalLTE = &n
	}
	if n, ok := c.values.Int("Z5g_rsrp"); ok {
		info.Signal5G = &n
	}

	revealed := false
	for _, key := range []string{"lte_rsrp", "Z5g_rsrp", "wan_ipaddr", "ipv6_wan_ipaddr"} {
		if c.values.Has(key) {
			revealed = true
			break
		}
	}
	info.Private = revealed || c.session.IsAuthenticated()
	return info
}

// TemplateValues exposes the connection as strings for output templates.
func (c *Connection) TemplateValues() map[string]any {
	info := c.Info()
	values := map[string]any{
		"state":      info.State,
		"connected":  formatBool(info.Connected),
		"wan_ipv4":   info.WANIPv4,
		"wan_ipv6":   info.WANIPv6,
		"signal_lte": "",
		"signal_5g":  "",
	}
	if info.SignalLTE != nil {
		values["signal_lte"] = formatInt(*info.SignalLTE)
	}
	if info.Signal5G != nil {
		values["signal_5g"] = formatInt(*info.Signal5G)
	}
	return values
}

// Connect brings the WAN link up.
func Connect(s goform.Session) (bool, error) {
	return switchNetwork(s, GoformConnect)
}

// Disconnect takes the WAN link down.
func Disconnect(s goform.Session) (bool, error) {
	return switchNetwork(s, GoformDisconnect)
}

func switchNetwork(s goform.Session, goformID string) (bool, error) {
	return s.Command(goform.Fields{
		goform.FieldIsTest:      "false",
		goform.FieldNotCallback: "true",
		goform.FieldGoformID:    goformID,
	})
}
