package connector

import (
	"fmt"
	"net"
	"strconv"
	"strings"
)

const (
	DefaultHost = "127.0.0.1"
	DefaultPort = Port(5050)
)

// Port represents a TCP port.
type Port uint16

// PortFromInt converts an integer to a Port.
// @error when the integer is negative or larger than 65535
func PortFromInt(val int) (Port, error) {
	if val < 0 || val > 65535 {
		return Port(0), fmt.Errorf("invalid port range: %d", val)
	}
	return Port(val), nil
}

// PortFromString converts a decimal string to a Port.
func PortFromString(s string) (Port, error) {
	val, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return Port(0), fmt.Errorf("invalid port %q: %w", s, err)
	}
	if val > 65535 {
		return Port(0), fmt.Errorf("invalid port range: %d", val)
	}
	return Port(val), nil
}

func (p Port) Value() uint16 {
	return uint16(p)
}

func (p Port) String() string {
	return strconv.Itoa(int(p))
}

// Endpoint identifies the server to contact. It is a value type and is
// never mutated once built.
type Endpoint struct {
	Host string
	Port Port
}

// DefaultEndpoint returns 127.0.0.1:5050.
func DefaultEndpoint() Endpoint {
	return Endpoint{Host: DefaultHost, Port: DefaultPort}
}

// NewEndpoint validates host and port and builds an Endpoint.
func NewEndpoint(host string, port int) (Endpoint, error) {
	host = strings.TrimSpace(host)
	if host == "" {
		return Endpoint{}, fmt.Errorf("invalid endpoint: empty host")
	}
	p, err := PortFromInt(port)
	if err != nil {
		return Endpoint{}, fmt.Errorf("invalid endpoint: %w", err)
	}
	return Endpoint{Host: host, Port: p}, nil
}

// ParseEndpoint parses "host:port" (IPv6 hosts in brackets).
func ParseEndpoint(s string) (Endpoint, error) {
	host, portStr, err := net.SplitHostPort(strings.TrimSpace(s))
	if err != nil {
		return Endpoint{}, fmt.Errorf("invalid endpoint %q: %w", s, err)
	}
	if host == "" {
		return Endpoint{}, fmt.Errorf("invalid endpoint %q: empty host", s)
	}
	p, err := PortFromString(portStr)
	if err != nil {
		return Endpoint{}, fmt.Errorf("invalid endpoint %q: %w", s, err)
	}
	return Endpoint{Host: host, Port: p}, nil
}

// Address returns the dialable host:port form.
func (e Endpoint) Address() string {
	return net.JoinHostPort(e.Host, e.Port.String())
}

func (e Endpoint) String() string {
	return "tcp:" + e.Address()
}
