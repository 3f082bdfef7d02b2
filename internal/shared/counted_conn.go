package shared

import (
	"net"
	"sync/atomic"
)

// CountedConn wraps a net.Conn and counts the bytes written through it.
type CountedConn struct {
	net.Conn
	written atomic.Uint64
}

func NewCountedConn(conn net.Conn) *CountedConn {
	return &CountedConn{Conn: conn}
}

// Write writes to the underlying conn and adds to the written counter.
func (c *CountedConn) Write(b []byte) (int, error) {
	n, err := c.Conn.Write(b)
	if n > 0 {
		c.written.Add(uint64(n))
	}
	return n, err
}

// BytesWritten is the total handed to the transport so far.
func (c *CountedConn) BytesWritten() uint64 { return c.written.Load() }
