package shared

import (
	"net"
	"sync/atomic"
)

// CountedConn wraps a net.Conn and atomically accounts the bytes
// flowing through it. The receiver logs the totals at session end.
type CountedConn struct {
	net.Conn
	uplink   atomic.Uint64
	downlink atomic.Uint64
}

// NewCountedConn wraps conn with zeroed counters.
func NewCountedConn(conn net.Conn) *CountedConn {
	return &CountedConn{Conn: conn}
}

// Read reads from the underlying connection and adds to the downlink
// counter. Counts are updated even on a short read that also returns
// an error.
func (c *CountedConn) Read(b []byte) (int, error) {
	n, err := c.Conn.Read(b)
	if n > 0 {
		c.downlink.Add(uint64(n))
	}
	return n, err
}

// Write writes to the underlying connection and adds to the uplink
// counter.
func (c *CountedConn) Write(b []byte) (int, error) {
	n, err := c.Conn.Write(b)
	if n > 0 {
		c.uplink.Add(uint64(n))
	}
	return n, err
}

// Stats returns a snapshot of the uplink and downlink byte totals.
func (c *CountedConn) Stats() (uplink, downlink uint64) {
	return c.uplink.Load(), c.downlink.Load()
}
