// File: transport/tcp/conn.go
// License: Apache-2.0
//
// Adapts a net.Conn to api.Transport: buffered writes, idempotent close.

package tcp

import (
	"bufio"
	"net"
	"sync"
)

// conn wraps a net.Conn with a buffered writer. Close is a no-op after the
// first call, so an interrupt path and a teardown path may both close it.
type conn struct {
	nc net.Conn
	bw *bufio.Writer

	once   sync.Once
	closeE error
}

func newConn(nc net.Conn) *conn {
	return &conn{nc: nc, bw: bufio.NewWriter(nc)}
}

func (c *conn) Read(p []byte) (int, error) {
	return c.nc.Read(p)
}

func (c *conn) Write(p []byte) (int, error) {
	return c.bw.Write(p)
}

func (c *conn) Flush() error {
	return c.bw.Flush()
}

func (c *conn) Close() error {
	c.once.Do(func() { c.closeE = c.nc.Close() })
	return c.closeE
}
