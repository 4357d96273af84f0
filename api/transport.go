// File: api/transport.go
// License: Apache-2.0
//
// Defines the byte-stream transport abstraction the connection state
// machine drives, and the dialer factory that produces it.

package api

import "io"

// Transport abstracts a bidirectional, ordered, reliable byte stream.
// Reads and writes block; the connection owns the transport exclusively
// between Connecting and the return to Disconnected.
type Transport interface {
	io.Reader
	io.Writer

	// Flush pushes any buffered outbound bytes to the wire.
	Flush() error

	// Close tears down the stream. It must be safe to call more than once
	// and from a goroutine other than the one blocked in Read.
	Close() error
}

// Dialer produces a plaintext or TLS-wrapped Transport for a host and port.
type Dialer interface {
	Dial(host string, port int, useTLS bool) (Transport, error)
}
