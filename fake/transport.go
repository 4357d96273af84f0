// File: fake/transport.go
// Package fake provides scriptable collaborators for tests.
// License: Apache-2.0

package fake

import (
	"bytes"
	"io"
	"net"
	"sync"

	"github.com/wang663632304/AndroidSocketIO/api"
)

// Transport is an in-memory api.Transport. Tests feed inbound bytes with
// Feed and inspect outbound bytes with Written or TakeWritten. Writes stay
// in a pending buffer until Flush, so the capture only ever holds complete
// flushed units. Reads block until bytes arrive; Close unblocks pending
// reads and further reads report end-of-stream. Close is idempotent.
type Transport struct {
	mu      sync.Mutex
	cond    *sync.Cond
	inbox   bytes.Buffer
	pending bytes.Buffer
	outbox  bytes.Buffer
	closed  bool
}

var _ api.Transport = (*Transport)(nil)

// NewTransport returns an open transport with empty buffers.
func NewTransport() *Transport {
	t := &Transport{}
	t.cond = sync.NewCond(&t.mu)
	return t
}

// Feed appends p to the inbound stream and wakes blocked readers.
func (t *Transport) Feed(p []byte) {
	t.mu.Lock()
	t.inbox.Write(p)
	t.cond.Broadcast()
	t.mu.Unlock()
}

// FeedString appends s to the inbound stream.
func (t *Transport) FeedString(s string) {
	t.Feed([]byte(s))
}

// Read blocks until inbound bytes are available or the transport closes.
func (t *Transport) Read(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for t.inbox.Len() == 0 && !t.closed {
		t.cond.Wait()
	}
	if t.inbox.Len() == 0 {
		return 0, io.EOF
	}
	return t.inbox.Read(p)
}

// Write buffers outbound bytes. It fails once the transport is closed.
func (t *Transport) Write(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return 0, net.ErrClosed
	}
	return t.pending.Write(p)
}

// Flush moves pending bytes into the capture.
func (t *Transport) Flush() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return net.ErrClosed
	}
	t.outbox.Write(t.pending.Bytes())
	t.pending.Reset()
	return nil
}

// Close marks the transport closed and wakes blocked readers.
func (t *Transport) Close() error {
	t.mu.Lock()
	t.closed = true
	t.cond.Broadcast()
	t.mu.Unlock()
	return nil
}

// Closed reports whether Close has been called.
func (t *Transport) Closed() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.closed
}

// Written returns a copy of every outbound byte captured so far.
func (t *Transport) Written() []byte {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]byte(nil), t.outbox.Bytes()...)
}

// TakeWritten returns the captured outbound bytes and resets the capture.
func (t *Transport) TakeWritten() []byte {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := append([]byte(nil), t.outbox.Bytes()...)
	t.outbox.Reset()
	return out
}
