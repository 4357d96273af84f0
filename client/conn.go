// File: client/conn.go
// Package client implements the WebSocket connection state machine: one
// goroutine runs the blocking receive loop inside Connect, any number of
// goroutines send concurrently, and Interrupt winds the connection down
// synchronously from any goroutine.
// License: Apache-2.0

package client

import (
	"fmt"
	"sync"

	"github.com/wang663632304/AndroidSocketIO/api"
	"github.com/wang663632304/AndroidSocketIO/protocol"
	"github.com/wang663632304/AndroidSocketIO/transport/tcp"
)

// State is the connection lifecycle position.
type State int

const (
	Disconnected State = iota
	Connecting
	Connected
	Disconnecting
)

// String returns the lifecycle state name.
func (s State) String() string {
	switch s {
	case Disconnected:
		return "disconnected"
	case Connecting:
		return "connecting"
	case Connected:
		return "connected"
	case Disconnecting:
		return "disconnecting"
	default:
		return "invalid"
	}
}

// Config carries the collaborators a Conn needs. Zero values select the
// TCP/TLS dialer and the operating-system entropy source.
type Config struct {
	Dialer  api.Dialer
	Entropy *protocol.Entropy
}

// Conn drives one logical WebSocket session. A Conn is not reusable while
// a run is in flight; a fresh Connect may reuse it only once the state has
// returned to Disconnected.
//
// Two locks exist. mu guards the state and the pending-write counter and
// is never held across a blocking socket write. writeMu serializes frame
// writes so concurrent senders never interleave bytes, and is never held
// across a wait on mu.
type Conn struct {
	listener api.Listener
	dialer   api.Dialer
	entropy  *protocol.Entropy

	mu      sync.Mutex
	cond    *sync.Cond
	state   State
	writing int

	transport api.Transport
	reader    *protocol.Reader
	writer    *protocol.Writer

	writeMu sync.Mutex
}

// New constructs a connection delivering events to listener.
func New(listener api.Listener, cfg Config) (*Conn, error) {
	if listener == nil {
		return nil, fmt.Errorf("%w: listener cannot be nil", api.ErrInvalidArgument)
	}
	if cfg.Dialer == nil {
		cfg.Dialer = &tcp.Dialer{}
	}
	if cfg.Entropy == nil {
		cfg.Entropy = protocol.SystemEntropy()
	}
	c := &Conn{
		listener: listener,
		dialer:   cfg.Dialer,
		entropy:  cfg.Entropy,
	}
	c.cond = sync.NewCond(&c.mu)
	return c, nil
}

// State reports the current lifecycle position.
func (c *Conn) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Connect dials uri (ws or wss scheme), performs the upgrade handshake,
// notifies the listener and runs the receive loop. It occupies the calling
// goroutine for the whole connection lifetime, returning only on failure
// or interruption, and must not be called concurrently with itself.
//
// Any failure unwinds this single call and returns the connection to
// Disconnected; retry policy belongs to the caller. If an interrupt was in
// progress when the failure surfaced, api.ErrInterrupted is returned in
// place of the underlying error.
func (c *Conn) Connect(uri string) error {
	t, err := parseTarget(uri)
	if err != nil {
		return err
	}

	c.mu.Lock()
	if c.state != Disconnected {
		c.mu.Unlock()
		return fmt.Errorf("%w: connect requires a disconnected connection, state is %s", api.ErrInvalidArgument, c.state)
	}
	c.toState(Connecting)
	c.mu.Unlock()

	if err := c.handshake(t); err != nil {
		return c.finish(err)
	}

	c.mu.Lock()
	if c.state == Disconnecting {
		// Interrupt arrived between the handshake and this transition;
		// the lifecycle never moves backwards out of Disconnecting.
		c.mu.Unlock()
		return c.finish(api.ErrInterrupted)
	}
	c.toState(Connected)
	c.mu.Unlock()

	c.listener.OnConnected()

	for err == nil {
		err = c.readOnce()
	}
	return c.finish(err)
}

// SendStringMessage frames message as a text frame. Safe to call from any
// goroutine between OnConnected and teardown; blocks until written.
func (c *Conn) SendStringMessage(message string) error {
	return c.SendMessage(protocol.OpcodeText, []byte(message))
}

// SendByteMessage frames payload as a binary frame. When a masking key is
// available the payload is masked in place, so the caller's buffer is
// modified. Safe to call from any goroutine; blocks until written.
func (c *Conn) SendByteMessage(payload []byte) error {
	return c.SendMessage(protocol.OpcodeBinary, payload)
}

// SendMessage frames and writes one message with the given opcode. It
// fails with api.ErrNotConnected outside the Connected state without
// touching the transport. An I/O failure is reported as api.ErrInterrupted
// when an interrupt is in progress.
func (c *Conn) SendMessage(opcode protocol.Opcode, payload []byte) error {
	c.mu.Lock()
	if c.state != Connected {
		c.mu.Unlock()
		return api.ErrNotConnected
	}
	w := c.writer
	c.writing++
	c.mu.Unlock()

	err := c.writeFrame(w, opcode, payload)

	c.mu.Lock()
	c.writing--
	if err != nil && c.state == Disconnecting {
		err = api.ErrInterrupted
	}
	c.cond.Broadcast()
	c.mu.Unlock()
	return err
}

// Interrupt aborts the connection from any goroutine. It blocks until a
// connection attempt has actually started, forces the transport closed,
// and returns only once Connect has unwound and every in-flight send has
// drained. Repeated interrupts are safe; only the first has effect.
func (c *Conn) Interrupt() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for c.state == Disconnected {
		c.cond.Wait()
	}
	if c.state == Connecting || c.state == Connected {
		if c.transport != nil {
			c.transport.Close() // unblocks the receive loop; error ignored
		}
		c.toState(Disconnecting)
	}
	for c.state != Disconnected {
		c.cond.Wait()
	}
}

// handshake dials the transport and completes the HTTP upgrade exchange.
func (c *Conn) handshake(t target) error {
	tr, err := c.dialer.Dial(t.host, t.port, t.useTLS)
	if err != nil {
		return err
	}

	c.mu.Lock()
	if c.state == Disconnecting {
		// Interrupt won the race before the transport existed.
		c.mu.Unlock()
		tr.Close()
		return api.ErrInterrupted
	}
	c.transport = tr
	c.reader = protocol.NewReader(tr)
	c.writer = protocol.NewWriter(tr)
	c.mu.Unlock()

	key := protocol.HandshakeKey(c.entropy)
	if err := protocol.WriteUpgradeRequest(c.writer, t.handshake, key); err != nil {
		return err
	}
	return protocol.ReadUpgradeResponse(c.reader, key)
}

// readOnce decodes one frame and dispatches it to the listener.
func (c *Conn) readOnce() error {
	frame, err := protocol.ReadFrame(c.reader)
	if err != nil {
		return err
	}
	return c.dispatch(frame)
}

// dispatch routes one decoded frame. Ping frames are answered with a pong
// echoing the payload before the loop resumes.
func (c *Conn) dispatch(f *protocol.Frame) error {
	switch f.Opcode {
	case protocol.OpcodeContinuation:
		return api.NewProtocolError(api.CodeUnsupported, "fragmented frames are not supported")
	case protocol.OpcodeText:
		c.listener.OnStringMessage(string(f.Payload))
	case protocol.OpcodeBinary:
		c.listener.OnBinaryMessage(f.Payload)
	case protocol.OpcodeClose:
		c.listener.OnServerRequestedClose(f.Payload)
	case protocol.OpcodePing:
		c.listener.OnPing(f.Payload)
		// Echo a copy; masking mutates the outbound buffer in place.
		echo := append([]byte(nil), f.Payload...)
		if err := c.SendMessage(protocol.OpcodePong, echo); err != nil {
			return err
		}
	case protocol.OpcodePong:
		c.listener.OnPong(f.Payload)
	default:
		c.listener.OnUnknownMessage(f.Payload)
	}
	return nil
}

// writeFrame serializes one masked frame under the write lock.
func (c *Conn) writeFrame(w *protocol.Writer, opcode protocol.Opcode, payload []byte) error {
	var mask *[4]byte
	if key, ok := c.entropy.Mask(); ok {
		mask = &key
	}
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return protocol.WriteFrame(w, true, opcode, mask, payload)
}

// finish waits for in-flight sends to drain, classifies err, discards the
// transport and returns the connection to Disconnected. An interrupt
// observed at any point up to the end of the drain supersedes err.
func (c *Conn) finish(err error) error {
	c.mu.Lock()
	for c.writing != 0 {
		c.cond.Wait()
	}
	interrupted := c.state == Disconnecting
	tr := c.transport
	c.transport = nil
	c.reader = nil
	c.writer = nil
	c.toState(Disconnected)
	c.mu.Unlock()

	if tr != nil {
		tr.Close() // idempotent; Interrupt may have closed it already
	}
	if interrupted {
		return api.ErrInterrupted
	}
	return err
}

// toState transitions the lifecycle and wakes every waiter. Callers must
// hold mu.
func (c *Conn) toState(s State) {
	c.state = s
	c.cond.Broadcast()
}
