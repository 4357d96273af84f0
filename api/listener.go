// File: api/listener.go
// License: Apache-2.0
//
// Observer capability set for decoded connection events.

package api

// Listener receives decoded connection events. Every callback is invoked
// from the goroutine running Connect, in the exact order frames arrived on
// the wire; a slow listener therefore stalls the receive loop. Wrap it in
// control.Dispatcher when callbacks must not block frame decoding.
type Listener interface {
	// OnConnected fires once, after the upgrade handshake succeeds.
	OnConnected()

	// OnStringMessage delivers the UTF-8 payload of a text frame.
	OnStringMessage(message string)

	// OnBinaryMessage delivers the payload of a binary frame.
	OnBinaryMessage(payload []byte)

	// OnServerRequestedClose delivers the raw payload of a close frame.
	OnServerRequestedClose(payload []byte)

	// OnPing delivers a ping payload. The engine has already answered with
	// a pong when this fires.
	OnPing(payload []byte)

	// OnPong delivers a pong payload.
	OnPong(payload []byte)

	// OnUnknownMessage delivers the payload of a frame with a reserved or
	// unassigned opcode.
	OnUnknownMessage(payload []byte)
}
