// File: api/errors.go
// Package api defines the shared error taxonomy for the protocol engine.
// License: Apache-2.0
//
// Failures fall into five classes: configuration errors (a caller bug,
// never retried here), transport failures (propagated unchanged),
// protocol violations (always fatal to the connection), NotConnected
// (local to the failed send call) and Interrupted (an interrupt was in
// progress and supersedes the raw failure that surfaced it).

package api

import (
	"errors"
	"fmt"
)

// Sentinel errors used across the library.
var (
	// ErrUnknownScheme reports a URI scheme other than ws or wss.
	ErrUnknownScheme = fmt.Errorf("websocket: unknown uri scheme")

	// ErrNotConnected reports a send attempted outside the Connected state.
	// It affects only the calling sender, never the receive loop.
	ErrNotConnected = fmt.Errorf("websocket: not connected")

	// ErrInterrupted reports that an interrupt was already in progress when
	// a transport or protocol failure surfaced.
	ErrInterrupted = fmt.Errorf("websocket: interrupted")

	// ErrConnectionClosed reports a graceful end-of-stream from the peer,
	// kept distinct from other I/O failures so callers can choose a retry
	// policy without matching message strings.
	ErrConnectionClosed = fmt.Errorf("websocket: connection closed")

	// ErrInvalidArgument reports a malformed argument to a library call.
	ErrInvalidArgument = fmt.Errorf("websocket: invalid argument")
)

// ProtocolCode identifies the specific handshake or framing violation.
type ProtocolCode int

const (
	CodeBadResponse ProtocolCode = iota + 1
	CodeWrongStatus
	CodeEmptyResponse
	CodeMissingHeader
	CodeDuplicateHeader
	CodeBadAccept
	CodeBadProtocol
	CodeUnsupported
)

// String returns a short tag for the violation code.
func (c ProtocolCode) String() string {
	switch c {
	case CodeBadResponse:
		return "bad response"
	case CodeWrongStatus:
		return "wrong status"
	case CodeEmptyResponse:
		return "empty response"
	case CodeMissingHeader:
		return "missing header"
	case CodeDuplicateHeader:
		return "duplicate header"
	case CodeBadAccept:
		return "bad accept"
	case CodeBadProtocol:
		return "bad protocol"
	case CodeUnsupported:
		return "unsupported"
	default:
		return "unknown"
	}
}

// ProtocolError reports a violation of RFC 6455 or of the HTTP upgrade
// exchange. Protocol errors are fatal to the connection and never retried.
type ProtocolError struct {
	Code   ProtocolCode
	Reason string
}

// Error implements the error interface.
func (e *ProtocolError) Error() string {
	return fmt.Sprintf("websocket: %s: %s", e.Code, e.Reason)
}

// NewProtocolError creates a classified protocol violation.
func NewProtocolError(code ProtocolCode, reason string) *ProtocolError {
	return &ProtocolError{Code: code, Reason: reason}
}

// IsProtocolError reports whether err is a ProtocolError carrying code.
func IsProtocolError(err error, code ProtocolCode) bool {
	var pe *ProtocolError
	return errors.As(err, &pe) && pe.Code == code
}
