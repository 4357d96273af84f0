// File: protocol/handshake.go
// License: Apache-2.0
//
// Client side of the RFC 6455 HTTP upgrade exchange: request composition,
// nonce generation, response parsing and Sec-WebSocket-Accept verification.

package protocol

import (
	"crypto/sha1"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"github.com/wang663632304/AndroidSocketIO/api"
)

// wsGUID is the fixed GUID, per RFC 6455, used in handshake verification.
const wsGUID = "258EAFA5-E914-47DA-95CA-C5AB0DC85B11"

// Subprotocol is the single application subprotocol this client offers.
const Subprotocol = "chat"

const statusSwitchingProtocols = 101

// Target identifies the endpoint of an upgrade request.
type Target struct {
	Host   string // value of the Host header
	Origin string // value of the Origin header, the full request URI
	Path   string // request path, never empty
}

// HandshakeKey derives the base64 Sec-WebSocket-Key nonce. Without an
// entropy source the nonce is all-zero; degraded, not fatal.
func HandshakeKey(e *Entropy) string {
	nonce := e.Nonce()
	return base64.StdEncoding.EncodeToString(nonce[:])
}

// AcceptValue computes the Sec-WebSocket-Accept value expected for key.
func AcceptValue(key string) string {
	sum := sha1.Sum([]byte(key + wsGUID))
	return base64.StdEncoding.EncodeToString(sum[:])
}

// WriteUpgradeRequest writes the HTTP upgrade request for key and flushes.
func WriteUpgradeRequest(w *Writer, t Target, key string) error {
	lines := []string{
		"GET " + t.Path + " HTTP/1.1",
		"Upgrade: websocket",
		"Connection: Upgrade",
		"Host: " + t.Host,
		"Origin: " + t.Origin,
		"Sec-WebSocket-Key: " + key,
		"Sec-WebSocket-Protocol: " + Subprotocol,
		"Sec-WebSocket-Version: 13",
		"",
	}
	for _, line := range lines {
		if err := w.WriteLine(line); err != nil {
			return err
		}
	}
	return w.Flush()
}

// ReadUpgradeResponse reads the server's handshake response from r and
// verifies it against the key sent in the upgrade request.
//
// Requirements: status exactly 101; exactly one Sec-WebSocket-Accept header
// matching AcceptValue(key); a Sec-WebSocket-Protocol header, if present,
// echoing the offered subprotocol.
func ReadUpgradeResponse(r *Reader, key string) error {
	status, err := r.ReadLine()
	if err != nil {
		return err
	}
	if status == "" {
		return api.NewProtocolError(api.CodeBadResponse, "empty status line")
	}
	code, err := parseStatusLine(status)
	if err != nil {
		return err
	}
	if code != statusSwitchingProtocols {
		return api.NewProtocolError(api.CodeWrongStatus, fmt.Sprintf("expected 101, got %d", code))
	}

	var accept, proto string
	var haveAccept, haveProto bool
	for {
		line, err := r.ReadLine()
		if err != nil {
			return err
		}
		if line == "" {
			break
		}
		name, value, err := parseHeaderLine(line)
		if err != nil {
			return err
		}
		switch {
		case strings.EqualFold(name, "Sec-WebSocket-Accept"):
			if haveAccept {
				return api.NewProtocolError(api.CodeDuplicateHeader, "Sec-WebSocket-Accept appears more than once")
			}
			accept, haveAccept = value, true
		case strings.EqualFold(name, "Sec-WebSocket-Protocol"):
			proto, haveProto = value, true
		}
	}

	if !haveAccept {
		return api.NewProtocolError(api.CodeMissingHeader, "Sec-WebSocket-Accept did not appear")
	}
	if accept != AcceptValue(key) {
		return api.NewProtocolError(api.CodeBadAccept, "Sec-WebSocket-Accept is wrong")
	}
	if haveProto && proto != Subprotocol {
		return api.NewProtocolError(api.CodeBadProtocol, "server selected unoffered subprotocol "+strconv.Quote(proto))
	}
	return nil
}

// parseStatusLine extracts the numeric code from an HTTP status line such
// as "HTTP/1.1 101 Switching Protocols".
func parseStatusLine(line string) (int, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 || !strings.HasPrefix(fields[0], "HTTP/") {
		return 0, api.NewProtocolError(api.CodeBadResponse, "malformed status line")
	}
	code, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, api.NewProtocolError(api.CodeBadResponse, "malformed status code")
	}
	return code, nil
}

// parseHeaderLine splits a "Name: Value" header line.
func parseHeaderLine(line string) (name, value string, err error) {
	sep := strings.IndexByte(line, ':')
	if sep <= 0 {
		return "", "", api.NewProtocolError(api.CodeBadResponse, "malformed header line")
	}
	return strings.TrimSpace(line[:sep]), strings.TrimSpace(line[sep+1:]), nil
}
