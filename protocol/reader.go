// File: protocol/reader.go
// Package protocol implements the RFC 6455 wire codec: primitive byte
// framing, frame encoding/decoding with masking, and the upgrade handshake.
// License: Apache-2.0

package protocol

import (
	"encoding/binary"
	"errors"
	"io"

	"github.com/wang663632304/AndroidSocketIO/api"
)

// Reader decodes primitive wire values from an ordered byte stream.
// End-of-stream is reported as api.ErrConnectionClosed so callers can tell
// a graceful peer close from a broken transport; every other I/O failure
// propagates unchanged.
type Reader struct {
	r   io.Reader
	buf [8]byte
}

// NewReader wraps r for primitive decoding.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// ReadByte reads a single byte.
func (r *Reader) ReadByte() (byte, error) {
	if _, err := io.ReadFull(r.r, r.buf[:1]); err != nil {
		return 0, closedOr(err)
	}
	return r.buf[0], nil
}

// ReadFull reads exactly len(p) bytes, accumulating partial reads until the
// buffer is filled or the stream closes early.
func (r *Reader) ReadFull(p []byte) error {
	if _, err := io.ReadFull(r.r, p); err != nil {
		return closedOr(err)
	}
	return nil
}

// ReadUint16 reads a big-endian 16-bit value.
func (r *Reader) ReadUint16() (uint16, error) {
	if err := r.ReadFull(r.buf[:2]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(r.buf[:2]), nil
}

// ReadUint64 reads a big-endian 64-bit value.
func (r *Reader) ReadUint64() (uint64, error) {
	if err := r.ReadFull(r.buf[:8]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(r.buf[:8]), nil
}

// ReadLine accumulates bytes until a '\n', dropping '\r' characters.
// End-of-stream before the newline is an EmptyResponse protocol error.
// Lines are unbounded; callers bound the number of lines they read.
func (r *Reader) ReadLine() (string, error) {
	var line []byte
	for {
		b, err := r.ReadByte()
		if err != nil {
			if errors.Is(err, api.ErrConnectionClosed) {
				return "", api.NewProtocolError(api.CodeEmptyResponse, "end of stream before newline")
			}
			return "", err
		}
		switch b {
		case '\r':
		case '\n':
			return string(line), nil
		default:
			line = append(line, b)
		}
	}
}

// closedOr maps end-of-stream conditions to api.ErrConnectionClosed.
func closedOr(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return api.ErrConnectionClosed
	}
	return err
}
