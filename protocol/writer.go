// File: protocol/writer.go
// License: Apache-2.0
//
// Write-side mirror of the byte codec.

package protocol

import (
	"encoding/binary"
	"io"
)

// FlushWriter pairs a byte sink with its flush control. api.Transport
// satisfies it.
type FlushWriter interface {
	io.Writer
	Flush() error
}

// Writer encodes primitive wire values onto an ordered byte stream.
// I/O failures propagate unchanged.
type Writer struct {
	w   FlushWriter
	buf [8]byte
}

// NewWriter wraps w for primitive encoding.
func NewWriter(w FlushWriter) *Writer {
	return &Writer{w: w}
}

// WriteByte writes a single byte.
func (w *Writer) WriteByte(b byte) error {
	w.buf[0] = b
	_, err := w.w.Write(w.buf[:1])
	return err
}

// WriteBytes writes p in full.
func (w *Writer) WriteBytes(p []byte) error {
	_, err := w.w.Write(p)
	return err
}

// WriteUint16 writes a big-endian 16-bit value.
func (w *Writer) WriteUint16(v uint16) error {
	binary.BigEndian.PutUint16(w.buf[:2], v)
	_, err := w.w.Write(w.buf[:2])
	return err
}

// WriteUint64 writes a big-endian 64-bit value.
func (w *Writer) WriteUint64(v uint64) error {
	binary.BigEndian.PutUint64(w.buf[:8], v)
	_, err := w.w.Write(w.buf[:8])
	return err
}

// WriteLine writes s followed by CRLF.
func (w *Writer) WriteLine(s string) error {
	if _, err := io.WriteString(w.w, s); err != nil {
		return err
	}
	_, err := io.WriteString(w.w, "\r\n")
	return err
}

// Flush pushes buffered bytes to the wire.
func (w *Writer) Flush() error {
	return w.w.Flush()
}
