// File: protocol/frame_codec.go
// License: Apache-2.0
//
// Streaming WebSocket frame encoding/decoding with payload size
// enforcement. Frames above MaxPayload, fragmented frames and frames with
// reserved header bits set are rejected before the payload is touched.

package protocol

import (
	"github.com/wang663632304/AndroidSocketIO/api"
)

// ReadFrame decodes the next frame from r.
//
// Rejections, all api.ProtocolError with CodeUnsupported: any of the three
// reserved header bits set, a payload length above MaxPayload (or a 64-bit
// length field that reinterprets negative), and fin=false since
// fragmentation is not supported. A masking key on a received frame is
// honored symmetrically: the payload is unmasked before it is returned.
func ReadFrame(r *Reader) (*Frame, error) {
	first, err := r.ReadByte()
	if err != nil {
		return nil, err
	}
	if first&rsvBits != 0 {
		return nil, api.NewProtocolError(api.CodeUnsupported, "server expects unsupported negotiation")
	}
	fin := first&finBit != 0
	opcode := Opcode(first & opcodeBits)

	second, err := r.ReadByte()
	if err != nil {
		return nil, err
	}
	masked := second&maskBit != 0

	length := int64(second & lengthBits)
	switch length {
	case len64Marker:
		v, err := r.ReadUint64()
		if err != nil {
			return nil, err
		}
		length = int64(v)
	case len16Marker:
		v, err := r.ReadUint16()
		if err != nil {
			return nil, err
		}
		length = int64(v)
	}

	if length < 0 || length > MaxPayload {
		return nil, api.NewProtocolError(api.CodeUnsupported, "payload too large")
	}
	if !fin {
		return nil, api.NewProtocolError(api.CodeUnsupported, "fragmented frames are not supported")
	}

	f := &Frame{Fin: fin, Opcode: opcode, Masked: masked}
	if masked {
		if err := r.ReadFull(f.MaskKey[:]); err != nil {
			return nil, err
		}
	}
	f.Payload = make([]byte, length)
	if err := r.ReadFull(f.Payload); err != nil {
		return nil, err
	}
	if masked {
		MaskPayload(f.Payload, f.MaskKey)
	}
	return f, nil
}

// WriteFrame encodes a single frame onto w and flushes. A nil mask sends
// the payload unmasked; with a mask the payload is XOR-masked in place, so
// the caller's buffer is modified.
func WriteFrame(w *Writer, fin bool, opcode Opcode, mask *[4]byte, payload []byte) error {
	if byte(opcode)&^opcodeBits != 0 {
		return api.ErrInvalidArgument
	}

	first := byte(opcode)
	if fin {
		first |= finBit
	}
	if err := w.WriteByte(first); err != nil {
		return err
	}

	var maskFlag byte
	if mask != nil {
		maskFlag = maskBit
	}
	length := len(payload)
	switch {
	case length > 0xFFFF:
		if err := w.WriteByte(len64Marker | maskFlag); err != nil {
			return err
		}
		if err := w.WriteUint64(uint64(length)); err != nil {
			return err
		}
	case length >= len16Marker:
		if err := w.WriteByte(len16Marker | maskFlag); err != nil {
			return err
		}
		if err := w.WriteUint16(uint16(length)); err != nil {
			return err
		}
	default:
		if err := w.WriteByte(byte(length) | maskFlag); err != nil {
			return err
		}
	}

	if mask != nil {
		if err := w.WriteBytes(mask[:]); err != nil {
			return err
		}
		MaskPayload(payload, *mask)
	}
	if err := w.WriteBytes(payload); err != nil {
		return err
	}
	return w.Flush()
}
