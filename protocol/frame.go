// File: protocol/frame.go
// License: Apache-2.0
//
// Frame type, opcode tags and XOR masking per RFC 6455 §5.2-§5.3.

package protocol

// Opcode is the 4-bit frame type tag.
type Opcode byte

// Opcodes assigned by RFC 6455 §11.8.
const (
	OpcodeContinuation Opcode = 0x0
	OpcodeText         Opcode = 0x1
	OpcodeBinary       Opcode = 0x2
	OpcodeClose        Opcode = 0x8
	OpcodePing         Opcode = 0x9
	OpcodePong         Opcode = 0xA
)

// Header bit layout of the first two frame bytes.
const (
	finBit     = 0x80
	rsvBits    = 0x70
	opcodeBits = 0x0F
	maskBit    = 0x80
	lengthBits = 0x7F

	len16Marker = 126
	len64Marker = 127
)

// MaxPayload caps a single frame's payload at 1 MiB. Larger frames are
// rejected before any payload byte is read or allocated.
const MaxPayload = 1 << 20

// Frame is one decoded WebSocket protocol unit.
type Frame struct {
	Fin     bool
	Opcode  Opcode
	Masked  bool
	MaskKey [4]byte
	Payload []byte
}

// MaskPayload XORs payload in place with key: payload[i] ^= key[i%4].
// Applying it twice with the same key restores the original bytes.
func MaskPayload(payload []byte, key [4]byte) {
	for i := range payload {
		payload[i] ^= key[i%4]
	}
}

// String returns the RFC name of the opcode.
func (o Opcode) String() string {
	switch o {
	case OpcodeContinuation:
		return "continuation"
	case OpcodeText:
		return "text"
	case OpcodeBinary:
		return "binary"
	case OpcodeClose:
		return "close"
	case OpcodePing:
		return "ping"
	case OpcodePong:
		return "pong"
	default:
		return "unknown"
	}
}
