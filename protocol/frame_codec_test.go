// File: protocol/frame_codec_test.go
// Package protocol_test: unit tests for the frame codec.
// License: Apache-2.0

package protocol_test

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/wang663632304/AndroidSocketIO/api"
	"github.com/wang663632304/AndroidSocketIO/protocol"
)

func encodeFrame(t *testing.T, fin bool, op protocol.Opcode, mask *[4]byte, payload []byte) []byte {
	t.Helper()
	var sink byteSink
	w := protocol.NewWriter(&sink)
	// WriteFrame masks in place, hand it a copy.
	if err := protocol.WriteFrame(w, fin, op, mask, append([]byte(nil), payload...)); err != nil {
		t.Fatalf("WriteFrame: %v", err)
	}
	return sink.Bytes()
}

func TestFrameRoundTripLengths(t *testing.T) {
	lengths := []int{0, 1, 125, 126, 65535, 65536, 1 << 20}
	for _, n := range lengths {
		payload := make([]byte, n)
		for i := range payload {
			payload[i] = byte(i)
		}
		for _, mask := range []*[4]byte{nil, {0xDE, 0xAD, 0xBE, 0xEF}} {
			wire := encodeFrame(t, true, protocol.OpcodeBinary, mask, payload)
			f, err := protocol.ReadFrame(protocol.NewReader(bytes.NewReader(wire)))
			if err != nil {
				t.Fatalf("len=%d mask=%v: ReadFrame: %v", n, mask != nil, err)
			}
			if !f.Fin || f.Opcode != protocol.OpcodeBinary {
				t.Fatalf("len=%d: fin=%v opcode=%v", n, f.Fin, f.Opcode)
			}
			if f.Masked != (mask != nil) {
				t.Fatalf("len=%d: masked=%v, want %v", n, f.Masked, mask != nil)
			}
			if len(f.Payload) != n {
				t.Fatalf("len=%d: decoded %d payload bytes", n, len(f.Payload))
			}
			if !bytes.Equal(f.Payload, payload) {
				t.Fatalf("len=%d mask=%v: payload corrupted", n, mask != nil)
			}
		}
	}
}

func TestMaskInvolution(t *testing.T) {
	key := [4]byte{0x37, 0xFA, 0x21, 0x3D}
	payload := []byte("Hello, masked world! 0123456789")
	orig := append([]byte(nil), payload...)

	protocol.MaskPayload(payload, key)
	if bytes.Equal(payload, orig) {
		t.Fatal("masking left payload unchanged")
	}
	protocol.MaskPayload(payload, key)
	if !bytes.Equal(payload, orig) {
		t.Fatal("double masking did not restore payload")
	}
}

func TestReservedBitsRejected(t *testing.T) {
	for _, rsv := range []byte{0x10, 0x20, 0x40, 0x70} {
		wire := []byte{0x80 | rsv | byte(protocol.OpcodeText), 0x00}
		_, err := protocol.ReadFrame(protocol.NewReader(bytes.NewReader(wire)))
		if !api.IsProtocolError(err, api.CodeUnsupported) {
			t.Fatalf("rsv=%#x: expected Unsupported protocol error, got %v", rsv, err)
		}
	}
}

func TestFragmentedFrameRejected(t *testing.T) {
	// fin=0, text opcode, empty payload.
	wire := []byte{byte(protocol.OpcodeText), 0x00}
	_, err := protocol.ReadFrame(protocol.NewReader(bytes.NewReader(wire)))
	if !api.IsProtocolError(err, api.CodeUnsupported) {
		t.Fatalf("expected Unsupported protocol error, got %v", err)
	}
}

func TestOversizedFrameRejectedBeforePayload(t *testing.T) {
	// The wire carries only the header. If ReadFrame tried to read the
	// declared payload it would surface ErrConnectionClosed instead of the
	// protocol violation.
	header := make([]byte, 10)
	header[0] = 0x80 | byte(protocol.OpcodeBinary)
	header[1] = 127
	binary.BigEndian.PutUint64(header[2:], protocol.MaxPayload+1)

	_, err := protocol.ReadFrame(protocol.NewReader(bytes.NewReader(header)))
	if !api.IsProtocolError(err, api.CodeUnsupported) {
		t.Fatalf("expected Unsupported protocol error, got %v", err)
	}
}

func TestNegativeLengthRejected(t *testing.T) {
	header := make([]byte, 10)
	header[0] = 0x80 | byte(protocol.OpcodeBinary)
	header[1] = 127
	binary.BigEndian.PutUint64(header[2:], 1<<63)

	_, err := protocol.ReadFrame(protocol.NewReader(bytes.NewReader(header)))
	if !api.IsProtocolError(err, api.CodeUnsupported) {
		t.Fatalf("expected Unsupported protocol error, got %v", err)
	}
}

func TestMaskedFrameUnmaskedOnDecode(t *testing.T) {
	key := [4]byte{1, 2, 3, 4}
	payload := []byte("masked by the peer")
	wire := encodeFrame(t, true, protocol.OpcodeText, &key, payload)

	f, err := protocol.ReadFrame(protocol.NewReader(bytes.NewReader(wire)))
	if err != nil {
		t.Fatalf("ReadFrame: %v", err)
	}
	if !f.Masked || f.MaskKey != key {
		t.Fatalf("masked=%v key=%v", f.Masked, f.MaskKey)
	}
	if !bytes.Equal(f.Payload, payload) {
		t.Fatalf("payload = %q, want %q", f.Payload, payload)
	}
}

func TestWriteFrameRejectsWideOpcode(t *testing.T) {
	var sink byteSink
	w := protocol.NewWriter(&sink)
	err := protocol.WriteFrame(w, true, protocol.Opcode(0x1F), nil, nil)
	if err == nil {
		t.Fatal("expected error for opcode above 0x0F")
	}
}

func TestShortLengthEncodings(t *testing.T) {
	// 125 stays in the base length field, 126 moves to the 16-bit field,
	// 65536 moves to the 64-bit field.
	wire := encodeFrame(t, true, protocol.OpcodeBinary, nil, make([]byte, 125))
	if wire[1] != 125 {
		t.Fatalf("len 125: second byte %#x", wire[1])
	}
	wire = encodeFrame(t, true, protocol.OpcodeBinary, nil, make([]byte, 126))
	if wire[1] != 126 || binary.BigEndian.Uint16(wire[2:4]) != 126 {
		t.Fatalf("len 126: header %x", wire[:4])
	}
	wire = encodeFrame(t, true, protocol.OpcodeBinary, nil, make([]byte, 65536))
	if wire[1] != 127 || binary.BigEndian.Uint64(wire[2:10]) != 65536 {
		t.Fatalf("len 65536: header %x", wire[:10])
	}
}
