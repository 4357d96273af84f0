// File: protocol/entropy.go
// License: Apache-2.0
//
// Entropy models the presence or absence of a secure randomness source.
// Absence is a deliberate degraded mode, not a bug: the handshake nonce
// falls back to all-zero bytes and frames are sent unmasked.

package protocol

import (
	"crypto/rand"
	"io"
	"sync"
)

// Entropy is the randomness source shared by handshake nonce and masking
// key generation. Access is serialized, so a source that is not itself
// safe for concurrent use may be supplied.
type Entropy struct {
	mu  sync.Mutex
	src io.Reader // nil when unavailable
}

// AvailableEntropy wraps src as an available randomness source.
func AvailableEntropy(src io.Reader) *Entropy {
	return &Entropy{src: src}
}

// NoEntropy returns the unavailable source.
func NoEntropy() *Entropy {
	return &Entropy{}
}

// SystemEntropy probes the operating system source once and degrades to
// NoEntropy if it cannot deliver bytes.
func SystemEntropy() *Entropy {
	var probe [1]byte
	if _, err := rand.Read(probe[:]); err != nil {
		return NoEntropy()
	}
	return AvailableEntropy(rand.Reader)
}

// Available reports whether a randomness source is present.
func (e *Entropy) Available() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.src != nil
}

// Nonce returns 16 random bytes for the handshake key, or all-zero bytes
// when no source is available.
func (e *Entropy) Nonce() [16]byte {
	var nonce [16]byte
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.src != nil {
		if _, err := io.ReadFull(e.src, nonce[:]); err != nil {
			return [16]byte{}
		}
	}
	return nonce
}

// Mask returns a fresh 4-byte masking key. The second result is false when
// no source is available and the frame must be sent unmasked.
func (e *Entropy) Mask() ([4]byte, bool) {
	var key [4]byte
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.src == nil {
		return key, false
	}
	if _, err := io.ReadFull(e.src, key[:]); err != nil {
		return [4]byte{}, false
	}
	return key, true
}
