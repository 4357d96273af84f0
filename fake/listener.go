// File: fake/listener.go
// License: Apache-2.0

package fake

import (
	"sync"
	"time"

	"github.com/wang663632304/AndroidSocketIO/api"
)

// Event is one recorded listener callback.
type Event struct {
	Kind    string // connected, string, binary, close, ping, pong, unknown
	Text    string
	Payload []byte
}

// Listener records every callback for assertions.
type Listener struct {
	mu     sync.Mutex
	events []Event
}

var _ api.Listener = (*Listener)(nil)

// NewListener returns an empty recorder.
func NewListener() *Listener {
	return &Listener{}
}

// OnConnected implements api.Listener.
func (l *Listener) OnConnected() { l.record(Event{Kind: "connected"}) }

// OnStringMessage implements api.Listener.
func (l *Listener) OnStringMessage(message string) {
	l.record(Event{Kind: "string", Text: message})
}

// OnBinaryMessage implements api.Listener.
func (l *Listener) OnBinaryMessage(payload []byte) {
	l.record(Event{Kind: "binary", Payload: append([]byte(nil), payload...)})
}

// OnServerRequestedClose implements api.Listener.
func (l *Listener) OnServerRequestedClose(payload []byte) {
	l.record(Event{Kind: "close", Payload: append([]byte(nil), payload...)})
}

// OnPing implements api.Listener.
func (l *Listener) OnPing(payload []byte) {
	l.record(Event{Kind: "ping", Payload: append([]byte(nil), payload...)})
}

// OnPong implements api.Listener.
func (l *Listener) OnPong(payload []byte) {
	l.record(Event{Kind: "pong", Payload: append([]byte(nil), payload...)})
}

// OnUnknownMessage implements api.Listener.
func (l *Listener) OnUnknownMessage(payload []byte) {
	l.record(Event{Kind: "unknown", Payload: append([]byte(nil), payload...)})
}

func (l *Listener) record(e Event) {
	l.mu.Lock()
	l.events = append(l.events, e)
	l.mu.Unlock()
}

// Events returns a snapshot of recorded events in callback order.
func (l *Listener) Events() []Event {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]Event(nil), l.events...)
}

// Count returns how many events of kind have been recorded.
func (l *Listener) Count(kind string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for _, e := range l.events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// WaitFor polls until an event of kind has been recorded or the timeout
// elapses, reporting whether it was seen.
func (l *Listener) WaitFor(kind string, timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if l.Count(kind) > 0 {
			return true
		}
		time.Sleep(time.Millisecond)
	}
	return l.Count(kind) > 0
}
