// File: control/dispatcher.go
// Package control provides delivery utilities around the protocol engine.
// License: Apache-2.0
//
// Dispatcher decouples observer callbacks from the receive loop while
// preserving wire order: events are queued FIFO and drained by a single
// goroutine, so a slow observer cannot stall frame decoding.

package control

import (
	"sync"

	"github.com/eapache/queue"

	"github.com/wang663632304/AndroidSocketIO/api"
)

// Dispatcher adapts an api.Listener so its callbacks run on a dedicated
// goroutine in enqueue order. It implements api.Listener itself and can be
// handed directly to client.New.
type Dispatcher struct {
	next api.Listener

	mu     sync.Mutex
	cond   *sync.Cond
	events *queue.Queue
	closed bool

	done chan struct{}
}

var _ api.Listener = (*Dispatcher)(nil)

// NewDispatcher starts the drain goroutine delivering to next.
func NewDispatcher(next api.Listener) *Dispatcher {
	d := &Dispatcher{
		next:   next,
		events: queue.New(),
		done:   make(chan struct{}),
	}
	d.cond = sync.NewCond(&d.mu)
	go d.run()
	return d
}

// Close stops delivery after draining already-queued events and blocks
// until the drain goroutine exits. Events enqueued after Close are dropped.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		d.cond.Signal()
	}
	d.mu.Unlock()
	<-d.done
}

// OnConnected implements api.Listener.
func (d *Dispatcher) OnConnected() {
	d.enqueue(func(l api.Listener) { l.OnConnected() })
}

// OnStringMessage implements api.Listener.
func (d *Dispatcher) OnStringMessage(message string) {
	d.enqueue(func(l api.Listener) { l.OnStringMessage(message) })
}

// OnBinaryMessage implements api.Listener.
func (d *Dispatcher) OnBinaryMessage(payload []byte) {
	d.enqueue(func(l api.Listener) { l.OnBinaryMessage(payload) })
}

// OnServerRequestedClose implements api.Listener.
func (d *Dispatcher) OnServerRequestedClose(payload []byte) {
	d.enqueue(func(l api.Listener) { l.OnServerRequestedClose(payload) })
}

// OnPing implements api.Listener.
func (d *Dispatcher) OnPing(payload []byte) {
	d.enqueue(func(l api.Listener) { l.OnPing(payload) })
}

// OnPong implements api.Listener.
func (d *Dispatcher) OnPong(payload []byte) {
	d.enqueue(func(l api.Listener) { l.OnPong(payload) })
}

// OnUnknownMessage implements api.Listener.
func (d *Dispatcher) OnUnknownMessage(payload []byte) {
	d.enqueue(func(l api.Listener) { l.OnUnknownMessage(payload) })
}

func (d *Dispatcher) enqueue(fn func(api.Listener)) {
	d.mu.Lock()
	if !d.closed {
		d.events.Add(fn)
		d.cond.Signal()
	}
	d.mu.Unlock()
}

func (d *Dispatcher) run() {
	defer close(d.done)
	for {
		d.mu.Lock()
		for d.events.Length() == 0 && !d.closed {
			d.cond.Wait()
		}
		if d.events.Length() == 0 {
			d.mu.Unlock()
			return
		}
		fn := d.events.Remove().(func(api.Listener))
		d.mu.Unlock()
		fn(d.next)
	}
}
