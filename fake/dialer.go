// File: fake/dialer.go
// License: Apache-2.0

package fake

import (
	"sync"

	"github.com/wang663632304/AndroidSocketIO/api"
)

// Dialer hands out a fixed transport and records the dial target.
type Dialer struct {
	Transport *Transport
	Err       error // returned instead of Transport when set

	mu     sync.Mutex
	host   string
	port   int
	useTLS bool
	dials  int
}

var _ api.Dialer = (*Dialer)(nil)

// Dial records the target and returns the scripted transport or error.
func (d *Dialer) Dial(host string, port int, useTLS bool) (api.Transport, error) {
	d.mu.Lock()
	d.host, d.port, d.useTLS = host, port, useTLS
	d.dials++
	d.mu.Unlock()
	if d.Err != nil {
		return nil, d.Err
	}
	return d.Transport, nil
}

// Target returns the most recent dial target.
func (d *Dialer) Target() (host string, port int, useTLS bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.host, d.port, d.useTLS
}

// Dials returns how many times Dial was called.
func (d *Dialer) Dials() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.dials
}
