// File: transport/tcp/dialer.go
// Package tcp dials plaintext and TLS byte-stream transports for the
// protocol engine.
// License: Apache-2.0

package tcp

import (
	"crypto/tls"
	"net"
	"strconv"
	"time"

	"github.com/wang663632304/AndroidSocketIO/api"
)

// Dialer produces api.Transport instances over TCP, optionally wrapped in
// TLS. The zero value is ready to use.
type Dialer struct {
	// TLSConfig overrides the TLS client configuration. ServerName
	// defaults to the dialed host.
	TLSConfig *tls.Config

	// Timeout bounds the TCP connect. Zero means no limit.
	Timeout time.Duration
}

// Dial opens a transport to host:port, wrapping it in TLS when useTLS is
// set. The TLS handshake completes before the transport is returned.
func (d *Dialer) Dial(host string, port int, useTLS bool) (api.Transport, error) {
	addr := net.JoinHostPort(host, strconv.Itoa(port))
	nc, err := net.DialTimeout("tcp", addr, d.Timeout)
	if err != nil {
		return nil, err
	}
	tuneSocket(nc)

	if !useTLS {
		return newConn(nc), nil
	}

	cfg := d.TLSConfig
	if cfg == nil {
		cfg = &tls.Config{}
	} else {
		cfg = cfg.Clone()
	}
	if cfg.ServerName == "" {
		cfg.ServerName = host
	}
	tc := tls.Client(nc, cfg)
	if err := tc.Handshake(); err != nil {
		nc.Close()
		return nil, err
	}
	return newConn(tc), nil
}
