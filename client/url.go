// File: client/url.go
// License: Apache-2.0
//
// ws/wss URI resolution: scheme, port defaults and handshake fields.

package client

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/wang663632304/AndroidSocketIO/api"
	"github.com/wang663632304/AndroidSocketIO/protocol"
)

// Default ports by scheme.
const (
	defaultWSPort  = 80
	defaultWSSPort = 443
)

// target holds everything the dial and handshake need from a ws/wss URI.
type target struct {
	host      string
	port      int
	useTLS    bool
	handshake protocol.Target
}

// parseTarget resolves uri into a dial target. A scheme other than ws or
// wss is a caller configuration error, not a protocol error.
func parseTarget(uri string) (target, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return target{}, fmt.Errorf("websocket: parse uri: %w", err)
	}

	var useTLS bool
	var port int
	switch u.Scheme {
	case "ws":
		useTLS, port = false, defaultWSPort
	case "wss":
		useTLS, port = true, defaultWSSPort
	default:
		return target{}, fmt.Errorf("%w: %q", api.ErrUnknownScheme, u.Scheme)
	}
	if p := u.Port(); p != "" {
		port, err = strconv.Atoi(p)
		if err != nil {
			return target{}, fmt.Errorf("websocket: parse port: %w", err)
		}
	}

	path := u.RequestURI()
	if path == "" {
		path = "/"
	}
	return target{
		host:   u.Hostname(),
		port:   port,
		useTLS: useTLS,
		handshake: protocol.Target{
			Host:   u.Hostname(),
			Origin: uri,
			Path:   path,
		},
	}, nil
}
