//go:build !linux

// File: transport/tcp/sockopt_other.go
// License: Apache-2.0

package tcp

import "net"

// tuneSocket is a no-op outside Linux.
func tuneSocket(net.Conn) {}
