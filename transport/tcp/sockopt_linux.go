//go:build linux

// File: transport/tcp/sockopt_linux.go
// License: Apache-2.0
//
// Linux-specific socket tuning for dialed connections.

package tcp

import (
	"net"

	"golang.org/x/sys/unix"
)

// tuneSocket disables Nagle and enables keep-alive probes on the dialed
// socket. Tuning is advisory; failures are ignored.
func tuneSocket(nc net.Conn) {
	tc, ok := nc.(*net.TCPConn)
	if !ok {
		return
	}
	raw, err := tc.SyscallConn()
	if err != nil {
		return
	}
	raw.Control(func(fd uintptr) {
		_ = unix.SetsockoptInt(int(fd), unix.IPPROTO_TCP, unix.TCP_NODELAY, 1)
		_ = unix.SetsockoptInt(int(fd), unix.SOL_SOCKET, unix.SO_KEEPALIVE, 1)
	})
}
