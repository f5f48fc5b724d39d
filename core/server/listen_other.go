//go:build !unix

package server

import "syscall"

// reuseAddr is a no-op where SO_REUSEADDR has different semantics (windows).
func reuseAddr(network, address string, conn syscall.RawConn) error {
	return nil
}
