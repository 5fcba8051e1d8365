//go:build aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris

package paytabs

import (
	"errors"
	"syscall"

	"golang.org/x/sys/unix"
)

// errnoName returns the symbolic name (ECONNREFUSED, ECONNRESET, ...) of the
// system error carried by err, if any.
func errnoName(err error) (string, bool) {
	var errno syscall.Errno
	if !errors.As(err, &errno) {
		return "", false
	}
	name := unix.ErrnoName(errno)
	if name == "" {
		return "", false
	}
	return name, true
}
