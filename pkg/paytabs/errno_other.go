//go:build !(aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris)

package paytabs

import (
	"errors"
	"syscall"
)

func errnoName(err error) (string, bool) {
	var errno syscall.Errno
	if !errors.As(err, &errno) {
		return "", false
	}
	return errno.Error(), true
}
