//go:build linux || darwin

package jsonrpc2

import (
	"time"

	"golang.org/x/sys/unix"
)

// pollSupported is true on platforms where fdPoller can do a real
// readiness check instead of always reporting "nothing ready".
const pollSupported = true

// fdPoller polls fd for readability with the given timeout, used by
// Transport.Peek to look ahead without blocking the dispatch loop.
func fdPoller(fd uintptr) func(timeout time.Duration) (bool, error) {
	return func(timeout time.Duration) (bool, error) {
		fds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
		n, err := unix.Poll(fds, int(timeout/time.Millisecond))
		if err != nil {
			if err == unix.EINTR {
				return false, nil
			}
			return false, err
		}
		return n > 0 && fds[0].Revents&unix.POLLIN != 0, nil
	}
}
