//go:build !linux && !darwin

package jsonrpc2

import "time"

// pollSupported is false here: this platform has no poll syscall wired
// up, so stdio peek always reports nothing ready and cancellation over
// stdio degrades to never-cancelled, per spec.
const pollSupported = false

func fdPoller(fd uintptr) func(timeout time.Duration) (bool, error) {
	return func(timeout time.Duration) (bool, error) {
		return false, nil
	}
}
