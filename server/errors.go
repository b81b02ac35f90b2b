package server

import "errors"

// Sentinel errors the framework returns or wraps, compared with
// errors.Is per spec.md's error-handling conventions (DESIGN.md).
var (
	// ErrServerClosed is returned by Serve once the client's exit
	// notification has driven the lifecycle FSM to its done state. As
	// with net/http's identically-named sentinel, this is the expected
	// return value of a graceful shutdown, not a failure.
	ErrServerClosed = errors.New("server: closed")

	// ErrAlreadyInitialized is wrapped by the InvalidRequest error sent
	// back when initialize arrives more than once on the same connection.
	ErrAlreadyInitialized = errors.New("server: already initialized")

	// ErrLoggerAlreadyInstalled is returned by Serve when a process has
	// already installed its one log sink: spec.md §4.6 makes sink
	// installation process-wide and one-shot, so a second Serve call in
	// the same process is a fatal error rather than a second sink.
	ErrLoggerAlreadyInstalled = errors.New("server: log sink already installed")
)
