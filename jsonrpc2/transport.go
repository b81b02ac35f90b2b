package jsonrpc2

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"strconv"
	"strings"
	"time"
)

const (
	headerContentLength = "Content-Length"
	headerContentType   = "Content-Type"
	headerSeparator     = "\r\n"

	// maxPushback bounds the peek-ahead pushback buffer. The original
	// source picks an arbitrary cap here too; 10192 matches it.
	maxPushback = 10192
)

// Transport carries length-prefixed JSON-RPC frames over a byte stream.
// It is used by exactly one goroutine: the dispatch loop inside Serve.
// Send latches the first I/O error it sees; once latched, further sends
// are no-ops, Recv returns nil, nil, and Err reports the latched error.
type Transport struct {
	reader *bufio.Reader
	writer io.Writer
	closer io.Closer
	logger *log.Logger

	pollable bool
	poller   func(timeout time.Duration) (bool, error)

	pushback [][]byte // FIFO of frames peeked but not yet consumed

	sendErr error
}

// NewStdio builds a Transport over the process's stdin/stdout. Peeking
// (and so cancellation) works only when r exposes Fd() and the platform
// has poll support (linux, darwin); otherwise Peek always returns nil.
func NewStdio(r io.Reader, w io.Writer, logger *log.Logger) *Transport {
	t := &Transport{
		reader: bufio.NewReader(r),
		writer: w,
		logger: logger,
	}
	if f, ok := r.(interface{ Fd() uintptr }); ok && pollSupported {
		t.pollable = true
		t.poller = fdPoller(f.Fd())
	}
	return t
}

// NewConn builds a Transport over an arbitrary net.Conn (used by the
// TCP server-side accept-once transport). net.Conn supports peeking via
// SetReadDeadline, which every net.Conn implementation honours.
func NewConn(conn net.Conn, logger *log.Logger) *Transport {
	t := &Transport{
		reader:   bufio.NewReader(conn),
		writer:   conn,
		closer:   conn,
		logger:   logger,
		pollable: true,
	}
	t.poller = deadlinePoller(conn, t.reader)
	return t
}

// NewCustom builds a Transport over a caller-supplied reader/writer pair.
// Custom transports never support peek, so cancellation degrades to
// never-cancelled for them, per spec.
func NewCustom(r io.Reader, w io.Writer, logger *log.Logger) *Transport {
	return &Transport{
		reader: bufio.NewReader(r),
		writer: w,
		logger: logger,
	}
}

// ListenTCP binds addr and accepts exactly one client connection, then
// wraps it as a Transport. This is the TCP "server-side accept-once"
// transport kind.
func ListenTCP(addr string, logger *log.Logger) (*Transport, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("jsonrpc2: listen %s: %w", addr, err)
	}
	defer ln.Close()

	conn, err := ln.Accept()
	if err != nil {
		return nil, fmt.Errorf("jsonrpc2: accept: %w", err)
	}
	return NewConn(conn, logger), nil
}

// Send writes one message as a length-prefixed frame and flushes it.
// Any I/O error latches; subsequent Send calls become no-ops returning
// the latched error.
func (t *Transport) Send(msg Message) error {
	if t.sendErr != nil {
		return t.sendErr
	}

	body, err := Encode(msg)
	if err != nil {
		return fmt.Errorf("jsonrpc2: encode: %w", err)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s: %d%s%s: application/vscode-jsonrpc; charset=utf-8%s%s",
		headerContentLength, len(body), headerSeparator,
		headerContentType, headerSeparator, headerSeparator)
	buf.Write(body)

	if _, err := t.writer.Write(buf.Bytes()); err != nil {
		t.sendErr = fmt.Errorf("jsonrpc2: write: %w", err)
		return t.sendErr
	}
	return nil
}

// Recv blocks until a full frame is read, draining the pushback buffer
// first. It returns nil, nil once the error slot is latched or the
// underlying stream ends (EOF, closed connection, or any other read
// error). A malformed individual frame is logged and skipped within this
// same call instead of ending the stream.
func (t *Transport) Recv() ([]byte, error) {
	if t.sendErr != nil {
		return nil, nil
	}
	if len(t.pushback) > 0 {
		frame := t.pushback[0]
		t.pushback = t.pushback[1:]
		return frame, nil
	}
	for {
		frame, err := t.readFrame()
		if err == nil {
			return frame, nil
		}
		var malformed *malformedFrameError
		if !errors.As(err, &malformed) {
			return nil, nil
		}
		t.logger.Printf("jsonrpc2: skipping malformed frame: %v", err)
	}
}

// Peek looks ahead for the next frame without consuming it from the
// caller's point of view: if one is immediately available it is read off
// the wire and pushed onto the pushback FIFO, from which Recv will later
// drain it. On transports without poll support Peek always returns nil.
func (t *Transport) Peek() ([]byte, error) {
	if !t.pollable {
		return nil, nil
	}
	if len(t.pushback) > 0 {
		return t.pushback[0], nil
	}

	ready, err := t.poller(time.Millisecond)
	if err != nil || !ready {
		return nil, err
	}

	frame, err := t.readFrame()
	if err != nil {
		var malformed *malformedFrameError
		if !errors.As(err, &malformed) {
			return nil, nil
		}
		t.logger.Printf("jsonrpc2: skipping malformed frame during peek: %v", err)
		return nil, nil
	}

	if len(t.pushback) >= maxPushback {
		t.logger.Printf("jsonrpc2: pushback buffer full (%d), dropping peeked frame", maxPushback)
		return nil, nil
	}
	t.pushback = append(t.pushback, frame)
	return frame, nil
}

// Close releases the underlying stream, if it supports closing.
func (t *Transport) Close() error {
	if t.closer != nil {
		return t.closer.Close()
	}
	return nil
}

// Err returns the latched send error, if any.
func (t *Transport) Err() error {
	return t.sendErr
}

// deadlinePoller checks net.Conn readiness by setting a short read
// deadline and attempting a non-consuming Peek(1) on the buffered
// reader; a timeout means "not ready", any byte peeked stays buffered
// for the subsequent readFrame call.
func deadlinePoller(conn net.Conn, r *bufio.Reader) func(timeout time.Duration) (bool, error) {
	return func(timeout time.Duration) (bool, error) {
		if err := conn.SetReadDeadline(time.Now().Add(timeout)); err != nil {
			return false, err
		}
		defer conn.SetReadDeadline(time.Time{}) //nolint:errcheck

		_, err := r.Peek(1)
		if err == nil {
			return true, nil
		}
		if ne, ok := err.(net.Error); ok && ne.Timeout() {
			return false, nil
		}
		return false, err
	}
}

// malformedFrameError marks a frame that failed to parse for reasons
// internal to the frame itself (bad header, bad Content-Length) as
// opposed to the underlying stream failing. Recv and Peek retry on this
// error; any other error from readFrame is treated as the stream ending.
type malformedFrameError struct{ reason string }

func (e *malformedFrameError) Error() string { return e.reason }

func malformedFrame(format string, args ...any) error {
	return &malformedFrameError{reason: fmt.Sprintf(format, args...)}
}

// readFrame reads one "headers \r\n\r\n body" frame off the wire. Errors
// reading from the underlying stream (EOF, closed pipe, reset) propagate
// as-is from the header read and wrapped with %w from the body read, never
// as *malformedFrameError, so callers can tell a dead stream from one
// malformed frame.
func (t *Transport) readFrame() ([]byte, error) {
	contentLength := -1
	for {
		line, err := t.reader.ReadString('\n')
		if err != nil {
			return nil, err
		}
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			break
		}

		parts := strings.SplitN(line, ":", 2)
		if len(parts) != 2 {
			t.logger.Printf("jsonrpc2: ignoring malformed header line %q", line)
			continue
		}
		name := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		switch {
		case strings.EqualFold(name, headerContentLength):
			n, err := strconv.Atoi(value)
			if err != nil || n <= 0 {
				return nil, malformedFrame("invalid Content-Length %q", value)
			}
			contentLength = n
		case strings.EqualFold(name, headerContentType):
			if !strings.Contains(value, "jsonrpc") {
				t.logger.Printf("jsonrpc2: unexpected Content-Type %q", value)
			}
		default:
			t.logger.Printf("jsonrpc2: ignoring unknown header %q", name)
		}
	}

	if contentLength < 0 {
		return nil, malformedFrame("missing Content-Length header")
	}

	body := make([]byte, contentLength)
	if _, err := io.ReadFull(t.reader, body); err != nil {
		return nil, fmt.Errorf("reading %d-byte body: %w", contentLength, err)
	}
	return body, nil
}
