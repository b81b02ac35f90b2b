package server

import (
	"sync/atomic"

	"github.com/jmdaemon/synclsp/protocol"
)

// logSinkInstalled guards the one log sink a process may install,
// process-wide rather than per-Server: spec.md §4.6 treats a second
// Serve call in the same process as a fatal ErrLoggerAlreadyInstalled,
// mirroring the teacher's single log.New(os.Stderr, ...) call per
// process and the original crate's global log::Log installation.
var logSinkInstalled atomic.Bool

// installLogSink claims the process-wide log sink slot, returning
// ErrLoggerAlreadyInstalled if Serve has already claimed it once in
// this process.
func installLogSink() error {
	if !logSinkInstalled.CompareAndSwap(false, true) {
		return ErrLoggerAlreadyInstalled
	}
	return nil
}

// logPump forwards records written through its writer to
// window/logMessage notifications, queued on the connection's outbox and
// flushed at the end of the current dispatch iteration (spec.md's
// ambient-stack logging section). Every Server has one, but records only
// reach it through writers obtained from Server.LogPump(); a Server whose
// logger is not wired to one logs only to its *log.Logger.
type logPump[S any] struct {
	core     *core[S]
	messages chan logRecord
}

type logRecord struct {
	typ     protocol.MessageType
	message string
}

func newLogPump[S any](core *core[S]) *logPump[S] {
	return &logPump[S]{core: core, messages: make(chan logRecord, 256)}
}

// Writer returns an io.Writer suitable for log.New, mapping every record
// written to it to a window/logMessage notification at Info severity.
// Use WriterAt for a severity-tagged writer instead.
func (p *logPump[S]) Writer() *severityWriter[S] {
	return &severityWriter[S]{pump: p, severity: protocol.Info}
}

// WriterAt returns a writer that tags every record at the given severity;
// handy for wiring a structured logger's separate level outputs each to
// their own window/logMessage severity.
func (p *logPump[S]) WriterAt(typ protocol.MessageType) *severityWriter[S] {
	return &severityWriter[S]{pump: p, severity: typ}
}

// severityWriter implements io.Writer by enqueueing a log record; it
// never blocks on a full channel, dropping and counting instead, since a
// wedged logger must never wedge the dispatch loop.
type severityWriter[S any] struct {
	pump     *logPump[S]
	severity protocol.MessageType
	dropped  int
}

func (w *severityWriter[S]) Write(p []byte) (int, error) {
	msg := string(p)
	select {
	case w.pump.messages <- logRecord{typ: w.severity, message: msg}:
	default:
		w.dropped++
	}
	return len(p), nil
}

// drain empties the pump's channel into window/logMessage notifications
// queued on conn, called once per Serve iteration after the handler runs.
func (p *logPump[S]) drain(conn *Connection[S]) error {
	for {
		select {
		case rec := <-p.messages:
			if err := conn.LogMessage(rec.typ, rec.message); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}
