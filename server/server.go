// Package server implements the single-threaded cooperative dispatch
// loop described by spec.md: one goroutine, one Transport, one message
// handled start-to-finish before the next is read. S is the server's
// user-defined state type; C is its command set (command.Unit if the
// server registers no commands).
package server

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/jmdaemon/synclsp/command"
	"github.com/jmdaemon/synclsp/jsonrpc2"
	"github.com/jmdaemon/synclsp/protocol"
)

// Server is a generic language server: it owns the connection's wire
// transport, the lifecycle state machine, and the four namespaced
// service routers (lifecycle always resolves first, per spec.md §6
// scenario 2 and the "lifecycle guard first" decision in DESIGN.md).
type Server[S any, C command.Command] struct {
	core *core[S]

	lifecycle    *lifecycleFSM[S]
	window       *windowService[S]
	textDocument *textDocumentService[S]
	workspace    *workspaceService[S, C]

	log *logPump[S]
}

// Option configures a Server at construction time.
type Option[S any, C command.Command] func(*Server[S, C])

// WithLogger overrides the default stderr logger.
func WithLogger[S any, C command.Command](logger *log.Logger) Option[S, C] {
	return func(s *Server[S, C]) { s.core.logger = logger }
}

// WithServerInfo sets the name/version reported in initialize's result.
func WithServerInfo[S any, C command.Command](info protocol.ServerInfo) Option[S, C] {
	return func(s *Server[S, C]) { s.lifecycle.serverInfo = &info }
}

// WithInitializeHook installs a callback run inside initialize, before
// params are recorded on the connection and before the result is sent.
// Returning an error fails initialize with that error, and nothing is
// recorded.
func WithInitializeHook[S any, C command.Command](fn func(*Connection[S], *protocol.InitializeParams) error) Option[S, C] {
	return func(s *Server[S, C]) { s.lifecycle.onInitialize = fn }
}

// WithInitializedHook installs a callback run when the client confirms
// initialized, just before the server transitions to the running state.
func WithInitializedHook[S any, C command.Command](fn func(*Connection[S])) Option[S, C] {
	return func(s *Server[S, C]) { s.lifecycle.onInitialized = fn }
}

// WithShutdownHook installs a callback run on a shutdown request, before
// the server transitions to shutting-down.
func WithShutdownHook[S any, C command.Command](fn func(*Connection[S]) error) Option[S, C] {
	return func(s *Server[S, C]) { s.lifecycle.onShutdown = fn }
}

// New builds a Server communicating over transport, with state as the
// initial user state value and registry as its command set (use
// command.NewUnitRegistry() for a server with no commands).
func New[S any, C command.Command](state S, registry *command.Registry[C], transport *jsonrpc2.Transport, opts ...Option[S, C]) *Server[S, C] {
	logger := log.New(os.Stderr, "", log.LstdFlags)
	c := newCore(state, transport, logger)

	s := &Server[S, C]{
		core:         c,
		window:       newWindowService[S](),
		textDocument: newTextDocumentService[S](),
		workspace:    newWorkspaceService[S, C](registry),
	}
	s.lifecycle = newLifecycleFSM(c)
	s.lifecycle.capabilities = s.capabilities
	s.log = newLogPump(c)

	for _, opt := range opts {
		opt(s)
	}
	return s
}

// capabilities assembles ServerCapabilities from whichever endpoints the
// caller registered a non-default handler for.
func (s *Server[S, C]) capabilities() protocol.ServerCapabilities {
	var caps protocol.ServerCapabilities
	s.textDocument.contribute(&caps)
	s.workspace.contribute(&caps)
	return caps
}

// resolve finds the Callback that answers method, trying the lifecycle
// FSM first and, once running, the three namespaced routers in a fixed
// order (window, textDocument, workspace) — spec.md §6's router
// resolution order. asRequest selects which kind of error handler the
// lifecycle guard manufactures when it rejects the method, so a guarded
// notification is never answered with a request-shaped Callback.
func (s *Server[S, C]) resolve(method string, asRequest bool) (Callback[S], bool) {
	if cb, ok := s.lifecycle.resolve(method); ok {
		return cb, true
	}
	if ok, code, message := s.lifecycle.guardOther(); !ok {
		if asRequest {
			return errRequestCB[S](code, message), true
		}
		return errNotificationCB[S](code, message), true
	}
	if cb, ok := s.window.resolve(method); ok {
		return cb, true
	}
	if cb, ok := s.textDocument.resolve(method); ok {
		return cb, true
	}
	if cb, ok := s.workspace.resolve(method); ok {
		return cb, true
	}
	return Callback[S]{}, false
}

// Serve runs the dispatch loop until the client sends exit, the
// transport reaches EOF, or a latched I/O error stops it. It is the only
// goroutine that ever touches the Transport or the handlers it invokes.
// A process may call Serve at most once: installing the log sink is a
// one-shot, process-wide action (spec.md §4.6), so a second call always
// fails immediately with ErrLoggerAlreadyInstalled.
func (s *Server[S, C]) Serve() error {
	if err := installLogSink(); err != nil {
		return err
	}

	conn := newConnection(s.core)
	for !s.lifecycle.Done() {
		frame, err := s.core.transport.Recv()
		if err != nil {
			return fmt.Errorf("server: recv: %w", err)
		}
		if frame == nil {
			if err := s.core.transport.Err(); err != nil {
				return err
			}
			return ErrServerClosed
		}

		msg, err := jsonrpc2.Parse(frame)
		if err != nil {
			s.core.logger.Printf("server: dropping malformed message: %v", err)
			continue
		}

		if err := s.dispatch(conn, msg); err != nil {
			return err
		}
		if err := s.log.drain(conn); err != nil {
			return err
		}
		if err := s.core.flush(); err != nil {
			return err
		}
	}
	return ErrServerClosed
}

func (s *Server[S, C]) dispatch(conn *Connection[S], msg jsonrpc2.Message) error {
	switch m := msg.(type) {
	case *jsonrpc2.Request:
		return s.dispatchRequest(conn, m)
	case *jsonrpc2.Notification:
		return s.dispatchNotification(conn, m)
	case *jsonrpc2.Response:
		return s.dispatchResponse(conn, m.ID, m.Result)
	case *jsonrpc2.PeerError:
		return s.dispatchResponse(conn, m.ID, nil)
	default:
		return fmt.Errorf("server: unhandled message type %T", msg)
	}
}

// dispatchRequest always enqueues the reply to req last, after invoking
// the handler: spec.md §4.3/§5 guarantee that the reply to the current
// request is the last outbound send its dispatch generates, so any
// notification/request the handler itself enqueues (via Connection.Notify
// or Connection.Request) must reach the outbox ahead of it.
func (s *Server[S, C]) dispatchRequest(conn *Connection[S], req *jsonrpc2.Request) error {
	cb, ok := s.resolve(req.Method, true)
	if !ok {
		s.core.enqueue(&jsonrpc2.PeerError{
			ID:  req.ID,
			Err: jsonrpc2.Errorf(jsonrpc2.MethodNotFound, "unknown method %q", req.Method),
		})
		return nil
	}
	if cb.kind != kindRequest {
		s.core.enqueue(&jsonrpc2.PeerError{
			ID:  req.ID,
			Err: jsonrpc2.Errorf(jsonrpc2.InvalidRequest, "%q is not a request method", req.Method),
		})
		return nil
	}

	s.core.currentID = &req.ID
	s.core.pendingErr = nil
	result, rerr := cb.request(conn, req.Params)
	s.core.currentID = nil

	if s.core.pendingErr != nil {
		rerr = s.core.pendingErr
		s.core.pendingErr = nil
	}
	if rerr != nil {
		s.core.enqueue(&jsonrpc2.PeerError{ID: req.ID, Err: rerr})
	} else {
		s.core.enqueue(&jsonrpc2.Response{ID: req.ID, Result: result})
	}
	return nil
}

func (s *Server[S, C]) dispatchNotification(conn *Connection[S], notif *jsonrpc2.Notification) error {
	cb, ok := s.resolve(notif.Method, false)
	if !ok {
		s.core.logger.Printf("server: dropping unknown notification %q", notif.Method)
		return nil
	}
	if cb.kind != kindNotification {
		s.core.logger.Printf("server: %q is not a notification method", notif.Method)
		return nil
	}
	if err := cb.notification(conn, notif.Params); err != nil {
		s.core.logger.Printf("server: notification handler for %q: %v", notif.Method, err)
	}
	return nil
}

// dispatchResponse routes a reply to the ResponseFunc registered for the
// method encoded in its correlation id. It bypasses the lifecycle guard
// deliberately: a reply to a request the server itself sent earlier is
// always in scope, regardless of what state the server has since moved to.
func (s *Server[S, C]) dispatchResponse(conn *Connection[S], id jsonrpc2.ID, result json.RawMessage) error {
	method, tagJSON, ok := jsonrpc2.SplitCorrelationID(id)
	if !ok {
		s.core.logger.Printf("server: dropping response with unrecognised id %s", id.String())
		return nil
	}
	cb, ok := s.window.resolve(method)
	if !ok {
		cb, ok = s.workspace.resolve(method)
	}
	if !ok || cb.kind != kindResponse {
		s.core.logger.Printf("server: no response handler registered for %q", method)
		return nil
	}
	if err := cb.response(conn, tagJSON, result); err != nil {
		s.core.logger.Printf("server: response handler for %q: %v", method, err)
	}
	return nil
}
