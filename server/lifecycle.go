package server

import (
	"github.com/jmdaemon/synclsp/jsonrpc2"
	"github.com/jmdaemon/synclsp/protocol"
)

// lifecycleState is the 5-tuple of spec.md §4.7 collapsed to its
// discriminant; the "current handlers" themselves live in
// lifecycleFSM's four Callback fields, swapped in place on transition —
// the function-pointer-swap mechanism spec.md §9 describes.
type lifecycleState int

const (
	stateStart lifecycleState = iota
	stateInitializing
	stateRunning
	stateShuttingDown
	stateDone
)

// lifecycleFSM owns the initialize/initialized/shutdown/exit handlers
// and transitions them in lock-step with the state. It is consulted
// first by Server.resolve, ahead of every namespaced service router
// (spec.md §6 scenario 2: the framework guards lifecycle first).
type lifecycleFSM[S any] struct {
	core  *core[S]
	state lifecycleState

	initializeCB  Callback[S]
	initializedCB Callback[S]
	shutdownCB    Callback[S]
	exitCB        Callback[S]

	onInitialize  func(*Connection[S], *protocol.InitializeParams) error
	onInitialized func(*Connection[S])
	onShutdown    func(*Connection[S]) error

	capabilities func() protocol.ServerCapabilities
	serverInfo   *protocol.ServerInfo

	done bool
}

func newLifecycleFSM[S any](core *core[S]) *lifecycleFSM[S] {
	f := &lifecycleFSM[S]{core: core, state: stateStart}
	f.installStart()
	return f
}

// Done reports whether the exit notification has transitioned the FSM to
// its terminal state; Serve's dispatch loop stops reading once this is true.
func (f *lifecycleFSM[S]) Done() bool {
	return f.done
}

// resolve answers only for the four lifecycle methods; everything else
// is not its concern.
func (f *lifecycleFSM[S]) resolve(method string) (Callback[S], bool) {
	switch method {
	case protocol.MethodInitialize:
		return f.initializeCB, true
	case protocol.MethodInitialized:
		return f.initializedCB, true
	case protocol.MethodShutdown:
		return f.shutdownCB, true
	case protocol.MethodExit:
		return f.exitCB, true
	default:
		return Callback[S]{}, false
	}
}

// guardOther implements the "lifecycle guard first" decision for every
// method that isn't one of the four above: start/initializing state
// rejects with ServerNotInitialized, shutting-down rejects with
// InvalidRequest, running lets dispatch continue to the other routers.
func (f *lifecycleFSM[S]) guardOther() (ok bool, code jsonrpc2.ErrorCode, message string) {
	switch f.state {
	case stateRunning:
		return true, 0, ""
	case stateShuttingDown:
		return false, jsonrpc2.InvalidRequest, "server is shutting down"
	default:
		return false, jsonrpc2.ServerNotInitialized, "server has not completed initialization"
	}
}

func (f *lifecycleFSM[S]) installStart() {
	f.initializeCB = RequestFunc(func(conn *Connection[S], params protocol.InitializeParams) (*protocol.InitializeResult, error) {
		if f.onInitialize != nil {
			if err := f.onInitialize(conn, &params); err != nil {
				return nil, err
			}
		}
		f.core.processID = params.ProcessID
		f.core.rootURI = params.RootURI
		f.core.initOptions = params.InitializationOptions

		result := &protocol.InitializeResult{
			Capabilities: f.capabilities(),
			ServerInfo:   f.serverInfo,
		}
		f.installInitializing()
		return result, nil
	})
	f.initializedCB = errNotificationCB[S](jsonrpc2.ServerNotInitialized, "received 'initialized' before 'initialize'")
	f.shutdownCB = errRequestCB[S](jsonrpc2.ServerNotInitialized, "server has not completed initialization")
	f.exitCB = errNotificationCB[S](jsonrpc2.ServerNotInitialized, "received 'exit' before 'initialize'")
	f.state = stateStart
}

func (f *lifecycleFSM[S]) installInitializing() {
	f.initializeCB = errRequestCausedCB[S](jsonrpc2.InvalidRequest, ErrAlreadyInitialized)
	f.initializedCB = NotificationFunc(func(conn *Connection[S], _ protocol.InitializedParams) error {
		if f.onInitialized != nil {
			f.onInitialized(conn)
		}
		f.installRunning()
		return nil
	})
	f.shutdownCB = errRequestCB[S](jsonrpc2.ServerNotInitialized, "server is still initializing")
	f.exitCB = errNotificationCB[S](jsonrpc2.ServerNotInitialized, "received 'exit' while initializing")
	f.state = stateInitializing
}

func (f *lifecycleFSM[S]) installRunning() {
	f.initializeCB = errRequestCausedCB[S](jsonrpc2.InvalidRequest, ErrAlreadyInitialized)
	f.initializedCB = errNotificationCB[S](jsonrpc2.InvalidRequest, "received 'initialized' twice")
	f.shutdownCB = RequestFunc(func(conn *Connection[S], _ protocol.ShutdownParams) (*struct{}, error) {
		if f.onShutdown != nil {
			if err := f.onShutdown(conn); err != nil {
				return nil, err
			}
		}
		f.installShuttingDown()
		return nil, nil
	})
	f.exitCB = errNotificationCB[S](jsonrpc2.InvalidRequest, "exit is only valid after shutdown")
	f.state = stateRunning
}

func (f *lifecycleFSM[S]) installShuttingDown() {
	f.initializeCB = errRequestCausedCB[S](jsonrpc2.InvalidRequest, ErrAlreadyInitialized)
	f.initializedCB = errNotificationCB[S](jsonrpc2.InvalidRequest, "server is shutting down")
	f.shutdownCB = errRequestCB[S](jsonrpc2.InvalidRequest, "shutdown already requested")
	f.exitCB = NotificationFunc(func(conn *Connection[S], _ protocol.ExitParams) error {
		f.state = stateDone
		f.done = true
		return nil
	})
	f.state = stateShuttingDown
}

// errRequestCB builds a request Callback whose handler always fails with
// code/message — used to install the per-state error handlers for methods
// that do not apply in the current state. The handler returns the error
// rather than writing the pending-error slot; dispatchRequest replies
// with it either way.
func errRequestCB[S any](code jsonrpc2.ErrorCode, message string) Callback[S] {
	return RequestFunc(func(conn *Connection[S], _ struct{}) (*struct{}, error) {
		return nil, jsonrpc2.NewError(code, message)
	})
}

func errNotificationCB[S any](code jsonrpc2.ErrorCode, message string) Callback[S] {
	return NotificationFunc(func(conn *Connection[S], _ struct{}) error {
		return jsonrpc2.NewError(code, message)
	})
}

// errRequestCausedCB is errRequestCB for rejections that wrap a sentinel
// error, so callers inspecting the handler's error via errors.Is still
// see it past the jsonrpc2.Error wrapping.
func errRequestCausedCB[S any](code jsonrpc2.ErrorCode, cause error) Callback[S] {
	return RequestFunc(func(conn *Connection[S], _ struct{}) (*struct{}, error) {
		return nil, jsonrpc2.WrapError(code, cause)
	})
}
