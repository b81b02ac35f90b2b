package server

import (
	"encoding/json"

	"github.com/jmdaemon/synclsp/jsonrpc2"
	"github.com/jmdaemon/synclsp/protocol"
)

// Connection is the handle a handler receives as its first argument. It
// carries no method set beyond the outbound operations spec.md §4.6
// describes; reading connection-scoped data (root URI, process id,
// initialization options) goes through its accessors instead of a raw
// state struct, so handlers never reach past the framework for wire
// concerns.
type Connection[S any] struct {
	core *core[S]
}

func newConnection[S any](core *core[S]) *Connection[S] {
	return &Connection[S]{core: core}
}

// State returns the user state value the server was constructed with.
func (c *Connection[S]) State() *S {
	return &c.core.state
}

// ProcessID returns the LSP client's process id, as sent with initialize.
// nil until initialize has been handled.
func (c *Connection[S]) ProcessID() *int {
	return c.core.processID
}

// RootURI returns the workspace root the client advertised at initialize.
func (c *Connection[S]) RootURI() *protocol.DocumentURI {
	return c.core.rootURI
}

// InitializationOptions returns the raw initializationOptions value from
// the initialize request, undecoded; callers unmarshal it into whatever
// shape their server expects.
func (c *Connection[S]) InitializationOptions() []byte {
	return c.core.initOptions
}

// Notify sends a fire-and-forget notification to the client.
func (c *Connection[S]) Notify(method string, params any) error {
	raw, err := marshalParams(params)
	if err != nil {
		return err
	}
	c.core.enqueue(&jsonrpc2.Notification{Method: method, Params: raw})
	return nil
}

// Request sends a server-to-client request. tag is opaque correlation
// data threaded through to the ResponseFunc callback registered for
// method (see jsonrpc2.CorrelationID); no per-call callback is accepted
// because the framework keeps no pending-request table — replies are
// routed back to a single handler per method, exactly like inbound
// dispatch. The returned token lets the caller later Cancel the request.
func (c *Connection[S]) Request(method string, tag any, params any) (*CancellationToken, error) {
	id, err := jsonrpc2.CorrelationID(method, tag)
	if err != nil {
		return nil, err
	}
	raw, err := marshalParams(params)
	if err != nil {
		return nil, err
	}
	c.core.enqueue(&jsonrpc2.Request{ID: id, Method: method, Params: raw})
	return &CancellationToken{id: id}, nil
}

// Cancel asks the client to cancel a request previously returned from
// Request, by sending $/cancelRequest for its id.
func (c *Connection[S]) Cancel(token *CancellationToken) error {
	params := protocol.CancelParams{ID: token.id.Raw()}
	return c.Notify(protocol.MethodCancelRequest, params)
}

// Cancelled reports whether the client has asked to cancel the request
// currently being handled (spec.md §4.8). It has no effect outside a
// request handler invoked from Serve's dispatch loop.
func (c *Connection[S]) Cancelled() bool {
	return c.core.cancelled()
}

// Error arranges for the current request's reply to carry code/message
// instead of whatever the handler itself returns, mirroring how
// Cancelled lets a handler observe out-of-band client input. Calling it
// from a notification handler has no effect, since notifications never
// reply.
func (c *Connection[S]) Error(code jsonrpc2.ErrorCode, message string) {
	c.core.pendingErr = jsonrpc2.NewError(code, message)
}

// LogMessage sends window/logMessage.
func (c *Connection[S]) LogMessage(typ protocol.MessageType, message string) error {
	return c.Notify(protocol.MethodWindowLogMessage, protocol.LogMessageParams{Type: typ, Message: message})
}

// ShowMessage sends window/showMessage.
func (c *Connection[S]) ShowMessage(typ protocol.MessageType, message string) error {
	return c.Notify(protocol.MethodWindowShowMessage, protocol.ShowMessageParams{Type: typ, Message: message})
}

// ShowMessageRequest sends window/showMessageRequest; the client's choice
// of action (or none) arrives at whatever ResponseFunc handler was
// registered via Server.OnShowMessageRequestResponse, carrying tag back.
func (c *Connection[S]) ShowMessageRequest(tag any, params protocol.ShowMessageRequestParams) (*CancellationToken, error) {
	return c.Request(protocol.MethodWindowShowMessageRequest, tag, params)
}

// Telemetry sends telemetry/event.
func (c *Connection[S]) Telemetry(params any) error {
	return c.Notify(protocol.MethodTelemetryEvent, params)
}

// PublishDiagnostics sends textDocument/publishDiagnostics.
func (c *Connection[S]) PublishDiagnostics(params protocol.PublishDiagnosticsParams) error {
	return c.Notify(protocol.MethodTextDocumentPublishDiagnostics, params)
}

// ApplyEdit sends workspace/applyEdit; the client's acceptance arrives at
// the ResponseFunc registered via Server.OnApplyEditResponse.
func (c *Connection[S]) ApplyEdit(tag any, params protocol.ApplyWorkspaceEditParams) (*CancellationToken, error) {
	return c.Request(protocol.MethodWorkspaceApplyEdit, tag, params)
}

func marshalParams(params any) (json.RawMessage, error) {
	if params == nil {
		return nil, nil
	}
	return json.Marshal(params)
}
