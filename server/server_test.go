package server

import (
	"bytes"
	"encoding/json"
	"log"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmdaemon/synclsp/command"
	"github.com/jmdaemon/synclsp/jsonrpc2"
	"github.com/jmdaemon/synclsp/protocol"
)

// client is a tiny synchronous test harness standing in for an LSP
// client: it writes requests/notifications and reads back whatever the
// server under test sends.
type client struct {
	t         *testing.T
	transport *jsonrpc2.Transport
}

func (c *client) send(msg jsonrpc2.Message) {
	c.t.Helper()
	require.NoError(c.t, c.transport.Send(msg))
}

func (c *client) recv() jsonrpc2.Message {
	c.t.Helper()
	frame, err := c.transport.Recv()
	require.NoError(c.t, err)
	require.NotNil(c.t, frame)
	msg, err := jsonrpc2.Parse(frame)
	require.NoError(c.t, err)
	return msg
}

func newTestServer(t *testing.T) (*Server[int, command.Unit], *client) {
	t.Helper()
	// Serve's log-sink guard is process-wide and one-shot (spec.md §4.6);
	// each test here models an independent server process, so reset it.
	logSinkInstalled.Store(false)

	serverConn, clientConn := net.Pipe()
	t.Cleanup(func() { serverConn.Close(); clientConn.Close() })

	logger := log.New(bytes.NewBuffer(nil), "", 0)
	serverTransport := jsonrpc2.NewConn(serverConn, logger)
	clientTransport := jsonrpc2.NewConn(clientConn, logger)

	srv := New[int](0, command.NewUnitRegistry(), serverTransport, WithLogger[int, command.Unit](logger))
	return srv, &client{t: t, transport: clientTransport}
}

func runServe(t *testing.T, srv *Server[int, command.Unit]) <-chan error {
	t.Helper()
	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve() }()
	return errCh
}

func TestServeFullLifecycle(t *testing.T) {
	srv, cl := newTestServer(t)
	errCh := runServe(t, srv)

	cl.send(&jsonrpc2.Request{ID: jsonrpc2.NewIntID(1), Method: protocol.MethodInitialize, Params: []byte(`{}`)})
	resp, ok := cl.recv().(*jsonrpc2.Response)
	require.True(t, ok)
	var result protocol.InitializeResult
	require.NoError(t, json.Unmarshal(resp.Result, &result))

	cl.send(&jsonrpc2.Notification{Method: protocol.MethodInitialized, Params: []byte(`{}`)})

	cl.send(&jsonrpc2.Request{ID: jsonrpc2.NewIntID(2), Method: protocol.MethodShutdown})
	resp2, ok := cl.recv().(*jsonrpc2.Response)
	require.True(t, ok)
	assert.JSONEq(t, `null`, string(resp2.Result))

	cl.send(&jsonrpc2.Notification{Method: protocol.MethodExit})

	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, ErrServerClosed)
	case <-time.After(time.Second):
		t.Fatal("Serve did not return after exit")
	}
}

func TestServeFailsOnSecondCallInProcess(t *testing.T) {
	srv, _ := newTestServer(t) // resets logSinkInstalled to false
	require.NoError(t, installLogSink())

	errCh := runServe(t, srv)
	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, ErrLoggerAlreadyInstalled)
	case <-time.After(time.Second):
		t.Fatal("Serve did not return")
	}
}

func TestServeRejectsRequestsBeforeInitialize(t *testing.T) {
	srv, cl := newTestServer(t)
	runServe(t, srv)

	cl.send(&jsonrpc2.Request{ID: jsonrpc2.NewIntID(1), Method: protocol.MethodTextDocumentHover, Params: []byte(`{}`)})
	perr, ok := cl.recv().(*jsonrpc2.PeerError)
	require.True(t, ok)
	assert.Equal(t, jsonrpc2.ServerNotInitialized, perr.Err.Code)
}

func TestServeHoverRoundTripAfterInitialize(t *testing.T) {
	srv, cl := newTestServer(t)
	srv.OnHover(RequestFunc(func(conn *Connection[int], params protocol.HoverParams) (*protocol.Hover, error) {
		*conn.State()++
		return &protocol.Hover{Contents: protocol.MarkupContent{Kind: protocol.PlainText, Value: "hi"}}, nil
	}), protocol.HoverOptions{})
	runServe(t, srv)

	cl.send(&jsonrpc2.Request{ID: jsonrpc2.NewIntID(1), Method: protocol.MethodInitialize, Params: []byte(`{}`)})
	cl.recv()
	cl.send(&jsonrpc2.Notification{Method: protocol.MethodInitialized})

	cl.send(&jsonrpc2.Request{ID: jsonrpc2.NewIntID(2), Method: protocol.MethodTextDocumentHover, Params: []byte(`{
		"textDocument": {"uri": "file:///a.go"}, "position": {"line": 0, "character": 0}
	}`)})
	resp, ok := cl.recv().(*jsonrpc2.Response)
	require.True(t, ok)
	var hover protocol.Hover
	require.NoError(t, json.Unmarshal(resp.Result, &hover))
	assert.Equal(t, "hi", hover.Contents.Value)
}

func TestServeRequestReplyIsLastOutboundSend(t *testing.T) {
	srv, cl := newTestServer(t)
	srv.OnExecuteCommand(RequestFunc(func(conn *Connection[int], params protocol.ExecuteCommandParams) (any, error) {
		_, err := conn.ShowMessageRequest("tag", protocol.ShowMessageRequestParams{Type: protocol.Info, Message: "hi"})
		require.NoError(t, err)
		return nil, nil
	}))
	runServe(t, srv)

	cl.send(&jsonrpc2.Request{ID: jsonrpc2.NewIntID(1), Method: protocol.MethodInitialize, Params: []byte(`{}`)})
	cl.recv()
	cl.send(&jsonrpc2.Notification{Method: protocol.MethodInitialized})

	cl.send(&jsonrpc2.Request{ID: jsonrpc2.NewIntID(2), Method: protocol.MethodWorkspaceExecuteCommand, Params: []byte(`{"command":"x"}`)})

	// spec.md §4.3/§5: the reply to the current request is always the
	// last outbound send its dispatch generates, so the server-initiated
	// showMessageRequest enqueued from inside the handler must arrive
	// before the executeCommand response that triggered it.
	first := cl.recv()
	req, ok := first.(*jsonrpc2.Request)
	require.True(t, ok, "expected the handler's own showMessageRequest first, got %T", first)
	assert.Equal(t, protocol.MethodWindowShowMessageRequest, req.Method)

	second := cl.recv()
	resp, ok := second.(*jsonrpc2.Response)
	require.True(t, ok, "expected the executeCommand reply second, got %T", second)
	assert.Equal(t, jsonrpc2.NewIntID(2), resp.ID)
}

func TestServeUnknownMethodReturnsMethodNotFound(t *testing.T) {
	srv, cl := newTestServer(t)
	runServe(t, srv)

	cl.send(&jsonrpc2.Request{ID: jsonrpc2.NewIntID(1), Method: protocol.MethodInitialize, Params: []byte(`{}`)})
	cl.recv()
	cl.send(&jsonrpc2.Notification{Method: protocol.MethodInitialized})

	cl.send(&jsonrpc2.Request{ID: jsonrpc2.NewIntID(2), Method: "textDocument/notAMethod"})
	perr, ok := cl.recv().(*jsonrpc2.PeerError)
	require.True(t, ok)
	assert.Equal(t, jsonrpc2.MethodNotFound, perr.Err.Code)
}
