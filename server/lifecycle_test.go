package server

import (
	"bytes"
	"encoding/json"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmdaemon/synclsp/jsonrpc2"
	"github.com/jmdaemon/synclsp/protocol"
)

func testCore(t *testing.T) *core[int] {
	t.Helper()
	logger := log.New(bytes.NewBuffer(nil), "", 0)
	transport := jsonrpc2.NewCustom(bytes.NewReader(nil), &bytes.Buffer{}, logger)
	return newCore(0, transport, logger)
}

func callRequest[S any](t *testing.T, cb Callback[S], conn *Connection[S], params any) (json.RawMessage, *jsonrpc2.Error) {
	t.Helper()
	require.Equal(t, kindRequest, cb.kind)
	raw, err := json.Marshal(params)
	require.NoError(t, err)
	return cb.request(conn, raw)
}

func callNotification[S any](t *testing.T, cb Callback[S], conn *Connection[S], params any) *jsonrpc2.Error {
	t.Helper()
	require.Equal(t, kindNotification, cb.kind)
	raw, err := json.Marshal(params)
	require.NoError(t, err)
	return cb.notification(conn, raw)
}

func TestLifecycleHappyPath(t *testing.T) {
	c := testCore(t)
	fsm := newLifecycleFSM(c)
	fsm.capabilities = func() protocol.ServerCapabilities { return protocol.ServerCapabilities{} }
	conn := newConnection(c)

	assert.Equal(t, stateStart, fsm.state)

	cb, ok := fsm.resolve(protocol.MethodInitialize)
	require.True(t, ok)
	_, rerr := callRequest(t, cb, conn, protocol.InitializeParams{})
	require.Nil(t, rerr)
	assert.Equal(t, stateInitializing, fsm.state)

	cb, ok = fsm.resolve(protocol.MethodInitialized)
	require.True(t, ok)
	rerr2 := callNotification(t, cb, conn, protocol.InitializedParams{})
	require.Nil(t, rerr2)
	assert.Equal(t, stateRunning, fsm.state)

	ok2, _, _ := fsm.guardOther()
	assert.True(t, ok2)

	cb, ok = fsm.resolve(protocol.MethodShutdown)
	require.True(t, ok)
	_, rerr3 := callRequest(t, cb, conn, protocol.ShutdownParams{})
	require.Nil(t, rerr3)
	assert.Equal(t, stateShuttingDown, fsm.state)

	cb, ok = fsm.resolve(protocol.MethodExit)
	require.True(t, ok)
	rerr4 := callNotification(t, cb, conn, protocol.ExitParams{})
	require.Nil(t, rerr4)
	assert.True(t, fsm.Done())
}

func TestLifecycleRejectsMethodsBeforeInitialize(t *testing.T) {
	c := testCore(t)
	fsm := newLifecycleFSM(c)

	ok, code, _ := fsm.guardOther()
	assert.False(t, ok)
	assert.Equal(t, jsonrpc2.ServerNotInitialized, code)
}

func TestLifecycleRejectsDoubleInitialize(t *testing.T) {
	c := testCore(t)
	fsm := newLifecycleFSM(c)
	fsm.capabilities = func() protocol.ServerCapabilities { return protocol.ServerCapabilities{} }
	conn := newConnection(c)

	cb, _ := fsm.resolve(protocol.MethodInitialize)
	_, rerr := callRequest(t, cb, conn, protocol.InitializeParams{})
	require.Nil(t, rerr)

	cb, _ = fsm.resolve(protocol.MethodInitialize)
	_, rerr = callRequest(t, cb, conn, protocol.InitializeParams{})
	require.NotNil(t, rerr)
	assert.Equal(t, jsonrpc2.InvalidRequest, rerr.Code)
	assert.ErrorIs(t, rerr, ErrAlreadyInitialized)
}

func TestLifecycleRejectsExitBeforeShutdown(t *testing.T) {
	c := testCore(t)
	fsm := newLifecycleFSM(c)
	fsm.capabilities = func() protocol.ServerCapabilities { return protocol.ServerCapabilities{} }
	conn := newConnection(c)

	cb, _ := fsm.resolve(protocol.MethodInitialize)
	callRequest(t, cb, conn, protocol.InitializeParams{})
	cb, _ = fsm.resolve(protocol.MethodInitialized)
	callNotification(t, cb, conn, protocol.InitializedParams{})

	cb, _ = fsm.resolve(protocol.MethodExit)
	rerr := callNotification(t, cb, conn, protocol.ExitParams{})
	require.NotNil(t, rerr)
	assert.Equal(t, jsonrpc2.InvalidRequest, rerr.Code)
	assert.False(t, fsm.Done())
}

func TestLifecycleShuttingDownRejectsEverythingButExit(t *testing.T) {
	c := testCore(t)
	fsm := newLifecycleFSM(c)
	fsm.capabilities = func() protocol.ServerCapabilities { return protocol.ServerCapabilities{} }
	conn := newConnection(c)

	cb, _ := fsm.resolve(protocol.MethodInitialize)
	callRequest(t, cb, conn, protocol.InitializeParams{})
	cb, _ = fsm.resolve(protocol.MethodInitialized)
	callNotification(t, cb, conn, protocol.InitializedParams{})
	cb, _ = fsm.resolve(protocol.MethodShutdown)
	callRequest(t, cb, conn, protocol.ShutdownParams{})

	ok, code, _ := fsm.guardOther()
	assert.False(t, ok)
	assert.Equal(t, jsonrpc2.InvalidRequest, code)

	cb, _ = fsm.resolve(protocol.MethodShutdown)
	_, rerr := callRequest(t, cb, conn, protocol.ShutdownParams{})
	require.NotNil(t, rerr)
}
