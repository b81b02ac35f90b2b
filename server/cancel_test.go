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

	"github.com/jmdaemon/synclsp/jsonrpc2"
	"github.com/jmdaemon/synclsp/protocol"
)

func TestCancelledFalseWithoutInFlightRequest(t *testing.T) {
	c := testCore(t)
	assert.False(t, c.cancelled())
}

// loopback builds a pollable server-side Transport (as NewConn does for
// TCP) paired with a client-side Transport used only to write frames in
// these tests.
func loopback(t *testing.T) (server, client *jsonrpc2.Transport) {
	t.Helper()
	logger := log.New(bytes.NewBuffer(nil), "", 0)
	s, c := net.Pipe()
	t.Cleanup(func() { s.Close(); c.Close() })
	return jsonrpc2.NewConn(s, logger), jsonrpc2.NewConn(c, logger)
}

func TestCancelledTrueWhenPeekedCancelMatchesCurrentID(t *testing.T) {
	serverT, clientT := loopback(t)
	logger := log.New(bytes.NewBuffer(nil), "", 0)
	c := newCore(0, serverT, logger)

	id := jsonrpc2.NewIntID(7)
	c.currentID = &id

	go func() {
		_ = clientT.Send(&jsonrpc2.Notification{
			Method: protocol.MethodCancelRequest,
			Params: mustMarshal(t, protocol.CancelParams{ID: id.Raw()}),
		})
	}()

	require.Eventually(t, func() bool { return c.cancelled() }, time.Second, time.Millisecond)
	require.NotNil(t, c.pendingErr)
	assert.Equal(t, jsonrpc2.RequestCancelled, c.pendingErr.Code)
}

func TestCancelledFalseForDifferentID(t *testing.T) {
	serverT, clientT := loopback(t)
	logger := log.New(bytes.NewBuffer(nil), "", 0)
	c := newCore(0, serverT, logger)

	id := jsonrpc2.NewIntID(1)
	c.currentID = &id
	other := jsonrpc2.NewIntID(2)

	go func() {
		_ = clientT.Send(&jsonrpc2.Notification{
			Method: protocol.MethodCancelRequest,
			Params: mustMarshal(t, protocol.CancelParams{ID: other.Raw()}),
		})
	}()

	// Give the peeker a few chances; it should never observe a match.
	for i := 0; i < 20; i++ {
		assert.False(t, c.cancelled())
		time.Sleep(time.Millisecond)
	}
}

func mustMarshal(t *testing.T, v any) []byte {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return data
}
