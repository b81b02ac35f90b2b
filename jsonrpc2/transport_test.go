package jsonrpc2

import (
	"bytes"
	"log"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *log.Logger {
	return log.New(bytes.NewBuffer(nil), "", 0)
}

func TestTransportSendRecvRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	w := NewCustom(&buf, &buf, discardLogger())

	require.NoError(t, w.Send(&Notification{Method: "textDocument/didOpen", Params: []byte(`{"a":1}`)}))

	frame, err := w.Recv()
	require.NoError(t, err)
	msg, err := Parse(frame)
	require.NoError(t, err)
	notif, ok := msg.(*Notification)
	require.True(t, ok)
	assert.Equal(t, "textDocument/didOpen", notif.Method)
}

func TestTransportRecvReturnsNilOnEOF(t *testing.T) {
	r := NewCustom(bytes.NewReader(nil), &bytes.Buffer{}, discardLogger())
	frame, err := r.Recv()
	assert.NoError(t, err)
	assert.Nil(t, frame)
}

func TestTransportCustomNeverPeeks(t *testing.T) {
	r := NewCustom(bytes.NewReader(nil), &bytes.Buffer{}, discardLogger())
	frame, err := r.Peek()
	assert.NoError(t, err)
	assert.Nil(t, frame)
}

func TestTransportSendLatchesWriteError(t *testing.T) {
	w := NewCustom(&bytes.Buffer{}, failingWriter{}, discardLogger())
	err := w.Send(&Notification{Method: "m"})
	require.Error(t, err)
	assert.ErrorIs(t, w.Err(), err)

	err2 := w.Send(&Notification{Method: "m"})
	assert.Equal(t, err, err2)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, assert.AnError }

func TestTransportPeekOverNetConnPushesBackForRecv(t *testing.T) {
	server, client := net.Pipe()
	t.Cleanup(func() { server.Close(); client.Close() })

	st := NewConn(server, discardLogger())
	ct := NewConn(client, discardLogger())

	done := make(chan struct{})
	go func() {
		defer close(done)
		require.NoError(t, ct.Send(&Notification{Method: "window/logMessage"}))
	}()

	var frame []byte
	require.Eventually(t, func() bool {
		var perr error
		frame, perr = st.Peek()
		return perr == nil && frame != nil
	}, time.Second, time.Millisecond)

	// Peeking again before Recv returns the same buffered frame.
	frame2, err := st.Peek()
	require.NoError(t, err)
	assert.Equal(t, frame, frame2)

	drained, err := st.Recv()
	require.NoError(t, err)
	assert.Equal(t, frame, drained)

	<-done
}
