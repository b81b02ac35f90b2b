package jsonrpc2

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRequest(t *testing.T) {
	msg, err := Parse([]byte(`{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"a":1}}`))
	require.NoError(t, err)
	req, ok := msg.(*Request)
	require.True(t, ok)
	assert.Equal(t, "initialize", req.Method)
	assert.Equal(t, "1", req.ID.String())
}

func TestParseNotification(t *testing.T) {
	msg, err := Parse([]byte(`{"jsonrpc":"2.0","method":"textDocument/didOpen"}`))
	require.NoError(t, err)
	notif, ok := msg.(*Notification)
	require.True(t, ok)
	assert.Equal(t, "textDocument/didOpen", notif.Method)
	assert.Nil(t, notif.Params)
}

func TestParseResponse(t *testing.T) {
	msg, err := Parse([]byte(`{"jsonrpc":"2.0","id":"abc","result":{"ok":true}}`))
	require.NoError(t, err)
	resp, ok := msg.(*Response)
	require.True(t, ok)
	assert.Equal(t, "abc", resp.ID.String())
	assert.JSONEq(t, `{"ok":true}`, string(resp.Result))
}

func TestParsePeerError(t *testing.T) {
	msg, err := Parse([]byte(`{"jsonrpc":"2.0","id":2,"error":{"code":-32601,"message":"nope"}}`))
	require.NoError(t, err)
	perr, ok := msg.(*PeerError)
	require.True(t, ok)
	assert.Equal(t, MethodNotFound, perr.Err.Code)
}

func TestParseRejectsWrongVersion(t *testing.T) {
	_, err := Parse([]byte(`{"jsonrpc":"1.0","id":1,"method":"x"}`))
	assert.Error(t, err)
}

func TestParseRejectsResultAndError(t *testing.T) {
	_, err := Parse([]byte(`{"jsonrpc":"2.0","id":1,"result":1,"error":{"code":1,"message":"x"}}`))
	assert.Error(t, err)
}

func TestParseRejectsUnknownFields(t *testing.T) {
	_, err := Parse([]byte(`{"jsonrpc":"2.0","id":1,"method":"x","extra":true}`))
	assert.Error(t, err)
}

func TestEncodeResponseDefaultsNilResultToNull(t *testing.T) {
	data, err := Encode(&Response{ID: NewIntID(1), Result: nil})
	require.NoError(t, err)
	assert.JSONEq(t, `{"jsonrpc":"2.0","id":1,"result":null}`, string(data))
}

func TestIDEqualComparesWireForm(t *testing.T) {
	a := NewStringID("initialize#1")
	b := IDFromRaw(a.Raw())
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(NewIntID(1)))
}

func TestIDIsNil(t *testing.T) {
	var id ID
	assert.True(t, id.IsNil())
	assert.False(t, NewIntID(0).IsNil())
}
