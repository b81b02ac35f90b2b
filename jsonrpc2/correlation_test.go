package jsonrpc2

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCorrelationRoundTrip(t *testing.T) {
	id, err := CorrelationID("window/showMessageRequest", "tag-123")
	require.NoError(t, err)

	method, tagJSON, ok := SplitCorrelationID(id)
	require.True(t, ok)
	assert.Equal(t, "window/showMessageRequest", method)
	assert.JSONEq(t, `"tag-123"`, string(tagJSON))
}

func TestSplitCorrelationIDRejectsNonStringID(t *testing.T) {
	_, _, ok := SplitCorrelationID(NewIntID(5))
	assert.False(t, ok)
}

func TestSplitCorrelationIDRejectsMissingSeparator(t *testing.T) {
	_, _, ok := SplitCorrelationID(NewStringID("no-hash-here"))
	assert.False(t, ok)
}

func TestCorrelationIDWithStructTag(t *testing.T) {
	type tag struct {
		URI     string `json:"uri"`
		Version int    `json:"version"`
	}
	id, err := CorrelationID("workspace/applyEdit", tag{URI: "file:///a.go", Version: 3})
	require.NoError(t, err)

	method, tagJSON, ok := SplitCorrelationID(id)
	require.True(t, ok)
	assert.Equal(t, "workspace/applyEdit", method)
	assert.JSONEq(t, `{"uri":"file:///a.go","version":3}`, string(tagJSON))
}
