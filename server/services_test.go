package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmdaemon/synclsp/protocol"
)

func TestTextDocumentServiceResolvesSupplementedEndpoints(t *testing.T) {
	ts := newTextDocumentService[int]()

	for _, method := range []string{
		protocol.MethodTextDocumentRename,
		protocol.MethodTextDocumentDocumentHighlight,
		protocol.MethodTextDocumentDocumentSymbol,
		protocol.MethodTextDocumentRangeFormatting,
	} {
		cb, ok := ts.resolve(method)
		require.True(t, ok, method)
		assert.Equal(t, kindRequest, cb.kind, method)
	}
}

func TestTextDocumentServiceContributesSupplementedCapabilitiesOnlyWhenRegistered(t *testing.T) {
	ts := newTextDocumentService[int]()

	var caps protocol.ServerCapabilities
	ts.contribute(&caps)
	assert.Nil(t, caps.RenameProvider)
	assert.Nil(t, caps.DocumentHighlightProvider)
	assert.Nil(t, caps.DocumentSymbolProvider)
	assert.Nil(t, caps.DocumentRangeFormattingProvider)

	ts.rename.Set(RequestFunc(func(*Connection[int], protocol.RenameParams) (*protocol.WorkspaceEdit, error) {
		return &protocol.WorkspaceEdit{}, nil
	}))
	ts.rename.SetOptions(protocol.RenameOptions{PrepareProvider: true})
	ts.documentHighlight.Set(RequestFunc(func(*Connection[int], protocol.DocumentHighlightParams) ([]protocol.DocumentHighlight, error) {
		return nil, nil
	}))
	ts.documentSymbol.Set(RequestFunc(func(*Connection[int], protocol.DocumentSymbolParams) ([]protocol.SymbolInformation, error) {
		return nil, nil
	}))
	ts.rangeFormatting.Set(RequestFunc(func(*Connection[int], protocol.DocumentRangeFormattingParams) ([]protocol.TextEdit, error) {
		return nil, nil
	}))

	var caps2 protocol.ServerCapabilities
	ts.contribute(&caps2)
	require.NotNil(t, caps2.RenameProvider)
	assert.True(t, caps2.RenameProvider.PrepareProvider)
	assert.NotNil(t, caps2.DocumentHighlightProvider)
	assert.NotNil(t, caps2.DocumentSymbolProvider)
	assert.NotNil(t, caps2.DocumentRangeFormattingProvider)
}
