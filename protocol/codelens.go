package protocol

import "github.com/jmdaemon/synclsp/command"

// CodeLensOptions is the server's codeLensProvider capability value.
type CodeLensOptions struct {
	ResolveProvider bool `json:"resolveProvider,omitempty"`
}

// CodeLensParams is the payload of textDocument/codeLens.
type CodeLensParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
}

// CodeLens is one entry of textDocument/codeLens's result, or the
// argument to codeLens/resolve.
type CodeLens struct {
	Range   Range         `json:"range"`
	Command *command.Wire `json:"command,omitempty"`
	Data    any           `json:"data,omitempty"`
}

// CodeLensResolveParams is the payload of codeLens/resolve.
type CodeLensResolveParams = CodeLens

// DocumentLinkOptions is the server's documentLinkProvider capability value.
type DocumentLinkOptions struct {
	ResolveProvider bool `json:"resolveProvider,omitempty"`
}

// DocumentLinkParams is the payload of textDocument/documentLink.
type DocumentLinkParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
}

// DocumentLink is one entry of textDocument/documentLink's result, or
// the argument to documentLink/resolve.
type DocumentLink struct {
	Range  Range  `json:"range"`
	Target string `json:"target,omitempty"`
	Data   any    `json:"data,omitempty"`
}

// DocumentLinkResolveParams is the payload of documentLink/resolve.
type DocumentLinkResolveParams = DocumentLink
