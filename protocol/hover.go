package protocol

// Position is a zero-based line/character offset inside a document.
type Position struct {
	Line      int `json:"line"`
	Character int `json:"character"`
}

// Range is a start/end pair of Positions.
type Range struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// TextDocumentIdentifier names a document by URI.
type TextDocumentIdentifier struct {
	URI DocumentURI `json:"uri"`
}

// TextDocumentPositionParams is the common shape shared by hover,
// definition, references, signature help, and completion requests.
type TextDocumentPositionParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
	Position     Position               `json:"position"`
}

// HoverClientCapabilities declares the markup kinds a client can render.
type HoverClientCapabilities struct {
	DynamicRegistration bool         `json:"dynamicRegistration,omitempty"`
	ContentFormat       []MarkupKind `json:"contentFormat,omitempty"`
}

// HoverOptions is the server's hoverProvider capability value.
type HoverOptions struct{}

// HoverParams is the payload of textDocument/hover.
type HoverParams struct {
	TextDocumentPositionParams
}

// Hover is the result of textDocument/hover. The zero value (empty
// Contents, nil Range) is the default handler's reply.
type Hover struct {
	Contents MarkupContent `json:"contents"`
	Range    *Range        `json:"range,omitempty"`
}
