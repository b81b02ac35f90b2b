package protocol

// TextDocumentItem is the full content of a just-opened document.
type TextDocumentItem struct {
	URI        DocumentURI `json:"uri"`
	LanguageID string      `json:"languageId"`
	Version    int         `json:"version"`
	Text       string      `json:"text"`
}

// DidOpenTextDocumentParams is the payload of textDocument/didOpen.
type DidOpenTextDocumentParams struct {
	TextDocument TextDocumentItem `json:"textDocument"`
}

// VersionedTextDocumentIdentifier names a document at a specific version.
type VersionedTextDocumentIdentifier struct {
	TextDocumentIdentifier
	Version int `json:"version"`
}

// TextDocumentContentChangeEvent is one edit inside didChange; Range nil
// means "replace the whole document" (full sync).
type TextDocumentContentChangeEvent struct {
	Range *Range `json:"range,omitempty"`
	Text  string `json:"text"`
}

// DidChangeTextDocumentParams is the payload of textDocument/didChange.
type DidChangeTextDocumentParams struct {
	TextDocument   VersionedTextDocumentIdentifier   `json:"textDocument"`
	ContentChanges []TextDocumentContentChangeEvent  `json:"contentChanges"`
}

// TextDocumentSaveReason explains why willSave fired.
type TextDocumentSaveReason int

const (
	SaveManual     TextDocumentSaveReason = 1
	SaveAfterDelay TextDocumentSaveReason = 2
	SaveFocusOut   TextDocumentSaveReason = 3
)

// WillSaveTextDocumentParams is the payload of textDocument/willSave.
type WillSaveTextDocumentParams struct {
	TextDocument TextDocumentIdentifier  `json:"textDocument"`
	Reason       TextDocumentSaveReason  `json:"reason"`
}

// TextEdit replaces the text inside Range with NewText.
type TextEdit struct {
	Range   Range  `json:"range"`
	NewText string `json:"newText"`
}

// DidSaveTextDocumentParams is the payload of textDocument/didSave. Text
// is only present when the server advertised SaveOptions.IncludeText.
type DidSaveTextDocumentParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
	Text         string                 `json:"text,omitempty"`
}

// DidCloseTextDocumentParams is the payload of textDocument/didClose.
type DidCloseTextDocumentParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
}

// DefinitionParams is the payload of textDocument/definition.
type DefinitionParams struct {
	TextDocumentPositionParams
}

// Location pairs a URI with a Range inside it.
type Location struct {
	URI   DocumentURI `json:"uri"`
	Range Range       `json:"range"`
}

// ReferenceContext narrows textDocument/references.
type ReferenceContext struct {
	IncludeDeclaration bool `json:"includeDeclaration"`
}

// ReferenceParams is the payload of textDocument/references.
type ReferenceParams struct {
	TextDocumentPositionParams
	Context ReferenceContext `json:"context"`
}

// SignatureHelpOptions is the server's signatureHelpProvider capability value.
type SignatureHelpOptions struct {
	TriggerCharacters []string `json:"triggerCharacters,omitempty"`
}

// SignatureHelpParams is the payload of textDocument/signatureHelp.
type SignatureHelpParams struct {
	TextDocumentPositionParams
}

// ParameterInformation documents one parameter inside a SignatureInformation.
type ParameterInformation struct {
	Label string `json:"label"`
}

// SignatureInformation documents one overload of a callable.
type SignatureInformation struct {
	Label         string                 `json:"label"`
	Documentation *MarkupContent         `json:"documentation,omitempty"`
	Parameters    []ParameterInformation `json:"parameters,omitempty"`
}

// SignatureHelp is the result of textDocument/signatureHelp; the default
// handler replies with an empty Signatures slice.
type SignatureHelp struct {
	Signatures      []SignatureInformation `json:"signatures"`
	ActiveSignature int                    `json:"activeSignature,omitempty"`
	ActiveParameter int                    `json:"activeParameter,omitempty"`
}

// DocumentFormattingOptions carries editor formatting preferences.
type DocumentFormattingOptions struct {
	TabSize      int  `json:"tabSize"`
	InsertSpaces bool `json:"insertSpaces"`
}

// DocumentFormattingParams is the payload of textDocument/formatting.
type DocumentFormattingParams struct {
	TextDocument TextDocumentIdentifier     `json:"textDocument"`
	Options      DocumentFormattingOptions  `json:"options"`
}

// OnTypeFormattingOptions is the server's
// documentOnTypeFormattingProvider capability value.
type OnTypeFormattingOptions struct {
	FirstTriggerCharacter string   `json:"firstTriggerCharacter"`
	MoreTriggerCharacter  []string `json:"moreTriggerCharacter,omitempty"`
}

// DocumentOnTypeFormattingParams is the payload of
// textDocument/onTypeFormatting.
type DocumentOnTypeFormattingParams struct {
	TextDocumentPositionParams
	Ch      string                    `json:"ch"`
	Options DocumentFormattingOptions `json:"options"`
}

// DiagnosticSeverity classifies a Diagnostic.
type DiagnosticSeverity int

const (
	SeverityError       DiagnosticSeverity = 1
	SeverityWarning     DiagnosticSeverity = 2
	SeverityInformation DiagnosticSeverity = 3
	SeverityHint        DiagnosticSeverity = 4
)

// Diagnostic is one issue reported against a range of a document.
type Diagnostic struct {
	Range    Range              `json:"range"`
	Severity DiagnosticSeverity `json:"severity,omitempty"`
	Code     string             `json:"code,omitempty"`
	Source   string             `json:"source,omitempty"`
	Message  string             `json:"message"`
}

// PublishDiagnosticsParams is the payload of the outbound
// textDocument/publishDiagnostics notification.
type PublishDiagnosticsParams struct {
	URI         DocumentURI  `json:"uri"`
	Version     int          `json:"version,omitempty"`
	Diagnostics []Diagnostic `json:"diagnostics"`
}

// RenameOptions is the server's renameProvider capability value.
type RenameOptions struct {
	PrepareProvider bool `json:"prepareProvider,omitempty"`
}

// RenameParams is the payload of textDocument/rename.
type RenameParams struct {
	TextDocumentPositionParams
	NewName string `json:"newName"`
}

// DocumentHighlightKind classifies a DocumentHighlight.
type DocumentHighlightKind int

const (
	HighlightText  DocumentHighlightKind = 1
	HighlightRead  DocumentHighlightKind = 2
	HighlightWrite DocumentHighlightKind = 3
)

// DocumentHighlightOptions is the server's documentHighlightProvider
// capability value.
type DocumentHighlightOptions struct{}

// DocumentHighlightParams is the payload of textDocument/documentHighlight.
type DocumentHighlightParams struct {
	TextDocumentPositionParams
}

// DocumentHighlight is one highlighted region of a document, returned in
// the textDocument/documentHighlight result array.
type DocumentHighlight struct {
	Range Range                  `json:"range"`
	Kind  *DocumentHighlightKind `json:"kind,omitempty"`
}

// DocumentSymbolOptions is the server's documentSymbolProvider
// capability value.
type DocumentSymbolOptions struct{}

// DocumentSymbolParams is the payload of textDocument/documentSymbol.
type DocumentSymbolParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
}

// RangeFormattingOptions is the server's documentRangeFormattingProvider
// capability value.
type RangeFormattingOptions struct{}

// DocumentRangeFormattingParams is the payload of
// textDocument/rangeFormatting.
type DocumentRangeFormattingParams struct {
	TextDocument TextDocumentIdentifier    `json:"textDocument"`
	Range        Range                     `json:"range"`
	Options      DocumentFormattingOptions `json:"options"`
}
