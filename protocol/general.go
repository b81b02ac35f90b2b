package protocol

import "encoding/json"

// DocumentURI is a file:// (or other scheme) URI identifying a document.
type DocumentURI string

// ClientInfo describes the connecting editor.
type ClientInfo struct {
	Name    string `json:"name"`
	Version string `json:"version,omitempty"`
}

// WorkspaceFolder is one root folder the client has open.
type WorkspaceFolder struct {
	URI  string `json:"uri"`
	Name string `json:"name"`
}

// ClientCapabilities is deliberately truncated to the fields this
// framework inspects; unrecognised client capabilities are dropped
// without error when InitializeParams is decoded, since json.Unmarshal
// ignores fields it doesn't know about.
type ClientCapabilities struct {
	Workspace    *WorkspaceClientCapabilities    `json:"workspace,omitempty"`
	TextDocument *TextDocumentClientCapabilities `json:"textDocument,omitempty"`
}

// WorkspaceClientCapabilities is workspace-scoped client capabilities.
type WorkspaceClientCapabilities struct {
	ApplyEdit          bool `json:"applyEdit,omitempty"`
	WorkspaceFolders   bool `json:"workspaceFolders,omitempty"`
	ExecuteCommand     bool `json:"executeCommand,omitempty"`
	DidChangeWatchedFiles bool `json:"didChangeWatchedFiles,omitempty"`
}

// TextDocumentClientCapabilities is document-scoped client capabilities.
type TextDocumentClientCapabilities struct {
	Synchronization *TextDocumentSyncClientCapabilities `json:"synchronization,omitempty"`
	Completion      *CompletionClientCapabilities       `json:"completion,omitempty"`
	Hover           *HoverClientCapabilities             `json:"hover,omitempty"`
}

// TextDocumentSyncClientCapabilities describes sync-related support.
type TextDocumentSyncClientCapabilities struct {
	DidSave bool `json:"didSave,omitempty"`
}

// MarkupKind is the content type of a markup string.
type MarkupKind string

const (
	PlainText MarkupKind = "plaintext"
	Markdown  MarkupKind = "markdown"
)

// MarkupContent pairs a MarkupKind with its value.
type MarkupContent struct {
	Kind  MarkupKind `json:"kind"`
	Value string     `json:"value"`
}

// InitializeParams is the payload of the initialize request.
type InitializeParams struct {
	ProcessID             *int               `json:"processId,omitempty"`
	ClientInfo             *ClientInfo        `json:"clientInfo,omitempty"`
	RootURI                *DocumentURI       `json:"rootUri,omitempty"`
	InitializationOptions  json.RawMessage    `json:"initializationOptions,omitempty"`
	Capabilities           ClientCapabilities `json:"capabilities"`
	Trace                  string             `json:"trace,omitempty"`
	WorkspaceFolders       []WorkspaceFolder  `json:"workspaceFolders,omitempty"`
}

// InitializeResult is the server's reply to initialize.
type InitializeResult struct {
	Capabilities ServerCapabilities `json:"capabilities"`
	ServerInfo   *ServerInfo        `json:"serverInfo,omitempty"`
}

// ServerInfo identifies the server implementation to the client.
type ServerInfo struct {
	Name    string `json:"name"`
	Version string `json:"version,omitempty"`
}

// ServerCapabilities is built by the lifecycle service from which
// endpoints carry a non-default handler (see server.Server.capabilities).
type ServerCapabilities struct {
	TextDocumentSync       *TextDocumentSyncOptions  `json:"textDocumentSync,omitempty"`
	HoverProvider          *HoverOptions             `json:"hoverProvider,omitempty"`
	CompletionProvider     *CompletionOptions        `json:"completionProvider,omitempty"`
	SignatureHelpProvider  *SignatureHelpOptions     `json:"signatureHelpProvider,omitempty"`
	DefinitionProvider     bool                      `json:"definitionProvider,omitempty"`
	ReferencesProvider     bool                      `json:"referencesProvider,omitempty"`
	CodeActionProvider     *CodeActionOptions        `json:"codeActionProvider,omitempty"`
	CodeLensProvider       *CodeLensOptions          `json:"codeLensProvider,omitempty"`
	DocumentLinkProvider   *DocumentLinkOptions      `json:"documentLinkProvider,omitempty"`
	DocumentFormattingProvider bool                  `json:"documentFormattingProvider,omitempty"`
	DocumentRangeFormattingProvider *RangeFormattingOptions `json:"documentRangeFormattingProvider,omitempty"`
	DocumentOnTypeFormattingProvider *OnTypeFormattingOptions `json:"documentOnTypeFormattingProvider,omitempty"`
	RenameProvider         *RenameOptions            `json:"renameProvider,omitempty"`
	DocumentHighlightProvider *DocumentHighlightOptions `json:"documentHighlightProvider,omitempty"`
	DocumentSymbolProvider *DocumentSymbolOptions    `json:"documentSymbolProvider,omitempty"`
	ExecuteCommandProvider *ExecuteCommandOptions    `json:"executeCommandProvider,omitempty"`
	WorkspaceSymbolProvider bool                     `json:"workspaceSymbolProvider,omitempty"`
}

// TextDocumentSyncKind selects full vs incremental document sync.
type TextDocumentSyncKind int

const (
	SyncNone        TextDocumentSyncKind = 0
	SyncFull        TextDocumentSyncKind = 1
	SyncIncremental TextDocumentSyncKind = 2
)

// SaveOptions configures the willSave/didSave capability.
type SaveOptions struct {
	IncludeText bool `json:"includeText,omitempty"`
}

// TextDocumentSyncOptions is advertised when the server registers any of
// the textDocument/did{Open,Change,Close,Save} endpoints.
type TextDocumentSyncOptions struct {
	OpenClose         bool                 `json:"openClose,omitempty"`
	Change            TextDocumentSyncKind `json:"change,omitempty"`
	WillSave          bool                 `json:"willSave,omitempty"`
	WillSaveWaitUntil bool                 `json:"willSaveWaitUntil,omitempty"`
	Save              *SaveOptions         `json:"save,omitempty"`
}

// InitializedParams is sent by the client after accepting initialize's
// result. Always empty on the wire.
type InitializedParams struct{}

// ShutdownParams and ExitParams are both always empty on the wire.
type ShutdownParams struct{}
type ExitParams struct{}

// CancelParams is the payload of $/cancelRequest.
type CancelParams struct {
	ID json.RawMessage `json:"id"`
}
