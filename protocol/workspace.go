package protocol

import "encoding/json"

// DidChangeConfigurationParams is the payload of
// workspace/didChangeConfiguration; Settings is server-specific.
type DidChangeConfigurationParams struct {
	Settings json.RawMessage `json:"settings"`
}

// FileChangeType classifies a watched-file event.
type FileChangeType int

const (
	FileCreated FileChangeType = 1
	FileChanged FileChangeType = 2
	FileDeleted FileChangeType = 3
)

// FileEvent is one entry of DidChangeWatchedFilesParams.Changes.
type FileEvent struct {
	URI  DocumentURI    `json:"uri"`
	Type FileChangeType `json:"type"`
}

// DidChangeWatchedFilesParams is the payload of
// workspace/didChangeWatchedFiles. The framework only plumbs the
// notification through to a handler; registering the glob patterns a
// client should watch is the excluded file-watcher feature (see
// spec.md's Non-goals).
type DidChangeWatchedFilesParams struct {
	Changes []FileEvent `json:"changes"`
}

// ExecuteCommandOptions is the server's executeCommandProvider
// capability value; Commands is populated from a command.Registry's
// Names() at initialize time.
type ExecuteCommandOptions struct {
	Commands []string `json:"commands"`
}

// ExecuteCommandParams is the payload of workspace/executeCommand: the
// wire form of whatever command.Command the client asked to run.
type ExecuteCommandParams struct {
	Command   string            `json:"command"`
	Arguments []json.RawMessage `json:"arguments,omitempty"`
}

// TextDocumentEdit batches edits against one versioned document.
type TextDocumentEdit struct {
	TextDocument VersionedTextDocumentIdentifier `json:"textDocument"`
	Edits        []TextEdit                      `json:"edits"`
}

// WorkspaceEdit describes document changes the client should apply.
type WorkspaceEdit struct {
	Changes     map[DocumentURI][]TextEdit `json:"changes,omitempty"`
	DocumentChanges []TextDocumentEdit     `json:"documentChanges,omitempty"`
}

// ApplyWorkspaceEditParams is the payload of the outbound
// workspace/applyEdit request.
type ApplyWorkspaceEditParams struct {
	Label string        `json:"label,omitempty"`
	Edit  WorkspaceEdit `json:"edit"`
}

// ApplyWorkspaceEditResult is the client's reply to workspace/applyEdit.
type ApplyWorkspaceEditResult struct {
	Applied       bool   `json:"applied"`
	FailureReason string `json:"failureReason,omitempty"`
}

// WorkspaceSymbolParams is the payload of workspace/symbol.
type WorkspaceSymbolParams struct {
	Query string `json:"query"`
}

// SymbolKind classifies a SymbolInformation entry.
type SymbolKind int

// SymbolInformation is one entry of workspace/symbol's result.
type SymbolInformation struct {
	Name     string     `json:"name"`
	Kind     SymbolKind `json:"kind"`
	Location Location   `json:"location"`
}
