// Package protocol holds the concrete LSP payload shapes: thin data
// records plus the method-name constants that select a service router's
// endpoint. The dispatching engine in package server treats every type
// here as an external collaborator — it only needs each type to
// (un)marshal to JSON.
package protocol

// Method name constants for every endpoint the framework ships a
// registration point for.
const (
	MethodInitialize    = "initialize"
	MethodInitialized   = "initialized"
	MethodShutdown      = "shutdown"
	MethodExit          = "exit"
	MethodCancelRequest = "$/cancelRequest"

	MethodTextDocumentDidOpen             = "textDocument/didOpen"
	MethodTextDocumentDidChange           = "textDocument/didChange"
	MethodTextDocumentWillSave            = "textDocument/willSave"
	MethodTextDocumentWillSaveWaitUntil   = "textDocument/willSaveWaitUntil"
	MethodTextDocumentDidSave             = "textDocument/didSave"
	MethodTextDocumentDidClose            = "textDocument/didClose"
	MethodTextDocumentHover               = "textDocument/hover"
	MethodTextDocumentCompletion          = "textDocument/completion"
	MethodCompletionItemResolve           = "completionItem/resolve"
	MethodTextDocumentSignatureHelp       = "textDocument/signatureHelp"
	MethodTextDocumentDefinition          = "textDocument/definition"
	MethodTextDocumentReferences          = "textDocument/references"
	MethodTextDocumentCodeAction          = "textDocument/codeAction"
	MethodCodeActionResolve               = "codeAction/resolve"
	MethodTextDocumentCodeLens            = "textDocument/codeLens"
	MethodCodeLensResolve                 = "codeLens/resolve"
	MethodTextDocumentDocumentLink        = "textDocument/documentLink"
	MethodDocumentLinkResolve             = "documentLink/resolve"
	MethodTextDocumentFormatting          = "textDocument/formatting"
	MethodTextDocumentRangeFormatting     = "textDocument/rangeFormatting"
	MethodTextDocumentOnTypeFormatting    = "textDocument/onTypeFormatting"
	MethodTextDocumentPublishDiagnostics  = "textDocument/publishDiagnostics"
	MethodTextDocumentRename              = "textDocument/rename"
	MethodTextDocumentDocumentHighlight   = "textDocument/documentHighlight"
	MethodTextDocumentDocumentSymbol      = "textDocument/documentSymbol"

	MethodWorkspaceDidChangeConfiguration  = "workspace/didChangeConfiguration"
	MethodWorkspaceDidChangeWatchedFiles   = "workspace/didChangeWatchedFiles"
	MethodWorkspaceExecuteCommand          = "workspace/executeCommand"
	MethodWorkspaceApplyEdit               = "workspace/applyEdit"
	MethodWorkspaceSymbol                  = "workspace/symbol"

	MethodWindowShowMessage        = "window/showMessage"
	MethodWindowShowMessageRequest = "window/showMessageRequest"
	MethodWindowLogMessage         = "window/logMessage"
	MethodTelemetryEvent           = "telemetry/event"
)
