package server

import "github.com/jmdaemon/synclsp/protocol"

// This file is the registration surface: one On* method per endpoint,
// each replacing that endpoint's default handler with cb and marking it
// as user-registered, which is what ServerCapabilities assembly checks
// for the endpoints that have a capability field (response handlers and
// the workspace notifications have none).

// --- lifecycle hooks are set via With*Hook options at New time instead,
// since they run inside the framework's own initialize/shutdown
// handlers rather than replacing them.

// --- window

func (s *Server[S, C]) OnShowMessageRequestResponse(cb Callback[S]) {
	s.window.showMessageRequestResponse.Set(cb)
}

// --- textDocument

func (s *Server[S, C]) OnDidOpen(cb Callback[S])  { s.textDocument.didOpen.Set(cb) }
func (s *Server[S, C]) OnDidChange(cb Callback[S]) { s.textDocument.didChange.Set(cb) }
func (s *Server[S, C]) OnWillSave(cb Callback[S])  { s.textDocument.willSave.Set(cb) }
func (s *Server[S, C]) OnWillSaveWaitUntil(cb Callback[S]) {
	s.textDocument.willSaveWaitUntil.Set(cb)
}

func (s *Server[S, C]) OnDidSave(cb Callback[S], opts protocol.SaveOptions) {
	s.textDocument.didSave.Set(cb)
	s.textDocument.didSave.SetOptions(opts)
}

func (s *Server[S, C]) OnDidClose(cb Callback[S]) { s.textDocument.didClose.Set(cb) }

func (s *Server[S, C]) OnHover(cb Callback[S], opts protocol.HoverOptions) {
	s.textDocument.hover.Set(cb)
	s.textDocument.hover.SetOptions(opts)
}

func (s *Server[S, C]) OnCompletion(cb Callback[S], opts protocol.CompletionOptions) {
	s.textDocument.completion.Set(cb)
	s.textDocument.completion.SetOptions(opts)
}

func (s *Server[S, C]) OnCompletionResolve(cb Callback[S]) {
	s.textDocument.completionResolve.Set(cb)
}

func (s *Server[S, C]) OnSignatureHelp(cb Callback[S], opts protocol.SignatureHelpOptions) {
	s.textDocument.signatureHelp.Set(cb)
	s.textDocument.signatureHelp.SetOptions(opts)
}

func (s *Server[S, C]) OnDefinition(cb Callback[S]) { s.textDocument.definition.Set(cb) }
func (s *Server[S, C]) OnReferences(cb Callback[S]) { s.textDocument.references.Set(cb) }

func (s *Server[S, C]) OnCodeAction(cb Callback[S], opts protocol.CodeActionOptions) {
	s.textDocument.codeAction.Set(cb)
	s.textDocument.codeAction.SetOptions(opts)
}

func (s *Server[S, C]) OnCodeActionResolve(cb Callback[S]) {
	s.textDocument.codeActionResolve.Set(cb)
}

func (s *Server[S, C]) OnCodeLens(cb Callback[S], opts protocol.CodeLensOptions) {
	s.textDocument.codeLens.Set(cb)
	s.textDocument.codeLens.SetOptions(opts)
}

func (s *Server[S, C]) OnCodeLensResolve(cb Callback[S]) {
	s.textDocument.codeLensResolve.Set(cb)
}

func (s *Server[S, C]) OnDocumentLink(cb Callback[S], opts protocol.DocumentLinkOptions) {
	s.textDocument.documentLink.Set(cb)
	s.textDocument.documentLink.SetOptions(opts)
}

func (s *Server[S, C]) OnDocumentLinkResolve(cb Callback[S]) {
	s.textDocument.documentLinkResolve.Set(cb)
}

func (s *Server[S, C]) OnFormatting(cb Callback[S]) { s.textDocument.formatting.Set(cb) }

func (s *Server[S, C]) OnRangeFormatting(cb Callback[S], opts protocol.RangeFormattingOptions) {
	s.textDocument.rangeFormatting.Set(cb)
	s.textDocument.rangeFormatting.SetOptions(opts)
}

func (s *Server[S, C]) OnTypeFormatting(cb Callback[S], opts protocol.OnTypeFormattingOptions) {
	s.textDocument.onTypeFormatting.Set(cb)
	s.textDocument.onTypeFormatting.SetOptions(opts)
}

func (s *Server[S, C]) OnRename(cb Callback[S], opts protocol.RenameOptions) {
	s.textDocument.rename.Set(cb)
	s.textDocument.rename.SetOptions(opts)
}

func (s *Server[S, C]) OnDocumentHighlight(cb Callback[S], opts protocol.DocumentHighlightOptions) {
	s.textDocument.documentHighlight.Set(cb)
	s.textDocument.documentHighlight.SetOptions(opts)
}

func (s *Server[S, C]) OnDocumentSymbol(cb Callback[S], opts protocol.DocumentSymbolOptions) {
	s.textDocument.documentSymbol.Set(cb)
	s.textDocument.documentSymbol.SetOptions(opts)
}

// --- workspace

func (s *Server[S, C]) OnDidChangeConfiguration(cb Callback[S]) {
	s.workspace.didChangeConfiguration.Set(cb)
}

func (s *Server[S, C]) OnDidChangeWatchedFiles(cb Callback[S]) {
	s.workspace.didChangeWatchedFiles.Set(cb)
}

// OnExecuteCommand registers the workspace/executeCommand handler. The
// handler typically uses the Registry passed to New to decode
// params.Arguments/Command into the server's concrete command type.
func (s *Server[S, C]) OnExecuteCommand(cb Callback[S]) {
	s.workspace.executeCommand.Set(cb)
}

func (s *Server[S, C]) OnWorkspaceSymbol(cb Callback[S]) { s.workspace.symbol.Set(cb) }

func (s *Server[S, C]) OnApplyEditResponse(cb Callback[S]) {
	s.workspace.applyEditResponse.Set(cb)
}

// Logger returns the configured logger, for handlers that want to log
// outside the window/logMessage pump.
func (s *Server[S, C]) Logger() interface{ Printf(string, ...any) } {
	return s.core.logger
}

// LogPump returns this server's log forwarder: writers obtained from
// it (Writer/WriterAt) can be wired into a standard *log.Logger so its
// output also reaches the client as window/logMessage notifications.
func (s *Server[S, C]) LogPump() *logPump[S] {
	return s.log
}
