package server

import (
	"github.com/jmdaemon/synclsp/command"
	"github.com/jmdaemon/synclsp/protocol"
)

// textDocumentService groups every textDocument/* and */resolve endpoint
// this framework ships a registration point for.
type textDocumentService[S any] struct {
	didOpen             *Endpoint[S, struct{}]
	didChange           *Endpoint[S, struct{}]
	willSave            *Endpoint[S, struct{}]
	willSaveWaitUntil   *Endpoint[S, struct{}]
	didSave             *Endpoint[S, protocol.SaveOptions]
	didClose            *Endpoint[S, struct{}]
	hover               *Endpoint[S, protocol.HoverOptions]
	completion          *Endpoint[S, protocol.CompletionOptions]
	completionResolve   *Endpoint[S, struct{}]
	signatureHelp       *Endpoint[S, protocol.SignatureHelpOptions]
	definition          *Endpoint[S, struct{}]
	references          *Endpoint[S, struct{}]
	codeAction          *Endpoint[S, protocol.CodeActionOptions]
	codeActionResolve   *Endpoint[S, struct{}]
	codeLens            *Endpoint[S, protocol.CodeLensOptions]
	codeLensResolve     *Endpoint[S, struct{}]
	documentLink        *Endpoint[S, protocol.DocumentLinkOptions]
	documentLinkResolve *Endpoint[S, struct{}]
	formatting          *Endpoint[S, struct{}]
	rangeFormatting     *Endpoint[S, protocol.RangeFormattingOptions]
	onTypeFormatting    *Endpoint[S, protocol.OnTypeFormattingOptions]
	rename              *Endpoint[S, protocol.RenameOptions]
	documentHighlight   *Endpoint[S, protocol.DocumentHighlightOptions]
	documentSymbol      *Endpoint[S, protocol.DocumentSymbolOptions]
}

func newTextDocumentService[S any]() *textDocumentService[S] {
	return &textDocumentService[S]{
		didOpen:   newEndpoint[S, struct{}](protocol.MethodTextDocumentDidOpen, NotificationFunc(func(*Connection[S], protocol.DidOpenTextDocumentParams) error { return nil })),
		didChange: newEndpoint[S, struct{}](protocol.MethodTextDocumentDidChange, NotificationFunc(func(*Connection[S], protocol.DidChangeTextDocumentParams) error { return nil })),
		willSave:  newEndpoint[S, struct{}](protocol.MethodTextDocumentWillSave, NotificationFunc(func(*Connection[S], protocol.WillSaveTextDocumentParams) error { return nil })),
		willSaveWaitUntil: newEndpoint[S, struct{}](protocol.MethodTextDocumentWillSaveWaitUntil, RequestFunc(func(*Connection[S], protocol.WillSaveTextDocumentParams) ([]protocol.TextEdit, error) {
			return []protocol.TextEdit{}, nil
		})),
		didSave:  newEndpoint[S, protocol.SaveOptions](protocol.MethodTextDocumentDidSave, NotificationFunc(func(*Connection[S], protocol.DidSaveTextDocumentParams) error { return nil })),
		didClose: newEndpoint[S, struct{}](protocol.MethodTextDocumentDidClose, NotificationFunc(func(*Connection[S], protocol.DidCloseTextDocumentParams) error { return nil })),
		hover: newEndpoint[S, protocol.HoverOptions](protocol.MethodTextDocumentHover, RequestFunc(func(*Connection[S], protocol.HoverParams) (*protocol.Hover, error) {
			return &protocol.Hover{}, nil
		})),
		completion: newEndpoint[S, protocol.CompletionOptions](protocol.MethodTextDocumentCompletion, RequestFunc(func(*Connection[S], protocol.CompletionParams) (*protocol.CompletionList, error) {
			return &protocol.CompletionList{Items: []protocol.CompletionItem{}}, nil
		})),
		completionResolve: newEndpoint[S, struct{}](protocol.MethodCompletionItemResolve, RequestFunc(func(_ *Connection[S], item protocol.CompletionItem) (*protocol.CompletionItem, error) {
			return &item, nil
		})),
		signatureHelp: newEndpoint[S, protocol.SignatureHelpOptions](protocol.MethodTextDocumentSignatureHelp, RequestFunc(func(*Connection[S], protocol.SignatureHelpParams) (*protocol.SignatureHelp, error) {
			return &protocol.SignatureHelp{Signatures: []protocol.SignatureInformation{}}, nil
		})),
		definition: newEndpoint[S, struct{}](protocol.MethodTextDocumentDefinition, RequestFunc(func(*Connection[S], protocol.DefinitionParams) ([]protocol.Location, error) {
			return []protocol.Location{}, nil
		})),
		references: newEndpoint[S, struct{}](protocol.MethodTextDocumentReferences, RequestFunc(func(*Connection[S], protocol.ReferenceParams) ([]protocol.Location, error) {
			return []protocol.Location{}, nil
		})),
		codeAction: newEndpoint[S, protocol.CodeActionOptions](protocol.MethodTextDocumentCodeAction, RequestFunc(func(*Connection[S], protocol.CodeActionParams) ([]protocol.CodeAction, error) {
			return []protocol.CodeAction{}, nil
		})),
		codeActionResolve: newEndpoint[S, struct{}](protocol.MethodCodeActionResolve, RequestFunc(func(_ *Connection[S], a protocol.CodeAction) (*protocol.CodeAction, error) {
			return &a, nil
		})),
		codeLens: newEndpoint[S, protocol.CodeLensOptions](protocol.MethodTextDocumentCodeLens, RequestFunc(func(*Connection[S], protocol.CodeLensParams) ([]protocol.CodeLens, error) {
			return []protocol.CodeLens{}, nil
		})),
		codeLensResolve: newEndpoint[S, struct{}](protocol.MethodCodeLensResolve, RequestFunc(func(_ *Connection[S], l protocol.CodeLens) (*protocol.CodeLens, error) {
			return &l, nil
		})),
		documentLink: newEndpoint[S, protocol.DocumentLinkOptions](protocol.MethodTextDocumentDocumentLink, RequestFunc(func(*Connection[S], protocol.DocumentLinkParams) ([]protocol.DocumentLink, error) {
			return []protocol.DocumentLink{}, nil
		})),
		documentLinkResolve: newEndpoint[S, struct{}](protocol.MethodDocumentLinkResolve, RequestFunc(func(_ *Connection[S], l protocol.DocumentLink) (*protocol.DocumentLink, error) {
			return &l, nil
		})),
		formatting: newEndpoint[S, struct{}](protocol.MethodTextDocumentFormatting, RequestFunc(func(*Connection[S], protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
			return []protocol.TextEdit{}, nil
		})),
		onTypeFormatting: newEndpoint[S, protocol.OnTypeFormattingOptions](protocol.MethodTextDocumentOnTypeFormatting, RequestFunc(func(*Connection[S], protocol.DocumentOnTypeFormattingParams) ([]protocol.TextEdit, error) {
			return []protocol.TextEdit{}, nil
		})),
		rangeFormatting: newEndpoint[S, protocol.RangeFormattingOptions](protocol.MethodTextDocumentRangeFormatting, RequestFunc(func(*Connection[S], protocol.DocumentRangeFormattingParams) ([]protocol.TextEdit, error) {
			return []protocol.TextEdit{}, nil
		})),
		rename: newEndpoint[S, protocol.RenameOptions](protocol.MethodTextDocumentRename, RequestFunc(func(*Connection[S], protocol.RenameParams) (*protocol.WorkspaceEdit, error) {
			return &protocol.WorkspaceEdit{}, nil
		})),
		documentHighlight: newEndpoint[S, protocol.DocumentHighlightOptions](protocol.MethodTextDocumentDocumentHighlight, RequestFunc(func(*Connection[S], protocol.DocumentHighlightParams) ([]protocol.DocumentHighlight, error) {
			return []protocol.DocumentHighlight{}, nil
		})),
		documentSymbol: newEndpoint[S, protocol.DocumentSymbolOptions](protocol.MethodTextDocumentDocumentSymbol, RequestFunc(func(*Connection[S], protocol.DocumentSymbolParams) ([]protocol.SymbolInformation, error) {
			return []protocol.SymbolInformation{}, nil
		})),
	}
}

func (t *textDocumentService[S]) resolve(method string) (Callback[S], bool) {
	switch method {
	case protocol.MethodTextDocumentDidOpen:
		return t.didOpen.Callback(), true
	case protocol.MethodTextDocumentDidChange:
		return t.didChange.Callback(), true
	case protocol.MethodTextDocumentWillSave:
		return t.willSave.Callback(), true
	case protocol.MethodTextDocumentWillSaveWaitUntil:
		return t.willSaveWaitUntil.Callback(), true
	case protocol.MethodTextDocumentDidSave:
		return t.didSave.Callback(), true
	case protocol.MethodTextDocumentDidClose:
		return t.didClose.Callback(), true
	case protocol.MethodTextDocumentHover:
		return t.hover.Callback(), true
	case protocol.MethodTextDocumentCompletion:
		return t.completion.Callback(), true
	case protocol.MethodCompletionItemResolve:
		return t.completionResolve.Callback(), true
	case protocol.MethodTextDocumentSignatureHelp:
		return t.signatureHelp.Callback(), true
	case protocol.MethodTextDocumentDefinition:
		return t.definition.Callback(), true
	case protocol.MethodTextDocumentReferences:
		return t.references.Callback(), true
	case protocol.MethodTextDocumentCodeAction:
		return t.codeAction.Callback(), true
	case protocol.MethodCodeActionResolve:
		return t.codeActionResolve.Callback(), true
	case protocol.MethodTextDocumentCodeLens:
		return t.codeLens.Callback(), true
	case protocol.MethodCodeLensResolve:
		return t.codeLensResolve.Callback(), true
	case protocol.MethodTextDocumentDocumentLink:
		return t.documentLink.Callback(), true
	case protocol.MethodDocumentLinkResolve:
		return t.documentLinkResolve.Callback(), true
	case protocol.MethodTextDocumentFormatting:
		return t.formatting.Callback(), true
	case protocol.MethodTextDocumentOnTypeFormatting:
		return t.onTypeFormatting.Callback(), true
	case protocol.MethodTextDocumentRangeFormatting:
		return t.rangeFormatting.Callback(), true
	case protocol.MethodTextDocumentRename:
		return t.rename.Callback(), true
	case protocol.MethodTextDocumentDocumentHighlight:
		return t.documentHighlight.Callback(), true
	case protocol.MethodTextDocumentDocumentSymbol:
		return t.documentSymbol.Callback(), true
	default:
		return Callback[S]{}, false
	}
}

// contribute adds this router's fields to ServerCapabilities.
func (t *textDocumentService[S]) contribute(caps *protocol.ServerCapabilities) {
	if t.didOpen.Registered() || t.didChange.Registered() || t.didClose.Registered() || t.didSave.Registered() {
		sync := &protocol.TextDocumentSyncOptions{
			OpenClose:         t.didOpen.Registered() || t.didClose.Registered(),
			Change:            protocol.SyncFull,
			WillSave:          t.willSave.Registered(),
			WillSaveWaitUntil: t.willSaveWaitUntil.Registered(),
		}
		if t.didSave.Registered() {
			opts := t.didSave.Options()
			sync.Save = &opts
		}
		caps.TextDocumentSync = sync
	}
	if t.hover.Registered() {
		opts := t.hover.Options()
		caps.HoverProvider = &opts
	}
	if t.completion.Registered() {
		opts := t.completion.Options().Clone()
		opts.ResolveProvider = t.completionResolve.Registered()
		caps.CompletionProvider = &opts
	}
	if t.signatureHelp.Registered() {
		opts := t.signatureHelp.Options()
		caps.SignatureHelpProvider = &opts
	}
	caps.DefinitionProvider = t.definition.Registered()
	caps.ReferencesProvider = t.references.Registered()
	if t.codeAction.Registered() {
		opts := t.codeAction.Options()
		opts.ResolveProvider = t.codeActionResolve.Registered()
		caps.CodeActionProvider = &opts
	}
	if t.codeLens.Registered() {
		opts := t.codeLens.Options()
		opts.ResolveProvider = t.codeLensResolve.Registered()
		caps.CodeLensProvider = &opts
	}
	if t.documentLink.Registered() {
		opts := t.documentLink.Options()
		opts.ResolveProvider = t.documentLinkResolve.Registered()
		caps.DocumentLinkProvider = &opts
	}
	caps.DocumentFormattingProvider = t.formatting.Registered()
	if t.rangeFormatting.Registered() {
		opts := t.rangeFormatting.Options()
		caps.DocumentRangeFormattingProvider = &opts
	}
	if t.onTypeFormatting.Registered() {
		opts := t.onTypeFormatting.Options()
		caps.DocumentOnTypeFormattingProvider = &opts
	}
	if t.rename.Registered() {
		opts := t.rename.Options()
		caps.RenameProvider = &opts
	}
	if t.documentHighlight.Registered() {
		opts := t.documentHighlight.Options()
		caps.DocumentHighlightProvider = &opts
	}
	if t.documentSymbol.Registered() {
		opts := t.documentSymbol.Options()
		caps.DocumentSymbolProvider = &opts
	}
}

// workspaceService groups workspace/* endpoints. C is the server's
// concrete command set; its registry populates
// ExecuteCommandOptions.Commands. Decoding workspace/executeCommand
// arguments is left to the registered handler.
type workspaceService[S any, C command.Command] struct {
	didChangeConfiguration *Endpoint[S, struct{}]
	didChangeWatchedFiles  *Endpoint[S, struct{}]
	executeCommand         *Endpoint[S, struct{}]
	symbol                 *Endpoint[S, struct{}]
	applyEditResponse      *Endpoint[S, struct{}]

	registry *command.Registry[C]
}

func newWorkspaceService[S any, C command.Command](registry *command.Registry[C]) *workspaceService[S, C] {
	return &workspaceService[S, C]{
		didChangeConfiguration: newEndpoint[S, struct{}](protocol.MethodWorkspaceDidChangeConfiguration, NotificationFunc(func(*Connection[S], protocol.DidChangeConfigurationParams) error { return nil })),
		didChangeWatchedFiles:  newEndpoint[S, struct{}](protocol.MethodWorkspaceDidChangeWatchedFiles, NotificationFunc(func(*Connection[S], protocol.DidChangeWatchedFilesParams) error { return nil })),
		executeCommand: newEndpoint[S, struct{}](protocol.MethodWorkspaceExecuteCommand, RequestFunc(func(*Connection[S], protocol.ExecuteCommandParams) (*struct{}, error) {
			return nil, nil
		})),
		symbol: newEndpoint[S, struct{}](protocol.MethodWorkspaceSymbol, RequestFunc(func(*Connection[S], protocol.WorkspaceSymbolParams) ([]protocol.SymbolInformation, error) {
			return []protocol.SymbolInformation{}, nil
		})),
		applyEditResponse: newEndpoint[S, struct{}](protocol.MethodWorkspaceApplyEdit, ResponseFunc(func(_ *Connection[S], _ any, _ *protocol.ApplyWorkspaceEditResult) {})),
		registry:          registry,
	}
}

func (w *workspaceService[S, C]) resolve(method string) (Callback[S], bool) {
	switch method {
	case protocol.MethodWorkspaceDidChangeConfiguration:
		return w.didChangeConfiguration.Callback(), true
	case protocol.MethodWorkspaceDidChangeWatchedFiles:
		return w.didChangeWatchedFiles.Callback(), true
	case protocol.MethodWorkspaceExecuteCommand:
		return w.executeCommand.Callback(), true
	case protocol.MethodWorkspaceSymbol:
		return w.symbol.Callback(), true
	case protocol.MethodWorkspaceApplyEdit:
		return w.applyEditResponse.Callback(), true
	default:
		return Callback[S]{}, false
	}
}

func (w *workspaceService[S, C]) contribute(caps *protocol.ServerCapabilities) {
	if w.executeCommand.Registered() {
		caps.ExecuteCommandProvider = &protocol.ExecuteCommandOptions{Commands: w.registry.Names()}
	}
	caps.WorkspaceSymbolProvider = w.symbol.Registered()
}

// windowService groups the inbound side of window/*; the outbound
// notifications and requests (showMessage, logMessage,
// showMessageRequest, telemetry) are Connection methods instead, since
// nothing inbound ever targets them except their response correlation.
type windowService[S any] struct {
	showMessageRequestResponse *Endpoint[S, struct{}]
}

func newWindowService[S any]() *windowService[S] {
	return &windowService[S]{
		showMessageRequestResponse: newEndpoint[S, struct{}](protocol.MethodWindowShowMessageRequest, ResponseFunc(func(_ *Connection[S], _ any, _ *protocol.MessageActionItem) {})),
	}
}

func (w *windowService[S]) resolve(method string) (Callback[S], bool) {
	if method == protocol.MethodWindowShowMessageRequest {
		return w.showMessageRequestResponse.Callback(), true
	}
	return Callback[S]{}, false
}
