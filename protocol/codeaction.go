package protocol

import "github.com/jmdaemon/synclsp/command"

// CodeActionKind classifies a CodeAction (quickfix, refactor, …).
type CodeActionKind string

const (
	QuickFix              CodeActionKind = "quickfix"
	RefactorInline         CodeActionKind = "refactor.inline"
	RefactorExtract        CodeActionKind = "refactor.extract"
	SourceOrganizeImports  CodeActionKind = "source.organizeImports"
)

// CodeActionOptions is the server's codeActionProvider capability value.
type CodeActionOptions struct {
	CodeActionKinds []CodeActionKind `json:"codeActionKinds,omitempty"`
	ResolveProvider bool             `json:"resolveProvider,omitempty"`
}

// CodeActionContext narrows which diagnostics/kinds are relevant.
type CodeActionContext struct {
	Diagnostics []Diagnostic     `json:"diagnostics"`
	Only        []CodeActionKind `json:"only,omitempty"`
}

// CodeActionParams is the payload of textDocument/codeAction.
type CodeActionParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
	Range        Range                  `json:"range"`
	Context      CodeActionContext      `json:"context"`
}

// CodeAction is one entry of textDocument/codeAction's result array, or
// the argument to codeAction/resolve. Either Edit or Command is
// typically set, never both.
type CodeAction struct {
	Title       string          `json:"title"`
	Kind        CodeActionKind  `json:"kind,omitempty"`
	Diagnostics []Diagnostic    `json:"diagnostics,omitempty"`
	IsPreferred bool            `json:"isPreferred,omitempty"`
	Edit        *WorkspaceEdit  `json:"edit,omitempty"`
	Command     *command.Wire   `json:"command,omitempty"`
}

// CodeActionResolveParams is the payload of codeAction/resolve.
type CodeActionResolveParams = CodeAction
