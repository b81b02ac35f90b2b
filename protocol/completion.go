package protocol

import "github.com/jmdaemon/synclsp/command"

// CompletionClientCapabilities declares completion-related client support.
type CompletionClientCapabilities struct {
	DynamicRegistration bool `json:"dynamicRegistration,omitempty"`
	CompletionItem      *struct {
		SnippetSupport bool `json:"snippetSupport,omitempty"`
	} `json:"completionItem,omitempty"`
}

// CompletionOptions is the server's completionProvider capability value.
// TriggerCharacters is read by the lifecycle service when building
// ServerCapabilities, so setting it via Server.OnCompletion's options
// changes what initialize advertises.
type CompletionOptions struct {
	ResolveProvider   bool     `json:"resolveProvider,omitempty"`
	TriggerCharacters []string `json:"triggerCharacters,omitempty"`
}

// Clone returns a value copy safe to embed in an outbound
// InitializeResult without aliasing the endpoint's stored slice.
func (o CompletionOptions) Clone() CompletionOptions {
	clone := o
	if o.TriggerCharacters != nil {
		clone.TriggerCharacters = append([]string(nil), o.TriggerCharacters...)
	}
	return clone
}

// CompletionParams is the payload of textDocument/completion.
type CompletionParams struct {
	TextDocumentPositionParams
	Context *CompletionContext `json:"context,omitempty"`
}

// CompletionTriggerKind explains why completion was invoked.
type CompletionTriggerKind int

const (
	CompletionInvoked          CompletionTriggerKind = 1
	CompletionTriggerCharacter CompletionTriggerKind = 2
	CompletionTriggerForIncompleteCompletions CompletionTriggerKind = 3
)

// CompletionContext carries the trigger details.
type CompletionContext struct {
	TriggerKind      CompletionTriggerKind `json:"triggerKind"`
	TriggerCharacter string                `json:"triggerCharacter,omitempty"`
}

// CompletionItemKind classifies a CompletionItem for icon purposes.
type CompletionItemKind int

// InsertTextFormat selects plain text vs snippet syntax for InsertText.
type InsertTextFormat int

const (
	PlainTextFormat InsertTextFormat = 1
	SnippetFormat   InsertTextFormat = 2
)

// CompletionItem is one suggestion offered to the editor. Command, when
// present, is executed by the client when the item is accepted.
type CompletionItem struct {
	Label            string              `json:"label"`
	Kind             CompletionItemKind  `json:"kind,omitempty"`
	Detail           string              `json:"detail,omitempty"`
	Documentation    *MarkupContent      `json:"documentation,omitempty"`
	InsertText       string              `json:"insertText,omitempty"`
	InsertTextFormat InsertTextFormat    `json:"insertTextFormat,omitempty"`
	Command          *command.Wire       `json:"command,omitempty"`
}

// CompletionList is the result of textDocument/completion; the default
// handler replies with an empty, non-incomplete list.
type CompletionList struct {
	IsIncomplete bool             `json:"isIncomplete"`
	Items        []CompletionItem `json:"items"`
}

// CompletionItemResolveParams is the payload of completionItem/resolve:
// the same item the client previously received, to be filled in further.
type CompletionItemResolveParams = CompletionItem
