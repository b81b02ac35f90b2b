// Command demo-lsp is a minimal language server exercising every layer
// of the synclsp framework: hover, completion, diagnostics, and a single
// workspace command, over either stdio or a TCP accept-once listener.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jmdaemon/synclsp/command"
	"github.com/jmdaemon/synclsp/jsonrpc2"
	"github.com/jmdaemon/synclsp/protocol"
	"github.com/jmdaemon/synclsp/server"
)

// demoOptions is the shape demo-lsp expects in initialize's
// initializationOptions; validator enforces it has a non-empty Greeting
// if present at all, mirroring how a real server would gate on client
// config before accepting the connection.
type demoOptions struct {
	Greeting string `json:"greeting" validate:"min=1"`
}

// demoState is the per-connection state threaded through every handler.
type demoState struct {
	documents map[protocol.DocumentURI]string
	greeting  string
}

var validate = validator.New()

func main() {
	root := &cobra.Command{
		Use:   "demo-lsp",
		Short: "A demo language server built on synclsp",
		RunE:  run,
	}
	root.Flags().String("tcp", "", "listen on this address instead of stdio, e.g. 127.0.0.1:7777")
	root.Flags().String("log-level", "info", "log level named in the ready message (error|warn|info|debug); no records are filtered by it")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	addr, _ := cmd.Flags().GetString("tcp")
	logLevel, _ := cmd.Flags().GetString("log-level")

	logger := log.New(os.Stderr, "demo-lsp: ", log.LstdFlags)

	var transport *jsonrpc2.Transport
	if addr != "" {
		t, err := jsonrpc2.ListenTCP(addr, logger)
		if err != nil {
			return fmt.Errorf("demo-lsp: %w", err)
		}
		transport = t
	} else {
		transport = jsonrpc2.NewStdio(os.Stdin, os.Stdout, logger)
	}

	state := demoState{documents: make(map[protocol.DocumentURI]string)}
	registry := newCommandRegistry()

	srv := server.New(state, registry, transport,
		server.WithLogger[demoState, wordCountCommand](logger),
		server.WithServerInfo[demoState, wordCountCommand](protocol.ServerInfo{Name: "demo-lsp", Version: "0.1.0"}),
		server.WithInitializeHook(func(conn *server.Connection[demoState], params *protocol.InitializeParams) error {
			opts := demoOptions{Greeting: "hello"}
			if len(params.InitializationOptions) > 0 {
				if err := json.Unmarshal(params.InitializationOptions, &opts); err != nil {
					return jsonrpc2.Errorf(jsonrpc2.InvalidParams, "decoding initializationOptions: %v", err)
				}
				if err := validate.Struct(opts); err != nil {
					return jsonrpc2.Errorf(jsonrpc2.InvalidParams, "initializationOptions: %v", err)
				}
			}
			conn.State().greeting = opts.Greeting
			return nil
		}),
		server.WithInitializedHook(func(conn *server.Connection[demoState]) {
			conn.LogMessage(protocol.Info, fmt.Sprintf("%s ready (min log level %s)", conn.State().greeting, logLevel))
		}),
	)

	registerHandlers(srv)

	logger.Printf("serving on %s", describeTransport(addr))
	return srv.Serve()
}

func describeTransport(addr string) string {
	if addr == "" {
		return "stdio"
	}
	return addr
}

func registerHandlers(srv *server.Server[demoState, wordCountCommand]) {
	srv.OnDidOpen(server.NotificationFunc(func(conn *server.Connection[demoState], params protocol.DidOpenTextDocumentParams) error {
		conn.State().documents[params.TextDocument.URI] = params.TextDocument.Text
		return publishWordCountDiagnostic(conn, params.TextDocument.URI, params.TextDocument.Text)
	}))

	srv.OnDidChange(server.NotificationFunc(func(conn *server.Connection[demoState], params protocol.DidChangeTextDocumentParams) error {
		if len(params.ContentChanges) == 0 {
			return nil
		}
		// Demo server only understands full-document sync.
		text := params.ContentChanges[len(params.ContentChanges)-1].Text
		conn.State().documents[params.TextDocument.URI] = text
		return publishWordCountDiagnostic(conn, params.TextDocument.URI, text)
	}))

	srv.OnDidClose(server.NotificationFunc(func(conn *server.Connection[demoState], params protocol.DidCloseTextDocumentParams) error {
		delete(conn.State().documents, params.TextDocument.URI)
		return nil
	}))

	srv.OnHover(server.RequestFunc(func(conn *server.Connection[demoState], params protocol.HoverParams) (*protocol.Hover, error) {
		text := conn.State().documents[params.TextDocument.URI]
		words := len(strings.Fields(text))
		return &protocol.Hover{
			Contents: protocol.MarkupContent{
				Kind:  protocol.Markdown,
				Value: fmt.Sprintf("**%s**: %d word(s)", conn.State().greeting, words),
			},
		}, nil
	}), protocol.HoverOptions{})

	srv.OnCompletion(server.RequestFunc(func(conn *server.Connection[demoState], params protocol.CompletionParams) (*protocol.CompletionList, error) {
		return &protocol.CompletionList{
			Items: []protocol.CompletionItem{
				{Label: "TODO", Detail: "insert a TODO marker", InsertText: "// TODO: "},
			},
		}, nil
	}), protocol.CompletionOptions{TriggerCharacters: []string{"."}})

	srv.OnExecuteCommand(server.RequestFunc(func(conn *server.Connection[demoState], params protocol.ExecuteCommandParams) (*struct{}, error) {
		wire := &command.Wire{Name: params.Command, Arguments: params.Arguments}
		cmd, err := newCommandRegistry().Decode(wire)
		if err != nil {
			return nil, jsonrpc2.Errorf(jsonrpc2.InvalidParams, "%v", err)
		}
		text := conn.State().documents[protocol.DocumentURI(cmd.uri)]
		words := len(strings.Fields(text))
		tag := uuid.NewString()
		_, err = conn.ShowMessageRequest(tag, protocol.ShowMessageRequestParams{
			Type:    protocol.Info,
			Message: fmt.Sprintf("%s has %d word(s)", cmd.uri, words),
			Actions: []protocol.MessageActionItem{{Title: "OK"}},
		})
		return nil, err
	}))

	srv.OnShowMessageRequestResponse(server.ResponseFunc(func(conn *server.Connection[demoState], tag string, result *protocol.MessageActionItem) {
		if result != nil {
			conn.LogMessage(protocol.Log, fmt.Sprintf("showMessageRequest %s acknowledged: %s", tag, result.Title))
		}
	}))
}

func publishWordCountDiagnostic(conn *server.Connection[demoState], uri protocol.DocumentURI, text string) error {
	words := len(strings.Fields(text))
	if words > 0 {
		return conn.PublishDiagnostics(protocol.PublishDiagnosticsParams{URI: uri, Diagnostics: []protocol.Diagnostic{}})
	}
	return conn.PublishDiagnostics(protocol.PublishDiagnosticsParams{
		URI: uri,
		Diagnostics: []protocol.Diagnostic{
			{
				Range:    protocol.Range{},
				Severity: protocol.SeverityInformation,
				Message:  "empty document",
			},
		},
	})
}
