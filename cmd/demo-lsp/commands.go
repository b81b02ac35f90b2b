package main

import (
	"encoding/json"
	"fmt"

	"github.com/jmdaemon/synclsp/command"
)

// wordCountCommand implements workspace/executeCommand's
// "synclsp.wordCount" action: count the words in the document named by
// its single argument and report the total via window/showMessageRequest.
type wordCountCommand struct {
	uri string
}

func (c wordCountCommand) CommandName() string  { return "synclsp.wordCount" }
func (c wordCountCommand) CommandTitle() string { return "Count words" }
func (c wordCountCommand) CommandArgs() []any   { return []any{c.uri} }

func newWordCountCommand(args []json.RawMessage) (wordCountCommand, error) {
	if len(args) != 1 {
		return wordCountCommand{}, fmt.Errorf("synclsp.wordCount: want 1 argument, got %d", len(args))
	}
	var uri string
	if err := json.Unmarshal(args[0], &uri); err != nil {
		return wordCountCommand{}, fmt.Errorf("synclsp.wordCount: decoding uri: %w", err)
	}
	return wordCountCommand{uri: uri}, nil
}

func newCommandRegistry() *command.Registry[wordCountCommand] {
	reg := command.NewRegistry[wordCountCommand]()
	reg.Register("synclsp.wordCount", newWordCountCommand)
	return reg
}
