// Package command implements the LSP Command wire protocol (spec §4.9):
// a user-defined tagged variant type, discovered by constructor name and
// executed by the server on behalf of the client.
//
// A concrete command set is any type implementing Command; a Registry
// maps each constructor name of that set to the Constructor that decodes
// it from its wire arguments.
package command

import "encoding/json"

// Command is a single constructor of a tagged command variant. Name is
// the wire "command" field; Title is the human-readable label shown in
// clients that surface commands in a palette; Args are the constructor's
// positional fields, each independently JSON-marshalable.
type Command interface {
	CommandName() string
	CommandTitle() string
	CommandArgs() []any
}

// Wire is the three-field JSON object every Command serialises to:
// {command, arguments, title}. It is also the shape used by adjacent LSP
// messages (CodeLens, CompletionItem) that embed an optional command.
type Wire struct {
	Name      string            `json:"command"`
	Title     string            `json:"title,omitempty"`
	Arguments []json.RawMessage `json:"arguments,omitempty"`
}

// Encode converts a Command to its wire form.
func Encode(c Command) (*Wire, error) {
	args := c.CommandArgs()
	raw := make([]json.RawMessage, 0, len(args))
	for _, a := range args {
		b, err := json.Marshal(a)
		if err != nil {
			return nil, err
		}
		raw = append(raw, b)
	}
	title := c.CommandTitle()
	if title == "" {
		title = c.CommandName()
	}
	return &Wire{Name: c.CommandName(), Title: title, Arguments: raw}, nil
}

// Constructor builds one concrete Command from its wire arguments. It is
// registered per constructor name inside a Registry.
type Constructor[C Command] func(args []json.RawMessage) (C, error)

// Registry is the discovery + decode table for one command set C. Decode
// looks up the wire "command" name and invokes the matching Constructor;
// Names returns the constructor names in registration order, which feeds
// ExecuteCommandOptions.Commands at initialize time.
type Registry[C Command] struct {
	order        []string
	constructors map[string]Constructor[C]
}

// NewRegistry builds an empty Registry.
func NewRegistry[C Command]() *Registry[C] {
	return &Registry[C]{constructors: make(map[string]Constructor[C])}
}

// Register adds one constructor under name. Registering the same name
// twice is a programming error and panics, matching how the teacher's
// Server.Register treats duplicate method registration.
func (r *Registry[C]) Register(name string, ctor Constructor[C]) {
	if _, exists := r.constructors[name]; exists {
		panic("command: constructor already registered: " + name)
	}
	r.order = append(r.order, name)
	r.constructors[name] = ctor
}

// Names returns the registered constructor names in declaration order.
func (r *Registry[C]) Names() []string {
	return append([]string(nil), r.order...)
}

// Decode parses a Wire object into a concrete C using the matching
// registered constructor.
func (r *Registry[C]) Decode(w *Wire) (C, error) {
	var zero C
	ctor, ok := r.constructors[w.Name]
	if !ok {
		return zero, &UnknownCommandError{Name: w.Name}
	}
	return ctor(w.Arguments)
}

// UnknownCommandError is returned by Decode for a wire command name with
// no matching registered constructor.
type UnknownCommandError struct {
	Name string
}

func (e *UnknownCommandError) Error() string {
	return "command: unknown constructor: " + e.Name
}
