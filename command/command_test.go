package command_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmdaemon/synclsp/command"
)

type renameCommand struct {
	uri     string
	newName string
}

func (c renameCommand) CommandName() string  { return "demo.rename" }
func (c renameCommand) CommandTitle() string { return "Rename symbol" }
func (c renameCommand) CommandArgs() []any   { return []any{c.uri, c.newName} }

func newRenameCommand(args []json.RawMessage) (renameCommand, error) {
	var c renameCommand
	if len(args) != 2 {
		return c, assert.AnError
	}
	if err := json.Unmarshal(args[0], &c.uri); err != nil {
		return c, err
	}
	if err := json.Unmarshal(args[1], &c.newName); err != nil {
		return c, err
	}
	return c, nil
}

func TestRegistryEncodeDecodeRoundTrip(t *testing.T) {
	reg := command.NewRegistry[renameCommand]()
	reg.Register("demo.rename", newRenameCommand)

	original := renameCommand{uri: "file:///a.go", newName: "Foo"}
	wire, err := command.Encode(original)
	require.NoError(t, err)
	assert.Equal(t, "demo.rename", wire.Name)
	assert.Equal(t, "Rename symbol", wire.Title)

	decoded, err := reg.Decode(wire)
	require.NoError(t, err)
	assert.Equal(t, original, decoded)
}

func TestRegistryDecodeUnknownCommand(t *testing.T) {
	reg := command.NewRegistry[renameCommand]()
	_, err := reg.Decode(&command.Wire{Name: "nope"})
	require.Error(t, err)

	var unknown *command.UnknownCommandError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "nope", unknown.Name)
}

func TestRegistryNamesPreservesRegistrationOrder(t *testing.T) {
	reg := command.NewRegistry[renameCommand]()
	reg.Register("b", newRenameCommand)
	reg.Register("a", newRenameCommand)
	assert.Equal(t, []string{"b", "a"}, reg.Names())
}

func TestRegistryRegisterPanicsOnDuplicateName(t *testing.T) {
	reg := command.NewRegistry[renameCommand]()
	reg.Register("demo.rename", newRenameCommand)
	assert.Panics(t, func() {
		reg.Register("demo.rename", newRenameCommand)
	})
}

func TestUnitRegistryIsAlwaysEmpty(t *testing.T) {
	reg := command.NewUnitRegistry()
	assert.Empty(t, reg.Names())
	_, err := reg.Decode(&command.Wire{Name: "anything"})
	assert.Error(t, err)
}
