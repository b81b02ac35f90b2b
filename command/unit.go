package command

// Unit is the default command set for servers that never execute
// commands: it has no constructors, so its Registry's Names() is always
// empty and Decode always fails with UnknownCommandError. The framework
// never constructs a Unit value, and its registry cannot decode one; Go
// does not stop other code from writing the literal command.Unit{}.
type Unit struct {
	unexported struct{}
}

func (Unit) CommandName() string  { return "" }
func (Unit) CommandTitle() string { return "" }
func (Unit) CommandArgs() []any   { return nil }

// NewUnitRegistry returns the always-empty registry used when a server
// doesn't install any commands.
func NewUnitRegistry() *Registry[Unit] {
	return NewRegistry[Unit]()
}
