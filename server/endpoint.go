package server

// Endpoint is the per-method pair of (current callback, options) spec.md
// §3 describes. O is the method-specific capability struct advertised at
// initialize time (e.g. protocol.CompletionOptions carries trigger
// characters). Registering a user handler with Set replaces the current
// callback; it never mutates a Callback value shared elsewhere.
type Endpoint[S, O any] struct {
	current Callback[S]
	options O

	// hasUser is false until Set is called; it gates whether this
	// endpoint's method is advertised in ServerCapabilities and lets the
	// default handler answer without the user ever observing the call.
	hasUser bool
	name    string
}

// newEndpoint builds an Endpoint pre-populated with the framework's
// default handler for method name, so that clients never observe
// MethodNotFound for a method this endpoint covers (spec.md §4.5).
func newEndpoint[S, O any](name string, def Callback[S]) *Endpoint[S, O] {
	return &Endpoint[S, O]{current: def, name: name}
}

// Set installs a user-provided Callback, replacing the default (or a
// previously installed) handler for this endpoint.
func (e *Endpoint[S, O]) Set(cb Callback[S]) {
	e.current = cb
	e.hasUser = true
}

// Callback returns the endpoint's current handler.
func (e *Endpoint[S, O]) Callback() Callback[S] {
	return e.current
}

// Registered reports whether a user handler (as opposed to the built-in
// default) is installed — this is what capability advertisement checks.
func (e *Endpoint[S, O]) Registered() bool {
	return e.hasUser
}

// Options returns a shallow copy of the endpoint's current options value:
// slice and map fields still share storage with the stored value, so
// writing through them changes the endpoint (protocol.CompletionOptions
// has Clone for this reason). Use SetOptions to replace the value.
func (e *Endpoint[S, O]) Options() O {
	return e.options
}

// SetOptions replaces the endpoint's options value.
func (e *Endpoint[S, O]) SetOptions(o O) {
	e.options = o
}
