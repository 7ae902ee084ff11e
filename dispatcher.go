package activeobject

// Dispatcher is the opaque state-machine capability an ActiveObject drives
// to completion for each event it consumes. The hierarchical state machine
// interpreter itself is not part of this module — callers supply their
// own implementation, modeled as
// an interface rather than via inheritance, per the framework's dispatch
// polymorphism design note.
type Dispatcher interface {
	// Dispatch processes e to completion. It must not block: the
	// cooperative scheduler's run-to-completion guarantee depends on every
	// dispatch returning promptly.
	Dispatch(e *Event)
}

// DispatcherFunc adapts a plain function to a [Dispatcher], for tests and
// simple applications that don't need a full state machine.
type DispatcherFunc func(e *Event)

// Dispatch implements [Dispatcher].
func (f DispatcherFunc) Dispatch(e *Event) { f(e) }
