// Package activeobject implements the core of a cooperative, priority-based,
// run-to-completion active-object framework for hard real-time embedded
// systems.
//
// # Architecture
//
// Three tightly coupled pieces make up the core:
//
//   - [PrioritySet]: an O(1) bitmap of active-object priorities that
//     currently have events ready to process.
//   - [ActiveObjectQueue]: a bounded, single-consumer FIFO with a front-slot
//     fast path, a ring buffer for overflow, and LIFO self-posting.
//   - [Scheduler]: picks the highest-priority ready active object, extracts
//     its next event, and dispatches it to completion before considering
//     any other active object.
//
// Events are reference-counted ([Event], [EventPool]) so that a single event
// can be shared by multiple queues without copying, and returned to its pool
// exactly once its last reference is garbage-collected.
//
// [Framework] wires a registration table, a [CritSection], a [Scheduler],
// and the optional [TraceSink] together into the facade most applications
// use; the diagnostic logger is package-level, set with [SetLogger]. The
// lower-level types remain usable independently for embedding into a
// different port.
package activeobject
