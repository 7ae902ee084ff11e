package activeobject

import (
	"sync"
	"sync/atomic"
)

// SignalWidth names the configured byte width of an event's signal field.
// It is carried on a [DynamicPool] for diagnostic and wire-format purposes
// only; Event.Signal is always represented as a uint32 at the Go API
// boundary regardless of the configured width.
type SignalWidth uint8

const (
	SignalWidth1 SignalWidth = 1
	SignalWidth2 SignalWidth = 2
	SignalWidth4 SignalWidth = 4
)

// Valid reports whether w is one of the three configured widths.
func (w SignalWidth) Valid() bool {
	return w == SignalWidth1 || w == SignalWidth2 || w == SignalWidth4
}

// Event is an immutable message: a signal identifying its kind, plus
// reference-count bookkeeping for dynamic (pool-allocated) events.
//
// A static event (PoolID == 0) is never freed and RefCtr is ignored. A
// dynamic event's RefCtr is incremented on every enqueue and decremented on
// every garbage collect; reaching zero returns the event to its pool. Once
// posted, the framework never mutates Signal or Payload — RefCtr is the
// only post-construction mutation. RefCtr is an atomic counter: the queue
// increments it inside the framework's [CritSection], while the GC calls
// made after dispatch and for a dropped post run outside the section.
type Event struct {
	Signal  uint32
	PoolID  uint8
	RefCtr  atomic.Uint32
	Payload any
}

// NewStaticEvent constructs an event with PoolID 0: it is never reference
// counted or recycled, suitable for compile-time-constant events held in
// static storage.
func NewStaticEvent(signal uint32, payload any) *Event {
	return &Event{Signal: signal, Payload: payload}
}

// EventPool is the capability the core depends on from an event-pool
// subsystem. The pool, not this package, owns allocation strategy and
// storage; the core only needs IncRef/DecRef/GC.
type EventPool interface {
	// IncRef increments e's reference count. Called by the queue on every
	// successful enqueue of a dynamic event. Atomic only with respect to
	// the framework's critical section, not with respect to arbitrary
	// concurrent callers.
	IncRef(e *Event)

	// DecRef decrements e's reference count without necessarily recycling
	// it, for collaborators (outside this package) that need to release a
	// reference without triggering GC.
	DecRef(e *Event)

	// GC decrements e's reference count and, once it reaches zero, returns
	// e's storage to its originating pool. A static event (PoolID == 0) is
	// a no-op.
	GC(e *Event)
}

// DynamicPool is a [sync.Pool]-backed [EventPool] implementation for
// applications that want Go-idiomatic pooled event allocation rather than
// a fixed-size memory-block pool (the embedded-systems default this
// framework's semantics were sourced from). Every event obtained via
// [DynamicPool.Get] carries PoolID poolID, and is returned to the underlying pool once its
// RefCtr reaches zero.
type DynamicPool struct {
	poolID uint8
	width  SignalWidth
	pool   pool
}

// pool is the minimal surface DynamicPool needs from sync.Pool, so tests
// can substitute a counting fake.
type pool interface {
	Get() any
	Put(x any)
}

// NewDynamicPool constructs a DynamicPool identified by poolID (which must
// be nonzero — 0 is reserved for static events) with the given signal
// width, using a sync.Pool whose New function calls newPayload for the
// event's Payload field. An invalid width is a recoverable configuration
// error ([ErrInvalidSignalWidth]), the same footing as NewFramework's
// maxActive validation; a zero poolID is a programming error, since unlike
// the width it can never be a legitimate runtime choice.
func NewDynamicPool(poolID uint8, width SignalWidth, newPayload func() any) (*DynamicPool, error) {
	assert("eventpool", 1, poolID != 0, "dynamic pool id must be nonzero")
	if !width.Valid() {
		return nil, ErrInvalidSignalWidth
	}
	p := &DynamicPool{poolID: poolID, width: width}
	p.pool = &sync.Pool{New: func() any {
		e := &Event{PoolID: poolID}
		if newPayload != nil {
			e.Payload = newPayload()
		}
		return e
	}}
	return p, nil
}

// Get obtains an event from the pool, with RefCtr reset to 0 and Signal set
// to sig.
func (p *DynamicPool) Get(sig uint32) *Event {
	e := p.pool.Get().(*Event)
	e.Signal = sig
	e.RefCtr.Store(0)
	return e
}

// Width returns the configured signal byte width, for diagnostic and
// wire-format use; it has no effect on Event.Signal's in-memory
// representation, which is always a uint32.
func (p *DynamicPool) Width() SignalWidth { return p.width }

// IncRef implements [EventPool].
func (p *DynamicPool) IncRef(e *Event) {
	if e.PoolID != 0 {
		e.RefCtr.Add(1)
	}
}

// DecRef implements [EventPool].
func (p *DynamicPool) DecRef(e *Event) {
	if e.PoolID != 0 {
		e.RefCtr.Add(^uint32(0)) // -1
	}
}

// GC implements [EventPool]: decrements e's reference count and, once it
// reaches zero, returns e to the pool that allocated it. An event whose
// reference count is already zero — never successfully enqueued, as
// happens on a back-pressure drop — is recycled immediately rather than
// underflowed. Static events (PoolID == 0) are a no-op.
func (p *DynamicPool) GC(e *Event) {
	if e == nil || e.PoolID == 0 {
		return
	}
	for {
		old := e.RefCtr.Load()
		if old == 0 {
			p.pool.Put(e)
			return
		}
		if e.RefCtr.CompareAndSwap(old, old-1) {
			if old == 1 {
				p.pool.Put(e)
			}
			return
		}
	}
}
