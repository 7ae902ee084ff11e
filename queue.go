package activeobject

// ActiveObjectQueue is a bounded, single-consumer FIFO of event references
// with a front-slot fast path: the next event to be consumed is held
// directly in frontEvt rather than the ring, so the common case of posting
// into an otherwise-empty queue and immediately consuming it touches no
// ring-buffer arithmetic at all.
//
// Every mutating method updates the queue's state inside the shared
// [CritSection]; the signal/onEmpty hooks, and the pool's GC of a dropped
// event, run after the section is left. Posting is safe to call from any
// number of producer goroutines; Get is
// intended for exactly one consumer goroutine (the owning [ActiveObject]'s
// dispatch loop).
type ActiveObjectQueue struct {
	crit CritSection
	pool EventPool

	frontEvt *Event
	ring     []*Event
	head     uint16 // index of the NEXT FIFO-posted event's slot
	tail     uint16 // index from which the next ring event is taken
	nFree    uint16 // free slots remaining, counting the front slot
	nMin     uint16 // minimum nFree ever observed

	// signal is invoked after a FIFO/LIFO post transitions the queue from
	// empty to non-empty. It is wired by the owning ActiveObject to the
	// Scheduler's onEnqueue hook.
	signal func()

	// onEmpty is invoked after Get empties the queue. It is wired by the
	// owning ActiveObject to the Scheduler's onEmpty hook.
	onEmpty func()
}

// NewActiveObjectQueue constructs a queue with the given ring capacity
// (the number of events the ring can hold, in addition to the front slot),
// sharing crit with the rest of the framework and using pool to manage
// dynamic event lifetime.
func NewActiveObjectQueue(capacity uint16, crit CritSection, pool EventPool) *ActiveObjectQueue {
	q := &ActiveObjectQueue{
		crit:  crit,
		pool:  pool,
		ring:  make([]*Event, capacity),
		nFree: capacity + 1,
	}
	q.nMin = q.nFree
	return q
}

// end is the capacity of the ring buffer, aliased for readability in wrap
// tests, matching the qf_actq.cpp convention of caching QF_MAX_ACTIVE-style
// bounds under a short name.
func (q *ActiveObjectQueue) end() uint16 { return uint16(len(q.ring)) }

// SetHooks wires the empty-to-nonempty signal and the on-empty callback.
// Called once, by the owning ActiveObject, before the queue is used.
func (q *ActiveObjectQueue) SetHooks(signal, onEmpty func()) {
	q.signal = signal
	q.onEmpty = onEmpty
}

// PostFIFO posts e to the back of the queue, provided margin free slots
// remain available after the insert. Returns true on success. On failure
// (insufficient room), margin must be nonzero or the call is a fatal
// contract violation — see the package doc on [AssertionError]. With a
// nonzero margin the rejected event is passed to the pool's GC to avoid a
// leak; with margin 0 the assertion panics before GC is called.
func (q *ActiveObjectQueue) PostFIFO(e *Event, margin uint16) bool {
	assert("actq", 100, e != nil, "post_fifo requires a non-nil event")

	q.crit.Enter()
	n := q.nFree

	if n > margin {
		if e.PoolID != 0 {
			q.pool.IncRef(e)
		}

		n--
		q.nFree = n
		if n < q.nMin {
			q.nMin = n
		}

		wasEmpty := q.frontEvt == nil
		if wasEmpty {
			q.frontEvt = e
		} else {
			q.ring[q.head] = e
			if q.head == 0 {
				q.head = q.end()
			}
			q.head--
		}
		q.crit.Exit()

		if wasEmpty && q.signal != nil {
			q.signal()
		}
		return true
	}

	assert("actq", 110, margin != 0, "post_fifo: event cannot be delivered and margin == 0")
	q.crit.Exit()

	q.pool.GC(e)
	return false
}

// PostLIFO posts e to the front of the queue, displacing the current front
// event (if any) into the ring at the read (tail) side so it is delivered
// next. Only
// self-posting should use this: it perturbs FIFO delivery order. The queue
// must have at least one free slot (nFree != 0) or the call is a fatal
// contract violation.
func (q *ActiveObjectQueue) PostLIFO(e *Event) {
	assert("actq", 200, e != nil, "post_lifo requires a non-nil event")

	q.crit.Enter()
	n := q.nFree
	assert("actq", 210, n != 0, "post_lifo requires nFree != 0")

	if e.PoolID != 0 {
		q.pool.IncRef(e)
	}

	n--
	q.nFree = n
	if n < q.nMin {
		q.nMin = n
	}

	displaced := q.frontEvt
	q.frontEvt = e
	wasEmpty := displaced == nil

	if !wasEmpty {
		q.tail++
		if q.tail == q.end() {
			q.tail = 0
		}
		q.ring[q.tail] = displaced
	}
	q.crit.Exit()

	if wasEmpty && q.signal != nil {
		q.signal()
	}
}

// Get removes and returns the event at the front of the queue, along with
// whether this call emptied the queue. Callers in the cooperative scheduler
// variant must only call Get when the queue is known non-empty (the
// scheduler guarantees this via the PrioritySet); a call on an empty queue
// is a fatal contract violation.
func (q *ActiveObjectQueue) Get() (*Event, bool) {
	q.crit.Enter()

	e := q.frontEvt
	assert("actq", 300, e != nil, "get called on an empty queue")

	n := q.nFree + 1
	q.nFree = n

	var becameEmpty bool
	if n <= q.end() {
		q.frontEvt = q.ring[q.tail]
		if q.tail == 0 {
			q.tail = q.end()
		}
		q.tail--
	} else {
		q.frontEvt = nil
		assert("actq", 310, n == q.end()+1, "nFree inconsistent at empty transition")
		becameEmpty = true
	}
	q.crit.Exit()

	if becameEmpty && q.onEmpty != nil {
		q.onEmpty()
	}
	return e, becameEmpty
}

// MinFree returns the minimum number of free slots (counting the front
// slot) ever observed since construction. Diagnostic only.
func (q *ActiveObjectQueue) MinFree() uint16 {
	q.crit.Enter()
	defer q.crit.Exit()
	return q.nMin
}

// FreeNow returns the current number of free slots (counting the front
// slot). Diagnostic and tracing use only.
func (q *ActiveObjectQueue) FreeNow() uint16 {
	q.crit.Enter()
	defer q.crit.Exit()
	return q.nFree
}
