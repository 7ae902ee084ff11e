package activeobject

import "github.com/joeycumines/go-catrate"

// ActiveObject binds one priority level's queue to the dispatcher that
// consumes it. Applications obtain an ActiveObject from [Framework.Start]
// rather than constructing one directly, since the queue's signal/onEmpty
// hooks must be wired to the owning [Scheduler] before any event is posted.
type ActiveObject struct {
	priority uint8
	name     string
	queue    *ActiveObjectQueue
	user     Dispatcher
	pool     EventPool
	trace    TraceSink
	metrics  *Metrics
	limiter  *catrate.Limiter
}

// Priority returns the active object's fixed priority (1 is lowest).
func (ao *ActiveObject) Priority() uint8 { return ao.priority }

// Name returns the diagnostic name the active object was started with, for
// logging and tracing; it has no effect on scheduling.
func (ao *ActiveObject) Name() string { return ao.name }

// Post enqueues e at the back of the active object's queue (FIFO), subject
// to the same back-pressure contract as [ActiveObjectQueue.PostFIFO].
// sender identifies the caller for tracing only. Returns false if e could
// not be delivered within margin free slots; the caller retains no
// obligation toward e either way, since the queue always routes a failed
// post through the pool's GC.
func (ao *ActiveObject) Post(e *Event, margin uint16, sender string) bool {
	if _, allowed := ao.limiter.Allow(ao.priority); !allowed {
		ao.metrics.recordDrop()
		if ao.trace != nil {
			safeTrace(func() {
				ao.trace.TracePostAttempt(ao.priority, e.Signal, ao.queue.FreeNow(), margin, sender)
			})
		}
		ao.pool.GC(e)
		return false
	}

	ok := ao.queue.PostFIFO(e, margin)
	if ok {
		ao.metrics.recordPost()
	} else {
		ao.metrics.recordDrop()
	}
	if ao.trace != nil {
		if ok {
			safeTrace(func() {
				ao.trace.TracePost(ao.priority, e.Signal, e.PoolID, e.RefCtr.Load(), ao.queue.FreeNow(), ao.queue.MinFree(), sender)
			})
		} else {
			safeTrace(func() {
				ao.trace.TracePostAttempt(ao.priority, e.Signal, ao.queue.FreeNow(), margin, sender)
			})
		}
	}
	return ok
}

// PostLIFO enqueues e at the front of the active object's queue, for
// self-posting only (see [ActiveObjectQueue.PostLIFO]).
func (ao *ActiveObject) PostLIFO(e *Event) {
	ao.queue.PostLIFO(e)
	ao.metrics.recordPost()
	if ao.trace != nil {
		safeTrace(func() {
			ao.trace.TracePostLIFO(ao.priority, e.Signal, ao.queue.FreeNow(), ao.queue.MinFree())
		})
	}
}

// dispatch runs the user-supplied [Dispatcher] on e to completion, then
// releases the reference the queue acquired when e was posted. Only the
// owning [Scheduler] calls this, with e already removed from the queue via
// [ActiveObjectQueue.Get]. last reports whether that Get emptied the
// queue, for tracing only.
func (ao *ActiveObject) dispatch(e *Event, last bool) {
	if ao.trace != nil {
		safeTrace(func() {
			ao.trace.TraceGet(ao.priority, e.Signal, ao.queue.FreeNow(), last)
		})
	}
	ao.metrics.recordDispatch()
	ao.user.Dispatch(e)
	ao.pool.GC(e)
}
