package activeobject

// TraceSink receives best-effort diagnostic records mirroring the
// QS_QF_ACTIVE_* trace points this framework's semantics were sourced
// from. A nil TraceSink (the default) disables tracing with zero
// overhead. Tracing must never affect core state: every call into a
// TraceSink is isolated by [safeTrace], which recovers any panic and
// routes it to the configured logger instead of letting it escape into
// the dispatch path.
type TraceSink interface {
	// TracePost records a successful FIFO post.
	TracePost(prio uint8, sig uint32, poolID uint8, refCtr uint32, nFree, nMin uint16, sender string)

	// TracePostAttempt records a FIFO post that failed back-pressure.
	TracePostAttempt(prio uint8, sig uint32, nFree, margin uint16, sender string)

	// TracePostLIFO records a LIFO (self-)post.
	TracePostLIFO(prio uint8, sig uint32, nFree, nMin uint16)

	// TraceGet records an event removed from the front of a queue. last is
	// true when this Get emptied the queue.
	TraceGet(prio uint8, sig uint32, nFree uint16, last bool)
}

// safeTrace calls fn (a closure over one of the TraceSink methods) and
// recovers any panic, logging it at Warn rather than letting it propagate.
// Best-effort tracing must never take down the scheduler.
func safeTrace(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			logWarnf("trace sink panicked: %v", r)
		}
	}()
	fn()
}
