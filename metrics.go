package activeobject

import "sync/atomic"

// Metrics holds low-overhead, lock-free counters for a [Framework]. Every
// field is updated with atomic.Uint64.Add and may be read concurrently at
// any time; there is no snapshot consistency guarantee across fields, only
// per-field atomicity.
type Metrics struct {
	Posts      atomic.Uint64 // successful PostFIFO/PostLIFO calls, across all AOs
	Drops      atomic.Uint64 // PostFIFO calls that returned false
	Dispatches atomic.Uint64 // events removed from a queue and dispatched
}

func (m *Metrics) recordPost()     { m.Posts.Add(1) }
func (m *Metrics) recordDrop()     { m.Drops.Add(1) }
func (m *Metrics) recordDispatch() { m.Dispatches.Add(1) }
