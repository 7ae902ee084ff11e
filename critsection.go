package activeobject

import "sync"

// CritSection is the mutual-exclusion primitive the framework brackets every
// mutation of shared state with: nFree, nMin, frontEvt, head, tail, the
// queue's increment of an event's RefCtr, and the Scheduler's PrioritySet.
// GC of an event (the RefCtr decrement) runs outside it.
//
// On a bare-metal port this is implemented by disabling interrupts; on a
// hosted OS, by acquiring a single process-global mutex (see
// [MutexCritSection]). Implementations need only support depth-1 nesting:
// the framework never calls Enter twice without an intervening Exit.
type CritSection interface {
	Enter()
	Exit()
}

// MutexCritSection is the default, hosted-OS [CritSection], backed by a
// single *sync.Mutex shared by every component of a [Framework].
type MutexCritSection struct {
	mu sync.Mutex
}

// NewMutexCritSection constructs a ready-to-use [MutexCritSection].
func NewMutexCritSection() *MutexCritSection {
	return &MutexCritSection{}
}

// Enter acquires the underlying mutex.
func (c *MutexCritSection) Enter() { c.mu.Lock() }

// Exit releases the underlying mutex.
func (c *MutexCritSection) Exit() { c.mu.Unlock() }
