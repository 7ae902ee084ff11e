package activeobject

// Scheduler is the cooperative, priority-based dispatch loop: at any time it
// runs the single highest-priority active object that has at least one
// event waiting, to completion, before considering any other. There is no
// pre-emption; Scheduler is built against the [CritSection] interface so a
// pre-emptive variant could reuse PrioritySet and ActiveObjectQueue
// unchanged behind a different CritSection implementation.
//
// A Scheduler owns no event storage itself; it only tracks which priorities
// are ready via a [PrioritySet] kept in sync with every registered active
// object's queue through onEnqueue/onEmpty, wired by [Framework.Start].
type Scheduler struct {
	crit   CritSection
	ready  PrioritySet
	active [MaxPriority + 1]*ActiveObject
}

// NewScheduler constructs a scheduler sharing crit with the rest of the
// framework's critical-section domain.
func NewScheduler(crit CritSection) *Scheduler {
	return &Scheduler{crit: crit}
}

// register records ao at its priority, so RunOne can dispatch to it once
// its queue becomes ready. Called once by [Framework.Start]; priority
// collisions are caught there, not here.
func (s *Scheduler) register(ao *ActiveObject) {
	s.active[ao.priority] = ao
}

// onEnqueue marks priority p ready. Wired as the owning queue's
// empty-to-nonempty signal hook.
func (s *Scheduler) onEnqueue(p uint8) {
	s.crit.Enter()
	s.ready.Insert(p)
	s.crit.Exit()
}

// onEmpty marks priority p not ready. Wired as the owning queue's
// nonempty-to-empty hook.
func (s *Scheduler) onEmpty(p uint8) {
	s.crit.Enter()
	s.ready.Remove(p)
	s.crit.Exit()
}

// RunOne dispatches exactly one event from the highest-priority ready
// active object, to completion, and returns true. If no active object is
// ready, it returns false without blocking.
func (s *Scheduler) RunOne() bool {
	s.crit.Enter()
	p := s.ready.FindMax()
	s.crit.Exit()

	if p == 0 {
		return false
	}

	ao := s.active[p]
	assert("sched", 10, ao != nil, "ready set named a priority with no registered active object")

	e, last := ao.queue.Get()
	ao.dispatch(e, last)
	return true
}

// Run drives RunOne in a loop until no active object is ready, then
// returns. Applications with a dedicated scheduler goroutine typically call
// this in a loop of their own, or call it once per tick in a cooperative
// host loop; Run itself never blocks waiting for work to appear.
func (s *Scheduler) Run() {
	for s.RunOne() {
	}
}
