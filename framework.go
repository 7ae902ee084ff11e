package activeobject

import "github.com/joeycumines/go-catrate"

// Framework is the top-level facade: it owns the shared [CritSection], the
// [Scheduler], the registration table of active objects, and the
// framework-wide [Metrics]. Applications construct one Framework per
// process (or per independently-scheduled domain) via [NewFramework], then
// register each active object with [Framework.Start].
type Framework struct {
	maxActive uint8
	crit      CritSection
	sched     *Scheduler
	metrics   *Metrics
	trace     TraceSink
	limiter   *catrate.Limiter
}

// FrameworkOption configures optional behavior at [NewFramework] time.
type FrameworkOption func(*Framework)

// WithCritSection overrides the default [MutexCritSection], for embedding
// a bare-metal or otherwise custom mutual-exclusion primitive. See the
// [Scheduler] doc's note on the pre-emptive scheduling extension point.
func WithCritSection(crit CritSection) FrameworkOption {
	return func(f *Framework) { f.crit = crit }
}

// WithTraceSink installs a default [TraceSink] applied to every active
// object started without its own StartOption override.
func WithTraceSink(sink TraceSink) FrameworkOption {
	return func(f *Framework) { f.trace = sink }
}

// NewFramework constructs a Framework that can host active objects at
// priorities 1..=maxActive. maxActive must be in 1..=[MaxPriority]; any
// other value is a recoverable configuration error, not a panic, since it
// is caller-visible at startup rather than a runtime contract violation.
func NewFramework(maxActive uint8, opts ...FrameworkOption) (*Framework, error) {
	if maxActive == 0 || maxActive > MaxPriority {
		return nil, ErrMaxActiveOutOfRange
	}

	f := &Framework{
		maxActive: maxActive,
		crit:      NewMutexCritSection(),
		metrics:   &Metrics{},
	}
	for _, opt := range opts {
		opt(f)
	}
	f.sched = NewScheduler(f.crit)
	return f, nil
}

// Metrics returns the framework-wide counters shared by every active
// object started on this Framework.
func (f *Framework) Metrics() *Metrics { return f.metrics }

// Scheduler returns the framework's cooperative scheduler, for driving
// RunOne/Run from the application's chosen host loop.
func (f *Framework) Scheduler() *Scheduler { return f.sched }

// StartOption configures an individual [Framework.Start] call.
type StartOption func(*ActiveObject)

// WithName sets the diagnostic name reported by [ActiveObject.Name].
func WithName(name string) StartOption {
	return func(ao *ActiveObject) { ao.name = name }
}

// WithAOTraceSink overrides, for this one active object, the Framework's
// default TraceSink (if any).
func WithAOTraceSink(sink TraceSink) StartOption {
	return func(ao *ActiveObject) { ao.trace = sink }
}

// Start registers a new active object at priority, backed by a queue of
// the given capacity, dispatching every consumed event to dispatcher and
// recycling dynamic events through pool. priority must be in
// 1..=maxActive (site id active:011) and must not already be registered
// on this Framework (site id active:010); both are fatal contract
// violations, since they indicate a programming error in the static
// wiring of active objects, not a runtime condition.
func (f *Framework) Start(priority uint8, capacity uint16, dispatcher Dispatcher, pool EventPool, opts ...StartOption) *ActiveObject {
	assert("active", 11, priority >= 1 && priority <= f.maxActive, "priority out of range 1..=maxActive")
	assert("active", 10, f.sched.active[priority] == nil, "priority already registered")

	ao := &ActiveObject{
		priority: priority,
		user:     dispatcher,
		pool:     pool,
		trace:    f.trace,
		metrics:  f.metrics,
		limiter:  f.limiter,
	}
	for _, opt := range opts {
		opt(ao)
	}

	ao.queue = NewActiveObjectQueue(capacity, f.crit, pool)
	ao.queue.SetHooks(
		func() { f.sched.onEnqueue(priority) },
		func() { f.sched.onEmpty(priority) },
	)

	f.sched.register(ao)
	return ao
}
