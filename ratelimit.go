package activeobject

import (
	"time"

	"github.com/joeycumines/go-catrate"
)

// WithPostRateLimit installs a sliding-window post rate limit, shared by
// every active object started on the Framework, keyed by priority: each
// priority gets its own independent budget. rates follows
// catrate.NewLimiter's contract (shorter windows must carry a count no
// smaller than any longer window's); an invalid map panics immediately,
// the same as passing it straight to catrate.NewLimiter would.
//
// A rate-limited Post is indistinguishable from a back-pressure drop to
// the caller: it returns false, increments Metrics.Drops, and routes e
// through the pool's GC. Rate limiting is checked before the queue's own
// margin accounting, so a flooding producer never even touches queue
// state.
func WithPostRateLimit(rates map[time.Duration]int) FrameworkOption {
	limiter := catrate.NewLimiter(rates)
	return func(f *Framework) { f.limiter = limiter }
}
