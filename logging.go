// logging.go wires this package's best-effort diagnostics to logiface, the
// structured logging library this framework's teacher module depends on.
//
// Package-level configuration mirrors eventloop/logging.go's
// SetStructuredLogger/getGlobalLogger shape: a single process-wide sink,
// defaulting to a no-op, swappable via SetLogger. Logging never sits on the
// PostFIFO/PostLIFO/Get hot path: the only call site is safeTrace, which logs
// a recovered TraceSink panic. Registration, back-pressure drops and
// assertion failures are not logged.
package activeobject

import (
	"fmt"
	"sync"

	"github.com/joeycumines/logiface"
	"github.com/joeycumines/stumpy"
)

var globalLogger struct {
	sync.RWMutex
	logger *logiface.Logger[*stumpy.Event]
}

func init() {
	globalLogger.logger = newNoOpLogger()
}

// SetLogger installs logger as the package-level diagnostic sink. Passing
// nil restores the no-op default.
func SetLogger(logger *logiface.Logger[*stumpy.Event]) {
	globalLogger.Lock()
	defer globalLogger.Unlock()
	if logger == nil {
		logger = newNoOpLogger()
	}
	globalLogger.logger = logger
}

func getLogger() *logiface.Logger[*stumpy.Event] {
	globalLogger.RLock()
	defer globalLogger.RUnlock()
	return globalLogger.logger
}

// newNoOpLogger returns a disabled logger: building events is cheap, but
// nothing is ever written, since no writer is configured and the level is
// left at its zero value (disabled).
func newNoOpLogger() *logiface.Logger[*stumpy.Event] {
	return stumpy.L.New()
}

func logWarnf(format string, args ...any) {
	getLogger().Warning().Log(fmt.Sprintf(format, args...))
}
