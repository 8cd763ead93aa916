package timer

import (
	"time"
)

// Timer is one in-flight scoped measurement. Acquire it with New (or
// Registry.Timer) at the top of the block to measure and arrange for Stop to
// run on every exit path:
//
//	defer timer.New("load-config").Stop()
//
// The deferred Stop runs during panic unwinding too, so a failing block is
// still reported before the failure propagates.
type Timer struct {
	tag   string
	start time.Time
	reg   *Registry
	done  bool
}

// New starts a scoped measurement against the process-wide registry.
func New(tag string) *Timer {
	return std.Timer(tag)
}

// Timer starts a scoped measurement against this registry.
func (r *Registry) Timer(tag string) *Timer {
	return &Timer{tag: tag, start: time.Now(), reg: r}
}

// Stop ends the measurement and reports it. Only the first call reports;
// later calls are no-ops, so a Timer never double-counts.
func (t *Timer) Stop() {
	if t.done {
		return
	}
	t.done = true
	t.reg.Record(t.tag, time.Since(t.start))
}

// Elapsed returns the time since the measurement started. It does not stop
// or report the measurement.
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.start)
}
