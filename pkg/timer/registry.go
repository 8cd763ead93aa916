// Package timer provides tag-based wall-clock instrumentation: callers
// annotate blocks or functions with a string tag, elapsed time and call
// counts accumulate per tag for the lifetime of the process, and a summary
// table of relative cost can be printed at any point.
package timer

import (
	"sync"
	"time"
)

// Entry is one row of a registry snapshot: the accumulated time and call
// count for a single tag.
type Entry struct {
	Tag   string
	Total time.Duration
	Calls int64
}

// Registry accumulates elapsed time and call counts per tag. All methods
// are safe for concurrent use.
type Registry struct {
	mu      sync.Mutex
	entries map[string]*counters
	order   []string
	start   time.Time
}

type counters struct {
	total time.Duration
	calls int64
}

// NewRegistry creates an empty registry. Its start timestamp, used as the
// wall-clock baseline for stats, is captured now.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]*counters),
		start:   time.Now(),
	}
}

// Record folds one completed measurement into the tag's entry, creating it
// on first report. A negative elapsed value is clamped to zero rather than
// corrupting the accumulated total.
func (r *Registry) Record(tag string, elapsed time.Duration) {
	if elapsed < 0 {
		elapsed = 0
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.entries[tag]
	if !ok {
		c = &counters{}
		r.entries[tag] = c
		r.order = append(r.order, tag)
	}
	c.total += elapsed
	c.calls++
}

// Snapshot returns all entries in first-seen order. The returned slice is a
// copy; mutating it does not affect the registry.
func (r *Registry) Snapshot() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Entry, 0, len(r.order))
	for _, tag := range r.order {
		c := r.entries[tag]
		out = append(out, Entry{Tag: tag, Total: c.total, Calls: c.calls})
	}
	return out
}

// ElapsedSinceStart returns the wall-clock time since the registry's start
// timestamp.
func (r *Registry) ElapsedSinceStart() time.Duration {
	r.mu.Lock()
	start := r.start
	r.mu.Unlock()
	return time.Since(start)
}

// Reset clears all entries and re-captures the start timestamp. Intended
// for test isolation.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = make(map[string]*counters)
	r.order = nil
	r.start = time.Now()
}

// std is the process-wide registry used by the package-level API. Its start
// timestamp is captured at package init, so "Total time" measures from the
// first moment the importing program could have used the facility.
var std = NewRegistry()

// Default returns the process-wide registry.
func Default() *Registry {
	return std
}

// Record reports one measurement to the process-wide registry.
func Record(tag string, elapsed time.Duration) {
	std.Record(tag, elapsed)
}

// Snapshot returns the process-wide registry's entries in first-seen order.
func Snapshot() []Entry {
	return std.Snapshot()
}

// ElapsedSinceStart returns wall-clock time since process-wide timing began.
func ElapsedSinceStart() time.Duration {
	return std.ElapsedSinceStart()
}

// Reset clears the process-wide registry. Intended for test isolation.
func Reset() {
	std.Reset()
}
