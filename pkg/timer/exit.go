package timer

import (
	"sync"
)

var exitOnce sync.Once

// PrintOnExit arranges for the stats table to print once when the program
// finishes. Go offers no hook into normal process termination, so the caller
// wires it in main instead:
//
//	func main() {
//		defer timer.PrintOnExit()()
//		...
//	}
//
// The returned function prints at most once across the whole process, no
// matter how many times PrintOnExit was called, and ignores write failures:
// a profiling side channel must never mask the program's own exit behavior.
// Explicit PrintStats calls remain available at any time and are unaffected.
func PrintOnExit() func() {
	return func() {
		exitOnce.Do(func() {
			_ = PrintStats()
		})
	}
}
