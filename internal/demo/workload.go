package demo

import (
	"fmt"

	"github.com/NikitaCOEUR/timekeep/internal/logger"
	"github.com/NikitaCOEUR/timekeep/pkg/timer"
)

// sumTo accumulates 0..n-1. Its body opens a manual scoped measurement while
// the function itself gets wrapped by the sum workload, so the "sum" tag
// nests inside the auto-derived "sumTo" tag and the two fracs overlap.
func sumTo(n int) int {
	defer timer.New("sum").Stop()

	total := 0
	for i := 0; i < n; i++ {
		total += i
	}
	return total
}

// sumSquares accumulates squares of 0..n-1.
func sumSquares(n int) int {
	total := 0
	for i := 0; i < n; i++ {
		total += i * i
	}
	return total
}

// Thing exists to demonstrate auto-derived method tags ("Thing.DoStuff").
type Thing struct {
	n int
}

// DoStuff burns a little CPU proportional to the configured iterations.
func (t Thing) DoStuff() int {
	total := 0
	for i := 0; i < t.n; i++ {
		total += i * i
	}
	return total
}

// Run executes the configured workloads, each instrumented through a
// different public form of the timer API.
func Run(cfg *Config, log *logger.Logger) error {
	for _, name := range cfg.Workloads {
		run := timer.New("demo." + name)

		switch name {
		case WorkloadSum:
			// Auto-derived tag from the function's qualified name.
			wrapped := timer.Wrap1("", sumTo)
			for i := 0; i < cfg.Iterations; i++ {
				wrapped(i % 100)
			}
		case WorkloadSquares:
			// Explicit tag used verbatim, ignoring the function name.
			wrapped := timer.Wrap1("squares", sumSquares)
			for i := 0; i < cfg.Iterations; i++ {
				wrapped(i % 100)
			}
		case WorkloadThing:
			thing := Thing{n: cfg.Iterations}
			doStuff := timer.Wrap0("", thing.DoStuff)
			doStuff()
		case WorkloadBlock:
			// Plain scoped form around an uninstrumented helper.
			tm := timer.New("block")
			total := 0
			for i := 0; i < cfg.Iterations; i++ {
				total += i
			}
			_ = total
			tm.Stop()
		default:
			run.Stop()
			return fmt.Errorf("unknown workload %q (known: %v)", name, KnownWorkloads)
		}

		elapsed := run.Elapsed()
		run.Stop()
		log.Debug().
			Str("workload", name).
			Int("iterations", cfg.Iterations).
			Dur("elapsed", elapsed).
			Msg("workload complete")
	}

	return nil
}
