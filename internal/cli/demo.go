// Package cli implements the timekeep command actions.
package cli

import (
	"fmt"
	"os"

	"github.com/NikitaCOEUR/timekeep/internal/demo"
	"github.com/NikitaCOEUR/timekeep/internal/errors"
	"github.com/NikitaCOEUR/timekeep/internal/logger"
	"github.com/NikitaCOEUR/timekeep/pkg/timer"
)

// DemoParams holds parameters for the demo command.
type DemoParams struct {
	ConfigPath string
	LogLevel   string
	CSV        bool
}

// Demo runs the instrumented sample workloads and prints the stats table
// (or CSV). Without --config it picks up a .timekeep.* file from the current
// directory when one exists, otherwise runs with defaults.
func Demo(p DemoParams) error {
	log := logger.New(p.LogLevel, os.Stderr)

	cfg := demo.DefaultConfig()

	path := p.ConfigPath
	if path == "" {
		if cwd, err := os.Getwd(); err == nil {
			path = demo.FindConfig(cwd)
		}
	}

	if path != "" {
		content, err := os.ReadFile(path)
		if err != nil {
			return errors.NewConfigurationError(path, "failed to read config file", err)
		}

		result, err := demo.ValidateWithSchema(path, content)
		if err != nil {
			return errors.NewConfigurationError(path, "failed to validate config", err)
		}
		if !result.Valid {
			return errors.NewValidationError(path,
				fmt.Sprintf("invalid config (%d problems), run 'timekeep validate %s' for details",
					len(result.Errors), path))
		}

		cfg, err = demo.Load(path)
		if err != nil {
			return errors.NewConfigurationError(path, "failed to load config", err)
		}

		log.Debug().Str("config", path).Msg("loaded demo config")
	}

	if p.CSV {
		cfg.CSV = true
	}

	if cfg.CSV {
		// No styled header in CSV mode; keep stdout machine-readable.
		if err := demo.Run(cfg, log); err != nil {
			return errors.NewExecutionError("demo", "workload failed", err)
		}
		return timer.PrintCSV()
	}

	fmt.Println(titleStyle.Render("timekeep demo") +
		subtleStyle.Render(fmt.Sprintf(" - %d iterations, workloads %v", cfg.Iterations, cfg.Workloads)))

	// Table output goes through the end-of-run hook, the same way an
	// embedding program would wire it in main.
	flush := timer.PrintOnExit()
	defer flush()

	if err := demo.Run(cfg, log); err != nil {
		return errors.NewExecutionError("demo", "workload failed", err)
	}
	return nil
}
