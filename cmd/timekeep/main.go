// Package main is the entry point for the timekeep demo CLI. The library
// itself lives in pkg/timer; this binary only exists to exercise it.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	tkcli "github.com/NikitaCOEUR/timekeep/internal/cli"
	"github.com/NikitaCOEUR/timekeep/pkg/version"
)

func main() {
	app := newApp()

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:    "timekeep",
		Usage:   "Tag-based wall-clock instrumentation demo driver",
		Version: version.Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "warn",
				Usage:   "Log level (debug, info, warn, error)",
				Sources: cli.EnvVars("TIMEKEEP_LOG_LEVEL"),
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "demo",
				Usage: "Run the instrumented sample workloads and print timing stats",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to a demo config file (default: .timekeep.* in current directory)",
					},
					&cli.BoolFlag{
						Name:  "csv",
						Usage: "Emit stats as CSV instead of a table",
					},
				},
				Action: func(_ context.Context, cmd *cli.Command) error {
					return tkcli.Demo(tkcli.DemoParams{
						ConfigPath: cmd.String("config"),
						LogLevel:   cmd.String("log-level"),
						CSV:        cmd.Bool("csv"),
					})
				},
			},
			{
				Name:  "init",
				Usage: "Create a sample .timekeep.yml in the current directory",
				Action: func(_ context.Context, _ *cli.Command) error {
					return tkcli.Init("")
				},
			},
			{
				Name:      "validate",
				Usage:     "Validate a timekeep demo configuration file",
				ArgsUsage: "[config-file]",
				Action: func(_ context.Context, cmd *cli.Command) error {
					configPath := ""
					if cmd.Args().Len() > 0 {
						configPath = cmd.Args().Get(0)
					}
					return tkcli.Validate(configPath)
				},
			},
		},
	}
}
