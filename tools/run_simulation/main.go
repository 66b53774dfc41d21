// Command run_simulation loads a scenario from YAML, executes a Monte
// Carlo simulation against it, and prints a report in the requested
// format. It exists for exploring a scenario from the command line
// during development, the same role debug_break_even and
// print_prorate played for the FERS engine this repo grew out of.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rpgo/retirement-calculator/internal/calculation"
	"github.com/rpgo/retirement-calculator/internal/config"
	"github.com/rpgo/retirement-calculator/internal/output"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "run_simulation <config-file>",
		Short: "Run a Monte Carlo retirement-funding simulation from a YAML scenario",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "console", "output format: "+joinFormats())
	return cmd
}

func joinFormats() string {
	out := ""
	for i, name := range output.AvailableFormatterNames() {
		if i > 0 {
			out += ", "
		}
		out += name
	}
	return out
}

func run(configPath, format string) error {
	cfg, err := config.LoadFromFile(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	settings, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("building run settings: %w", err)
	}

	formatter := output.GetFormatterByName(format)
	if formatter == nil {
		return fmt.Errorf("unknown output format %q (available: %s)", format, joinFormats())
	}

	sim := calculation.NewSimulation(cfg.Seed, cfg.Runs, settings)
	report := output.BuildReport(sim)

	rendered, err := formatter.Format(report)
	if err != nil {
		return fmt.Errorf("formatting report: %w", err)
	}

	fmt.Println(string(rendered))
	return nil
}
