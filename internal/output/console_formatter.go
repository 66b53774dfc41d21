package output

import (
	"bytes"
	"fmt"
)

// ConsoleFormatter renders a Report as a human-readable summary table.
type ConsoleFormatter struct{}

func (ConsoleFormatter) Name() string { return "console" }

func (ConsoleFormatter) Format(r *Report) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "Success rate: %s (%s)\n", r.SuccessRate.AsRatio(), r.SuccessRate.AsPercent())
	fmt.Fprintf(&buf, "Final balance percentiles:\n")
	fmt.Fprintf(&buf, "  p10: %.2f\n", r.Percentiles.P10)
	fmt.Fprintf(&buf, "  p25: %.2f\n", r.Percentiles.P25)
	fmt.Fprintf(&buf, "  p50: %.2f\n", r.Percentiles.P50)
	fmt.Fprintf(&buf, "  p75: %.2f\n", r.Percentiles.P75)
	fmt.Fprintf(&buf, "  p90: %.2f\n", r.Percentiles.P90)
	fmt.Fprintf(&buf, "\n%-6s %-10s %-12s %-14s\n", "run", "adequate", "lifespan(mo)", "covered(mo)")
	for i, run := range r.Runs {
		fmt.Fprintf(&buf, "%-6d %-10t %-12d %-14d\n", i, run.Adequate, run.LifespanPeriods, run.AssetsAdequatePeriods)
	}

	return buf.Bytes(), nil
}
