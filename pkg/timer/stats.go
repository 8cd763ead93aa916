package timer

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/olekukonko/tablewriter"
)

// Stats table columns, in render order: tag, frac, time, percall, rate,
// calls. frac is the tag's accumulated time over wall-clock time since the
// registry started; overlapping or nested tags each count fully against that
// single denominator, so fracs may sum past 1.0. rate is calls per second
// and renders NaN for a tag whose accumulated time rounds to zero.

// WriteStats renders the current stats table to w. It reads the registry
// without mutating it, so repeated calls render the same rows (only the
// total-time baseline keeps growing).
func (r *Registry) WriteStats(w io.Writer) error {
	entries := r.Snapshot()
	totalSec := r.ElapsedSinceStart().Seconds()

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.Header("tag", "frac", "time", "percall", "rate", "calls")

	for _, e := range entries {
		secs := e.Total.Seconds()

		frac := 0.0
		if totalSec > 0 {
			frac = secs / totalSec
		}

		// Entries only exist after at least one report, so calls >= 1.
		percall := secs / float64(e.Calls)

		rate := "NaN"
		if secs > 0 {
			rate = fmt.Sprintf("%.4f", float64(e.Calls)/secs)
		}

		if err := table.Append(
			e.Tag,
			fmt.Sprintf("%.4f", frac),
			fmt.Sprintf("%.4f", secs),
			fmt.Sprintf("%.4f", percall),
			rate,
			fmt.Sprintf("%d", e.Calls),
		); err != nil {
			return fmt.Errorf("failed to build stats table: %w", err)
		}
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render stats table: %w", err)
	}

	sep := strings.Repeat("-", tableWidth(buf.String()))

	if _, err := fmt.Fprintln(w, sep); err != nil {
		return err
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, sep); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Total time: %.4f\n", totalSec); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, sep); err != nil {
		return err
	}
	return nil
}

// WriteCSV renders the same columns as WriteStats in comma-separated form,
// one row per tag, with no separators or total line.
func (r *Registry) WriteCSV(w io.Writer) error {
	entries := r.Snapshot()
	totalSec := r.ElapsedSinceStart().Seconds()

	if _, err := fmt.Fprintln(w, "tag, frac, time, percall, rate, calls"); err != nil {
		return err
	}

	for _, e := range entries {
		secs := e.Total.Seconds()

		frac := 0.0
		if totalSec > 0 {
			frac = secs / totalSec
		}
		percall := secs / float64(e.Calls)

		rate := "NaN"
		if secs > 0 {
			rate = fmt.Sprintf("%.4f", float64(e.Calls)/secs)
		}

		_, err := fmt.Fprintf(w, "%s, %.4f, %.4f, %.4f, %s, %d\n",
			e.Tag, frac, secs, percall, rate, e.Calls)
		if err != nil {
			return err
		}
	}
	return nil
}

// PrintStats renders the process-wide stats table to stdout.
func PrintStats() error {
	return std.WriteStats(os.Stdout)
}

// PrintCSV renders the process-wide stats to stdout in CSV form.
func PrintCSV() error {
	return std.WriteCSV(os.Stdout)
}

// tableWidth returns the display width of the widest rendered line, used to
// size the surrounding separator rules.
func tableWidth(rendered string) int {
	width := 0
	for _, line := range strings.Split(rendered, "\n") {
		if n := utf8.RuneCountInString(line); n > width {
			width = n
		}
	}
	return width
}
