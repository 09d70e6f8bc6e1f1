// Package results reports a finished session.
package results

import (
	"fmt"
	"io"
	"time"

	"github.com/verte-zerg/tokitype/internal/session"
)

// Reporter presents the Results screen for a completed session.
type Reporter interface {
	Report(words []session.WordEntry) error
}

// TableReporter writes per-word elapsed times as a plain-text table.
type TableReporter struct {
	w io.Writer
}

// NewTableReporter returns a reporter writing to w.
func NewTableReporter(w io.Writer) *TableReporter {
	return &TableReporter{w: w}
}

// Report implements Reporter.
func (r *TableReporter) Report(words []session.WordEntry) error {
	if len(words) == 0 {
		_, err := fmt.Fprintln(r.w, "No words practiced.")
		return err
	}
	headers := []string{"Word", "Typed", "Elapsed"}
	rows := make([][]string, 0, len(words))
	var total time.Duration
	for _, entry := range words {
		typed := string(entry.Input)
		if !entry.Matches() {
			typed += " *"
		}
		rows = append(rows, []string{entry.Target, typed, formatDuration(entry.Elapsed)})
		total += entry.Elapsed
	}
	for _, line := range formatTable(headers, rows, map[int]bool{2: true}) {
		if _, err := fmt.Fprintln(r.w, line); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(r.w, "\nWords: %d\nTotal: %s\n", len(words), formatDuration(total)); err != nil {
		return err
	}
	return nil
}

func formatDuration(d time.Duration) string {
	return fmt.Sprintf("%.2fs", d.Seconds())
}
