package core

import (
	"fmt"
	"io"

	"github.com/inovacc/timejar/internal/jar"
)

// PrintStatus writes both jars with their fill level.
func PrintStatus(w io.Writer, title string, state *jar.State) {
	if title != "" {
		_, _ = fmt.Fprintln(w, title)
	}

	_, _ = fmt.Fprintf(w, "Jar 1: %s (%s)\n", jar.FormatHoursMinutes(state.Jar1()), jar.FormatPercentage(jar.FillPercentage(state.Jar1())))
	_, _ = fmt.Fprintf(w, "Jar 2: %s (%s)\n", jar.FormatHoursMinutes(state.Jar2()), jar.FormatPercentage(jar.FillPercentage(state.Jar2())))
}

// PrintHistory writes the last limit records, newest first, each prefixed by
// the index the edit command expects. limit <= 0 prints everything.
func PrintHistory(w io.Writer, state *jar.State, limit int) {
	entries := jar.Recent(state.History(), limit)
	if len(entries) == 0 {
		_, _ = fmt.Fprintln(w, "No transfers yet.")

		return
	}

	for _, e := range entries {
		_, _ = fmt.Fprintf(w, "[%d] %s\n", e.Index, e.Describe())
	}
}
