package jar

import (
	"fmt"
	"math"
	"strconv"

	"github.com/inovacc/timejar/internal/model"
)

// FillPercentage is amount relative to the baseline, in percent. It is not
// clamped: Jar 2 may pass 100 and edits can push either jar below 0.
func FillPercentage(amount float64) float64 {
	return amount / Baseline * 100
}

// HoursMinutes splits amount into whole hours and the whole minutes of the
// remaining fraction. Negative amounts keep the sign of the fraction.
func HoursMinutes(amount float64) (hours, minutes float64) {
	return math.Floor(amount), math.Floor(math.Mod(amount, 1) * minutesPerHour)
}

// FormatHoursMinutes renders amount as "H hours M minutes".
func FormatHoursMinutes(amount float64) string {
	h, m := HoursMinutes(amount)

	return fmt.Sprintf("%s hours %s minutes", formatNumber(h), formatNumber(m))
}

// FormatPercentage renders a fill percentage with one decimal.
func FormatPercentage(p float64) string {
	if math.IsNaN(p) {
		return "NaN%"
	}

	return strconv.FormatFloat(p, 'f', 1, 64) + "%"
}

// Entry is a history record paired with its index in the full history.
type Entry struct {
	Index  int
	Record model.TransferRecord
}

// Describe renders the record the way the history list shows it.
func (e Entry) Describe() string {
	return fmt.Sprintf("%s minutes transferred on %s", e.Record.Value, e.Record.Date)
}

// Recent returns the last limit records, newest first. limit <= 0 returns
// every record.
func Recent(history []model.TransferRecord, limit int) []Entry {
	n := len(history)
	if limit <= 0 || limit > n {
		limit = n
	}

	out := make([]Entry, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		out = append(out, Entry{Index: i, Record: history[i]})
	}

	return out
}

func formatNumber(f float64) string {
	if f == 0 {
		f = 0 // drop the sign of -0
	}

	return strconv.FormatFloat(f, 'f', -1, 64)
}
