package cli

import (
	"math"
	"strings"
)

const (
	gaugeWidth  = 10
	gaugeHeight = 10
)

// filledRows converts a fill percentage into gauge rows. Percentages outside
// [0, 100] and NaN are drawn clamped; the label still shows the real value.
func filledRows(pct float64, height int) int {
	if math.IsNaN(pct) || pct <= 0 {
		return 0
	}

	if pct >= 100 {
		return height
	}

	return int(math.Round(pct / 100 * float64(height)))
}

// renderGauge draws a jar filling from the bottom.
func renderGauge(pct float64) string {
	filled := filledRows(pct, gaugeHeight)
	row := strings.Repeat(" ", gaugeWidth)

	rows := make([]string, gaugeHeight)
	for i := range rows {
		if i >= gaugeHeight-filled {
			rows[i] = fillStyle.Render(row)

			continue
		}

		rows[i] = emptyStyle.Render(row)
	}

	return strings.Join(rows, "\n")
}
