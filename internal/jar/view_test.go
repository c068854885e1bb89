package jar

import (
	"fmt"
	"math"
	"strconv"
	"testing"

	"github.com/inovacc/timejar/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFillPercentage(t *testing.T) {
	assert.Equal(t, 100.0, FillPercentage(365))
	assert.Equal(t, 0.0, FillPercentage(0))
	assert.Equal(t, 200.0, FillPercentage(730))
	assert.Less(t, FillPercentage(-1), 0.0)
}

func TestHoursMinutes(t *testing.T) {
	tests := []struct {
		amount string
		want   string
	}{
		{"364", "364 hours 0 minutes"},
		{"363.5", "363 hours 30 minutes"},
		{"1.25", "1 hours 15 minutes"},
		{"0", "0 hours 0 minutes"},
		{"-0.5", "-1 hours -30 minutes"},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			var amount float64
			_, err := fmt.Sscan(tt.amount, &amount)
			require.NoError(t, err)

			assert.Equal(t, tt.want, FormatHoursMinutes(amount))
		})
	}

	assert.Equal(t, "NaN hours NaN minutes", FormatHoursMinutes(math.NaN()))
}

func TestFormatPercentage(t *testing.T) {
	assert.Equal(t, "99.7%", FormatPercentage(FillPercentage(364)))
	assert.Equal(t, "NaN%", FormatPercentage(math.NaN()))
}

func TestRecent_SixTransfers(t *testing.T) {
	s := New()
	for i := 1; i <= 6; i++ {
		require.NoError(t, s.Transfer(strconv.Itoa(i)))
	}

	entries := Recent(s.History(), 5)
	require.Len(t, entries, 5)

	for i, e := range entries {
		assert.Equal(t, 5-i, e.Index)
		assert.Equal(t, fmt.Sprint(6-i), e.Record.Value.String())
	}
}

func TestRecent_Limits(t *testing.T) {
	history := []model.TransferRecord{{Value: model.NumberValue(1)}, {Value: model.NumberValue(2)}}

	assert.Len(t, Recent(history, 5), 2)
	assert.Len(t, Recent(history, 0), 2)
	assert.Len(t, Recent(history, 1), 1)
	assert.Empty(t, Recent(nil, 5))
}

func TestEntry_Describe(t *testing.T) {
	e := Entry{Record: model.TransferRecord{Value: model.NumberValue(60), Date: "10/19/2026, 9:15:00 AM"}}
	assert.Equal(t, "60 minutes transferred on 10/19/2026, 9:15:00 AM", e.Describe())
}
