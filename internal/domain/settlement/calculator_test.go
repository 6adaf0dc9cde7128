package settlement

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ierr "github.com/adspacehq/adspace/internal/errors"
)

func TestProrate(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)
	total := decimal.NewFromInt(3000)

	tests := []struct {
		name         string
		asOf         time.Time
		wantConsumed int
		wantTotal    int
		wantAmount   string
	}{
		{
			name:         "settled_at_start_owes_nothing",
			asOf:         start,
			wantConsumed: 0,
			wantTotal:    30,
			wantAmount:   "0",
		},
		{
			name:         "settled_at_end_owes_full_total",
			asOf:         end,
			wantConsumed: 30,
			wantTotal:    30,
			wantAmount:   "3000",
		},
		{
			name:         "mid_period",
			asOf:         time.Date(2025, 1, 16, 0, 0, 0, 0, time.UTC),
			wantConsumed: 15,
			wantTotal:    30,
			wantAmount:   "1500",
		},
		{
			name:         "after_end_clamps_to_full_total",
			asOf:         time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			wantConsumed: 30,
			wantTotal:    30,
			wantAmount:   "3000",
		},
		{
			name:         "before_start_clamps_to_zero",
			asOf:         time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC),
			wantConsumed: 0,
			wantTotal:    30,
			wantAmount:   "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Prorate(start, end, total, tt.asOf)
			require.NoError(t, err)

			assert.Equal(t, tt.wantConsumed, result.ConsumedDays)
			assert.Equal(t, tt.wantTotal, result.TotalDays)
			assert.True(t, result.AmountDue.Equal(decimal.RequireFromString(tt.wantAmount)),
				"expected %s, got %s", tt.wantAmount, result.AmountDue)
		})
	}
}

func TestProrate_RoundsToCents(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC)
	asOf := time.Date(2025, 1, 4, 0, 0, 0, 0, time.UTC)

	// 1000 * 3/7 = 428.571... rounds to 428.57
	result, err := Prorate(start, end, decimal.NewFromInt(1000), asOf)
	require.NoError(t, err)
	assert.Equal(t, 3, result.ConsumedDays)
	assert.Equal(t, 7, result.TotalDays)
	assert.True(t, result.AmountDue.Equal(decimal.RequireFromString("428.57")),
		"expected 428.57, got %s", result.AmountDue)
}

func TestProrate_SameDayContract(t *testing.T) {
	day := time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC)

	result, err := Prorate(day, day, decimal.NewFromInt(500), day)
	require.NoError(t, err)
	assert.Equal(t, 1, result.TotalDays)
	assert.Equal(t, 0, result.ConsumedDays)
	assert.True(t, result.AmountDue.IsZero())
}

func TestProrate_Validation(t *testing.T) {
	valid := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	total := decimal.NewFromInt(1000)

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
	}{
		{name: "missing_start_date", start: time.Time{}, end: valid},
		{name: "missing_end_date", start: valid, end: time.Time{}},
		{name: "missing_both_dates", start: time.Time{}, end: time.Time{}},
		{name: "end_before_start", start: valid, end: valid.AddDate(0, 0, -10)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Prorate(tt.start, tt.end, total, valid)
			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, ierr.IsValidation(err))
		})
	}
}
