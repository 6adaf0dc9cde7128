package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDurationTier_Validate(t *testing.T) {
	valid := []DurationTier{
		DurationTierDay,
		DurationTierOneMonth,
		DurationTierTwoMonths,
		DurationTierThreeMonths,
		DurationTierSixMonths,
		DurationTierFullYear,
	}
	for _, tier := range valid {
		assert.NoError(t, tier.Validate(), "tier %s", tier)
	}

	assert.Error(t, DurationTier("fortnight").Validate())
	assert.Error(t, DurationTier("").Validate())
}

func TestTierForMonths(t *testing.T) {
	tests := []struct {
		months int
		want   DurationTier
		found  bool
	}{
		{months: 1, want: DurationTierOneMonth, found: true},
		{months: 2, want: DurationTierTwoMonths, found: true},
		{months: 3, want: DurationTierThreeMonths, found: true},
		{months: 6, want: DurationTierSixMonths, found: true},
		{months: 12, want: DurationTierFullYear, found: true},
		{months: 4, found: false},
		{months: 0, found: false},
	}

	for _, tt := range tests {
		tier, found := TierForMonths(tt.months)
		assert.Equal(t, tt.found, found, "months %d", tt.months)
		if tt.found {
			assert.Equal(t, tt.want, tier)
		}
	}
}

func TestRentalDuration_Normalize(t *testing.T) {
	assert.Equal(t, 1, RentalDuration{Unit: RentalUnitMonths, Count: 0}.Normalize().Count)
	assert.Equal(t, 1, RentalDuration{Unit: RentalUnitDays, Count: -5}.Normalize().Count)
	assert.Equal(t, 7, RentalDuration{Unit: RentalUnitDays, Count: 7}.Normalize().Count)
}
