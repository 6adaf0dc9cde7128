package types

import (
	ierr "github.com/adspacehq/adspace/internal/errors"
	"github.com/samber/lo"
)

// DurationTier is a discrete billing-duration bucket for which an explicit
// unit price may exist in a rate table.
type DurationTier string

const (
	DurationTierDay         DurationTier = "day"
	DurationTierOneMonth    DurationTier = "one_month"
	DurationTierTwoMonths   DurationTier = "two_months"
	DurationTierThreeMonths DurationTier = "three_months"
	DurationTierSixMonths   DurationTier = "six_months"
	DurationTierFullYear    DurationTier = "full_year"
)

// monthTiers maps a whole-month rental length to the tier that bills it
// in a single unit.
var monthTiers = map[int]DurationTier{
	1:  DurationTierOneMonth,
	2:  DurationTierTwoMonths,
	3:  DurationTierThreeMonths,
	6:  DurationTierSixMonths,
	12: DurationTierFullYear,
}

func (t DurationTier) String() string {
	return string(t)
}

func (t DurationTier) Validate() error {
	allowedValues := []DurationTier{
		DurationTierDay,
		DurationTierOneMonth,
		DurationTierTwoMonths,
		DurationTierThreeMonths,
		DurationTierSixMonths,
		DurationTierFullYear,
	}

	if !lo.Contains(allowedValues, t) {
		return ierr.NewError("invalid duration tier").
			WithHint("Invalid duration tier").
			WithReportableDetails(map[string]any{
				"allowed_values": allowedValues,
				"provided_value": t,
			}).
			Mark(ierr.ErrValidation)
	}

	return nil
}

// TierForMonths returns the tier that bills the given number of months in a
// single unit, if one exists.
func TierForMonths(months int) (DurationTier, bool) {
	tier, ok := monthTiers[months]
	return tier, ok
}

// RentalUnit is the unit a rental duration is expressed in.
type RentalUnit string

const (
	RentalUnitMonths RentalUnit = "months"
	RentalUnitDays   RentalUnit = "days"
)

func (u RentalUnit) String() string {
	return string(u)
}

func (u RentalUnit) Validate() error {
	allowedValues := []RentalUnit{RentalUnitMonths, RentalUnitDays}

	if !lo.Contains(allowedValues, u) {
		return ierr.NewError("invalid rental unit").
			WithHint("Invalid rental unit").
			WithReportableDetails(map[string]any{
				"allowed_values": allowedValues,
				"provided_value": u,
			}).
			Mark(ierr.ErrValidation)
	}

	return nil
}

// RentalDuration is a requested rental length, expressed either in whole
// months or in days.
type RentalDuration struct {
	Unit  RentalUnit `json:"unit"`
	Count int        `json:"count"`
}

// Normalize clamps the count to at least one unit. Negative or zero
// durations are caller misuse and are clamped, not rejected.
func (d RentalDuration) Normalize() RentalDuration {
	if d.Count < 1 {
		d.Count = 1
	}
	return d
}

func (d RentalDuration) Validate() error {
	return d.Unit.Validate()
}
