package costing

import (
	"github.com/shopspring/decimal"

	"github.com/adspacehq/adspace/internal/domain/placement"
	"github.com/adspacehq/adspace/internal/domain/rate"
	"github.com/adspacehq/adspace/internal/types"
)

// CostLine is the derived cost of one placement for the requested duration.
// Quantity is the number of tier units billed, e.g. 3 one-month units for a
// three-month rental when no bulk tier is priced.
type CostLine struct {
	PlacementID string             `json:"placement_id"`
	UnitPrice   decimal.Decimal    `json:"unit_price"`
	Tier        types.DurationTier `json:"tier"`
	Quantity    int                `json:"quantity"`

	// Unpriced marks a line whose unit price resolved to zero at every
	// source, so the caller can prompt for a manual override.
	Unpriced bool `json:"unpriced"`
}

// Total is the line amount at money precision.
func (l CostLine) Total() decimal.Decimal {
	return types.RoundMoney(l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity))))
}

// Estimate is the aggregated cost of a set of placements for one duration.
type Estimate struct {
	Lines []CostLine      `json:"lines"`
	Total decimal.Decimal `json:"total"`
}

// EstimateTotal prices every placement for the requested duration and sums
// the lines. It is pure: callers re-invoke it whenever any input changes,
// and it holds no cache. Cost per call is linear in the number of placements.
func EstimateTotal(resolver *rate.Resolver, placements []placement.Placement, category types.CustomerCategory, duration types.RentalDuration) Estimate {
	duration = duration.Normalize()

	estimate := Estimate{
		Lines: make([]CostLine, 0, len(placements)),
		Total: decimal.Zero,
	}

	for _, p := range placements {
		var line CostLine
		switch duration.Unit {
		case types.RentalUnitDays:
			line = dayLine(resolver, p, category, duration.Count)
		default:
			line = monthLine(resolver, p, category, duration.Count)
		}
		line.Unpriced = line.UnitPrice.IsZero()
		estimate.Lines = append(estimate.Lines, line)
		estimate.Total = estimate.Total.Add(line.Total())
	}

	return estimate
}

// monthLine resolves a whole-month rental: exact bulk tier first, then the
// one-month price extrapolated linearly, then the placement's own fallback
// monthly price. No attempt is made to infer bulk discounts that are not
// stored.
func monthLine(resolver *rate.Resolver, p placement.Placement, category types.CustomerCategory, months int) CostLine {
	if tier, ok := types.TierForMonths(months); ok {
		if price, found := resolver.UnitPrice(p.Size, p.Level, category, tier); found {
			return CostLine{PlacementID: p.ID, UnitPrice: price, Tier: tier, Quantity: 1}
		}
	}

	if monthly, found := resolver.UnitPrice(p.Size, p.Level, category, types.DurationTierOneMonth); found {
		return CostLine{PlacementID: p.ID, UnitPrice: monthly, Tier: types.DurationTierOneMonth, Quantity: months}
	}

	return CostLine{PlacementID: p.ID, UnitPrice: p.FallbackMonthlyPrice, Tier: types.DurationTierOneMonth, Quantity: months}
}

// dayLine resolves a day-billed rental: explicit day tier first, then the
// synthesized daily rate.
func dayLine(resolver *rate.Resolver, p placement.Placement, category types.CustomerCategory, days int) CostLine {
	return CostLine{
		PlacementID: p.ID,
		UnitPrice:   resolver.DailyRate(p.Size, p.Level, category),
		Tier:        types.DurationTierDay,
		Quantity:    days,
	}
}
