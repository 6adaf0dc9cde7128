package rate

import (
	"github.com/shopspring/decimal"

	"github.com/adspacehq/adspace/internal/types"
)

// Resolver answers unit-price lookups against a point-in-time snapshot of the
// administrable rate table, falling back to the bundled static table. It holds
// no mutable state and performs no I/O, so a single instance can serve any
// number of concurrent lookups.
type Resolver struct {
	dynamic []*RateEntry
	static  []*RateEntry
}

// NewResolver builds a resolver over an explicit pair of sources. Tests pass
// alternate static tables through here.
func NewResolver(dynamic, static []*RateEntry) *Resolver {
	return &Resolver{dynamic: dynamic, static: static}
}

// NewResolverWithDefaults builds a resolver over a dynamic snapshot backed by
// the bundled static reference table.
func NewResolverWithDefaults(dynamic []*RateEntry) *Resolver {
	return NewResolver(dynamic, StaticTable())
}

// UnitPrice resolves the unit price for one tier: dynamic source first, then
// the static table. The match on (size, level, category) is exact and
// case-sensitive. A nil stored value counts as not found. The boolean is
// false when neither source prices the tier; absence is expected for
// rarely-used tiers, so it is not an error.
func (r *Resolver) UnitPrice(size, level string, category types.CustomerCategory, tier types.DurationTier) (decimal.Decimal, bool) {
	if entry := lookup(r.dynamic, size, level, category); entry != nil {
		if price, ok := entry.PriceForTier(tier); ok {
			return price, true
		}
	}
	if entry := lookup(r.static, size, level, category); entry != nil {
		if price, ok := entry.PriceForTier(tier); ok {
			return price, true
		}
	}
	return decimal.Zero, false
}

// DailyRate returns the explicit day-tier price when one exists, otherwise
// synthesizes one from the one-month price rounded to money precision.
// Returns zero when no monthly price resolves either: downstream aggregation
// needs a number, and zero is the "unpriced" signal the caller surfaces.
func (r *Resolver) DailyRate(size, level string, category types.CustomerCategory) decimal.Decimal {
	if price, ok := r.UnitPrice(size, level, category, types.DurationTierDay); ok {
		return price
	}
	return r.SynthesizeDailyRate(size, level, category)
}

// SynthesizeDailyRate derives a per-day rate from the one-month price,
// ignoring any explicitly stored day tier.
func (r *Resolver) SynthesizeDailyRate(size, level string, category types.CustomerCategory) decimal.Decimal {
	monthly, ok := r.UnitPrice(size, level, category, types.DurationTierOneMonth)
	if !ok {
		return decimal.Zero
	}
	return types.RoundMoney(monthly.Div(decimal.NewFromInt(types.DAYS_PER_MONTH)))
}

// lookup returns the first entry matching the three-key triple. First match
// wins when a source carries duplicates.
func lookup(entries []*RateEntry, size, level string, category types.CustomerCategory) *RateEntry {
	for _, entry := range entries {
		if entry == nil {
			continue
		}
		if entry.Size == size && entry.Level == level && entry.Category == category {
			return entry
		}
	}
	return nil
}
