package rate

import (
	"github.com/shopspring/decimal"

	"github.com/adspacehq/adspace/internal/types"
)

// StaticTableVersion identifies the bundled reference table. Bump it when the
// reference prices change so cached snapshots keyed on it roll over.
const StaticTableVersion = "2025-07"

// StaticTable returns the bundled reference rate table, used only when the
// administrable table has no matching entry. It is rebuilt on every call so
// callers can never mutate shared state through it.
func StaticTable() []*RateEntry {
	return []*RateEntry{
		staticEntry("12x4", "A", types.CustomerCategoryStandard, tierPrices("", "3000", "5800", "8500", "16200", "30000")),
		staticEntry("12x4", "A", types.CustomerCategoryCorporate, tierPrices("", "2700", "5200", "7650", "14600", "27000")),
		staticEntry("12x4", "A", types.CustomerCategoryMarketer, tierPrices("", "2400", "4650", "6800", "13000", "24000")),
		staticEntry("12x4", "A", types.CustomerCategoryMunicipal, tierPrices("", "2100", "4050", "5950", "11350", "21000")),
		staticEntry("12x4", "B", types.CustomerCategoryStandard, tierPrices("", "2500", "4850", "7100", "13500", "25000")),
		staticEntry("12x4", "B", types.CustomerCategoryCorporate, tierPrices("", "2250", "4350", "6400", "12150", "22500")),
		staticEntry("8x3", "A", types.CustomerCategoryStandard, tierPrices("75", "2000", "3850", "5650", "10800", "20000")),
		staticEntry("8x3", "A", types.CustomerCategoryCorporate, tierPrices("", "1800", "3500", "5100", "9700", "18000")),
		staticEntry("8x3", "B", types.CustomerCategoryStandard, tierPrices("60", "1600", "3100", "4550", "8650", "16000")),
		staticEntry("6x3", "A", types.CustomerCategoryStandard, tierPrices("", "1400", "2700", "3950", "7550", "14000")),
		staticEntry("6x3", "B", types.CustomerCategoryStandard, tierPrices("", "1100", "2150", "3100", "5950", "11000")),
		staticEntry("4x3", "A", types.CustomerCategoryStandard, tierPrices("", "900", "1750", "2550", "4850", "9000")),
		staticEntry("4x3", "B", types.CustomerCategoryMarketer, tierPrices("", "650", "1250", "1850", "3500", "6500")),
		staticEntry("3x2", "B", types.CustomerCategoryStandard, tierPrices("", "500", "", "1400", "2700", "5000")),
	}
}

func staticEntry(size, level string, category types.CustomerCategory, prices JSONBPriceMap) *RateEntry {
	return &RateEntry{
		ID:           types.GenerateUUIDWithPrefix(types.UUID_PREFIX_RATE_ENTRY),
		Size:         size,
		Level:        level,
		Category:     category,
		PricePerTier: prices,
		BaseModel:    types.BaseModel{Status: types.StatusActive},
	}
}

// tierPrices builds a price map from string amounts in tier order: day,
// one month, two months, three months, six months, full year. An empty
// string leaves the tier unpriced.
func tierPrices(day, oneMonth, twoMonths, threeMonths, sixMonths, fullYear string) JSONBPriceMap {
	prices := JSONBPriceMap{}
	set := func(tier types.DurationTier, amount string) {
		if amount == "" {
			return
		}
		value := decimal.RequireFromString(amount)
		prices[tier] = &value
	}
	set(types.DurationTierDay, day)
	set(types.DurationTierOneMonth, oneMonth)
	set(types.DurationTierTwoMonths, twoMonths)
	set(types.DurationTierThreeMonths, threeMonths)
	set(types.DurationTierSixMonths, sixMonths)
	set(types.DurationTierFullYear, fullYear)
	return prices
}
