package rate

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adspacehq/adspace/internal/types"
)

func price(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func entry(size, level string, category types.CustomerCategory, prices JSONBPriceMap) *RateEntry {
	return &RateEntry{
		ID:           types.GenerateUUIDWithPrefix(types.UUID_PREFIX_RATE_ENTRY),
		Size:         size,
		Level:        level,
		Category:     category,
		PricePerTier: prices,
	}
}

func TestResolver_UnitPrice(t *testing.T) {
	dynamic := []*RateEntry{
		entry("12x4", "A", types.CustomerCategoryStandard, JSONBPriceMap{
			types.DurationTierOneMonth: price("3200"),
		}),
	}
	static := []*RateEntry{
		entry("12x4", "A", types.CustomerCategoryStandard, JSONBPriceMap{
			types.DurationTierOneMonth:    price("3000"),
			types.DurationTierThreeMonths: price("8500"),
		}),
		entry("8x3", "B", types.CustomerCategoryCorporate, JSONBPriceMap{
			types.DurationTierOneMonth: price("1500"),
		}),
	}

	tests := []struct {
		name     string
		size     string
		level    string
		category types.CustomerCategory
		tier     types.DurationTier
		want     string
		found    bool
	}{
		{
			name:     "dynamic_entry_shadows_static",
			size:     "12x4",
			level:    "A",
			category: types.CustomerCategoryStandard,
			tier:     types.DurationTierOneMonth,
			want:     "3200",
			found:    true,
		},
		{
			name:     "falls_back_to_static_for_missing_tier",
			size:     "12x4",
			level:    "A",
			category: types.CustomerCategoryStandard,
			tier:     types.DurationTierThreeMonths,
			want:     "8500",
			found:    true,
		},
		{
			name:     "static_only_key",
			size:     "8x3",
			level:    "B",
			category: types.CustomerCategoryCorporate,
			tier:     types.DurationTierOneMonth,
			want:     "1500",
			found:    true,
		},
		{
			name:     "unknown_key_not_found",
			size:     "6x3",
			level:    "A",
			category: types.CustomerCategoryStandard,
			tier:     types.DurationTierOneMonth,
			found:    false,
		},
		{
			name:     "match_is_case_sensitive",
			size:     "12X4",
			level:    "a",
			category: types.CustomerCategoryStandard,
			tier:     types.DurationTierOneMonth,
			found:    false,
		},
	}

	resolver := NewResolver(dynamic, static)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := resolver.UnitPrice(tt.size, tt.level, tt.category, tt.tier)
			assert.Equal(t, tt.found, found)
			if tt.found {
				assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
					"expected %s, got %s", tt.want, got)
			} else {
				assert.True(t, got.IsZero())
			}
		})
	}
}

func TestResolver_UnitPrice_FirstMatchWins(t *testing.T) {
	dynamic := []*RateEntry{
		entry("12x4", "A", types.CustomerCategoryStandard, JSONBPriceMap{
			types.DurationTierOneMonth: price("3100"),
		}),
		entry("12x4", "A", types.CustomerCategoryStandard, JSONBPriceMap{
			types.DurationTierOneMonth: price("9999"),
		}),
	}

	resolver := NewResolver(dynamic, nil)
	got, found := resolver.UnitPrice("12x4", "A", types.CustomerCategoryStandard, types.DurationTierOneMonth)
	require.True(t, found)
	assert.True(t, got.Equal(decimal.RequireFromString("3100")))
}

func TestResolver_UnitPrice_NilStoredValue(t *testing.T) {
	// A stored nil means the tier is unpriced, not zero, so resolution
	// falls through to the static table.
	dynamic := []*RateEntry{
		entry("12x4", "A", types.CustomerCategoryStandard, JSONBPriceMap{
			types.DurationTierOneMonth: nil,
		}),
	}
	static := []*RateEntry{
		entry("12x4", "A", types.CustomerCategoryStandard, JSONBPriceMap{
			types.DurationTierOneMonth: price("3000"),
		}),
	}

	resolver := NewResolver(dynamic, static)
	got, found := resolver.UnitPrice("12x4", "A", types.CustomerCategoryStandard, types.DurationTierOneMonth)
	require.True(t, found)
	assert.True(t, got.Equal(decimal.RequireFromString("3000")))
}

func TestResolver_DailyRate(t *testing.T) {
	tests := []struct {
		name    string
		dynamic []*RateEntry
		want    string
	}{
		{
			name: "explicit_day_tier_wins",
			dynamic: []*RateEntry{
				entry("8x3", "A", types.CustomerCategoryStandard, JSONBPriceMap{
					types.DurationTierDay:      price("80"),
					types.DurationTierOneMonth: price("2000"),
				}),
			},
			want: "80",
		},
		{
			name: "synthesized_from_monthly",
			dynamic: []*RateEntry{
				entry("8x3", "A", types.CustomerCategoryStandard, JSONBPriceMap{
					types.DurationTierOneMonth: price("2000"),
				}),
			},
			want: "66.67",
		},
		{
			name: "synthesis_rounds_to_cents",
			dynamic: []*RateEntry{
				entry("8x3", "A", types.CustomerCategoryStandard, JSONBPriceMap{
					types.DurationTierOneMonth: price("1000"),
				}),
			},
			// 1000 / 30 = 33.333... rounds to 33.33
			want: "33.33",
		},
		{
			name:    "zero_when_nothing_priced",
			dynamic: nil,
			want:    "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := NewResolver(tt.dynamic, nil)
			got := resolver.DailyRate("8x3", "A", types.CustomerCategoryStandard)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
				"expected %s, got %s", tt.want, got)
		})
	}
}

func TestResolver_SynthesizeDailyRate_IgnoresExplicitDayTier(t *testing.T) {
	dynamic := []*RateEntry{
		entry("8x3", "A", types.CustomerCategoryStandard, JSONBPriceMap{
			types.DurationTierDay:      price("80"),
			types.DurationTierOneMonth: price("3000"),
		}),
	}

	resolver := NewResolver(dynamic, nil)
	got := resolver.SynthesizeDailyRate("8x3", "A", types.CustomerCategoryStandard)
	assert.True(t, got.Equal(decimal.RequireFromString("100")),
		"expected 100, got %s", got)
}

func TestStaticTable(t *testing.T) {
	table := StaticTable()
	require.NotEmpty(t, table)

	for _, e := range table {
		require.NoError(t, e.Validate())
	}

	// Mutating one call's result must not leak into the next.
	table[0].PricePerTier[types.DurationTierOneMonth] = price("1")
	fresh := StaticTable()
	got, found := NewResolver(nil, fresh).UnitPrice("12x4", "A", types.CustomerCategoryStandard, types.DurationTierOneMonth)
	require.True(t, found)
	assert.True(t, got.Equal(decimal.RequireFromString("3000")))
}

func TestRateEntry_Validate(t *testing.T) {
	tests := []struct {
		name    string
		entry   *RateEntry
		wantErr bool
	}{
		{
			name: "valid_entry",
			entry: entry("12x4", "A", types.CustomerCategoryStandard, JSONBPriceMap{
				types.DurationTierOneMonth: price("3000"),
			}),
			wantErr: false,
		},
		{
			name:    "missing_size",
			entry:   entry("", "A", types.CustomerCategoryStandard, nil),
			wantErr: true,
		},
		{
			name: "negative_price",
			entry: entry("12x4", "A", types.CustomerCategoryStandard, JSONBPriceMap{
				types.DurationTierOneMonth: price("-10"),
			}),
			wantErr: true,
		},
		{
			name: "price_above_billing_cap",
			entry: entry("12x4", "A", types.CustomerCategoryStandard, JSONBPriceMap{
				types.DurationTierOneMonth: price("1000000000001"),
			}),
			wantErr: true,
		},
		{
			name: "invalid_tier",
			entry: entry("12x4", "A", types.CustomerCategoryStandard, JSONBPriceMap{
				types.DurationTier("fortnight"): price("100"),
			}),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.entry.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
