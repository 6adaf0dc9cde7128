package discount

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/adspacehq/adspace/internal/types"
)

func TestApply(t *testing.T) {
	tests := []struct {
		name       string
		baseTotal  string
		discount   Discount
		wantAmount string
		wantFinal  string
	}{
		{
			name:       "percentage_discount",
			baseTotal:  "1000",
			discount:   Discount{Type: types.DiscountTypePercentage, Value: decimal.NewFromInt(10)},
			wantAmount: "100",
			wantFinal:  "900",
		},
		{
			name:       "percentage_rounds_to_cents",
			baseTotal:  "999.99",
			discount:   Discount{Type: types.DiscountTypePercentage, Value: decimal.NewFromFloat(12.5)},
			wantAmount: "125",
			wantFinal:  "874.99",
		},
		{
			name:       "percentage_above_hundred_clamped",
			baseTotal:  "1000",
			discount:   Discount{Type: types.DiscountTypePercentage, Value: decimal.NewFromInt(150)},
			wantAmount: "1000",
			wantFinal:  "0",
		},
		{
			name:       "negative_percentage_clamped_to_zero",
			baseTotal:  "1000",
			discount:   Discount{Type: types.DiscountTypePercentage, Value: decimal.NewFromInt(-20)},
			wantAmount: "0",
			wantFinal:  "1000",
		},
		{
			name:       "fixed_discount",
			baseTotal:  "1000",
			discount:   Discount{Type: types.DiscountTypeFixed, Value: decimal.NewFromInt(250)},
			wantAmount: "250",
			wantFinal:  "750",
		},
		{
			name:       "fixed_larger_than_base_floors_at_zero",
			baseTotal:  "1000",
			discount:   Discount{Type: types.DiscountTypeFixed, Value: decimal.NewFromInt(1500)},
			wantAmount: "1500",
			wantFinal:  "0",
		},
		{
			name:       "negative_fixed_clamped_to_zero",
			baseTotal:  "1000",
			discount:   Discount{Type: types.DiscountTypeFixed, Value: decimal.NewFromInt(-50)},
			wantAmount: "0",
			wantFinal:  "1000",
		},
		{
			name:       "empty_discount_passes_through",
			baseTotal:  "1000",
			discount:   Discount{},
			wantAmount: "0",
			wantFinal:  "1000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := decimal.RequireFromString(tt.baseTotal)
			got := Apply(base, tt.discount)

			assert.True(t, got.DiscountAmount.Equal(decimal.RequireFromString(tt.wantAmount)),
				"expected amount %s, got %s", tt.wantAmount, got.DiscountAmount)
			assert.True(t, got.FinalTotal.Equal(decimal.RequireFromString(tt.wantFinal)),
				"expected final %s, got %s", tt.wantFinal, got.FinalTotal)

			// The final total never leaves [0, base].
			assert.True(t, got.FinalTotal.GreaterThanOrEqual(decimal.Zero))
			assert.True(t, got.FinalTotal.LessThanOrEqual(base))
		})
	}
}
