package discount

import (
	"github.com/shopspring/decimal"

	"github.com/adspacehq/adspace/internal/types"
)

// Discount is a reduction applied to a contract's base total, either a
// percentage of the total or a fixed amount.
type Discount struct {
	Type  types.DiscountType `db:"type" json:"type"`
	Value decimal.Decimal    `db:"value" json:"value"`
}

// Application is the outcome of applying a discount to a base total.
type Application struct {
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	FinalTotal     decimal.Decimal `json:"final_total"`
}

var oneHundred = decimal.NewFromInt(100)

// Apply computes the discounted total. The base total may be the aggregator's
// estimate or the caller's manual override; this function is agnostic.
// Out-of-range inputs are clamped, never rejected: percentages to [0, 100],
// fixed amounts to >= 0. A fixed discount larger than the base legitimately
// zeroes the total but can never drive it negative.
func Apply(baseTotal decimal.Decimal, d Discount) Application {
	amount := decimal.Zero

	switch d.Type {
	case types.DiscountTypePercentage:
		percent := clamp(d.Value, decimal.Zero, oneHundred)
		amount = types.RoundMoney(baseTotal.Mul(percent).Div(oneHundred))
	case types.DiscountTypeFixed:
		amount = types.RoundMoney(decimal.Max(decimal.Zero, d.Value))
	}

	finalTotal := decimal.Max(decimal.Zero, baseTotal.Sub(amount))

	return Application{
		DiscountAmount: amount,
		FinalTotal:     finalTotal,
	}
}

func clamp(v, min, max decimal.Decimal) decimal.Decimal {
	if v.LessThan(min) {
		return min
	}
	if v.GreaterThan(max) {
		return max
	}
	return v
}
