package types

import "github.com/shopspring/decimal"

const (
	// MAX_BILLING_AMOUNT is the maximum allowed billing amount (as a safeguard)
	MAX_BILLING_AMOUNT = 1000000000000 // 1 trillion

	// MONEY_PRECISION is the number of decimal places money values are
	// rounded to everywhere in the costing engine
	MONEY_PRECISION = 2

	// DAYS_PER_MONTH is the divisor used when synthesizing a daily rate
	// from a monthly one
	DAYS_PER_MONTH = 30
)

// RoundMoney rounds an amount half-up to money precision. All persisted and
// returned amounts go through this so the different costing flows cannot
// drift on rounding mode.
func RoundMoney(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(MONEY_PRECISION)
}

var maxBillingAmount = decimal.NewFromInt(MAX_BILLING_AMOUNT)

// ExceedsMaxBillingAmount reports whether an amount is above the billing
// safeguard. Unit prices and manual base totals are rejected past it.
func ExceedsMaxBillingAmount(amount decimal.Decimal) bool {
	return amount.GreaterThan(maxBillingAmount)
}
