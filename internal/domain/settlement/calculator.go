package settlement

import (
	"time"

	"github.com/shopspring/decimal"

	ierr "github.com/adspacehq/adspace/internal/errors"
	"github.com/adspacehq/adspace/internal/types"
)

// Result holds the outcome of an early-termination proration: how many
// contract days were consumed as of the settlement date and what portion of
// the final total that time has earned.
type Result struct {
	ConsumedDays int             `json:"consumed_days"`
	TotalDays    int             `json:"total_days"`
	AmountDue    decimal.Decimal `json:"amount_due"`
}

// Prorate computes the amount currently owed on a contract terminated early,
// as the share of the final total earned by elapsed days. The settlement date
// is clamped into the contract period, so settling before the start owes
// nothing and settling after the end owes the full total.
//
// Missing dates are a hard stop: the caller is expected to block the action
// and prompt for them rather than let this function guess.
func Prorate(startDate, endDate time.Time, finalTotal decimal.Decimal, asOf time.Time) (*Result, error) {
	if err := validateDates(startDate, endDate); err != nil {
		return nil, err
	}

	totalDays := types.DaysBetween(startDate, endDate)
	if totalDays < 1 {
		totalDays = 1
	}

	effectiveEnd := asOf
	if endDate.Before(asOf) {
		effectiveEnd = endDate
	}

	consumedDays := types.DaysBetween(startDate, effectiveEnd)
	if consumedDays < 0 {
		consumedDays = 0
	}
	if consumedDays > totalDays {
		consumedDays = totalDays
	}

	amountDue := types.RoundMoney(
		finalTotal.
			Mul(decimal.NewFromInt(int64(consumedDays))).
			Div(decimal.NewFromInt(int64(totalDays))),
	)

	return &Result{
		ConsumedDays: consumedDays,
		TotalDays:    totalDays,
		AmountDue:    amountDue,
	}, nil
}

func validateDates(startDate, endDate time.Time) error {
	if startDate.IsZero() || endDate.IsZero() {
		return ierr.NewError("insufficient settlement data").
			WithHint("Contract start and end dates are required to compute a settlement").
			WithReportableDetails(map[string]any{
				"start_date_set": !startDate.IsZero(),
				"end_date_set":   !endDate.IsZero(),
			}).
			Mark(ierr.ErrValidation)
	}
	if endDate.Before(startDate) {
		return ierr.NewError("invalid contract period").
			WithHint("Contract end date cannot be before the start date").
			Mark(ierr.ErrValidation)
	}
	return nil
}
