package contract

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/adspacehq/adspace/internal/domain/discount"
	"github.com/adspacehq/adspace/internal/domain/installment"
	"github.com/adspacehq/adspace/internal/domain/placement"
	ierr "github.com/adspacehq/adspace/internal/errors"
	"github.com/adspacehq/adspace/internal/types"
)

// Contract is a signed billboard rental: the placements leased, the period,
// the costed totals and the repayment schedule. The costing engine computes
// into this record; persistence is the repository layer's concern.
type Contract struct {
	// ID uuid identifier for the contract
	ID string `db:"id" json:"id"`

	// ContractNumber is the short human-readable reference, ex CT-8FKX2A
	ContractNumber string `db:"contract_number" json:"contract_number"`

	CustomerName     string                 `db:"customer_name" json:"customer_name"`
	CustomerCategory types.CustomerCategory `db:"customer_category" json:"customer_category"`

	StartDate time.Time `db:"start_date" json:"start_date"`
	EndDate   time.Time `db:"end_date" json:"end_date"`

	Placements placement.JSONBPlacements `db:"placements,jsonb" json:"placements"`

	// ManualBaseTotal overrides the aggregator's estimate when set; the
	// discount then applies to it instead.
	ManualBaseTotal *decimal.Decimal `db:"manual_base_total" json:"manual_base_total,omitempty"`

	Discount discount.JSONBDiscount `db:"discount,jsonb" json:"discount"`

	// TotalCost is the final payable amount after discount
	TotalCost      decimal.Decimal `db:"total_cost" json:"total_cost"`
	DiscountAmount decimal.Decimal `db:"discount_amount" json:"discount_amount"`

	Installments installment.JSONBInstallments `db:"installments,jsonb" json:"installments"`

	types.BaseModel
}

func (c *Contract) Validate() error {
	if c.CustomerName == "" {
		return ierr.NewError("customer name is required").
			WithHint("Customer name is required").
			Mark(ierr.ErrValidation)
	}
	if c.CustomerCategory == "" {
		return ierr.NewError("customer category is required").
			WithHint("Customer category is required").
			Mark(ierr.ErrValidation)
	}
	if c.StartDate.IsZero() || c.EndDate.IsZero() {
		return ierr.NewError("contract period is required").
			WithHint("Contract start and end dates are required").
			Mark(ierr.ErrValidation)
	}
	if c.EndDate.Before(c.StartDate) {
		return ierr.NewError("invalid contract period").
			WithHint("Contract end date cannot be before the start date").
			Mark(ierr.ErrValidation)
	}
	if len(c.Placements) == 0 {
		return ierr.NewError("contract has no placements").
			WithHint("At least one placement is required").
			Mark(ierr.ErrValidation)
	}
	for _, p := range c.Placements {
		if err := p.Validate(); err != nil {
			return err
		}
	}
	if c.ManualBaseTotal != nil && c.ManualBaseTotal.LessThan(decimal.Zero) {
		return ierr.NewError("negative base total").
			WithHint("Manual base total cannot be negative").
			Mark(ierr.ErrValidation)
	}
	if c.ManualBaseTotal != nil && types.ExceedsMaxBillingAmount(*c.ManualBaseTotal) {
		return ierr.NewError("base total too large").
			WithHint("Manual base total exceeds the maximum billing amount").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// Sizes returns the distinct placement sizes on the contract, preserving
// first-seen order. The rate repository fetches snapshots by size.
func (c *Contract) Sizes() []string {
	seen := make(map[string]struct{}, len(c.Placements))
	sizes := make([]string, 0, len(c.Placements))
	for _, p := range c.Placements {
		if _, ok := seen[p.Size]; ok {
			continue
		}
		seen[p.Size] = struct{}{}
		sizes = append(sizes, p.Size)
	}
	return sizes
}
