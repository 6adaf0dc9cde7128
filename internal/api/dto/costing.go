package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/adspacehq/adspace/internal/domain/costing"
	"github.com/adspacehq/adspace/internal/domain/discount"
	"github.com/adspacehq/adspace/internal/domain/installment"
	"github.com/adspacehq/adspace/internal/domain/placement"
	ierr "github.com/adspacehq/adspace/internal/errors"
	"github.com/adspacehq/adspace/internal/types"
	"github.com/adspacehq/adspace/internal/validator"
)

type PlacementInput struct {
	ID                   string          `json:"id" validate:"required"`
	Size                 string          `json:"size" validate:"required"`
	Level                string          `json:"level" validate:"required"`
	FallbackMonthlyPrice decimal.Decimal `json:"fallback_monthly_price"`
}

func (p PlacementInput) ToPlacement() placement.Placement {
	return placement.Placement{
		ID:                   p.ID,
		Size:                 p.Size,
		Level:                p.Level,
		FallbackMonthlyPrice: p.FallbackMonthlyPrice,
	}
}

type DiscountInput struct {
	Type  types.DiscountType `json:"type" validate:"required,oneof=fixed percentage"`
	Value decimal.Decimal    `json:"value"`
}

func (d *DiscountInput) ToDiscount() discount.Discount {
	if d == nil {
		return discount.Discount{}
	}
	return discount.Discount{Type: d.Type, Value: d.Value}
}

// QuoteRequest asks for a priced quote over a set of placements. It carries
// everything the quote builder edits reactively: duration, category,
// optional manual base total, discount and installment count.
type QuoteRequest struct {
	Placements       []PlacementInput       `json:"placements" validate:"required,min=1,dive"`
	CustomerCategory types.CustomerCategory `json:"customer_category" validate:"required"`
	Duration         types.RentalDuration   `json:"duration"`
	ManualBaseTotal  *decimal.Decimal       `json:"manual_base_total,omitempty"`
	Discount         *DiscountInput         `json:"discount,omitempty"`
	InstallmentCount int                    `json:"installment_count"`

	// StartDate anchors installment due dates; when zero the schedule is
	// returned without due dates.
	StartDate time.Time `json:"start_date,omitempty"`
}

func (r QuoteRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if r.ManualBaseTotal != nil && types.ExceedsMaxBillingAmount(*r.ManualBaseTotal) {
		return ierr.NewError("base total too large").
			WithHint("Manual base total exceeds the maximum billing amount").
			Mark(ierr.ErrValidation)
	}
	return r.Duration.Validate()
}

func (r QuoteRequest) ToPlacements() []placement.Placement {
	placements := make([]placement.Placement, len(r.Placements))
	for i, p := range r.Placements {
		placements[i] = p.ToPlacement()
	}
	return placements
}

func (r QuoteRequest) PlacementSizes() []string {
	seen := make(map[string]struct{}, len(r.Placements))
	sizes := make([]string, 0, len(r.Placements))
	for _, p := range r.Placements {
		if _, ok := seen[p.Size]; ok {
			continue
		}
		seen[p.Size] = struct{}{}
		sizes = append(sizes, p.Size)
	}
	return sizes
}

// QuoteResponse is a fully costed quote: per-placement lines, the estimated
// and effective base totals, the discount application and the installment
// schedule.
type QuoteResponse struct {
	Lines          []costing.CostLine        `json:"lines"`
	EstimatedTotal decimal.Decimal           `json:"estimated_total"`
	BaseTotal      decimal.Decimal           `json:"base_total"`
	DiscountAmount decimal.Decimal           `json:"discount_amount"`
	FinalTotal     decimal.Decimal           `json:"final_total"`
	Installments   []installment.Installment `json:"installments"`
}
