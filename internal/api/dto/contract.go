package dto

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/adspacehq/adspace/internal/domain/contract"
	"github.com/adspacehq/adspace/internal/domain/discount"
	"github.com/adspacehq/adspace/internal/types"
	"github.com/adspacehq/adspace/internal/validator"
)

type CreateContractRequest struct {
	CustomerName     string                 `json:"customer_name" validate:"required"`
	CustomerCategory types.CustomerCategory `json:"customer_category" validate:"required"`
	StartDate        time.Time              `json:"start_date" validate:"required"`
	EndDate          time.Time              `json:"end_date" validate:"required"`
	Placements       []PlacementInput       `json:"placements" validate:"required,min=1,dive"`
	Duration         types.RentalDuration   `json:"duration"`
	ManualBaseTotal  *decimal.Decimal       `json:"manual_base_total,omitempty"`
	Discount         *DiscountInput         `json:"discount,omitempty"`
	InstallmentCount int                    `json:"installment_count"`
}

func (r CreateContractRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	return r.Duration.Validate()
}

// ToContract builds the uncosted contract record; the contract service fills
// in totals and the installment schedule before persisting.
func (r CreateContractRequest) ToContract(ctx context.Context) *contract.Contract {
	c := &contract.Contract{
		ID:               types.GenerateUUIDWithPrefix(types.UUID_PREFIX_CONTRACT),
		ContractNumber:   types.GenerateShortIDWithPrefix(types.SHORT_ID_PREFIX_CONTRACT_NUMBER),
		CustomerName:     r.CustomerName,
		CustomerCategory: r.CustomerCategory,
		StartDate:        r.StartDate,
		EndDate:          r.EndDate,
		ManualBaseTotal:  r.ManualBaseTotal,
		BaseModel:        types.GetDefaultBaseModel(ctx),
	}
	for _, p := range r.Placements {
		c.Placements = append(c.Placements, p.ToPlacement())
	}
	if r.Discount != nil {
		c.Discount = discount.JSONBDiscount{Discount: r.Discount.ToDiscount()}
	}
	return c
}

type ContractResponse struct {
	*contract.Contract
}

type ListContractsResponse struct {
	Items []*ContractResponse `json:"items"`
	Total int                 `json:"total"`
}

// SettlementRequest asks what is owed on a contract terminated early.
type SettlementRequest struct {
	AsOf time.Time `json:"as_of"`
}

type SettlementResponse struct {
	ContractID   string          `json:"contract_id"`
	ConsumedDays int             `json:"consumed_days"`
	TotalDays    int             `json:"total_days"`
	AmountDue    decimal.Decimal `json:"amount_due"`
	FinalTotal   decimal.Decimal `json:"final_total"`
}
