package dto

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/adspacehq/adspace/internal/domain/rate"
	"github.com/adspacehq/adspace/internal/types"
	"github.com/adspacehq/adspace/internal/validator"
)

type UpsertRateRequest struct {
	Size     string                 `json:"size" validate:"required"`
	Level    string                 `json:"level" validate:"required"`
	Category types.CustomerCategory `json:"category" validate:"required"`

	// Prices maps each explicitly priced tier to its unit price. Omitted
	// tiers stay unpriced.
	Prices map[types.DurationTier]*decimal.Decimal `json:"prices" validate:"required"`
}

func (r UpsertRateRequest) Validate() error {
	return validator.ValidateRequest(r)
}

func (r UpsertRateRequest) ToRateEntry(ctx context.Context) *rate.RateEntry {
	return &rate.RateEntry{
		ID:           types.GenerateUUIDWithPrefix(types.UUID_PREFIX_RATE_ENTRY),
		Size:         r.Size,
		Level:        r.Level,
		Category:     r.Category,
		PricePerTier: rate.JSONBPriceMap(r.Prices),
		BaseModel:    types.GetDefaultBaseModel(ctx),
	}
}

type RateResponse struct {
	*rate.RateEntry
}

type ListRatesResponse struct {
	Items []*RateResponse `json:"items"`
	Total int             `json:"total"`
}
