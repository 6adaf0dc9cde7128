package rate

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	ierr "github.com/adspacehq/adspace/internal/errors"
	"github.com/adspacehq/adspace/internal/types"
)

// JSONBPriceMap stores the per-tier unit prices of a rate entry. A nil value
// or an absent tier means "not stored", never zero.
type JSONBPriceMap map[types.DurationTier]*decimal.Decimal

// RateEntry is one row of a rate table: the unit prices for a billboard of a
// given size and level, for one customer category. At most one entry per
// (size, level, category) triple should exist in a source; duplicates are a
// data-quality problem upstream and resolution takes the first match.
type RateEntry struct {
	// ID uuid identifier for the rate entry
	ID string `db:"id" json:"id"`

	// Size is the billboard face dimensions, e.g. "12x4"
	Size string `db:"size" json:"size"`

	// Level is the placement quality grade, e.g. "A"
	Level string `db:"level" json:"level"`

	// Category is the customer category this entry prices for
	Category types.CustomerCategory `db:"category" json:"category"`

	// PricePerTier holds the unit price for each explicitly priced tier
	PricePerTier JSONBPriceMap `db:"price_per_tier,jsonb" json:"price_per_tier"`

	types.BaseModel
}

// PriceForTier returns the stored unit price for a tier. Absent and nil
// stored values both report not found.
func (e *RateEntry) PriceForTier(tier types.DurationTier) (decimal.Decimal, bool) {
	if e == nil || e.PricePerTier == nil {
		return decimal.Zero, false
	}
	price, ok := e.PricePerTier[tier]
	if !ok || price == nil {
		return decimal.Zero, false
	}
	return *price, true
}

func (e *RateEntry) Validate() error {
	if e.Size == "" || e.Level == "" || e.Category == "" {
		return ierr.NewError("incomplete rate entry key").
			WithHint("Size, level and category are required").
			WithReportableDetails(map[string]any{
				"size":     e.Size,
				"level":    e.Level,
				"category": e.Category,
			}).
			Mark(ierr.ErrValidation)
	}

	for tier, price := range e.PricePerTier {
		if err := tier.Validate(); err != nil {
			return err
		}
		if price != nil && price.LessThan(decimal.Zero) {
			return ierr.NewError("negative unit price").
				WithHintf("Unit price for tier %s cannot be negative", tier).
				Mark(ierr.ErrValidation)
		}
		if price != nil && types.ExceedsMaxBillingAmount(*price) {
			return ierr.NewError("unit price too large").
				WithHintf("Unit price for tier %s exceeds the maximum billing amount", tier).
				Mark(ierr.ErrValidation)
		}
	}

	return nil
}

// Scanner/Valuer implementations for JSONBPriceMap
func (j *JSONBPriceMap) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("invalid type for jsonb price map")
	}
	return json.Unmarshal(bytes, j)
}

func (j JSONBPriceMap) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}
