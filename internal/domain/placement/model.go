package placement

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	ierr "github.com/adspacehq/adspace/internal/errors"
)

// Placement is one leased billboard face on a quote or contract, already
// resolved from inventory by the caller. FallbackMonthlyPrice is the
// per-board monthly price the inventory record carries; it is used only when
// no rate table entry resolves for the board's size and level.
type Placement struct {
	ID                   string          `db:"id" json:"id"`
	Size                 string          `db:"size" json:"size"`
	Level                string          `db:"level" json:"level"`
	FallbackMonthlyPrice decimal.Decimal `db:"fallback_monthly_price" json:"fallback_monthly_price"`
}

func (p Placement) Validate() error {
	if p.ID == "" {
		return ierr.NewError("placement id is required").
			WithHint("Each placement must reference an inventory record").
			Mark(ierr.ErrValidation)
	}
	if p.FallbackMonthlyPrice.LessThan(decimal.Zero) {
		return ierr.NewError("negative fallback price").
			WithHintf("Placement %s has a negative fallback monthly price", p.ID).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// JSONBPlacements persists a contract's placements as a jsonb column.
type JSONBPlacements []Placement

func (j *JSONBPlacements) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("invalid type for jsonb placements")
	}
	return json.Unmarshal(bytes, j)
}

func (j JSONBPlacements) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}
