package contract

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/adspacehq/adspace/internal/domain/placement"
)

func validContract() *Contract {
	return &Contract{
		ID:               "con_test",
		ContractNumber:   "CT-TEST01",
		CustomerName:     "Acme Outdoor",
		CustomerCategory: "standard",
		StartDate:        time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:          time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		Placements: placement.JSONBPlacements{
			{ID: "board_1", Size: "12x4", Level: "A"},
		},
	}
}

func TestContract_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Contract)
		wantErr bool
	}{
		{
			name:    "valid",
			mutate:  func(c *Contract) {},
			wantErr: false,
		},
		{
			name:    "missing_customer_name",
			mutate:  func(c *Contract) { c.CustomerName = "" },
			wantErr: true,
		},
		{
			name:    "missing_category",
			mutate:  func(c *Contract) { c.CustomerCategory = "" },
			wantErr: true,
		},
		{
			name:    "missing_dates",
			mutate:  func(c *Contract) { c.StartDate = time.Time{} },
			wantErr: true,
		},
		{
			name:    "end_before_start",
			mutate:  func(c *Contract) { c.EndDate = c.StartDate.AddDate(0, 0, -1) },
			wantErr: true,
		},
		{
			name:    "no_placements",
			mutate:  func(c *Contract) { c.Placements = nil },
			wantErr: true,
		},
		{
			name: "negative_manual_base_total",
			mutate: func(c *Contract) {
				neg := decimal.NewFromInt(-100)
				c.ManualBaseTotal = &neg
			},
			wantErr: true,
		},
		{
			name: "manual_base_total_above_billing_cap",
			mutate: func(c *Contract) {
				huge := decimal.RequireFromString("1000000000001")
				c.ManualBaseTotal = &huge
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validContract()
			tt.mutate(c)
			err := c.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestContract_Sizes(t *testing.T) {
	c := validContract()
	c.Placements = placement.JSONBPlacements{
		{ID: "board_1", Size: "12x4", Level: "A"},
		{ID: "board_2", Size: "8x3", Level: "B"},
		{ID: "board_3", Size: "12x4", Level: "B"},
	}

	assert.Equal(t, []string{"12x4", "8x3"}, c.Sizes())
}
