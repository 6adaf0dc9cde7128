package types

// DiscountType represents the type of discount (fixed or percentage)
type DiscountType string

const (
	// DiscountTypeFixed represents a fixed amount discount
	DiscountTypeFixed DiscountType = "fixed"
	// DiscountTypePercentage represents a percentage-based discount
	DiscountTypePercentage DiscountType = "percentage"
)

func (t DiscountType) String() string {
	return string(t)
}
