package types

// CustomerCategory identifies the pricing category a customer belongs to.
// The set is administrable in practice, so it is treated as an opaque lookup
// key rather than a closed enum; the constants below are the categories the
// reference rate table ships with.
type CustomerCategory string

const (
	CustomerCategoryStandard  CustomerCategory = "standard"
	CustomerCategoryCorporate CustomerCategory = "corporate"
	CustomerCategoryMarketer  CustomerCategory = "marketer"
	CustomerCategoryMunicipal CustomerCategory = "municipal"
)

func (c CustomerCategory) String() string {
	return string(c)
}
