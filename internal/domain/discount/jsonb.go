package discount

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// JSONBDiscount persists a contract's discount as a jsonb column. Embedding
// keeps the Valuer method from colliding with the promoted Value field.
type JSONBDiscount struct {
	Discount
}

func (j *JSONBDiscount) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("invalid type for jsonb discount")
	}
	return json.Unmarshal(bytes, j)
}

func (j JSONBDiscount) Value() (driver.Value, error) {
	if j == (JSONBDiscount{}) {
		return nil, nil
	}
	return json.Marshal(j)
}
