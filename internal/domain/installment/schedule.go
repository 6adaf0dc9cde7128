package installment

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/adspacehq/adspace/internal/types"
)

const (
	// MinCount and MaxCount bound how many installments a total may be
	// split into. Requests outside the range are clamped, not rejected.
	MinCount = 1
	MaxCount = 6

	// MinCadenceMonths and MaxCadenceMonths bound the repayment interval
	// of a single installment.
	MinCadenceMonths = 1
	MaxCadenceMonths = 3
)

// Installment is one repayment of a contract's final total. CadenceMonths is
// the repayment interval and Months the nominal offset used for due-date
// computation; both are editable per installment by the surrounding
// application.
type Installment struct {
	Amount        decimal.Decimal `json:"amount"`
	CadenceMonths int             `json:"cadence_months"`
	Months        int             `json:"months"`
	DueDate       time.Time       `json:"due_date"`
}

// ClampCount clamps an installment count into the valid range.
func ClampCount(count int) int {
	if count < MinCount {
		return MinCount
	}
	if count > MaxCount {
		return MaxCount
	}
	return count
}

// ClampCadence clamps a per-installment cadence into the valid range.
func ClampCadence(months int) int {
	if months < MinCadenceMonths {
		return MinCadenceMonths
	}
	if months > MaxCadenceMonths {
		return MaxCadenceMonths
	}
	return months
}

// DistributeEvenly splits a final total into count installments at monthly
// cadence. Every installment but the last gets the total over count floored
// to the cent; the last absorbs the remainder, so the amounts always sum to
// the final total exactly and cumulative rounding drift cannot occur.
func DistributeEvenly(finalTotal decimal.Decimal, count int) []Installment {
	count = ClampCount(count)

	perInstallment := finalTotal.Div(decimal.NewFromInt(int64(count))).RoundFloor(types.MONEY_PRECISION)
	last := finalTotal.Sub(perInstallment.Mul(decimal.NewFromInt(int64(count - 1))))

	installments := make([]Installment, count)
	for i := range installments {
		amount := perInstallment
		if i == count-1 {
			amount = last
		}
		installments[i] = Installment{
			Amount:        amount,
			CadenceMonths: 1,
			Months:        1,
		}
	}

	return installments
}

// DueDateFor computes the due date of the installment at index. Monthly
// cadence advances by the cumulative sum of the Months offsets up to and
// including index; bimonthly and quarterly cadences advance by
// (index+1) x cadence instead, per installment rather than cumulative. The
// asymmetry mirrors how repayment plans are quoted and is deliberate.
func DueDateFor(startDate time.Time, installments []Installment, index int) time.Time {
	if len(installments) == 0 {
		return startDate
	}
	if index < 0 {
		index = 0
	}
	if index >= len(installments) {
		index = len(installments) - 1
	}

	cadence := ClampCadence(installments[index].CadenceMonths)
	if cadence > 1 {
		return types.AddClampedDate(startDate, 0, (index+1)*cadence, 0)
	}

	months := 0
	for i := 0; i <= index; i++ {
		months += installments[i].Months
	}
	return types.AddClampedDate(startDate, 0, months, 0)
}

// ScheduleDueDates fills in the due date of every installment from the
// contract start date.
func ScheduleDueDates(startDate time.Time, installments []Installment) []Installment {
	for i := range installments {
		installments[i].DueDate = DueDateFor(startDate, installments, i)
	}
	return installments
}

// JSONBInstallments persists a contract's installment schedule as jsonb.
type JSONBInstallments []Installment

func (j *JSONBInstallments) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("invalid type for jsonb installments")
	}
	return json.Unmarshal(bytes, j)
}

func (j JSONBInstallments) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}
