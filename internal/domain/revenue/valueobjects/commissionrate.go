package valueobjects

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// CommissionRate is a percentage in [0, 100] fixed at revenue creation.
type CommissionRate struct {
	value decimal.Decimal
}

func NewCommissionRate(value decimal.Decimal) (CommissionRate, error) {
	if value.IsNegative() {
		return CommissionRate{}, fmt.Errorf("commission rate cannot be negative")
	}
	if value.GreaterThan(hundred) {
		return CommissionRate{}, fmt.Errorf("commission rate cannot exceed 100")
	}
	return CommissionRate{value: value}, nil
}

func (r CommissionRate) Value() decimal.Decimal {
	return r.value
}

func (r CommissionRate) String() string {
	return r.value.String()
}

// ApplyTo computes the commission payout for the given revenue amount,
// rounded half-up to 2 decimal places.
func (r CommissionRate) ApplyTo(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(r.value).Div(hundred).Round(2)
}
