package entities

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Money is a monetary amount in integer paise (minor units).
//
// Charges are only ever summed and compared in this representation; rupee
// floats coming from HTTP payloads or collaborator responses are converted
// exactly once at the boundary via MoneyFromRupees and never accumulated in
// floating form.
type Money int64

// MoneyFromRupees converts a rupee amount to paise, rounding half-up to the
// nearest paisa.
func MoneyFromRupees(v float64) Money {
	return Money(decimal.NewFromFloat(v).Mul(decimal.NewFromInt(100)).Round(0).IntPart())
}

// Rupees returns the amount as a rupee float for display payloads.
func (m Money) Rupees() float64 {
	f, _ := decimal.New(int64(m), -2).Float64()
	return f
}

// Abs returns the magnitude of the amount.
func (m Money) Abs() Money {
	if m < 0 {
		return -m
	}
	return m
}

func (m Money) String() string {
	return fmt.Sprintf("%.2f", m.Rupees())
}
