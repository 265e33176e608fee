package kernel

import (
	"marketplace/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNegative is returned when constructing a Money from a negative amount
// in a context that requires a non-negative value.
var ErrMoneyIsNegative = errs.NewValueIsInvalidError("money amount must not be negative")

// Money is an immutable currency amount backed by a decimal representation.
// All financial arithmetic in the domain goes through Money so that totals
// never accumulate binary floating-point drift. The zero value is a valid
// zero amount.
//
// Example:
//
//	price, _ := kernel.NewMoneyFromString("300")
//	subtotal := price.Mul(2)           // 600
//	tax := subtotal.MulRate("0.08")    // 48
type Money struct {
	amount decimal.Decimal
}

// NewMoneyFromDecimal wraps a decimal value as a Money amount.
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{amount: d}
}

// NewMoneyFromString parses a decimal string such as "5.99" into a Money amount.
// Returns an error for malformed input.
func NewMoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money amount", err)
	}
	return Money{amount: d}, nil
}

// NewMoneyFromFloat converts a float into a Money amount.
// Intended for request boundaries where prices arrive as JSON numbers; the
// conversion goes through decimal.NewFromFloat, which renders the shortest
// representation that round-trips, so "5.99" stays 5.99.
func NewMoneyFromFloat(f float64) Money {
	return Money{amount: decimal.NewFromFloat(f)}
}

// ZeroMoney returns a zero currency amount.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Mul returns the amount multiplied by an integer quantity.
func (m Money) Mul(quantity int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity)))}
}

// MulRate returns the amount multiplied by an exact decimal rate such as "0.08".
// The rate string must be a valid decimal literal; MulRate panics otherwise,
// which is acceptable because rates are compile-time constants.
func (m Money) MulRate(rate string) Money {
	return Money{amount: m.amount.Mul(decimal.RequireFromString(rate))}
}

// GreaterThan reports whether m is strictly greater than other.
func (m Money) GreaterThan(other Money) bool {
	return m.amount.GreaterThan(other.amount)
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// IsEqual compares two amounts for numeric equality regardless of scale.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Decimal returns the underlying decimal value.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Float64 returns the amount as a float64 for response serialization.
// Only for presentation; domain math never goes through this.
func (m Money) Float64() float64 {
	f, _ := m.amount.Float64()
	return f
}

// String renders the amount with two decimal places, e.g. "59.99".
func (m Money) String() string {
	return m.amount.StringFixed(2)
}

// Validate checks the amount is not negative. Money has no constructor guard:
// the zero value is a legitimate zero amount.
func (m Money) Validate() error {
	if m.amount.IsNegative() {
		return ErrMoneyIsNegative
	}
	return nil
}
