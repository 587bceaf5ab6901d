// Package entity contains the core business objects of the project.
package entity

import (
	"encoding/json"
	"math"
	"strings"

	domainerrors "scout/internal/domain/errors"

	"github.com/shopspring/decimal"
)

// MinorUnitScale is the number of minor units in one major currency unit.
const MinorUnitScale = 100

const minorUnitExponent = 2

var maxAmountUnits = decimal.NewFromInt(math.MaxInt64)

// Amount is a non-negative count of minor currency units. The zero value is
// a valid zero amount. Arithmetic never mutates the receiver.
type Amount struct {
	units int64
}

// NewAmount validates units and wraps them as an Amount.
func NewAmount(units int64) (Amount, error) {
	if units < 0 {
		return Amount{}, domainerrors.NewValidationError("amount", "must not be negative")
	}

	return Amount{units: units}, nil
}

// MustAmount is NewAmount for compile-time constants and tests. It panics on
// a negative value.
func MustAmount(units int64) Amount {
	a, err := NewAmount(units)
	if err != nil {
		panic(err)
	}

	return a
}

// AmountFromMajorUnits rounds value to the nearest minor unit, half away
// from zero, and validates the result.
func AmountFromMajorUnits(value float64) (Amount, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Amount{}, domainerrors.NewValidationError("amount", "must be a finite number")
	}

	return amountFromDecimal(decimal.NewFromFloat(value))
}

// ParseAmount parses a decimal major-unit string such as "25.50".
func ParseAmount(s string) (Amount, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Amount{}, domainerrors.NewValidationError("amount", "not a decimal number")
	}

	return amountFromDecimal(d)
}

func amountFromDecimal(d decimal.Decimal) (Amount, error) {
	minor := d.Shift(minorUnitExponent).Round(0)
	if minor.IsNegative() {
		return Amount{}, domainerrors.NewValidationError("amount", "must not be negative")
	}

	if minor.GreaterThan(maxAmountUnits) {
		return Amount{}, domainerrors.NewValidationError("amount", "out of range")
	}

	return Amount{units: minor.IntPart()}, nil
}

// Add returns the sum of both amounts.
func (a Amount) Add(other Amount) (Amount, error) {
	if a.units > math.MaxInt64-other.units {
		return Amount{}, domainerrors.NewValidationError("amount", "out of range")
	}

	return Amount{units: a.units + other.units}, nil
}

// Subtract returns a minus other, failing with an insufficient balance error
// when the result would be negative.
func (a Amount) Subtract(other Amount) (Amount, error) {
	if other.units > a.units {
		return Amount{}, domainerrors.NewInsufficientBalanceError(other.units, a.units)
	}

	return Amount{units: a.units - other.units}, nil
}

// Mul returns the amount multiplied by a non-negative count.
func (a Amount) Mul(n int) (Amount, error) {
	if n < 0 {
		return Amount{}, domainerrors.NewValidationError("count", "must not be negative")
	}

	if n != 0 && a.units > math.MaxInt64/int64(n) {
		return Amount{}, domainerrors.NewValidationError("amount", "out of range")
	}

	return Amount{units: a.units * int64(n)}, nil
}

// IsAtLeast reports whether a >= other.
func (a Amount) IsAtLeast(other Amount) bool {
	return a.units >= other.units
}

// IsZero reports whether the amount is zero.
func (a Amount) IsZero() bool {
	return a.units == 0
}

// IsPositive reports whether the amount is greater than zero.
func (a Amount) IsPositive() bool {
	return a.units > 0
}

// Units returns the raw minor-unit count.
func (a Amount) Units() int64 {
	return a.units
}

// Equal reports whether both amounts hold the same number of minor units.
func (a Amount) Equal(other Amount) bool {
	return a.units == other.units
}

// String formats the amount in major units with two decimals, e.g. "94.00".
func (a Amount) String() string {
	return decimal.New(a.units, -minorUnitExponent).StringFixed(minorUnitExponent)
}

// MarshalJSON encodes the amount as an integer count of minor units.
func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.units)
}

// UnmarshalJSON decodes an integer count of minor units and validates it.
func (a *Amount) UnmarshalJSON(data []byte) error {
	var units int64
	if err := json.Unmarshal(data, &units); err != nil {
		return domainerrors.NewValidationError("amount", "must be an integer count of minor units")
	}

	parsed, err := NewAmount(units)
	if err != nil {
		return err
	}

	*a = parsed

	return nil
}
