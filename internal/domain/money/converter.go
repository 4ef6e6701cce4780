package money

import (
	"fmt"
	"math"

	"github.com/minibank-ledger/internal/domain/shared"
)

// Converter turns a decimal currency amount into an integer minor-unit value
type Converter interface {
	// ToMinorUnits converts a decimal amount to minor units, failing with
	// ErrInvalidAmount when the result rounds to zero
	ToMinorUnits(value float64) (int64, error)
}

// MinorUnitConverter converts amounts for a currency with 100 minor units
// per major unit, rounding to the nearest minor unit.
type MinorUnitConverter struct{}

// NewMinorUnitConverter creates a new minor-unit converter
func NewMinorUnitConverter() MinorUnitConverter {
	return MinorUnitConverter{}
}

// ToMinorUnits multiplies by 100 and rounds to the nearest integer. Zero
// results are rejected; this covers zero input as well as sub-minor-unit
// values such as 0.004. Negative values pass through here and are rejected
// by the operation-specific validation downstream.
func (MinorUnitConverter) ToMinorUnits(value float64) (int64, error) {
	minor := int64(math.Round(value * 100))
	if minor == 0 {
		return 0, shared.ErrInvalidAmount
	}
	return minor, nil
}

// Format renders a minor-unit value as a decimal string, e.g. 150000 becomes
// "1500.00" and -42 becomes "-0.42".
func Format(minorUnits int64) string {
	sign := ""
	if minorUnits < 0 {
		sign = "-"
		minorUnits = -minorUnits
	}
	return fmt.Sprintf("%s%d.%02d", sign, minorUnits/100, minorUnits%100)
}
