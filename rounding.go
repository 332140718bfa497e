// Copyright 2020 Aleksandr Demakin. All rights reserved.

package steppable

import "github.com/avdva/steppable/internal/mathutil"

// RoundingMode defines the precision of a result calculated from two numbers.
// The zero value is UseCurrentPrecision.
type RoundingMode uint8

const (
	// UseCurrentPrecision keeps the precision of the receiver.
	UseCurrentPrecision RoundingMode = iota
	// UseMaximumPrecision takes the larger of two precisions.
	UseMaximumPrecision
	// UseMinimumPrecision takes the smaller of two precisions.
	UseMinimumPrecision
	// UseOtherPrecision takes the precision of the other operand.
	UseOtherPrecision
	// DiscardAllDecimals drops all the fractional digits.
	DiscardAllDecimals
)

var roundingModeNames = [...]string{
	UseCurrentPrecision: "current",
	UseMaximumPrecision: "maximum",
	UseMinimumPrecision: "minimum",
	UseOtherPrecision:   "other",
	DiscardAllDecimals:  "discard",
}

func (m RoundingMode) String() string {
	if int(m) < len(roundingModeNames) {
		return roundingModeNames[m]
	}
	return "unknown"
}

// Precision returns the precision selected by the mode.
// Unknown modes keep the current precision.
func (m RoundingMode) Precision(current, other int) int {
	switch m {
	case UseMaximumPrecision:
		return max(current, other)
	case UseMinimumPrecision:
		return min(current, other)
	case UseOtherPrecision:
		return other
	case DiscardAllDecimals:
		return 0
	default:
		return current
	}
}

// Round changes the number of fractional digits of n according to the mode,
// where otherPrec is the precision of the other operand.
// Excess digits are truncated, no carry is ever performed. Missing digits are zeros.
func Round(n Number, mode RoundingMode, otherPrec int) (Number, error) {
	if mode > DiscardAllDecimals {
		return Number{}, invalidArgf("unknown rounding mode %d", mode)
	}
	if otherPrec < 0 {
		return Number{}, invalidArgf("negative precision %d", otherPrec)
	}
	return n.Rescale(mode.Precision(n.prec, otherPrec))
}

// Rescale returns n with exactly prec fractional digits.
// Excess digits are truncated, missing digits are zeros.
// A precision above DefaultMaxSteps is rejected with ErrStepLimit.
func (n Number) Rescale(prec int) (Number, error) {
	if prec < 0 {
		return Number{}, invalidArgf("negative precision %d", prec)
	}
	if prec > DefaultMaxSteps {
		return Number{}, ErrStepLimit
	}
	fraction := n.fraction
	if len(fraction) > prec {
		fraction = fraction[:prec]
	}
	return newNumber(n.neg, n.IntegerDigits(), mathutil.PadRight(fraction, prec), prec), nil
}

// Truncate drops the fractional part of n.
func (n Number) Truncate() Number {
	return newNumber(n.neg, n.IntegerDigits(), nil, 0)
}
