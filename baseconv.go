// Copyright 2020 Aleksandr Demakin. All rights reserved.

package steppable

import (
	"fmt"
	"strings"
)

const (
	// MinBase and MaxBase are the bounds of supported bases.
	MinBase = 2
	MaxBase = 36

	baseDigits = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// BaseConvertStep is one division of a base conversion.
type BaseConvertStep struct {
	Dividend Number
	Division QuotientRemainder
	// Digit is the remainder, which becomes a digit of the result.
	Digit byte
}

// BaseConvertTrace records a conversion of a decimal integer into another base.
type BaseConvertTrace struct {
	N    Number
	Base int
	// Negative is true if N is negative. The conversion is done for |N|.
	Negative bool
	// Steps are ordered from the least significant digit of the result.
	Steps []BaseConvertStep
	// Digits are the digits of |N| in the base, most significant first.
	Digits []byte
}

// BaseConvert converts the integer n into the given base by repeated division.
// Digits of the result are values in [0, base), most significant first.
// Use FormatDigits to get a string.
func BaseConvert(n Number, base int) ([]byte, *BaseConvertTrace, error) {
	if err := checkBase(base); err != nil {
		return nil, nil, err
	}
	if !n.IsInt() {
		return nil, nil, invalidArgf("%s is not an integer", n)
	}
	tr := &BaseConvertTrace{N: n, Base: base, Negative: n.neg}
	current := newNumber(false, n.IntegerDigits(), nil, 0)
	if current.IsZero() {
		tr.Digits = []byte{0}
		return tr.Digits, tr, nil
	}
	divisor := New(int64(base))
	for !current.IsZero() {
		if len(tr.Steps) == DefaultMaxSteps {
			return nil, nil, ErrStepLimit
		}
		qr, _, err := DivideWithRemainder(current, divisor, 0)
		if err != nil {
			return nil, nil, err
		}
		digit, _ := qr.Remainder.Uint64()
		tr.Steps = append(tr.Steps, BaseConvertStep{Dividend: current, Division: qr, Digit: byte(digit)})
		current = qr.Quotient
	}
	tr.Digits = make([]byte, len(tr.Steps))
	for i, step := range tr.Steps {
		tr.Digits[len(tr.Steps)-1-i] = step.Digit
	}
	return tr.Digits, tr, nil
}

// FormatDigits returns a string for digits in a base up to 36, using 0-9 and A-Z.
func FormatDigits(digits []byte) string {
	var builder strings.Builder
	builder.Grow(len(digits))
	for _, d := range digits {
		if int(d) < len(baseDigits) {
			builder.WriteByte(baseDigits[d])
		} else {
			builder.WriteByte('?')
		}
	}
	return builder.String()
}

// DecimalConvertStep is the contribution of one digit to a decimal conversion.
type DecimalConvertStep struct {
	// Index is the position of the digit counted from the right, starting with 0.
	Index int
	Digit byte
	// PlaceValue is base^Index.
	PlaceValue Number
	// Value is Digit*PlaceValue.
	Value Number
	// Total is the sum of the values of this and all the previous steps.
	Total Number
}

// DecimalConvertTrace records a conversion of a number written in some base into decimal.
type DecimalConvertTrace struct {
	Input    string
	Base     int
	Negative bool
	// Steps are ordered from the least significant digit.
	Steps  []DecimalConvertStep
	Result Number
}

// DecimalConvert converts an integer written in the given base into a decimal number.
// Digits above 9 are letters A-Z in any case. An optional sign is allowed.
func DecimalConvert(s string, base int) (Number, *DecimalConvertTrace, error) {
	if err := checkBase(base); err != nil {
		return Number{}, nil, err
	}
	prepared, offset, neg := prepareString(s)
	digits, err := parseBaseDigits(prepared, base)
	if err != nil {
		if pe, ok := err.(*ParseError); ok && pe.Pos > 0 {
			pe.Pos += offset
		}
		return Number{}, nil, err
	}
	if len(digits) > DefaultMaxSteps {
		return Number{}, nil, ErrStepLimit
	}
	tr := &DecimalConvertTrace{Input: s, Base: base, Negative: neg}
	b := New(int64(base))
	place, total := New(1), Number{}
	for i := range digits {
		step := DecimalConvertStep{Index: i, Digit: digits[len(digits)-1-i], PlaceValue: place}
		step.Value, _ = Multiply(place, New(int64(step.Digit)))
		total, _ = Add(total, step.Value)
		step.Total = total
		tr.Steps = append(tr.Steps, step)
		place, _ = Multiply(place, b)
	}
	if neg {
		total = total.Neg()
	}
	tr.Result = total
	return tr.Result, tr, nil
}

func parseBaseDigits(s string, base int) ([]byte, error) {
	if len(s) == 0 {
		return nil, newParseError("empty input", 0)
	}
	digits := make([]byte, 0, len(s))
	for i, r := range s {
		var d int
		switch {
		case '0' <= r && r <= '9':
			d = int(r - '0')
		case 'A' <= r && r <= 'Z':
			d = int(r-'A') + 10
		case 'a' <= r && r <= 'z':
			d = int(r-'a') + 10
		default:
			return nil, newParseError(fmt.Sprintf("unexpected symbol %q", r), i+1)
		}
		if d >= base {
			return nil, newParseError(fmt.Sprintf("digit %q is out of base %d", r, base), i+1)
		}
		digits = append(digits, byte(d))
	}
	return digits, nil
}

func checkBase(base int) error {
	if base < MinBase || base > MaxBase {
		return invalidArgf("base %d is out of range [%d, %d]", base, MinBase, MaxBase)
	}
	return nil
}
