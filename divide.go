// Copyright 2020 Aleksandr Demakin. All rights reserved.

package steppable

import "github.com/avdva/steppable/internal/mathutil"

var (
	// DefaultMaxSteps limits the number of steps of a long division, a power or a factorial.
	// It also limits the precision of a rescaled number.
	// It bounds the number of steps, not memory: power and factorial traces keep every
	// intermediate multiplication, so their size grows faster than the number of steps.
	// This variable is not thread-safe, so this should be changed on program start.
	DefaultMaxSteps = 100000
)

// DivideOptions tunes a long division.
type DivideOptions struct {
	// MaxSteps is the maximum number of digits brought down. Zero means DefaultMaxSteps.
	MaxSteps int
}

func (opts DivideOptions) maxSteps() int {
	if opts.MaxSteps > 0 {
		return opts.MaxSteps
	}
	return DefaultMaxSteps
}

// QuotientRemainder is a result of a division with remainder.
type QuotientRemainder struct {
	Quotient, Remainder Number
}

// DivisionStep is one digit of a long division.
type DivisionStep struct {
	// Index is the position of the brought down digit in DivideTrace.Dividend.
	Index int
	// Working is the partial dividend after bringing the digit down.
	Working       []byte
	QuotientDigit byte
	// Product is QuotientDigit * Divisor.
	Product []byte
	// Remainder is Working - Product.
	Remainder []byte
}

// DivideTrace records a long division.
type DivideTrace struct {
	A, B      Number
	Precision int
	// Shift is the number of places both operands were moved to the left
	// to make the divisor an integer.
	Shift int
	// Dividend holds the digits of the shifted |A|, with the fractional part cut or padded to Precision.
	Dividend []byte
	// IntegerWidth is the number of integer digits in Dividend.
	IntegerWidth int
	// Divisor holds the digits of the shifted |B|.
	Divisor  []byte
	Negative bool
	// Steps has one element per brought down digit. It may be shorter than Dividend,
	// if the remainder became zero and only zeros were left to bring down.
	Steps     []DivisionStep
	Quotient  Number
	Remainder Number
}

// Divide returns a/b with prec fractional digits.
// The quotient is truncated toward zero and padded with zeros up to prec digits.
func Divide(a, b Number, prec int) (Number, *DivideTrace, error) {
	qr, tr, err := DivideWithOptions(a, b, prec, DivideOptions{})
	return qr.Quotient, tr, err
}

// DivideWithRemainder returns a/b with prec fractional digits and the remainder r,
// such as a == q*b + r. The remainder has the sign of a.
func DivideWithRemainder(a, b Number, prec int) (QuotientRemainder, *DivideTrace, error) {
	return DivideWithOptions(a, b, prec, DivideOptions{})
}

// DivideWithOptions is like DivideWithRemainder, but allows to override the step limit.
func DivideWithOptions(a, b Number, prec int, opts DivideOptions) (QuotientRemainder, *DivideTrace, error) {
	if b.IsZero() {
		return QuotientRemainder{}, nil, ErrDivisionByZero
	}
	if prec < 0 {
		return QuotientRemainder{}, nil, invalidArgf("negative precision %d", prec)
	}
	tr := &DivideTrace{
		A:         a,
		B:         b,
		Precision: prec,
		Shift:     len(b.fraction),
		Negative:  a.neg != b.neg,
	}
	tr.Divisor = mathutil.RemoveLeadingZeros(b.digits(0))
	integer, fraction := a.shift(tr.Shift)
	tr.IntegerWidth = len(integer)
	maxSteps := opts.maxSteps()
	// the padded dividend has IntegerWidth+prec digits.
	if prec > maxSteps-tr.IntegerWidth {
		return QuotientRemainder{}, nil, ErrStepLimit
	}
	if len(fraction) > prec {
		fraction = fraction[:prec]
	}
	tr.Dividend = mathutil.Concat(integer, mathutil.PadRight(fraction, prec))
	if err := tr.longDivision(maxSteps); err != nil {
		return QuotientRemainder{}, nil, err
	}
	quotient := mathutil.PadRight(tr.quotientDigits(), len(tr.Dividend))
	tr.Quotient = newNumber(tr.Negative, quotient[:tr.IntegerWidth], quotient[tr.IntegerWidth:], prec)
	product, _ := Multiply(tr.Quotient, b)
	tr.Remainder, _ = Subtract(a, product)
	return QuotientRemainder{Quotient: tr.Quotient, Remainder: tr.Remainder}, tr, nil
}

// longDivision brings the digits of the dividend down one by one.
func (tr *DivideTrace) longDivision(maxSteps int) error {
	var working []byte
	for i, d := range tr.Dividend {
		if i == maxSteps {
			return ErrStepLimit
		}
		working = mathutil.RemoveLeadingZeros(append(working, d))
		step := DivisionStep{Index: i, Working: working}
		for step.QuotientDigit < 9 && mathutil.Cmp(mathutil.MulDigit(tr.Divisor, step.QuotientDigit+1), working) <= 0 {
			step.QuotientDigit++
		}
		step.Product = mathutil.MulDigit(tr.Divisor, step.QuotientDigit)
		step.Remainder = mathutil.Sub(working, step.Product)
		tr.Steps = append(tr.Steps, step)
		working = step.Remainder
		if mathutil.IsZero(working) && mathutil.IsZero(tr.Dividend[i+1:]) {
			break
		}
	}
	return nil
}

func (tr *DivideTrace) quotientDigits() []byte {
	digits := make([]byte, len(tr.Steps))
	for i, step := range tr.Steps {
		digits[i] = step.QuotientDigit
	}
	return digits
}

// shift returns the digits of |n|*10^places split into integer and fraction parts.
func (n Number) shift(places int) (integer, fraction []byte) {
	if places <= len(n.fraction) {
		integer = mathutil.Concat(n.intDigits(), n.fraction[:places])
		fraction = mathutil.PadLeft(n.fraction[places:], 0)
	} else {
		integer = mathutil.Concat(n.intDigits(), mathutil.PadRight(n.fraction, places))
	}
	return mathutil.RemoveLeadingZeros(integer), fraction
}
