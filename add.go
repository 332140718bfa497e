// Copyright 2020 Aleksandr Demakin. All rights reserved.

package steppable

import "github.com/avdva/steppable/internal/mathutil"

// AddColumn is a single column of a columnar addition.
type AddColumn struct {
	// Index is the column position, counted from the rightmost aligned digit.
	Index    int
	A, B     byte
	CarryIn  byte
	Digit    byte
	CarryOut byte
}

// AddTrace records an addition.
type AddTrace struct {
	A, B Number
	// Subtraction is set if the operands have different signs.
	// In this case the sum is a difference of magnitudes, and the other fields except Result are empty.
	Subtraction *SubtractTrace
	// ADigits and BDigits are the aligned magnitudes without the decimal point.
	ADigits, BDigits []byte
	// FractionWidth is the count of fractional digits in ADigits and BDigits.
	FractionWidth int
	Negative      bool
	// Columns are ordered from the least significant digit.
	// The carry out of the last column becomes the leading digit of the sum.
	Columns []AddColumn
	Result  Number
}

// Add returns a+b.
// The precision of the result is the maximum of the operands' precisions.
func Add(a, b Number) (Number, *AddTrace) {
	tr := &AddTrace{A: a, B: b}
	if a.neg != b.neg {
		// a+(-b) = a-b, -a+b = b-a.
		if a.neg {
			tr.Result, tr.Subtraction = Subtract(b, a.Abs())
		} else {
			tr.Result, tr.Subtraction = Subtract(a, b.Abs())
		}
		return tr.Result, tr
	}
	// a+b, or -a+(-b) = -(a+b).
	tr.ADigits, tr.BDigits, tr.FractionWidth = alignDigits(a, b)
	tr.Negative = a.neg
	var sum []byte
	sum, tr.Columns = addColumns(tr.ADigits, tr.BDigits)
	tr.Result = fromDigits(tr.Negative, sum, tr.FractionWidth, max(a.prec, b.prec))
	return tr.Result, tr
}

// addColumns adds two digit sequences of equal length.
// The sum is one digit longer than the operands.
func addColumns(a, b []byte) (sum []byte, columns []AddColumn) {
	sum = make([]byte, len(a)+1)
	columns = make([]AddColumn, 0, len(a))
	var carry byte
	for i := len(a) - 1; i >= 0; i-- {
		s := a[i] + b[i] + carry
		col := AddColumn{Index: len(a) - 1 - i, A: a[i], B: b[i], CarryIn: carry, Digit: s % 10, CarryOut: s / 10}
		columns = append(columns, col)
		sum[i+1] = col.Digit
		carry = col.CarryOut
	}
	sum[0] = carry
	return sum, columns
}

// alignDigits returns the magnitudes of a and b with equal integer and fraction widths.
func alignDigits(a, b Number) (ad, bd []byte, fw int) {
	ai, af, bi, bf := mathutil.Align(a.intDigits(), a.fraction, b.intDigits(), b.fraction)
	return mathutil.Concat(ai, af), mathutil.Concat(bi, bf), len(af)
}
