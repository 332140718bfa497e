// Copyright 2020 Aleksandr Demakin. All rights reserved.

package steppable

import "github.com/avdva/steppable/internal/mathutil"

// SubtractColumn is a single column of a columnar subtraction.
type SubtractColumn struct {
	// Index is the column position, counted from the rightmost aligned digit.
	Index int
	// A is the minuend digit before lending, B is the subtrahend digit.
	A, B byte
	// BorrowIn is 1 if the column to the right borrowed from this one.
	BorrowIn byte
	Digit    byte
	// BorrowOut is 1 if this column borrowed 10 from the column to the left.
	BorrowOut byte
}

// SubtractTrace records a subtraction.
type SubtractTrace struct {
	A, B Number
	// Addition is set if the operands have different signs.
	// In this case the difference is a sum of magnitudes, and the other fields except Result are empty.
	Addition *AddTrace
	// Minuend and Subtrahend are the aligned magnitudes without the decimal point,
	// the minuend is never less than the subtrahend.
	Minuend, Subtrahend []byte
	FractionWidth       int
	// Swapped is true if |A| < |B|, so that |B|-|A| was calculated.
	Swapped  bool
	Negative bool
	// Columns are ordered from the least significant digit.
	Columns []SubtractColumn
	Result  Number
}

// Subtract returns a-b.
// The precision of the result is the maximum of the operands' precisions.
func Subtract(a, b Number) (Number, *SubtractTrace) {
	tr := &SubtractTrace{A: a, B: b}
	if a.neg != b.neg {
		// a-(-b) = a+b, -a-b = -(a+b).
		tr.Result, tr.Addition = Add(a, b.Neg())
		return tr.Result, tr
	}
	ad, bd, fw := alignDigits(a, b)
	tr.FractionWidth = fw
	if mathutil.Cmp(ad, bd) < 0 {
		// a-b = -(b-a).
		tr.Swapped = true
		ad, bd = bd, ad
	}
	tr.Minuend, tr.Subtrahend = ad, bd
	tr.Negative = a.neg != tr.Swapped
	var diff []byte
	diff, tr.Columns = subtractColumns(ad, bd)
	tr.Result = fromDigits(tr.Negative, diff, fw, max(a.prec, b.prec))
	return tr.Result, tr
}

// subtractColumns calculates a-b for two digit sequences of equal length, where a >= b.
func subtractColumns(a, b []byte) (diff []byte, columns []SubtractColumn) {
	diff = make([]byte, len(a))
	columns = make([]SubtractColumn, 0, len(a))
	var borrow byte
	for i := len(a) - 1; i >= 0; i-- {
		col := SubtractColumn{Index: len(a) - 1 - i, A: a[i], B: b[i], BorrowIn: borrow}
		d := int(a[i]) - int(borrow) - int(b[i])
		if d < 0 {
			d += 10
			col.BorrowOut = 1
		}
		col.Digit = byte(d)
		columns = append(columns, col)
		diff[i] = col.Digit
		borrow = col.BorrowOut
	}
	return diff, columns
}
