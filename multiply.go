// Copyright 2020 Aleksandr Demakin. All rights reserved.

package steppable

import "github.com/avdva/steppable/internal/mathutil"

// PartialProduct is a product of all the digits of A and one digit of B.
type PartialProduct struct {
	// Shift is the position of Multiplier in B counted from the right.
	// The row is shifted left by Shift places before summation.
	Shift      int
	Multiplier byte
	// Digits are one longer than A: Digits[0] holds the final carry, and may be 0.
	Digits []byte
	// Carries[i] is the carry added to Digits[i] from the position to the right.
	Carries []byte
}

// SumColumn is a single column of the summation of partial products.
type SumColumn struct {
	// Index is the column position counted from the right.
	Index int
	// Digits are the digits of the partial products in this column, in the order of Rows.
	Digits   []byte
	CarryIn  int
	Sum      int
	Digit    byte
	CarryOut int
}

// MultiplyTrace records a grade-school multiplication.
type MultiplyTrace struct {
	A, B Number
	// ADigits and BDigits are the magnitudes without the decimal point and leading zeros.
	ADigits, BDigits []byte
	// FractionWidth is the number of fractional digits of the product.
	FractionWidth int
	Negative      bool
	// Rows are ordered from the least significant digit of B.
	Rows []PartialProduct
	// Columns are ordered from the least significant digit.
	Columns []SumColumn
	Result  Number
}

// Multiply returns a*b.
// The precision of the result is the sum of the operands' precisions.
func Multiply(a, b Number) (Number, *MultiplyTrace) {
	tr := &MultiplyTrace{
		A:             a,
		B:             b,
		ADigits:       mathutil.RemoveLeadingZeros(a.digits(0)),
		BDigits:       mathutil.RemoveLeadingZeros(b.digits(0)),
		FractionWidth: len(a.fraction) + len(b.fraction),
		Negative:      a.neg != b.neg,
	}
	for i := len(tr.BDigits) - 1; i >= 0; i-- {
		tr.Rows = append(tr.Rows, partialProduct(tr.ADigits, tr.BDigits[i], len(tr.BDigits)-1-i))
	}
	product := tr.sumRows()
	tr.Result = fromDigits(tr.Negative, product, tr.FractionWidth, a.prec+b.prec)
	return tr.Result, tr
}

func partialProduct(a []byte, multiplier byte, shift int) PartialProduct {
	row := PartialProduct{
		Shift:      shift,
		Multiplier: multiplier,
		Digits:     make([]byte, len(a)+1),
		Carries:    make([]byte, len(a)+1),
	}
	var carry byte
	for i := len(a) - 1; i >= 0; i-- {
		row.Carries[i+1] = carry
		p := a[i]*multiplier + carry
		row.Digits[i+1] = p % 10
		carry = p / 10
	}
	row.Carries[0] = carry
	row.Digits[0] = carry
	return row
}

// sumRows adds the shifted partial products column by column.
func (tr *MultiplyTrace) sumRows() []byte {
	width := len(tr.ADigits) + len(tr.BDigits)
	product := make([]byte, width)
	var carry int
	for k := 0; k < width; k++ {
		col := SumColumn{Index: k, CarryIn: carry, Sum: carry}
		for _, row := range tr.Rows {
			pos := k - row.Shift
			if pos < 0 || pos >= len(row.Digits) {
				continue
			}
			d := row.Digits[len(row.Digits)-1-pos]
			col.Digits = append(col.Digits, d)
			col.Sum += int(d)
		}
		col.Digit = byte(col.Sum % 10)
		col.CarryOut = col.Sum / 10
		carry = col.CarryOut
		product[width-1-k] = col.Digit
		tr.Columns = append(tr.Columns, col)
	}
	return product
}
