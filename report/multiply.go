// Copyright 2020 Aleksandr Demakin. All rights reserved.

package report

import (
	"strconv"

	"github.com/avdva/steppable"
)

// Multiply renders a long multiplication: operands, one partial product per digit
// of the multiplier with its carries, and the column sum of partial products.
// Options.Limit applies to partial products.
func Multiply(t *steppable.MultiplyTrace, opts Options) string {
	if t == nil {
		return ""
	}
	var l lines
	equation := t.A.String() + " " + times + " " + operand(t.B) + " = " + t.Result.String()
	if opts.Verbosity != Detailed {
		return conclude(&l, opts, equation, t.Result.String())
	}
	// one cell for the sign, the rest for the digits of the product.
	width := len(t.ADigits) + len(t.BDigits) + 1
	a, b := newRow(width), newRow(width).prefixed(times)
	a.digits(t.ADigits, 0, width)
	b.digits(t.BDigits, 0, width)
	l.add(a.String())
	l.add(b.String())
	l.add(ruler(width))
	steps(&l, len(t.Rows), opts.Limit, func(i int) {
		pp := t.Rows[i]
		end := width - pp.Shift
		carries, digits := newRow(width), newRow(width)
		for j, c := range pp.Carries {
			if c > 0 {
				carries.set(end-len(pp.Carries)+j, subscript(strconv.Itoa(int(c))))
			}
		}
		digits.digits(trimZeros(pp.Digits), 0, end)
		l.add(carries.String())
		l.add(digits.String())
	})
	if len(t.Rows) > 1 {
		l.add(ruler(width))
		carries, product := newRow(width), newRow(width)
		sum := make([]byte, len(t.Columns))
		for _, col := range t.Columns {
			if col.CarryIn > 0 {
				carries.set(width-1-col.Index, subscript(strconv.Itoa(col.CarryIn)))
			}
			sum[len(sum)-1-col.Index] = col.Digit
		}
		product.digits(trimZeros(sum), 0, width)
		l.add(carries.String())
		l.add(product.String())
	}
	if t.FractionWidth > 0 {
		l.add(because + " " + strconv.Itoa(t.FractionWidth) + " decimal places")
	}
	return conclude(&l, opts, equation, t.Result.String())
}

// trimZeros drops leading zeros keeping at least one digit.
func trimZeros(digits []byte) []byte {
	i := 0
	for i < len(digits)-1 && digits[i] == 0 {
		i++
	}
	return digits[i:]
}
