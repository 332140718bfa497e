// Copyright 2020 Aleksandr Demakin. All rights reserved.

package report

import (
	"github.com/avdva/steppable"
)

// Add renders an addition in columns: the aligned operands, the carries written
// as subscripts in the cells of the digits they are added to, and the sum under a ruler.
func Add(t *steppable.AddTrace, opts Options) string {
	if t == nil {
		return ""
	}
	var l lines
	equation := t.A.String() + " + " + operand(t.B) + " = " + t.Result.String()
	if opts.Verbosity != Detailed {
		return conclude(&l, opts, equation, t.Result.String())
	}
	if t.Subtraction != nil {
		l.add(because + " " + t.A.String() + " + " + operand(t.B) + " = " +
			t.Subtraction.A.String() + " - " + operand(t.Subtraction.B))
		l.add(Subtract(t.Subtraction, opts))
		return conclude(&l, opts, equation, t.Result.String())
	}
	width := layoutWidth(len(t.ADigits)+1, t.FractionWidth)
	a, b := newRow(width), newRow(width).prefixed("+")
	a.digits(t.ADigits, t.FractionWidth, width)
	b.digits(t.BDigits, t.FractionWidth, width)
	carries := newRow(width)
	sum := make([]byte, len(t.Columns)+1)
	for _, col := range t.Columns {
		if col.CarryOut > 0 {
			carries.set(columnCell(col.Index+1, t.FractionWidth, width), subscript("1"))
		}
		sum[len(sum)-1-col.Index] = col.Digit
	}
	if n := len(t.Columns); n > 0 && t.Columns[n-1].CarryOut > 0 {
		sum[0] = t.Columns[n-1].CarryOut
	} else {
		sum = sum[1:]
	}
	total := newRow(width)
	total.digits(sum, t.FractionWidth, width)
	l.add(a.String())
	l.add(b.String())
	l.add(carries.String())
	l.add(ruler(width))
	l.add(total.String())
	return conclude(&l, opts, equation, t.Result.String())
}

// columnCell returns the cell of a column counted from the right in a row of the given width.
func columnCell(col, fw, width int) int {
	cell := width - 1 - col
	if fw > 0 && col >= fw {
		cell--
	}
	return cell
}
