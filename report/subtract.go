// Copyright 2020 Aleksandr Demakin. All rights reserved.

package report

import (
	"github.com/avdva/steppable"
)

// Subtract renders a subtraction in columns. Digits, which lent 1 to the right column, are marked with ₁.
func Subtract(t *steppable.SubtractTrace, opts Options) string {
	if t == nil {
		return ""
	}
	var l lines
	equation := t.A.String() + " - " + operand(t.B) + " = " + t.Result.String()
	if opts.Verbosity != Detailed {
		return conclude(&l, opts, equation, t.Result.String())
	}
	if t.Addition != nil {
		l.add(because + " " + t.A.String() + " - " + operand(t.B) + " = " +
			t.Addition.A.String() + " + " + operand(t.Addition.B))
		l.add(Add(t.Addition, opts))
		return conclude(&l, opts, equation, t.Result.String())
	}
	if t.Swapped {
		l.add(because + " |" + t.A.String() + "| < |" + t.B.String() + "|, the difference is negated")
	}
	width := layoutWidth(len(t.Minuend), t.FractionWidth)
	borrows, a, b := newRow(width), newRow(width), newRow(width).prefixed("-")
	a.digits(t.Minuend, t.FractionWidth, width)
	b.digits(t.Subtrahend, t.FractionWidth, width)
	diff := make([]byte, len(t.Columns))
	for _, col := range t.Columns {
		if col.BorrowIn > 0 {
			borrows.set(columnCell(col.Index, t.FractionWidth, width), subscript("1"))
		}
		diff[len(diff)-1-col.Index] = col.Digit
	}
	total := newRow(width)
	total.digits(diff, t.FractionWidth, width)
	l.add(borrows.String())
	l.add(a.String())
	l.add(b.String())
	l.add(ruler(width))
	l.add(total.String())
	return conclude(&l, opts, equation, t.Result.String())
}
