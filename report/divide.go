// Copyright 2020 Aleksandr Demakin. All rights reserved.

package report

import (
	"strconv"

	"github.com/avdva/steppable"
)

// Divide renders a long division, one line per brought down digit:
//
//	7 ÷ 2 = 3, 7 - 6 = 1
//
// Options.Limit applies to these lines.
func Divide(t *steppable.DivideTrace, opts Options) string {
	if t == nil {
		return ""
	}
	var l lines
	equation := t.A.String() + " " + dividedBy + " " + operand(t.B) + " = " + t.Quotient.String()
	if opts.Verbosity != Detailed {
		return conclude(&l, opts, equation, t.Quotient.String())
	}
	dividend := digitString(t.Dividend, len(t.Dividend)-t.IntegerWidth)
	divisor := digitString(t.Divisor, 0)
	if t.Shift > 0 {
		l.add(because + " " + t.A.Abs().String() + " " + dividedBy + " " + t.B.Abs().String() + " = " +
			dividend + " " + dividedBy + " " + divisor)
	}
	steps(&l, len(t.Steps), opts.Limit, func(i int) {
		step := t.Steps[i]
		l.add(digitString(step.Working, 0) + " " + dividedBy + " " + divisor + " = " +
			strconv.Itoa(int(step.QuotientDigit)) + ", " +
			digitString(step.Working, 0) + " - " + digitString(step.Product, 0) + " = " +
			digitString(step.Remainder, 0))
	})
	if !t.Remainder.IsZero() {
		l.add(because + " remainder " + t.Remainder.String())
	}
	return conclude(&l, opts, equation, t.Quotient.String())
}
