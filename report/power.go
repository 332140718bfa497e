// Copyright 2020 Aleksandr Demakin. All rights reserved.

package report

import (
	"strconv"

	"github.com/avdva/steppable"
)

// Power renders a power as a sequence of multiplications:
//
//	∵ 3 × 3 = 9
//	3² = 9
//
// Options.Limit applies to multiplications.
func Power(t *steppable.PowerTrace, opts Options) string {
	if t == nil {
		return ""
	}
	var l lines
	base := t.Base.String()
	if t.Base.IsNeg() {
		base = "(" + base + ")"
	}
	equation := base + superscript(strconv.Itoa(t.Exponent)) + " = " + t.Result.String()
	if opts.Verbosity != Detailed {
		return conclude(&l, opts, equation, t.Result.String())
	}
	reduced := t.Reduced.String()
	if t.Reduced.IsNeg() {
		reduced = "(" + reduced + ")"
	}
	if t.TrailingZeros > 0 {
		zeros := t.TrailingZeros / t.Exponent
		l.add(because + " " + t.Base.String() + " = " + t.Reduced.String() + " " + times + " 10" +
			superscript(strconv.Itoa(zeros)))
	}
	steps(&l, len(t.Steps), opts.Limit, func(i int) {
		step := t.Steps[i]
		l.add(because + " " + step.Multiplication.A.String() + " " + times + " " +
			operand(step.Multiplication.B) + " = " + step.Product.String())
		l.add(reduced + superscript(strconv.Itoa(step.Exponent)) + " = " + step.Product.String())
	})
	if t.TrailingZeros > 0 {
		l.add(because + " " + strconv.Itoa(t.TrailingZeros) + " zeros appended")
	}
	return conclude(&l, opts, equation, t.Result.String())
}
