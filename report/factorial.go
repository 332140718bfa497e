// Copyright 2020 Aleksandr Demakin. All rights reserved.

package report

import "github.com/avdva/steppable"

// Factorial renders a factorial as a sequence of multiplications:
//
//	∵ 1 × 2 = 2
//	2! = 2
//	∵ 2 × 3 = 6
//	3! = 6
//	∴ 3! = 6
//
// Options.Limit applies to multiplications.
func Factorial(t *steppable.FactorialTrace, opts Options) string {
	if t == nil {
		return ""
	}
	var l lines
	equation := t.N.String() + "! = " + t.Result.String()
	if opts.Verbosity != Detailed {
		return conclude(&l, opts, equation, t.Result.String())
	}
	if len(t.Steps) == 0 {
		l.add(because + " " + t.N.String() + "! = 1 by definition")
	}
	steps(&l, len(t.Steps), opts.Limit, func(i int) {
		step := t.Steps[i]
		l.add(because + " " + step.Multiplication.A.String() + " " + times + " " +
			step.Factor.String() + " = " + step.Product.String())
		l.add(step.Factor.String() + "! = " + step.Product.String())
	})
	return conclude(&l, opts, equation, t.Result.String())
}
