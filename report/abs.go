// Copyright 2020 Aleksandr Demakin. All rights reserved.

package report

import "github.com/avdva/steppable"

// Abs renders an absolute value.
func Abs(t *steppable.AbsTrace, opts Options) string {
	if t == nil {
		return ""
	}
	var l lines
	equation := "|" + t.N.String() + "| = " + t.Result.String()
	if opts.Verbosity != Detailed {
		return conclude(&l, opts, equation, t.Result.String())
	}
	if t.Negated {
		l.add(because + " " + t.N.String() + " < 0, |" + t.N.String() + "| = -(" + t.N.String() + ")")
	} else {
		l.add(because + " " + t.N.String() + " ≥ 0, |" + t.N.String() + "| = " + t.N.String())
	}
	return conclude(&l, opts, equation, t.Result.String())
}
