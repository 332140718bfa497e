// Copyright 2020 Aleksandr Demakin. All rights reserved.

package report

import (
	"fmt"

	"github.com/avdva/steppable"
)

// Compare renders a comparison with the reason of its result.
// In detailed mode every compared digit pair is listed, Options.Limit applies to them.
func Compare(t *steppable.CompareTrace, opts Options) string {
	if t == nil {
		return ""
	}
	var l lines
	equation := t.A.String() + " " + t.Result.String() + " " + t.B.String()
	if opts.Verbosity != Detailed {
		return conclude(&l, opts, equation, t.Result.String())
	}
	switch t.Reason {
	case steppable.ReasonSign:
		l.add(fmt.Sprintf("%s %s is %s, %s is %s", because, t.A, signName(t.A), t.B, signName(t.B)))
	case steppable.ReasonIntegerLength:
		l.add(fmt.Sprintf("%s integer part of %s has %d digits, of %s has %d digits",
			because, t.A, len(t.AInteger), t.B, len(t.BInteger)))
	default:
		steps(&l, len(t.Steps), opts.Limit, func(i int) {
			step := t.Steps[i]
			var rel string
			switch {
			case step.A < step.B:
				rel = "<"
			case step.A > step.B:
				rel = ">"
			default:
				rel = "="
			}
			l.add(fmt.Sprintf("%s %s: %d %s %d", because, position(step.Index, len(t.AInteger)), step.A, rel, step.B))
		})
	}
	return conclude(&l, opts, equation, t.Result.String())
}

func signName(n steppable.Number) string {
	switch n.Sign() {
	case -1:
		return "negative"
	case 1:
		return "positive"
	default:
		return "zero"
	}
}

// position names a digit position in a concatenation of integer and fraction digits.
func position(index, integerWidth int) string {
	if index < integerWidth {
		return fmt.Sprintf("integer digit %d", index+1)
	}
	return fmt.Sprintf("fraction digit %d", index-integerWidth+1)
}
