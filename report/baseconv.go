// Copyright 2020 Aleksandr Demakin. All rights reserved.

package report

import (
	"strconv"

	"github.com/avdva/steppable"
)

// BaseConvert renders a conversion into another base as a sequence of divisions:
//
//	255 ÷ 16 = 15 ... F
//	15 ÷ 16 = 0 ... F
//	∴ 255 = FF₁₆
//
// Options.Limit applies to divisions.
func BaseConvert(t *steppable.BaseConvertTrace, opts Options) string {
	if t == nil {
		return ""
	}
	var l lines
	result := steppable.FormatDigits(t.Digits)
	if t.Negative {
		result = "-" + result
	}
	base := strconv.Itoa(t.Base)
	equation := t.N.Truncate().String() + " = " + result + subscript(base)
	if opts.Verbosity != Detailed {
		return conclude(&l, opts, equation, result)
	}
	steps(&l, len(t.Steps), opts.Limit, func(i int) {
		step := t.Steps[i]
		l.add(step.Dividend.String() + " " + dividedBy + " " + base + " = " +
			step.Division.Quotient.String() + " " + ellipsis + " " + steppable.FormatDigits([]byte{step.Digit}))
	})
	return conclude(&l, opts, equation, result)
}

// DecimalConvert renders a conversion into decimal as a sum of digit values:
//
//	F × 16⁰ = 15
//	F × 16¹ = 240
//	∴ FF₁₆ = 255₁₀
//
// Options.Limit applies to digit values.
func DecimalConvert(t *steppable.DecimalConvertTrace, opts Options) string {
	if t == nil {
		return ""
	}
	var l lines
	base := strconv.Itoa(t.Base)
	input := inputDigits(t)
	if t.Negative {
		input = "-" + input
	}
	equation := input + subscript(base) + " = " + t.Result.String() + subscript("10")
	if opts.Verbosity != Detailed {
		return conclude(&l, opts, equation, t.Result.String())
	}
	steps(&l, len(t.Steps), opts.Limit, func(i int) {
		step := t.Steps[i]
		l.add(steppable.FormatDigits([]byte{step.Digit}) + " " + times + " " + base +
			superscript(strconv.Itoa(step.Index)) + " = " + step.Value.String())
	})
	return conclude(&l, opts, equation, t.Result.String())
}

// inputDigits restores the input digits from the steps in upper case.
func inputDigits(t *steppable.DecimalConvertTrace) string {
	digits := make([]byte, len(t.Steps))
	for i, step := range t.Steps {
		digits[len(digits)-1-i] = step.Digit
	}
	return steppable.FormatDigits(digits)
}
