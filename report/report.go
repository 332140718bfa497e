// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package report renders operation traces as text worked examples.
//
// Renderers only format the fields of a trace, they never recalculate anything,
// so a rendered example always agrees with the result it came with.
package report

import (
	"strings"

	"github.com/avdva/steppable"
)

// Verbosity defines how much of a trace is rendered.
type Verbosity uint8

const (
	// ResultOnly renders just the result.
	ResultOnly Verbosity = iota
	// Equation renders a single line like "1 + 2 = 3".
	Equation
	// Detailed renders the whole worked example followed by the equation.
	Detailed
)

// Options control rendering.
type Options struct {
	Verbosity Verbosity
	// Limit is the maximum number of steps rendered for traces listing steps line by line.
	// If there are more steps, the first and the last ones are kept, and the middle is replaced with "...".
	// Zero means no limit.
	Limit int
}

const (
	because   = "∵"
	therefore = "∴"
	times     = "×"
	dividedBy = "÷"
	ellipsis  = "..."
	rule      = '_'
	// every digit takes a cell of this width in column layouts.
	cellWidth = 3
)

// Render renders any trace. It returns an empty string for nil traces.
func Render(t steppable.Trace, opts Options) string {
	switch t := t.(type) {
	case *steppable.AddTrace:
		return Add(t, opts)
	case *steppable.SubtractTrace:
		return Subtract(t, opts)
	case *steppable.MultiplyTrace:
		return Multiply(t, opts)
	case *steppable.DivideTrace:
		return Divide(t, opts)
	case *steppable.PowerTrace:
		return Power(t, opts)
	case *steppable.CompareTrace:
		return Compare(t, opts)
	case *steppable.BaseConvertTrace:
		return BaseConvert(t, opts)
	case *steppable.DecimalConvertTrace:
		return DecimalConvert(t, opts)
	case *steppable.FactorialTrace:
		return Factorial(t, opts)
	case *steppable.AbsTrace:
		return Abs(t, opts)
	default:
		return ""
	}
}

// lines collects the lines of a rendered example.
type lines struct {
	builder strings.Builder
}

// add appends a line. Blank lines are skipped.
func (l *lines) add(s string) {
	s = strings.TrimRight(s, " ")
	if len(s) == 0 {
		return
	}
	if l.builder.Len() > 0 {
		l.builder.WriteByte('\n')
	}
	l.builder.WriteString(s)
}

func (l *lines) String() string {
	return l.builder.String()
}

// conclude renders the final line of an example according to the verbosity.
func conclude(l *lines, opts Options, equation, result string) string {
	switch opts.Verbosity {
	case ResultOnly:
		return result
	case Equation:
		return equation
	default:
		l.add(therefore + " " + equation)
		return l.String()
	}
}

// steps calls fn for the steps to be rendered, and adds an ellipsis line in place of elided ones.
func steps(l *lines, count, limit int, fn func(i int)) {
	if limit <= 0 || count <= limit {
		for i := 0; i < count; i++ {
			fn(i)
		}
		return
	}
	head := (limit + 1) / 2
	tail := limit - head
	for i := 0; i < head; i++ {
		fn(i)
	}
	l.add(ellipsis)
	for i := count - tail; i < count; i++ {
		fn(i)
	}
}

// operand formats a number for the right side of a binary operator.
func operand(n steppable.Number) string {
	if n.IsNeg() {
		return "(" + n.String() + ")"
	}
	return n.String()
}

var superscriptDigits = [...]string{"⁰", "¹", "²", "³", "⁴", "⁵", "⁶", "⁷", "⁸", "⁹"}

func superscript(s string) string {
	var builder strings.Builder
	for _, r := range s {
		switch {
		case '0' <= r && r <= '9':
			builder.WriteString(superscriptDigits[r-'0'])
		case r == '-':
			builder.WriteString("⁻")
		default:
			builder.WriteRune(r)
		}
	}
	return builder.String()
}

func subscript(s string) string {
	var builder strings.Builder
	for _, r := range s {
		switch {
		case '0' <= r && r <= '9':
			builder.WriteRune('₀' + r - '0')
		case r == '-':
			builder.WriteRune('₋')
		default:
			builder.WriteRune(r)
		}
	}
	return builder.String()
}

// digitString formats digits with a decimal point before the last fw of them.
func digitString(digits []byte, fw int) string {
	var builder strings.Builder
	for i, d := range digits {
		if i == len(digits)-fw && fw > 0 {
			if i == 0 {
				builder.WriteByte('0')
			}
			builder.WriteByte('.')
		}
		builder.WriteByte('0' + d)
	}
	if builder.Len() == 0 {
		return "0"
	}
	return builder.String()
}

// row is a line of cells used in column layouts.
type row []string

func newRow(width int) row {
	r := make(row, width)
	for i := range r {
		r[i] = strings.Repeat(" ", cellWidth)
	}
	return r
}

// set puts s into the cell i, cells out of range are ignored.
func (r row) set(i int, s string) {
	if i >= 0 && i < len(r) {
		r[i] = s + strings.Repeat(" ", cellWidth-1)
	}
}

// digits puts digits with a decimal point before the last fw of them into the row, right aligned at end.
func (r row) digits(digits []byte, fw, end int) {
	pos := end - 1
	for i := len(digits) - 1; i >= 0; i-- {
		if fw > 0 && i == len(digits)-1-fw {
			r.set(pos, ".")
			pos--
		}
		r.set(pos, string(rune('0'+digits[i])))
		pos--
	}
}

func (r row) String() string {
	return strings.Join(r, "")
}

// prefixed replaces the first cell of the row with an operator sign.
func (r row) prefixed(op string) row {
	r.set(0, op)
	return r
}

func ruler(width int) string {
	return strings.Repeat(string(rule), width*cellWidth)
}

// layoutWidth returns the number of cells for digits with a decimal point plus one leading cell.
func layoutWidth(digits, fw int) int {
	w := digits + 1
	if fw > 0 {
		w++
	}
	return w
}
