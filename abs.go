// Copyright 2020 Aleksandr Demakin. All rights reserved.

package steppable

// AbsTrace records taking an absolute value.
type AbsTrace struct {
	N Number
	// Negated is true, if the result is -N.
	Negated bool
	Result  Number
}

// Abs returns |n| with a trace. The precision of n is kept.
func Abs(n Number) (Number, *AbsTrace) {
	tr := &AbsTrace{N: n, Negated: n.IsNeg(), Result: n.Abs()}
	return tr.Result, tr
}
