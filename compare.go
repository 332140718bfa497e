// Copyright 2020 Aleksandr Demakin. All rights reserved.

package steppable

import "github.com/avdva/steppable/internal/mathutil"

// Ordering is the result of a comparison.
type Ordering int8

const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

func (o Ordering) String() string {
	switch o {
	case Less:
		return "<"
	case Greater:
		return ">"
	default:
		return "="
	}
}

// CompareReason tells what decided a comparison.
type CompareReason uint8

const (
	// ReasonEqual means that all the digits and signs are the same.
	ReasonEqual CompareReason = iota
	// ReasonSign means that the numbers have different signs.
	ReasonSign
	// ReasonIntegerLength means that the integer parts have different lengths.
	ReasonIntegerLength
	// ReasonDigit means that the numbers differ at CompareTrace.Steps[len(Steps)-1].
	ReasonDigit
)

// CompareStep is a pair of digits at the same position.
type CompareStep struct {
	// Index is a position in the concatenation of integer and fraction digits,
	// the most significant integer digit has index 0.
	Index int
	A, B  byte
}

// CompareTrace records a comparison.
type CompareTrace struct {
	A, B Number
	// Integer parts without leading zeros and fraction parts padded to the same width.
	AInteger, AFraction []byte
	BInteger, BFraction []byte
	Reason              CompareReason
	// Steps holds every digit pair looked at, most significant first.
	Steps  []CompareStep
	Result Ordering
}

// Compare compares a and b.
// It compares signs first, then the lengths of integer parts, then the digits, most significant first.
// Fraction parts are compared after padding the shorter one with zeros, so 1.5 == 1.50.
// Zero has no sign, so -0 == 0.
func Compare(a, b Number) (Ordering, *CompareTrace) {
	fw := max(len(a.fraction), len(b.fraction))
	tr := &CompareTrace{
		A:         a,
		B:         b,
		AInteger:  a.IntegerDigits(),
		BInteger:  b.IntegerDigits(),
		AFraction: mathutil.PadRight(a.fraction, fw),
		BFraction: mathutil.PadRight(b.fraction, fw),
	}
	sa, sb := a.Sign(), b.Sign()
	if sa != sb {
		tr.Reason = ReasonSign
		tr.Result = Greater
		if sa < sb {
			tr.Result = Less
		}
		return tr.Result, tr
	}
	// same signs, compare magnitudes and flip the result for negative numbers.
	var mag Ordering
	if la, lb := len(tr.AInteger), len(tr.BInteger); la != lb {
		tr.Reason = ReasonIntegerLength
		mag = Greater
		if la < lb {
			mag = Less
		}
	} else {
		mag = tr.compareDigits()
	}
	if sa < 0 {
		mag = -mag
	}
	tr.Result = mag
	return tr.Result, tr
}

func (tr *CompareTrace) compareDigits() Ordering {
	ad := mathutil.Concat(tr.AInteger, tr.AFraction)
	bd := mathutil.Concat(tr.BInteger, tr.BFraction)
	for i := range ad {
		tr.Steps = append(tr.Steps, CompareStep{Index: i, A: ad[i], B: bd[i]})
		switch {
		case ad[i] > bd[i]:
			tr.Reason = ReasonDigit
			return Greater
		case ad[i] < bd[i]:
			tr.Reason = ReasonDigit
			return Less
		}
	}
	tr.Reason = ReasonEqual
	return Equal
}
