// Copyright 2020 Aleksandr Demakin. All rights reserved.

package steppable

import "github.com/avdva/steppable/internal/mathutil"

// PowerStep is one multiplication of a power calculation.
type PowerStep struct {
	// Exponent is the power of the reduced base calculated at this step.
	Exponent       int
	Product        Number
	Multiplication *MultiplyTrace
}

// PowerTrace records a power calculation by repeated multiplication.
type PowerTrace struct {
	Base     Number
	Exponent int
	// TrailingZeros is the number of zeros appended to the product.
	// For integer bases ending with k zeros it is k*Exponent, and the zeros are not multiplied.
	TrailingZeros int
	// Reduced is the base without its trailing zeros.
	Reduced Number
	// Steps are empty for exponents 0 and 1.
	Steps  []PowerStep
	Result Number
}

// Power returns a^n for n >= 0. 0^0 is 1.
// The precision of the result is the precision of a times n.
func Power(a Number, n int) (Number, *PowerTrace, error) {
	if n < 0 {
		return Number{}, nil, invalidArgf("negative exponent %d", n)
	}
	if n > DefaultMaxSteps {
		return Number{}, nil, ErrStepLimit
	}
	tr := &PowerTrace{Base: a, Exponent: n, Reduced: a}
	if n == 0 {
		tr.Result = New(1)
		return tr.Result, tr, nil
	}
	if a.IsInt() && !a.IsZero() {
		integer := a.intDigits()
		stripped := mathutil.RemoveTrailingZeros(integer)
		tr.TrailingZeros = (len(integer) - len(stripped)) * n
		tr.Reduced = newNumber(a.neg, stripped, nil, a.prec)
	}
	product := tr.Reduced
	for e := 2; e <= n; e++ {
		step := PowerStep{Exponent: e}
		step.Product, step.Multiplication = Multiply(product, tr.Reduced)
		tr.Steps = append(tr.Steps, step)
		product = step.Product
	}
	if tr.TrailingZeros > 0 {
		integer := mathutil.PadRight(product.intDigits(), len(product.intDigits())+tr.TrailingZeros)
		product = newNumber(product.neg, integer, nil, product.prec)
	}
	tr.Result = product
	return tr.Result, tr, nil
}
