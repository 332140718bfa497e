// Copyright 2020 Aleksandr Demakin. All rights reserved.

package steppable

// FactorialStep is one multiplication of a factorial calculation.
type FactorialStep struct {
	// Factor is the number the previous product is multiplied by.
	Factor Number
	// Product is Factor!.
	Product        Number
	Multiplication *MultiplyTrace
}

// FactorialTrace records a factorial calculated by repeated multiplication.
type FactorialTrace struct {
	N Number
	// Steps start from the factor 2, so they are empty for 0! and 1!.
	Steps  []FactorialStep
	Result Number
}

// Factorial returns n! for a non-negative integer n. 0! is 1.
// n may not be greater than DefaultMaxSteps.
func Factorial(n Number) (Number, *FactorialTrace, error) {
	if !n.IsInt() {
		return Number{}, nil, invalidArgf("factorial of a non-integer %s", n)
	}
	if n.IsNeg() {
		return Number{}, nil, invalidArgf("factorial of a negative number %s", n)
	}
	if n.Cmp(New(int64(DefaultMaxSteps))) > 0 {
		return Number{}, nil, ErrStepLimit
	}
	tr := &FactorialTrace{N: n}
	one := New(1)
	product := one
	for factor := New(2); factor.Cmp(n) <= 0; factor, _ = Add(factor, one) {
		step := FactorialStep{Factor: factor}
		step.Product, step.Multiplication = Multiply(product, factor)
		tr.Steps = append(tr.Steps, step)
		product = step.Product
	}
	tr.Result = product
	return tr.Result, tr, nil
}
