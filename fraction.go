// Copyright 2020 Aleksandr Demakin. All rights reserved.

package steppable

import "strings"

// Fraction is a ratio of two decimal numbers.
// The sign is kept in the numerator, the denominator of a fraction built by constructors is never zero.
// Fractions are not simplified automatically, see Simplify.
type Fraction struct {
	num, den Number
}

// NewFraction returns num/den.
func NewFraction(num, den Number) (Fraction, error) {
	if den.IsZero() {
		return Fraction{}, ErrDivisionByZero
	}
	if den.neg {
		num, den = num.Neg(), den.Neg()
	}
	return Fraction{num: num, den: den}, nil
}

// FractionFromNumber returns n/1.
func FractionFromNumber(n Number) Fraction {
	return Fraction{num: n, den: New(1)}
}

// ParseFraction parses a string like "a/b", where a and b are decimal numbers, or a single decimal number.
func ParseFraction(s string) (Fraction, error) {
	idx := strings.IndexByte(s, '/')
	if idx < 0 {
		n, err := Parse(s)
		if err != nil {
			return Fraction{}, err
		}
		return FractionFromNumber(n), nil
	}
	num, err := Parse(s[:idx])
	if err != nil {
		return Fraction{}, err
	}
	den, err := Parse(s[idx+1:])
	if err != nil {
		if pe, ok := err.(*ParseError); ok && pe.Pos > 0 {
			pe.Pos += idx + 1
		}
		return Fraction{}, err
	}
	return NewFraction(num, den)
}

// MustParseFraction is like ParseFraction, but panics on errors.
func MustParseFraction(s string) Fraction {
	f, err := ParseFraction(s)
	if err != nil {
		panic("MustParseFraction(" + s + ") failed: " + err.Error())
	}
	return f
}

// Num returns the numerator.
func (f Fraction) Num() Number {
	return f.num
}

// Den returns the denominator.
func (f Fraction) Den() Number {
	return f.den
}

// IsZero returns true, if the numerator is 0.
func (f Fraction) IsZero() bool {
	return f.num.IsZero()
}

func (f Fraction) String() string {
	return f.num.String() + "/" + f.den.String()
}

// Simplify returns an equal fraction with integer numerator and denominator having no common divisors.
// Simplifying a simplified fraction returns it unchanged.
func (f Fraction) Simplify() (Fraction, error) {
	if f.den.IsZero() {
		return Fraction{}, ErrDivisionByZero
	}
	neg := f.num.neg != f.den.neg
	// both parts are multiplied by 10^shift to make them integers.
	shift := max(len(f.num.fraction), len(f.den.fraction))
	numInt, _ := f.num.shift(shift)
	denInt, _ := f.den.shift(shift)
	num, den := newNumber(false, numInt, nil, 0), newNumber(false, denInt, nil, 0)
	if num.IsZero() {
		return Fraction{num: num, den: New(1)}, nil
	}
	gcd, err := GCD(num, den)
	if err != nil {
		return Fraction{}, err
	}
	if num, _, err = Divide(num, gcd, 0); err != nil {
		return Fraction{}, err
	}
	if den, _, err = Divide(den, gcd, 0); err != nil {
		return Fraction{}, err
	}
	if neg {
		num = num.Neg()
	}
	return Fraction{num: num, den: den}, nil
}

// GCD returns the greatest common divisor of two integers using Euclid's algorithm.
func GCD(a, b Number) (Number, error) {
	if !a.IsInt() || !b.IsInt() {
		return Number{}, invalidArgf("gcd of non-integers %s and %s", a, b)
	}
	a, b = a.Abs().Truncate(), b.Abs().Truncate()
	for !b.IsZero() {
		qr, _, err := DivideWithRemainder(a, b, 0)
		if err != nil {
			return Number{}, err
		}
		a, b = b, qr.Remainder
	}
	return a, nil
}

// Reciprocal returns den/num.
func (f Fraction) Reciprocal() (Fraction, error) {
	return NewFraction(f.den, f.num)
}

// Add returns f+other in the simplest form.
func (f Fraction) Add(other Fraction) (Fraction, error) {
	ad, _ := Multiply(f.num, other.den)
	cb, _ := Multiply(other.num, f.den)
	num, _ := Add(ad, cb)
	den, _ := Multiply(f.den, other.den)
	return simplified(num, den)
}

// Sub returns f-other in the simplest form.
func (f Fraction) Sub(other Fraction) (Fraction, error) {
	return f.Add(Fraction{num: other.num.Neg(), den: other.den})
}

// Mul returns f*other in the simplest form.
func (f Fraction) Mul(other Fraction) (Fraction, error) {
	num, _ := Multiply(f.num, other.num)
	den, _ := Multiply(f.den, other.den)
	return simplified(num, den)
}

// Quo returns f/other in the simplest form.
func (f Fraction) Quo(other Fraction) (Fraction, error) {
	r, err := other.Reciprocal()
	if err != nil {
		return Fraction{}, err
	}
	return f.Mul(r)
}

// Pow returns f^n in the simplest form. Negative exponents raise the reciprocal.
func (f Fraction) Pow(n int) (Fraction, error) {
	if n < 0 {
		r, err := f.Reciprocal()
		if err != nil {
			return Fraction{}, err
		}
		return r.Pow(-n)
	}
	num, _, err := Power(f.num, n)
	if err != nil {
		return Fraction{}, err
	}
	den, _, err := Power(f.den, n)
	if err != nil {
		return Fraction{}, err
	}
	return simplified(num, den)
}

// Cmp compares two fractions by value.
// Returns -1 if f < other, 0 if f == other, 1 if f > other
func (f Fraction) Cmp(other Fraction) int {
	// denominators are positive, so cross products have the same order as fractions.
	ad, _ := Multiply(f.num, other.den)
	cb, _ := Multiply(other.num, f.den)
	return ad.Cmp(cb)
}

// Equal returns true, if both fractions have the same value, so 1/2 == 2/4.
func (f Fraction) Equal(other Fraction) bool {
	return f.Cmp(other) == 0
}

// Number returns num/den as a decimal with prec fractional digits.
func (f Fraction) Number(prec int) (Number, error) {
	q, _, err := Divide(f.num, f.den, prec)
	return q, err
}

func simplified(num, den Number) (Fraction, error) {
	f, err := NewFraction(num, den)
	if err != nil {
		return Fraction{}, err
	}
	return f.Simplify()
}
