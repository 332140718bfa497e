// Copyright 2020 Aleksandr Demakin. All rights reserved.

package steppable

// Add returns n+m. The result has the precision selected by mode from n's and m's precisions.
// Extra fractional digits are truncated.
func (n Number) Add(m Number, mode RoundingMode) Number {
	r, _ := Add(n, m)
	return r.truncate(mode.Precision(n.prec, m.prec))
}

// Sub returns n-m. The result has the precision selected by mode from n's and m's precisions.
func (n Number) Sub(m Number, mode RoundingMode) Number {
	r, _ := Subtract(n, m)
	return r.truncate(mode.Precision(n.prec, m.prec))
}

// Mul returns n*m. The result has the precision selected by mode from n's and m's precisions.
func (n Number) Mul(m Number, mode RoundingMode) Number {
	r, _ := Multiply(n, m)
	return r.truncate(mode.Precision(n.prec, m.prec))
}

// Quo returns n/m calculated up to the precision selected by mode from n's and m's precisions.
func (n Number) Quo(m Number, mode RoundingMode) (Number, error) {
	r, _, err := Divide(n, m, mode.Precision(n.prec, m.prec))
	return r, err
}

// Pow returns n^k. The mode selects between n's precision and the precision of the exact power.
func (n Number) Pow(k int, mode RoundingMode) (Number, error) {
	r, _, err := Power(n, k)
	if err != nil {
		return Number{}, err
	}
	return r.truncate(mode.Precision(n.prec, r.prec)), nil
}

// Mod returns the remainder of the integer division a/b. It has the sign of a.
func Mod(a, b Number) (Number, error) {
	qr, _, err := DivideWithRemainder(a, b, 0)
	if err != nil {
		return Number{}, err
	}
	return qr.Remainder, nil
}
