// Copyright 2020 Aleksandr Demakin. All rights reserved.

package steppable

import (
	"github.com/shopspring/decimal"
)

// FromDecimal converts a shopspring decimal into a Number.
// The precision of the result is the number of fractional digits of d.
func FromDecimal(d decimal.Decimal) Number {
	n := MustParse(d.String())
	if exp := d.Exponent(); exp < 0 && int(-exp) > n.prec {
		n.prec = int(-exp)
	}
	return n
}

// Decimal converts n into a shopspring decimal.
// No digits are lost, as decimal.Decimal has arbitrary precision.
func (n Number) Decimal() decimal.Decimal {
	return decimal.RequireFromString(n.String())
}
