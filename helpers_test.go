// Copyright 2020 Aleksandr Demakin. All rights reserved.

package steppable

import (
	"math/rand"
	"strings"
)

// randDecimal returns a random decimal string with up to intDigits integer
// and up to fracDigits fractional digits.
func randDecimal(r *rand.Rand, intDigits, fracDigits int) string {
	var b strings.Builder
	if r.Intn(2) == 0 {
		b.WriteByte('-')
	}
	n := 1 + r.Intn(intDigits)
	for i := 0; i < n; i++ {
		b.WriteByte(byte('0' + r.Intn(10)))
	}
	if fracDigits > 0 {
		if m := r.Intn(fracDigits + 1); m > 0 {
			b.WriteByte('.')
			for i := 0; i < m; i++ {
				b.WriteByte(byte('0' + r.Intn(10)))
			}
		}
	}
	return b.String()
}
