// Copyright 2020 Aleksandr Demakin. All rights reserved.

package steppable

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/cockroachdb/apd/v3"
	gvdecimal "github.com/govalues/decimal"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMultiply(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		a, b string
		res  string
		prec int
		rows int
	}{
		{"-3", "4", "-12", 0, 1},
		{"12", "34", "408", 0, 2},
		{"0.5", "0.2", "0.1", 2, 1},
		{"1.25", "-0.8", "-1", 3, 1},
		{"0", "-12.5", "0", 1, 3},
		{"99", "99", "9801", 0, 2},
		{"123456789", "987654321", "121932631112635269", 0, 9},
		{"1.10", "1.1", "1.21", 3, 2},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			res, tr := Multiply(MustParse(test.a), MustParse(test.b))
			a.Equal(test.res, res.String())
			a.Equal(test.prec, res.Precision())
			a.Len(tr.Rows, test.rows)
			a.Equal(res, tr.Result)
			a.Equal(KindMultiply, tr.Kind())
		})
	}
}

func TestMultiplyTrace(t *testing.T) {
	a := assert.New(t)
	_, tr := Multiply(MustParse("12"), MustParse("34"))
	if a.Len(tr.Rows, 2) {
		// 12 * 4 = 48
		a.Equal(0, tr.Rows[0].Shift)
		a.Equal(byte(4), tr.Rows[0].Multiplier)
		a.Equal([]byte{0, 4, 8}, tr.Rows[0].Digits)
		// 12 * 3 = 36
		a.Equal(1, tr.Rows[1].Shift)
		a.Equal([]byte{0, 3, 6}, tr.Rows[1].Digits)
	}
	if a.Len(tr.Columns, 4) {
		a.Equal(SumColumn{Index: 0, Digits: []byte{8}, Sum: 8, Digit: 8}, tr.Columns[0])
		a.Equal(SumColumn{Index: 1, Digits: []byte{4, 6}, Sum: 10, Digit: 0, CarryOut: 1}, tr.Columns[1])
		a.Equal(SumColumn{Index: 2, Digits: []byte{0, 3}, CarryIn: 1, Sum: 4, Digit: 4}, tr.Columns[2])
	}

	_, tr = Multiply(MustParse("99"), MustParse("9"))
	a.Equal([]byte{8, 9, 1}, tr.Rows[0].Digits)
	a.Equal([]byte{8, 8, 0}, tr.Rows[0].Carries)
}

func TestMultiplyApd(t *testing.T) {
	a := assert.New(t)
	r := rand.New(rand.NewSource(4))
	ctx := apd.BaseContext.WithPrecision(200)
	for i := 0; i < 100; i++ {
		xs, ys := randDecimal(r, 40, 20), randDecimal(r, 40, 20)
		x, _, err := apd.NewFromString(xs)
		a.NoError(err)
		y, _, err := apd.NewFromString(ys)
		a.NoError(err)
		var expected apd.Decimal
		_, err = ctx.Mul(&expected, x, y)
		a.NoError(err)

		res, _ := Multiply(MustParse(xs), MustParse(ys))
		actual, _, err := apd.NewFromString(res.String())
		if a.NoError(err) {
			a.Equal(0, expected.Cmp(actual), "%s * %s", xs, ys)
		}
	}
}

func TestMultiplyGovalues(t *testing.T) {
	a := assert.New(t)
	r := rand.New(rand.NewSource(5))
	for i := 0; i < 100; i++ {
		xs, ys := randDecimal(r, 5, 4), randDecimal(r, 5, 4)
		expected, err := gvdecimal.MustParse(xs).Mul(gvdecimal.MustParse(ys))
		if !a.NoError(err) {
			continue
		}
		res, _ := Multiply(MustParse(xs), MustParse(ys))
		a.True(res.Equal(MustParse(expected.String())), "%s * %s", xs, ys)
	}
}

func TestMultiplyProperties(t *testing.T) {
	a := assert.New(t)
	r := rand.New(rand.NewSource(6))
	for i := 0; i < 100; i++ {
		x, y := MustParse(randDecimal(r, 20, 10)), MustParse(randDecimal(r, 20, 10))
		xy, _ := Multiply(x, y)
		yx, _ := Multiply(y, x)
		a.True(xy.Equal(yx), "%s * %s", x, y)
		a.Equal(x.Precision()+y.Precision(), xy.Precision())
	}
}

func BenchmarkMultiply(b *testing.B) {
	x, y := MustParse("123456789.9"), MustParse("1234.9")
	for i := 0; i < b.N; i++ {
		Multiply(x, y)
	}
}

func BenchmarkMulDecimal(b *testing.B) {
	x, y := decimal.RequireFromString("123456789.9"), decimal.RequireFromString("1234.9")
	for i := 0; i < b.N; i++ {
		x.Mul(y)
	}
}
