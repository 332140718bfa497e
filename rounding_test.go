// Copyright 2020 Aleksandr Demakin. All rights reserved.

package steppable

import (
	"fmt"
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestRoundingModePrecision(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		mode           RoundingMode
		current, other int
		res            int
	}{
		{UseCurrentPrecision, 2, 5, 2},
		{UseMaximumPrecision, 2, 5, 5},
		{UseMaximumPrecision, 7, 5, 7},
		{UseMinimumPrecision, 2, 5, 2},
		{UseMinimumPrecision, 7, 5, 5},
		{UseOtherPrecision, 2, 5, 5},
		{DiscardAllDecimals, 2, 5, 0},
		{RoundingMode(100), 2, 5, 2},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.res, test.mode.Precision(test.current, test.other), test.mode.String())
		})
	}
	var zero RoundingMode
	a.Equal(UseCurrentPrecision, zero)
	a.Equal("unknown", RoundingMode(100).String())
}

func TestRound(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		n     string
		mode  RoundingMode
		other int
		res   string
		e     error
	}{
		{"1.23456", UseCurrentPrecision, 2, "1.23456", nil},
		{"1.23456", UseOtherPrecision, 2, "1.23", nil},
		{"1.99999", UseOtherPrecision, 2, "1.99", nil},
		{"-1.99999", UseMinimumPrecision, 0, "-1", nil},
		{"1.5", UseMaximumPrecision, 3, "1.500", nil},
		{"-0.009", UseOtherPrecision, 2, "0.00", nil},
		{"123.456", DiscardAllDecimals, 2, "123", nil},
		{"1.5", UseOtherPrecision, -1, "", ErrInvalidArgument},
		{"1.5", RoundingMode(42), 1, "", ErrInvalidArgument},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			res, err := Round(MustParse(test.n), test.mode, test.other)
			if test.e != nil {
				a.True(errors.Is(err, test.e))
				return
			}
			if a.NoError(err) {
				a.Equal(test.res, res.String())
			}
		})
	}
}

func TestRescale(t *testing.T) {
	a := assert.New(t)
	n, err := MustParse("2.5").Rescale(3)
	a.NoError(err)
	a.Equal("2.500", n.String())
	a.Equal(3, n.Precision())
	a.True(n.Equal(MustParse("2.5")))

	n, err = MustParse("2.5678").Rescale(0)
	a.NoError(err)
	a.Equal("2", n.String())

	_, err = MustParse("2.5").Rescale(-2)
	a.True(errors.Is(err, ErrInvalidArgument))
	_, err = MustParse("2.5").Rescale(math.MaxInt)
	a.True(errors.Is(err, ErrStepLimit))
	_, err = Round(MustParse("2.5"), UseOtherPrecision, math.MaxInt)
	a.True(errors.Is(err, ErrStepLimit))
	n, err = Round(MustParse("2.5"), UseMinimumPrecision, math.MaxInt)
	a.NoError(err)
	a.Equal("2.5", n.String())

	a.Equal("-3", MustParse("-3.99").Truncate().String())
	a.Equal("0", MustParse("-0.99").Truncate().String())
}

func TestNumberMethods(t *testing.T) {
	a := assert.New(t)
	x, y := MustParse("1.25"), MustParse("0.3")

	a.Equal("1.55", x.Add(y, UseMaximumPrecision).String())
	a.Equal("1.5", x.Add(y, UseMinimumPrecision).String())
	a.Equal(1, x.Add(y, UseMinimumPrecision).Precision())
	a.Equal("0.95", x.Sub(y, UseCurrentPrecision).String())
	a.Equal("0", x.Sub(y, DiscardAllDecimals).String())
	a.Equal("0.3", x.Mul(y, UseOtherPrecision).String())
	a.Equal("0.37", x.Mul(y, UseMaximumPrecision).String())
	a.Equal("0.37", x.Mul(y, UseCurrentPrecision).String())

	q, err := x.Quo(y, UseMaximumPrecision)
	a.NoError(err)
	a.Equal("4.16", q.String())
	q, err = x.Quo(y, DiscardAllDecimals)
	a.NoError(err)
	a.Equal("4", q.String())
	_, err = x.Quo(Number{}, UseCurrentPrecision)
	a.True(errors.Is(err, ErrDivisionByZero))

	p, err := x.Pow(2, UseOtherPrecision)
	a.NoError(err)
	a.Equal("1.5625", p.String())
	p, err = x.Pow(2, UseCurrentPrecision)
	a.NoError(err)
	a.Equal("1.56", p.String())
	_, err = x.Pow(-2, UseCurrentPrecision)
	a.True(errors.Is(err, ErrInvalidArgument))
}
