package mathutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecimalDigits(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		v   uint64
		res int
	}{
		{0, 1},
		{9, 1},
		{10, 2},
		{99, 2},
		{1000, 4},
		{math.MaxUint64, 20},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.res, DecimalDigits(test.v))
		})
	}
}

func TestUint64(t *testing.T) {
	a := assert.New(t)
	for i, v := range []uint64{0, 7, 10, 255, 1234567890, math.MaxUint64} {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			digits := FromUint64(v)
			a.Len(digits, DecimalDigits(v))
			back, ok := ToUint64(digits)
			a.True(ok)
			a.Equal(v, back)
		})
	}
	_, ok := ToUint64([]byte{1, 8, 4, 4, 6, 7, 4, 4, 0, 7, 3, 7, 0, 9, 5, 5, 1, 6, 1, 6})
	a.False(ok)
	_, ok = ToUint64([]byte{9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9})
	a.False(ok)
}

func TestRemoveZeros(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		in, leading, trailing []byte
	}{
		{nil, []byte{0}, []byte{}},
		{[]byte{0, 0, 0}, []byte{0}, []byte{}},
		{[]byte{0, 1, 0}, []byte{1, 0}, []byte{0, 1}},
		{[]byte{5}, []byte{5}, []byte{5}},
		{[]byte{0, 0, 1, 2, 0, 0}, []byte{1, 2, 0, 0}, []byte{0, 0, 1, 2}},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.leading, RemoveLeadingZeros(test.in))
			a.Equal(test.trailing, RemoveTrailingZeros(test.in))
		})
	}
}

func TestPureTransforms(t *testing.T) {
	a := assert.New(t)
	in := []byte{0, 1, 0}
	out := RemoveLeadingZeros(in)
	out[0] = 9
	a.Equal([]byte{0, 1, 0}, in)
	padded := PadLeft(in, 2)
	padded[0] = 9
	a.Equal([]byte{0, 1, 0}, in)
}

func TestPadAndAlign(t *testing.T) {
	a := assert.New(t)
	a.Equal([]byte{0, 0, 7}, PadLeft([]byte{7}, 3))
	a.Equal([]byte{1, 2}, PadLeft([]byte{1, 2}, 1))
	a.Equal([]byte{2, 5, 0}, PadRight([]byte{2, 5}, 3))
	ai, af, bi, bf := Align([]byte{1, 2}, []byte{5}, []byte{7}, []byte{2, 5})
	a.Equal([]byte{1, 2}, ai)
	a.Equal([]byte{5, 0}, af)
	a.Equal([]byte{0, 7}, bi)
	a.Equal([]byte{2, 5}, bf)
	a.Equal([]byte{1, 2, 3}, Concat([]byte{1}, nil, []byte{2, 3}))
}

func TestIntegerOps(t *testing.T) {
	a := assert.New(t)
	a.Equal(0, Cmp([]byte{0, 1, 2}, []byte{1, 2}))
	a.Equal(1, Cmp([]byte{1, 0, 0}, []byte{9, 9}))
	a.Equal(-1, Cmp([]byte{1, 2}, []byte{1, 3}))
	a.Equal(0, Cmp(nil, []byte{0}))
	a.Equal([]byte{9, 1}, Sub([]byte{1, 0, 0}, []byte{9}))
	a.Equal([]byte{0}, Sub([]byte{4, 2}, []byte{4, 2}))
	a.Equal([]byte{1, 1, 0, 7}, MulDigit([]byte{1, 2, 3}, 9))
	a.Equal([]byte{0}, MulDigit([]byte{1, 2, 3}, 0))
	a.True(IsZero(nil))
	a.True(IsZero([]byte{0, 0}))
	a.False(IsZero([]byte{0, 1}))
}

func BenchmarkRemoveLeadingZeros(b *testing.B) {
	digits := []byte{0, 0, 0, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	var dummy int
	for i := 0; i < b.N; i++ {
		dummy += len(RemoveLeadingZeros(digits))
	}
	// this metric is just to prevent unwanted optimisations in calculations of `dummy.`
	b.ReportMetric(float64(dummy), "dummy_metric")
}
