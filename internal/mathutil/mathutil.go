// Package mathutil contains pure helpers over decimal digit slices.
//
// A digit slice holds values 0..9, most significant digit first. None of the
// functions modify their input, the result is always a fresh slice.
package mathutil

import (
	"math/bits"
	"unsafe"
)

var (
	digitsHelper = [...]int{
		0, 0, 0, 0, 1, 1, 1, 2, 2, 2,
		3, 3, 3, 3, 4, 4, 4, 5, 5, 5,
		6, 6, 6, 6, 7, 7, 7, 8, 8, 8,
		9, 9, 9, 9, 10, 10, 10, 11, 11, 11,
		12, 12, 12, 12, 13, 13, 13, 14, 14, 14,
		15, 15, 15, 15, 16, 16, 16, 17, 17, 17,
		18, 18, 18, 18, 19,
	}

	decimalFactorTable = [...]uint64{ // up to 1e19
		1, 10, 100, 1000, 10000,
		100000, 1000000, 10000000, 100000000, 1000000000, 10000000000,
		100000000000, 1000000000000, 10000000000000, 100000000000000,
		1000000000000000, 10000000000000000, 100000000000000000,
		1000000000000000000, 10000000000000000000,
	}
)

func BinaryDigits(value uint64) int {
	return int(8*unsafe.Sizeof(uint64(0))) - bits.LeadingZeros64(value)
}

// DecimalDigits returns the number of decimal digits in 'value'.
// see https://stackoverflow.com/a/25934909
func DecimalDigits(value uint64) int {
	if value == 0 {
		return 1
	}
	digits := digitsHelper[BinaryDigits(value)]
	if value >= decimalFactorTable[digits] {
		digits++
	}
	return digits
}

// FromUint64 returns the decimal digits of v.
func FromUint64(v uint64) []byte {
	result := make([]byte, DecimalDigits(v))
	for i := len(result) - 1; i >= 0; i-- {
		result[i] = byte(v % 10)
		v /= 10
	}
	return result
}

// ToUint64 converts digits into a uint64.
// ok is false if the value does not fit.
func ToUint64(digits []byte) (v uint64, ok bool) {
	for _, d := range digits {
		hi, lo := bits.Mul64(v, 10)
		if hi != 0 {
			return 0, false
		}
		var carry uint64
		v, carry = bits.Add64(lo, uint64(d), 0)
		if carry != 0 {
			return 0, false
		}
	}
	return v, true
}

// IsZero returns true if all the digits are zeros, or if there are no digits.
func IsZero(digits []byte) bool {
	for _, d := range digits {
		if d != 0 {
			return false
		}
	}
	return true
}

// RemoveLeadingZeros strips leading zeros.
// An all-zero or empty input becomes a single 0.
func RemoveLeadingZeros(digits []byte) []byte {
	i := 0
	for i < len(digits)-1 && digits[i] == 0 {
		i++
	}
	if len(digits) == 0 {
		return []byte{0}
	}
	return clone(digits[i:])
}

// RemoveTrailingZeros strips trailing zeros from fraction digits.
// An all-zero input becomes an empty slice.
func RemoveTrailingZeros(digits []byte) []byte {
	i := len(digits)
	for i > 0 && digits[i-1] == 0 {
		i--
	}
	return clone(digits[:i])
}

// PadLeft re-inserts leading zeros, so that the result is at least width digits long.
func PadLeft(digits []byte, width int) []byte {
	if len(digits) >= width {
		return clone(digits)
	}
	result := make([]byte, width)
	copy(result[width-len(digits):], digits)
	return result
}

// PadRight appends trailing zeros, so that the result is at least width digits long.
func PadRight(digits []byte, width int) []byte {
	if len(digits) >= width {
		return clone(digits)
	}
	result := make([]byte, width)
	copy(result, digits)
	return result
}

// Align pads integer parts on the left and fraction parts on the right,
// so that both pairs have equal widths.
func Align(aInt, aFrac, bInt, bFrac []byte) (aInt2, aFrac2, bInt2, bFrac2 []byte) {
	iw, fw := max(len(aInt), len(bInt)), max(len(aFrac), len(bFrac))
	return PadLeft(aInt, iw), PadRight(aFrac, fw), PadLeft(bInt, iw), PadRight(bFrac, fw)
}

// Concat joins several digit slices into a new one.
func Concat(parts ...[]byte) []byte {
	var n int
	for _, p := range parts {
		n += len(p)
	}
	result := make([]byte, 0, n)
	for _, p := range parts {
		result = append(result, p...)
	}
	return result
}

// Cmp compares two integers given as digit slices.
// Leading zeros are ignored.
// Returns -1 if a < b, 0 if a == b, 1 if a > b
func Cmp(a, b []byte) int {
	a, b = trimLeft(a), trimLeft(b)
	if len(a) != len(b) {
		if len(a) > len(b) {
			return 1
		}
		return -1
	}
	for i := range a {
		switch {
		case a[i] > b[i]:
			return 1
		case a[i] < b[i]:
			return -1
		}
	}
	return 0
}

// Sub returns a-b for integers given as digit slices. a must not be less than b.
func Sub(a, b []byte) []byte {
	result := make([]byte, len(a))
	var borrow int
	for i, j := len(a)-1, len(b)-1; i >= 0; i, j = i-1, j-1 {
		d := int(a[i]) - borrow
		if j >= 0 {
			d -= int(b[j])
		}
		borrow = 0
		if d < 0 {
			d += 10
			borrow = 1
		}
		result[i] = byte(d)
	}
	return RemoveLeadingZeros(result)
}

// MulDigit returns a*d, where d is a single digit.
func MulDigit(a []byte, d byte) []byte {
	result := make([]byte, len(a)+1)
	var carry int
	for i := len(a) - 1; i >= 0; i-- {
		p := int(a[i])*int(d) + carry
		result[i+1] = byte(p % 10)
		carry = p / 10
	}
	result[0] = byte(carry)
	return RemoveLeadingZeros(result)
}

func trimLeft(digits []byte) []byte {
	i := 0
	for i < len(digits) && digits[i] == 0 {
		i++
	}
	return digits[i:]
}

func clone(digits []byte) []byte {
	result := make([]byte, len(digits))
	copy(result, digits)
	return result
}
