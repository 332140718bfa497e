// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package steppable implements exact arbitrary-precision decimal arithmetic.
// Every operation returns, along with its result, a trace of the steps
// a person would take to do the same calculation by hand.
// See the report package for turning traces into text.
package steppable

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode"

	"github.com/avdva/steppable/internal/mathutil"
	"github.com/pkg/errors"
)

var (
	// JSONMode defines the way all numbers are marshaled into json, see JSONMode* constants.
	// This variable is not thread-safe, so this should be changed on program start.
	JSONMode = JSONModeString
)

const (
	// JSONModeString produces numbers as strings, like `"1234.5678"`
	JSONModeString = iota
	// JSONModeNumber produces numbers as json numbers, like `1234.5678`.
	// No precision is lost, but some json decoders will convert the value into a float.
	JSONModeNumber
)

const (
	delim = '.'
)

// Number is an immutable decimal number of arbitrary length.
// It consists of a sign, the digits of the integer part, the digits of the fractional part,
// and a precision: the number of fractional digits the number was written or computed with.
// The zero value is 0.
//
// Numbers are safe for concurrent use: no method modifies the receiver,
// and no method returns a slice sharing memory with it.
type Number struct {
	neg      bool
	integer  []byte
	fraction []byte
	prec     int
}

// newNumber creates a number from digit slices, which must not be shared with anyone else.
// It removes leading zeros from the integer part. Fractional digits are kept as is.
func newNumber(neg bool, integer, fraction []byte, prec int) Number {
	integer = mathutil.RemoveLeadingZeros(integer)
	if len(fraction) > prec {
		prec = len(fraction)
	}
	if neg && mathutil.IsZero(integer) && mathutil.IsZero(fraction) {
		neg = false
	}
	return Number{neg: neg, integer: integer, fraction: fraction, prec: prec}
}

// New returns a number for given int64.
func New(v int64) Number {
	if v < 0 {
		// -v overflows for math.MinInt64, but uint64(-v) is still correct.
		return newNumber(true, mathutil.FromUint64(uint64(-v)), nil, 0)
	}
	return NewFromUint64(uint64(v))
}

// NewFromUint64 returns a number for given uint64.
func NewFromUint64(v uint64) Number {
	return newNumber(false, mathutil.FromUint64(v), nil, 0)
}

// Parse parses a decimal string.
// The string may have an optional sign, digits, and an optional single decimal point.
// Surrounding spaces and quotes are ignored.
// Leading zeros of the integer part and trailing zeros of the fractional part are dropped,
// the precision of the result is the number of fractional digits as written.
func Parse(s string) (Number, error) {
	s, offset, neg := prepareString(s)
	if len(s) == 0 {
		return Number{}, newParseError("empty input", 0)
	}
	integer, fraction, err := parseString(s)
	if err != nil {
		if pe, ok := err.(*ParseError); ok && pe.Pos > 0 {
			pe.Pos += offset
		}
		return Number{}, err
	}
	prec := len(fraction)
	return newNumber(neg, integer, mathutil.RemoveTrailingZeros(fraction), prec), nil
}

// MustParse is like Parse, but panics on errors.
func MustParse(s string) Number {
	n, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return n
}

// prepareString cleans the string from quotes, spaces, and a sign symbol.
func prepareString(s string) (prepared string, offset int, neg bool) {
	if len(s) > 0 && s[0] == '"' {
		s = s[1:]
		offset++
	}
	if len(s) > 0 && s[len(s)-1] == '"' {
		s = s[:len(s)-1]
	}
	if trimmed := strings.TrimLeftFunc(s, unicode.IsSpace); len(trimmed) != len(s) {
		offset += len(s) - len(trimmed)
		s = trimmed
	}
	s = strings.TrimRightFunc(s, unicode.IsSpace)
	if len(s) > 0 && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		offset++
		s = s[1:]
	}
	return s, offset, neg
}

// parseString splits a string without a sign into integer and fractional digits.
func parseString(s string) (integer, fraction []byte, err error) {
	delimPos := -1
	digits := make([]byte, 0, len(s))
	for i, r := range s {
		switch {
		case '0' <= r && r <= '9':
			digits = append(digits, byte(r-'0'))
		case r == delim:
			if delimPos >= 0 {
				return nil, nil, newParseError("unexpected delimiter", i+1)
			}
			delimPos = len(digits)
		default:
			// +1 to start indices from 1.
			return nil, nil, newParseError(fmt.Sprintf("unexpected symbol %q", r), i+1)
		}
	}
	if len(digits) == 0 {
		return nil, nil, newParseError("no digits", 0)
	}
	if delimPos < 0 {
		return digits, nil, nil
	}
	return digits[:delimPos], digits[delimPos:], nil
}

// String returns a string representation of the number.
// Fractional digits are printed as stored, so a number padded to a precision keeps its trailing zeros.
func (n Number) String() string {
	var builder strings.Builder
	n.toStringsBuilder(&builder)
	return builder.String()
}

func (n Number) toStringsBuilder(builder *strings.Builder) {
	if n.neg {
		builder.WriteByte('-')
	}
	writeDigits(builder, n.intDigits())
	if len(n.fraction) > 0 {
		builder.WriteByte(delim)
		writeDigits(builder, n.fraction)
	}
}

func writeDigits(builder *strings.Builder, digits []byte) {
	for _, d := range digits {
		builder.WriteByte('0' + d)
	}
}

// GoString returns debug string representation.
func (n Number) GoString() string {
	return n.String() + fmt.Sprintf(" {prec: %d}", n.prec)
}

// MarshalText implements encoding.TextMarshaler.
func (n Number) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (n *Number) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

// MarshalJSON marshals the number according to current JSONMode.
func (n Number) MarshalJSON() ([]byte, error) {
	if JSONMode == JSONModeNumber {
		return []byte(n.String()), nil
	}
	return json.Marshal(n.String())
}

// UnmarshalJSON unmarshals a json string or a json number.
func (n *Number) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return errors.New("empty json")
	}
	return n.UnmarshalText(data)
}

// IntegerDigits returns the digits of the integer part, most significant first.
// For numbers less than 1 it returns a single zero.
func (n Number) IntegerDigits() []byte {
	return mathutil.PadLeft(n.intDigits(), 0)
}

// FractionDigits returns the digits after the decimal point, most significant first.
func (n Number) FractionDigits() []byte {
	return mathutil.PadRight(n.fraction, 0)
}

// Precision returns the precision annotation of the number.
func (n Number) Precision() int {
	return n.prec
}

// Sign returns -1 if n < 0, 0 if n == 0, 1 if n > 0.
func (n Number) Sign() int {
	switch {
	case n.IsZero():
		return 0
	case n.neg:
		return -1
	default:
		return 1
	}
}

// IsZero returns true, if the number is 0.
func (n Number) IsZero() bool {
	return mathutil.IsZero(n.integer) && mathutil.IsZero(n.fraction)
}

// IsNeg returns true, if the number is less than 0.
func (n Number) IsNeg() bool {
	return n.neg
}

// IsInt returns true, if the number has no significant fractional digits.
func (n Number) IsInt() bool {
	return mathutil.IsZero(n.fraction)
}

// Uint64 returns the number as a uint64, if it is a non-negative integer that fits.
func (n Number) Uint64() (v uint64, ok bool) {
	if n.neg || !n.IsInt() {
		return 0, false
	}
	return mathutil.ToUint64(n.intDigits())
}

// Neg returns -n.
func (n Number) Neg() Number {
	return newNumber(!n.neg, n.IntegerDigits(), n.FractionDigits(), n.prec)
}

// Abs returns |n|.
func (n Number) Abs() Number {
	return newNumber(false, n.IntegerDigits(), n.FractionDigits(), n.prec)
}

// Normalized removes trailing zeros from the fractional part.
// The precision stays the same.
func (n Number) Normalized() Number {
	return newNumber(n.neg, n.IntegerDigits(), mathutil.RemoveTrailingZeros(n.fraction), n.prec)
}

// WithPrecision returns n with the precision annotation set to prec.
// Fractional digits beyond prec are dropped without rounding.
func (n Number) WithPrecision(prec int) (Number, error) {
	if prec < 0 {
		return Number{}, invalidArgf("negative precision %d", prec)
	}
	return n.truncate(prec), nil
}

func (n Number) truncate(prec int) Number {
	fraction := n.fraction
	if len(fraction) > prec {
		fraction = fraction[:prec]
	}
	return newNumber(n.neg, n.IntegerDigits(), mathutil.RemoveTrailingZeros(fraction), prec)
}

// Equal returns true, if both numbers have the same value.
// Precision and trailing zeros are ignored.
func (n Number) Equal(other Number) bool {
	return n.Cmp(other) == 0
}

// Cmp compares two numbers.
// Returns -1 if n < other, 0 if n == other, 1 if n > other
func (n Number) Cmp(other Number) int {
	ord, _ := Compare(n, other)
	return int(ord)
}

func (n Number) intDigits() []byte {
	if len(n.integer) == 0 {
		return []byte{0}
	}
	return n.integer
}

// digits returns all the digits of n with fraction width fw: the integer part followed
// by the fractional part padded with zeros.
func (n Number) digits(fw int) []byte {
	return mathutil.Concat(n.intDigits(), mathutil.PadRight(n.fraction, fw))
}

// fromDigits builds a number from all the digits and the count of fractional digits among them.
func fromDigits(neg bool, digits []byte, fw, prec int) Number {
	if fw > len(digits) {
		digits = mathutil.PadLeft(digits, fw)
	}
	split := len(digits) - fw
	integer := mathutil.PadLeft(digits[:split], 0)
	fraction := mathutil.RemoveTrailingZeros(digits[split:])
	return newNumber(neg, integer, fraction, prec)
}
