// Copyright 2020 Aleksandr Demakin. All rights reserved.

package steppable

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrMalformedInput is returned for strings that are not decimal numbers.
	ErrMalformedInput = errors.New("malformed input")
	// ErrDivisionByZero is returned for a zero divisor or a zero denominator.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrInvalidArgument is returned for negative precisions and exponents, and unsupported bases.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrStepLimit is returned when an operation would need more steps than allowed.
	// It is an ErrInvalidArgument.
	ErrStepLimit = errors.Wrap(ErrInvalidArgument, "step limit exceeded")
)

// ParseError describes a malformed decimal string.
type ParseError struct {
	// Pos is a 1-based position of the offending symbol, or 0 if not applicable.
	Pos int
	Msg string
}

func newParseError(msg string, pos int) *ParseError {
	return &ParseError{Msg: msg, Pos: pos}
}

func (pe *ParseError) Error() string {
	if pe.Pos == 0 {
		return "parsing failed: " + pe.Msg
	}
	return "parsing failed: " + pe.Msg + fmt.Sprintf(" at pos %d", pe.Pos)
}

// Unwrap makes errors.Is(err, ErrMalformedInput) true for parse errors.
func (pe *ParseError) Unwrap() error {
	return ErrMalformedInput
}

func invalidArgf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidArgument, format, args...)
}
