// Copyright 2020 Aleksandr Demakin. All rights reserved.

package steppable

// Kind identifies an operation a trace was produced by.
type Kind uint8

const (
	KindAdd Kind = iota + 1
	KindSubtract
	KindMultiply
	KindDivide
	KindPower
	KindCompare
	KindBaseConvert
	KindDecimalConvert
	KindFactorial
	KindAbs
)

var kindNames = [...]string{
	KindAdd:            "add",
	KindSubtract:       "subtract",
	KindMultiply:       "multiply",
	KindDivide:         "divide",
	KindPower:          "power",
	KindCompare:        "compare",
	KindBaseConvert:    "base convert",
	KindDecimalConvert: "decimal convert",
	KindFactorial:      "factorial",
	KindAbs:            "abs",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "unknown"
}

// Trace is an ordered record of the steps an operation went through.
// The set of implementations is closed: *AddTrace, *SubtractTrace, *MultiplyTrace,
// *DivideTrace, *PowerTrace, *CompareTrace, *BaseConvertTrace, *DecimalConvertTrace,
// *FactorialTrace, *AbsTrace.
// Replaying a trace yields exactly the result returned along with it.
type Trace interface {
	Kind() Kind
	trace()
}

func (*AddTrace) Kind() Kind            { return KindAdd }
func (*SubtractTrace) Kind() Kind       { return KindSubtract }
func (*MultiplyTrace) Kind() Kind       { return KindMultiply }
func (*DivideTrace) Kind() Kind         { return KindDivide }
func (*PowerTrace) Kind() Kind          { return KindPower }
func (*CompareTrace) Kind() Kind        { return KindCompare }
func (*BaseConvertTrace) Kind() Kind    { return KindBaseConvert }
func (*DecimalConvertTrace) Kind() Kind { return KindDecimalConvert }
func (*FactorialTrace) Kind() Kind      { return KindFactorial }
func (*AbsTrace) Kind() Kind            { return KindAbs }

func (*AddTrace) trace()            {}
func (*SubtractTrace) trace()       {}
func (*MultiplyTrace) trace()       {}
func (*DivideTrace) trace()         {}
func (*PowerTrace) trace()          {}
func (*CompareTrace) trace()        {}
func (*BaseConvertTrace) trace()    {}
func (*DecimalConvertTrace) trace() {}
func (*FactorialTrace) trace()      {}
func (*AbsTrace) trace()            {}
