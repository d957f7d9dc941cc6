// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package simple

import "code.hybscloud.com/parse"

// Numeric conveniences over the engine's [parse.Number] with the built-in
// problems filled in.

// Int parses a decimal integer, rejecting prefixed bases and floats with
// [ExpectingInt].
func Int() Parser[int] {
	expectingInt := Problem{Kind: ExpectingInt}
	return Parser[int]{inner: parse.Int[unit](expectingInt, expectingInt)}
}

// Float parses a decimal integer or float, rejecting prefixed bases with
// [ExpectingFloat]. A plain integer yields its float value.
func Float() Parser[float64] {
	expectingFloat := Problem{Kind: ExpectingFloat}
	return Parser[float64]{inner: parse.Float[unit](expectingFloat, expectingFloat)}
}

// NumberConfig configures [Number] with one conversion per permitted
// base. A nil slot forbids the base, reporting its kind-specific problem.
type NumberConfig[T any] struct {
	Int    func(int) T
	Hex    func(int) T
	Octal  func(int) T
	Binary func(int) T
	Float  func(float64) T
}

// Number parses a numeric literal in any of the permitted bases.
func Number[T any](config NumberConfig[T]) Parser[T] {
	expectingNumber := Problem{Kind: ExpectingNumber}
	return Parser[T]{inner: parse.Number[unit](parse.NumberConfig[Problem, T]{
		Int:       intSlot(config.Int, ExpectingInt),
		Hex:       intSlot(config.Hex, ExpectingHex),
		Octal:     intSlot(config.Octal, ExpectingOctal),
		Binary:    intSlot(config.Binary, ExpectingBinary),
		Float:     floatSlot(config.Float, ExpectingFloat),
		Invalid:   expectingNumber,
		Expecting: expectingNumber,
	})}
}

func intSlot[T any](f func(int) T, kind ProblemKind) parse.Result[Problem, func(int) T] {
	if f == nil {
		return parse.Err[Problem, func(int) T](Problem{Kind: kind})
	}
	return parse.Ok[Problem](f)
}

func floatSlot[T any](f func(float64) T, kind ProblemKind) parse.Result[Problem, func(float64) T] {
	if f == nil {
		return parse.Err[Problem, func(float64) T](Problem{Kind: kind})
	}
	return parse.Ok[Problem](f)
}
