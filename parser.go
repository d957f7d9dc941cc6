// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parse

// Parser represents a parser producing a value of type T, with
// caller-defined context type C and problem type X.
//
// A Parser is a function from state to step wrapped in an opaque struct.
// Build parsers from the primitives and combinators in this package; apply
// one with [Run].
type Parser[C, X, T any] struct {
	parse func(State[C]) step[C, X, T]
}

// Succeed lifts a pure value into a parser. It consumes nothing and never
// fails.
func Succeed[C, X, T any](value T) Parser[C, X, T] {
	return Parser[C, X, T]{parse: func(s State[C]) step[C, X, T] {
		return goodStep[C, X](false, value, s)
	}}
}

// Problem is a parser that always fails with the given problem, consuming
// nothing. Useful as a dead branch in [OneOf] or [AndThen].
func Problem[C, X, T any](problem X) Parser[C, X, T] {
	return Parser[C, X, T]{parse: func(s State[C]) step[C, X, T] {
		return badStep[C, X, T](false, bagFromState(s, problem))
	}}
}

// End succeeds only at the end of the source, reporting expecting
// otherwise. It consumes nothing.
func End[C, X any](expecting X) Parser[C, X, struct{}] {
	return Parser[C, X, struct{}]{parse: func(s State[C]) step[C, X, struct{}] {
		if len(s.src) == s.offset {
			return goodStep[C, X](false, struct{}{}, s)
		}
		return badStep[C, X, struct{}](false, bagFromState(s, expecting))
	}}
}
