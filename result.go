// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parse

// Result represents either a success value of type T or a problem of type
// X. [Number] uses one Result per numeric base: Ok holds the conversion
// for a permitted base, Err the problem to report for a forbidden one.
type Result[X, T any] struct {
	ok    bool
	value T
	err   X
}

// Ok creates a success Result.
func Ok[X, T any](value T) Result[X, T] {
	return Result[X, T]{ok: true, value: value}
}

// Err creates a failure Result.
func Err[X, T any](err X) Result[X, T] {
	return Result[X, T]{err: err}
}

// IsOk reports whether this is a success.
func (r Result[X, T]) IsOk() bool { return r.ok }

// IsErr reports whether this is a failure.
func (r Result[X, T]) IsErr() bool { return !r.ok }

// Value returns the success value. Panics when called on an Err.
func (r Result[X, T]) Value() T {
	if !r.ok {
		panic("parse: Value called on Err result")
	}
	return r.value
}

// Problem returns the failure problem. Panics when called on an Ok.
func (r Result[X, T]) Problem() X {
	if r.ok {
		panic("parse: Problem called on Ok result")
	}
	return r.err
}
