// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parse

// The step algebra.
// Running a parser yields a step: Good (a value and the state after it) or
// Bad (a bag of dead ends). Both carry a progress flag recording whether
// any input was consumed. Progress drives the commit discipline: sequence
// combinators OR the flags of their halves, and [OneOf] stops trying
// alternatives as soon as one fails with progress set.

// step is the result of applying a parser to a state.
// good==true: value and state hold. good==false: errors holds.
type step[C, X, T any] struct {
	good     bool
	progress bool
	value    T
	state    State[C]
	errors   bag[C, X]
}

// goodStep builds a success step.
func goodStep[C, X, T any](progress bool, value T, state State[C]) step[C, X, T] {
	return step[C, X, T]{good: true, progress: progress, value: value, state: state}
}

// badStep builds a failure step. Partial progress is discarded: a Bad
// carries no state, only the positions recorded in its bag.
func badStep[C, X, T any](progress bool, errors bag[C, X]) step[C, X, T] {
	return step[C, X, T]{progress: progress, errors: errors}
}
