// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parse

// Choice and backtracking control.
// [OneOf] implements committed ordered choice: an alternative that failed
// after consuming input ends the choice. [Backtrackable] is the single
// escape hatch — it launders the progress flag so the choice may continue.

// OneOf tries each alternative in order against the same entry state.
//
// A success is the result. A failure that consumed input commits: it is
// returned as-is and later alternatives are not tried. A failure that
// consumed nothing adds its dead ends to the running bag and the next
// alternative is tried. When every alternative is exhausted, OneOf fails
// without progress, carrying the accumulated dead ends in trial order.
func OneOf[C, X, T any](parsers ...Parser[C, X, T]) Parser[C, X, T] {
	return Parser[C, X, T]{parse: func(s State[C]) step[C, X, T] {
		var errors bag[C, X] = emptyBag[C, X]{}
		for _, parser := range parsers {
			result := parser.parse(s)
			if result.good || result.progress {
				return result
			}
			errors = &appendBag[C, X]{left: errors, right: result.errors}
		}
		return badStep[C, X, T](false, errors)
	}}
}

// Backtrackable runs parser and forces progress to false on whatever step
// it returns. A failure after consuming input then no longer commits an
// enclosing [OneOf]. On success the end state is kept — only the flag is
// laundered, nothing is rewound.
func Backtrackable[C, X, T any](parser Parser[C, X, T]) Parser[C, X, T] {
	return Parser[C, X, T]{parse: func(s State[C]) step[C, X, T] {
		result := parser.parse(s)
		result.progress = false
		return result
	}}
}

// Lazy defers construction of a parser until it is first applied, breaking
// the definition-order cycle of recursive grammars.
func Lazy[C, X, T any](thunk func() Parser[C, X, T]) Parser[C, X, T] {
	return Parser[C, X, T]{parse: func(s State[C]) step[C, X, T] {
		return thunk().parse(s)
	}}
}

// InContext pushes a context frame at the current position for the
// duration of parser. On success the prior stack is restored in the
// outgoing state; on failure the dead ends keep the inner stack they
// recorded.
func InContext[C, X, T any](context C, parser Parser[C, X, T]) Parser[C, X, T] {
	return Parser[C, X, T]{parse: func(s State[C]) step[C, X, T] {
		inner := make([]Located[C], 0, len(s.context)+1)
		inner = append(inner, Located[C]{Row: s.row, Col: s.col, Context: context})
		inner = append(inner, s.context...)
		result := parser.parse(s.withContext(inner))
		if result.good {
			result.state = result.state.withContext(s.context)
		}
		return result
	}}
}

// WithIndent runs parser with the indent set to newIndent and restores the
// prior indent in the outgoing state on success. Parsers observe the
// indent through [GetIndent]; the engine attaches no meaning to it.
func WithIndent[C, X, T any](newIndent int, parser Parser[C, X, T]) Parser[C, X, T] {
	return Parser[C, X, T]{parse: func(s State[C]) step[C, X, T] {
		result := parser.parse(s.withIndent(newIndent))
		if result.good {
			result.state = result.state.withIndent(s.indent)
		}
		return result
	}}
}
