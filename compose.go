// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parse

// Sequencing combinators.
// Each composite of "A then B" ORs the progress flags of its halves, so an
// enclosing [OneOf] sees progress as soon as either half consumed input.

// Map applies a pure function to the result of a parser.
func Map[C, X, T, R any](f func(T) R, parser Parser[C, X, T]) Parser[C, X, R] {
	return Parser[C, X, R]{parse: func(s State[C]) step[C, X, R] {
		result := parser.parse(s)
		if !result.good {
			return badStep[C, X, R](result.progress, result.errors)
		}
		return goodStep[C, X](result.progress, f(result.value), result.state)
	}}
}

// Map2 runs parserA then parserB and combines their values with f. A
// failure of parserB keeps parserA's progress ORed in, so a choice made
// before the failure stays committed.
func Map2[C, X, T1, T2, R any](
	f func(T1, T2) R,
	parserA Parser[C, X, T1],
	parserB Parser[C, X, T2],
) Parser[C, X, R] {
	return Parser[C, X, R]{parse: func(s State[C]) step[C, X, R] {
		resultA := parserA.parse(s)
		if !resultA.good {
			return badStep[C, X, R](resultA.progress, resultA.errors)
		}
		resultB := parserB.parse(resultA.state)
		if !resultB.good {
			return badStep[C, X, R](resultA.progress || resultB.progress, resultB.errors)
		}
		return goodStep[C, X](resultA.progress || resultB.progress, f(resultA.value, resultB.value), resultB.state)
	}}
}

// Ignore runs keep then ignore, yielding keep's value and ignore's end
// state. Use it to consume trailing syntax a value parser does not care
// about.
func Ignore[C, X, T1, T2 any](keep Parser[C, X, T1], ignore Parser[C, X, T2]) Parser[C, X, T1] {
	return Map2(func(k T1, _ T2) T1 { return k }, keep, ignore)
}

// AndThen sequences with a data dependency: it runs parser, then the
// parser returned by callback for the parsed value. Progress propagates
// exactly as in [Map2].
func AndThen[C, X, T, R any](
	callback func(T) Parser[C, X, R],
	parser Parser[C, X, T],
) Parser[C, X, R] {
	return Parser[C, X, R]{parse: func(s State[C]) step[C, X, R] {
		resultA := parser.parse(s)
		if !resultA.good {
			return badStep[C, X, R](resultA.progress, resultA.errors)
		}
		resultB := callback(resultA.value).parse(resultA.state)
		if !resultB.good {
			return badStep[C, X, R](resultA.progress || resultB.progress, resultB.errors)
		}
		return goodStep[C, X](resultA.progress || resultB.progress, resultB.value, resultB.state)
	}}
}
