// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parse

// Comment helpers built from the literal and chomp primitives.

// LineComment parses a single-line comment: the start token, then
// everything up to (not including) the next newline or the end of the
// source.
func LineComment[C, X any](start Token[X]) Parser[C, X, struct{}] {
	return Ignore(Match[C](start), ChompUntilEndOr[C, X]("\n"))
}

// MultiComment parses a non-nesting multi-line comment: the open token,
// then everything up to the close token. The close token itself is left
// unconsumed; follow with [Match] to consume it.
//
// TODO: nested comments need a depth-counting helper built on OneOf and
// AndThen, committing at the outer open.
func MultiComment[C, X any](open, close Token[X]) Parser[C, X, struct{}] {
	return Ignore(Match[C](open), ChompUntil[C](close))
}
