// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parse

// Character-class consumers.
// The chomp family consumes code points without producing a value; wrap a
// chomping parser in [GetChompedString] or [MapChompedString] to capture
// the matched span of source.

// ChompIf consumes exactly one code point satisfying pred, reporting
// expecting otherwise.
func ChompIf[C, X any](pred func(rune) bool, expecting X) Parser[C, X, struct{}] {
	return Parser[C, X, struct{}]{parse: func(s State[C]) step[C, X, struct{}] {
		newOffset := isSubChar(pred, s.offset, s.src)
		if newOffset == -1 {
			return badStep[C, X, struct{}](false, bagFromState(s, expecting))
		}
		if newOffset == -2 {
			return goodStep[C, X](true, struct{}{}, s.withPosition(s.offset+1, s.row+1, 1))
		}
		return goodStep[C, X](true, struct{}{}, s.withPosition(newOffset, s.row, s.col+1))
	}}
}

// ChompWhile consumes zero or more code points satisfying pred. It never
// fails; progress is set iff the offset advanced.
func ChompWhile[C, X any](pred func(rune) bool) Parser[C, X, struct{}] {
	return Parser[C, X, struct{}]{parse: func(s State[C]) step[C, X, struct{}] {
		offset, row, col := chompWhileHelp(pred, s.offset, s.row, s.col, s.src)
		return goodStep[C, X](s.offset < offset, struct{}{}, s.withPosition(offset, row, col))
	}}
}

// chompWhileHelp advances through code points accepted by pred, keeping
// the row/column bookkeeping via the isSubChar sentinels.
func chompWhileHelp(pred func(rune) bool, offset, row, col int, src string) (int, int, int) {
	for {
		switch newOffset := isSubChar(pred, offset, src); newOffset {
		case -1:
			return offset, row, col
		case -2:
			offset++
			row++
			col = 1
		default:
			offset = newOffset
			col++
		}
	}
}

// ChompUntil consumes code points until the token's literal is found,
// stopping just before it so the literal itself stays unconsumed. When the
// literal does not occur, ChompUntil fails without progress, reporting the
// token's problem at the end of the source.
func ChompUntil[C, X any](token Token[X]) Parser[C, X, struct{}] {
	return Parser[C, X, struct{}]{parse: func(s State[C]) step[C, X, struct{}] {
		newOffset, newRow, newCol := findSubString(token.String, s.offset, s.row, s.col, s.src)
		if newOffset == -1 {
			return badStep[C, X, struct{}](false, bagFromInfo(newRow, newCol, token.Expecting, s.context))
		}
		return goodStep[C, X](s.offset < newOffset, struct{}{}, s.withPosition(newOffset, newRow, newCol))
	}}
}

// ChompUntilEndOr consumes code points until sub is found or the source
// ends, stopping just before sub. It never fails.
func ChompUntilEndOr[C, X any](sub string) Parser[C, X, struct{}] {
	return Parser[C, X, struct{}]{parse: func(s State[C]) step[C, X, struct{}] {
		newOffset, newRow, newCol := findSubString(sub, s.offset, s.row, s.col, s.src)
		if newOffset < 0 {
			newOffset = len(s.src)
		}
		return goodStep[C, X](s.offset < newOffset, struct{}{}, s.withPosition(newOffset, newRow, newCol))
	}}
}

// Spaces consumes zero or more spaces, newlines, and carriage returns.
// Tabs are not consumed; callers with tab-accepting grammars compose their
// own [ChompWhile].
func Spaces[C, X any]() Parser[C, X, struct{}] {
	return ChompWhile[C, X](func(r rune) bool { return r == ' ' || r == '\n' || r == '\r' })
}

// MapChompedString runs parser and applies f to the chomped span of source
// together with the parsed value.
func MapChompedString[C, X, T, R any](f func(string, T) R, parser Parser[C, X, T]) Parser[C, X, R] {
	return Parser[C, X, R]{parse: func(s State[C]) step[C, X, R] {
		result := parser.parse(s)
		if !result.good {
			return badStep[C, X, R](result.progress, result.errors)
		}
		chomped := s.src[s.offset:result.state.offset]
		return goodStep[C, X](result.progress, f(chomped, result.value), result.state)
	}}
}

// GetChompedString runs parser and yields the chomped span of source,
// discarding the parsed value.
func GetChompedString[C, X, T any](parser Parser[C, X, T]) Parser[C, X, string] {
	return MapChompedString(func(chomped string, _ T) string { return chomped }, parser)
}
