// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parse

// Variable parses an identifier: one code point satisfying start, then
// zero or more satisfying inner. When the parsed name is in reserved,
// Variable fails without progress — reporting expecting at the entry
// position — so an enclosing [OneOf] can still try a keyword alternative.
func Variable[C, X any](
	start func(rune) bool,
	inner func(rune) bool,
	reserved map[string]bool,
	expecting X,
) Parser[C, X, string] {
	return Parser[C, X, string]{parse: func(s State[C]) step[C, X, string] {
		firstOffset := isSubChar(start, s.offset, s.src)
		if firstOffset == -1 {
			return badStep[C, X, string](false, bagFromState(s, expecting))
		}

		var offset, row, col int
		if firstOffset == -2 {
			offset, row, col = chompWhileHelp(inner, s.offset+1, s.row+1, 1, s.src)
		} else {
			offset, row, col = chompWhileHelp(inner, firstOffset, s.row, s.col+1, s.src)
		}

		name := s.src[s.offset:offset]
		if reserved[name] {
			return badStep[C, X, string](false, bagFromState(s, expecting))
		}
		return goodStep[C, X](true, name, s.withPosition(offset, row, col))
	}}
}
