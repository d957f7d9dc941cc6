// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parse

import "unicode"

// Token pairs a literal with the problem to report when it does not match.
type Token[X any] struct {
	String    string
	Expecting X
}

// NewToken builds a Token, panicking on an empty literal. An empty-literal
// token is a programming error: it would match everywhere while consuming
// nothing.
func NewToken[X any](literal string, expecting X) Token[X] {
	if literal == "" {
		panic("parse: empty token literal")
	}
	return Token[X]{String: literal, Expecting: expecting}
}

// Match attempts to match the token's literal at the current offset. On
// success it advances past the literal, counting newlines for the
// row/column bookkeeping, with progress set iff the literal is non-empty.
// On mismatch it fails without progress, reporting the token's problem at
// the entry position.
func Match[C, X any](token Token[X]) Parser[C, X, struct{}] {
	progress := token.String != ""
	return Parser[C, X, struct{}]{parse: func(s State[C]) step[C, X, struct{}] {
		newOffset, newRow, newCol := isSubString(token.String, s.offset, s.row, s.col, s.src)
		if newOffset == -1 {
			return badStep[C, X, struct{}](false, bagFromState(s, token.Expecting))
		}
		return goodStep[C, X](progress, struct{}{}, s.withPosition(newOffset, newRow, newCol))
	}}
}

// Symbol parses punctuation-like literals. It is [Match] under a name that
// reads better at call sites.
func Symbol[C, X any](token Token[X]) Parser[C, X, struct{}] {
	return Match[C](token)
}

// Keyword matches the token's literal like [Match], but rejects the match
// when the next code point is a letter, digit, or underscore. This keeps
// "let" from matching inside "letter".
func Keyword[C, X any](token Token[X]) Parser[C, X, struct{}] {
	progress := token.String != ""
	return Parser[C, X, struct{}]{parse: func(s State[C]) step[C, X, struct{}] {
		newOffset, newRow, newCol := isSubString(token.String, s.offset, s.row, s.col, s.src)
		if newOffset == -1 || 0 <= isSubChar(isIdentifierChar, newOffset, s.src) {
			return badStep[C, X, struct{}](false, bagFromState(s, token.Expecting))
		}
		return goodStep[C, X](progress, struct{}{}, s.withPosition(newOffset, newRow, newCol))
	}}
}

func isIdentifierChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
