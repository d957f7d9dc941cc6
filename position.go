// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parse

// Non-consuming observers.
// Each succeeds without progress, exposing one component of the state.
// Chain them with [AndThen] to make position-sensitive decisions, e.g.
// indentation rules comparing [GetCol] against [GetIndent].

// GetPosition yields the current row and column.
func GetPosition[C, X any]() Parser[C, X, Position] {
	return Parser[C, X, Position]{parse: func(s State[C]) step[C, X, Position] {
		return goodStep[C, X](false, Position{Row: s.row, Col: s.col}, s)
	}}
}

// GetRow yields the current 1-origin row.
func GetRow[C, X any]() Parser[C, X, int] {
	return Parser[C, X, int]{parse: func(s State[C]) step[C, X, int] {
		return goodStep[C, X](false, s.row, s)
	}}
}

// GetCol yields the current 1-origin column.
func GetCol[C, X any]() Parser[C, X, int] {
	return Parser[C, X, int]{parse: func(s State[C]) step[C, X, int] {
		return goodStep[C, X](false, s.col, s)
	}}
}

// GetOffset yields the current byte offset.
func GetOffset[C, X any]() Parser[C, X, int] {
	return Parser[C, X, int]{parse: func(s State[C]) step[C, X, int] {
		return goodStep[C, X](false, s.offset, s)
	}}
}

// GetSource yields the full source string.
func GetSource[C, X any]() Parser[C, X, string] {
	return Parser[C, X, string]{parse: func(s State[C]) step[C, X, string] {
		return goodStep[C, X](false, s.src, s)
	}}
}

// GetIndent yields the current indent, as set by [WithIndent].
func GetIndent[C, X any]() Parser[C, X, int] {
	return Parser[C, X, int]{parse: func(s State[C]) step[C, X, int] {
		return goodStep[C, X](false, s.indent, s)
	}}
}
