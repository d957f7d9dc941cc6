// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parse

// Parsing state threading.
// A State is an immutable snapshot of progress through one source string:
// byte offset, 1-origin row and column, the current indent, and the stack
// of context frames. Parsers never mutate a State; they derive new ones.

// Located pairs a caller-defined context value with the row and column at
// which that context was entered.
type Located[C any] struct {
	Row     int
	Col     int
	Context C
}

// Position is a row/column pair, 1-origin, as returned by [GetPosition].
type Position struct {
	Row int
	Col int
}

// State is an immutable snapshot of parsing progress. The zero State is
// not meaningful; [Run] seeds the initial one.
//
// Invariants: 0 ≤ offset ≤ len(src), row ≥ 1, col ≥ 1, and (row, col) is
// consistent with the newlines of src up to offset.
type State[C any] struct {
	src     string
	offset  int
	indent  int
	context []Located[C]
	row     int
	col     int
}

// Source returns the full source string shared by every state of a run.
func (s State[C]) Source() string { return s.src }

// Offset returns the byte offset into the source.
func (s State[C]) Offset() int { return s.offset }

// Indent returns the current indent. Callers interpret it through their
// own indentation rules; [Run] seeds it to 1.
func (s State[C]) Indent() int { return s.indent }

// Row returns the 1-origin row.
func (s State[C]) Row() int { return s.row }

// Col returns the 1-origin column.
func (s State[C]) Col() int { return s.col }

// Context returns the context stack, innermost frame first. The returned
// slice must not be mutated.
func (s State[C]) Context() []Located[C] { return s.context }

// withPosition derives a state at a new offset/row/col.
// The context slice is shared; states treat it as immutable.
func (s State[C]) withPosition(offset, row, col int) State[C] {
	return State[C]{src: s.src, offset: offset, indent: s.indent, context: s.context, row: row, col: col}
}

// withContext derives a state with a different context stack.
func (s State[C]) withContext(context []Located[C]) State[C] {
	return State[C]{src: s.src, offset: s.offset, indent: s.indent, context: context, row: s.row, col: s.col}
}

// withIndent derives a state with a different indent.
func (s State[C]) withIndent(indent int) State[C] {
	return State[C]{src: s.src, offset: s.offset, indent: indent, context: s.context, row: s.row, col: s.col}
}

// bumpOffset derives a state advanced to newOffset on the current row.
// Valid only when no newline lies between offset and newOffset.
func (s State[C]) bumpOffset(newOffset int) State[C] {
	return s.withPosition(newOffset, s.row, s.col+(newOffset-s.offset))
}
