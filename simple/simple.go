// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package simple is the plain-problem facade over the parse engine.
//
// It fixes the engine's context type to nothing and its problem type to
// the built-in [Problem] set, so parsers can be composed without supplying
// problem values: [Symbol]("(") instead of a token paired with a caller
// problem. Grammars that outgrow the built-in problems move to the root
// package unchanged in shape.
package simple

import (
	"errors"
	"fmt"

	"code.hybscloud.com/parse"
)

// unit is the fixed context type; the facade records no context frames.
type unit = struct{}

// Parser parses a value of type T with the built-in [Problem] set.
type Parser[T any] struct {
	inner parse.Parser[unit, Problem, T]
}

// DeadEnd is one failure record without context frames.
type DeadEnd struct {
	Row     int
	Col     int
	Problem Problem
}

// ParseError is the error returned by [Run].
type ParseError struct {
	Source   string
	DeadEnds []DeadEnd
}

// Error renders the first dead end as a one-line message.
func (e *ParseError) Error() string {
	if len(e.DeadEnds) == 0 {
		return "parse: failed"
	}
	first := e.DeadEnds[0]
	if len(e.DeadEnds) == 1 {
		return fmt.Sprintf("parse error at %d:%d: %s", first.Row, first.Col, first.Problem)
	}
	return fmt.Sprintf("parse error at %d:%d: %s (and %d more dead ends)",
		first.Row, first.Col, first.Problem, len(e.DeadEnds)-1)
}

// Report renders every dead end against the source, with a caret under
// each failure column. Colorize enables ANSI colors.
func (e *ParseError) Report(colorize bool) string {
	deadEnds := make([]parse.DeadEnd[unit, Problem], len(e.DeadEnds))
	for i, d := range e.DeadEnds {
		deadEnds[i] = parse.DeadEnd[unit, Problem]{Row: d.Row, Col: d.Col, Problem: d.Problem}
	}
	r := parse.Reporter[unit, Problem]{DescribeProblem: Problem.String, Color: colorize}
	return r.FormatDeadEnds(e.Source, deadEnds)
}

// Run applies parser to source, returning the parsed value or a
// [*ParseError].
func Run[T any](parser Parser[T], source string) (T, error) {
	value, err := parse.Run(parser.inner, source)
	if err == nil {
		return value, nil
	}
	var perr *parse.ParseError[unit, Problem]
	if !errors.As(err, &perr) {
		return value, err
	}
	deadEnds := make([]DeadEnd, len(perr.DeadEnds))
	for i, d := range perr.DeadEnds {
		deadEnds[i] = DeadEnd{Row: d.Row, Col: d.Col, Problem: d.Problem}
	}
	return value, &ParseError{Source: source, DeadEnds: deadEnds}
}

// Succeed lifts a pure value into a parser.
func Succeed[T any](value T) Parser[T] {
	return Parser[T]{inner: parse.Succeed[unit, Problem](value)}
}

// Match parses the exact literal, reporting [Expecting] on mismatch.
func Match(literal string) Parser[unit] {
	return Parser[unit]{inner: parse.Match[unit](parse.NewToken(literal, expecting(literal)))}
}

// Symbol parses the exact literal, reporting [ExpectingSymbol] on
// mismatch.
func Symbol(literal string) Parser[unit] {
	return Parser[unit]{inner: parse.Symbol[unit](parse.NewToken(literal, expectingSymbol(literal)))}
}

// Keyword parses the literal with an identifier boundary after it,
// reporting [ExpectingKeyword] on mismatch.
func Keyword(literal string) Parser[unit] {
	return Parser[unit]{inner: parse.Keyword[unit](parse.NewToken(literal, expectingKeyword(literal)))}
}

// End succeeds only at the end of the source.
func End() Parser[unit] {
	return Parser[unit]{inner: parse.End[unit](Problem{Kind: ExpectingEnd})}
}

// ChompIf consumes one code point satisfying pred, reporting
// [UnexpectedCharacter] otherwise.
func ChompIf(pred func(rune) bool) Parser[unit] {
	return Parser[unit]{inner: parse.ChompIf[unit](pred, Problem{Kind: UnexpectedCharacter})}
}

// ChompWhile consumes zero or more code points satisfying pred.
func ChompWhile(pred func(rune) bool) Parser[unit] {
	return Parser[unit]{inner: parse.ChompWhile[unit, Problem](pred)}
}

// ChompUntil consumes until the literal is found, leaving it unconsumed.
func ChompUntil(literal string) Parser[unit] {
	return Parser[unit]{inner: parse.ChompUntil[unit](parse.NewToken(literal, expecting(literal)))}
}

// ChompUntilEndOr consumes until the literal is found or the source ends.
func ChompUntilEndOr(literal string) Parser[unit] {
	return Parser[unit]{inner: parse.ChompUntilEndOr[unit, Problem](literal)}
}

// Spaces consumes zero or more spaces, newlines, and carriage returns.
func Spaces() Parser[unit] {
	return Parser[unit]{inner: parse.Spaces[unit, Problem]()}
}

// GetChompedString yields the span of source parser chomped.
func GetChompedString[T any](parser Parser[T]) Parser[string] {
	return Parser[string]{inner: parse.GetChompedString(parser.inner)}
}

// MapChompedString applies f to the chomped span and the parsed value.
func MapChompedString[T, R any](f func(string, T) R, parser Parser[T]) Parser[R] {
	return Parser[R]{inner: parse.MapChompedString(f, parser.inner)}
}

// Map applies a pure function to the result of a parser.
func Map[T, R any](f func(T) R, parser Parser[T]) Parser[R] {
	return Parser[R]{inner: parse.Map(f, parser.inner)}
}

// Map2 runs two parsers in sequence and combines their values with f.
func Map2[T1, T2, R any](f func(T1, T2) R, parserA Parser[T1], parserB Parser[T2]) Parser[R] {
	return Parser[R]{inner: parse.Map2(f, parserA.inner, parserB.inner)}
}

// Ignore runs keep then ignore, yielding keep's value.
func Ignore[T1, T2 any](keep Parser[T1], ignore Parser[T2]) Parser[T1] {
	return Parser[T1]{inner: parse.Ignore(keep.inner, ignore.inner)}
}

// AndThen runs parser, then the parser returned by callback for the value.
func AndThen[T, R any](callback func(T) Parser[R], parser Parser[T]) Parser[R] {
	return Parser[R]{inner: parse.AndThen(
		func(value T) parse.Parser[unit, Problem, R] { return callback(value).inner },
		parser.inner,
	)}
}

// OneOf tries each alternative in order under the commit discipline.
func OneOf[T any](parsers ...Parser[T]) Parser[T] {
	inners := make([]parse.Parser[unit, Problem, T], len(parsers))
	for i, p := range parsers {
		inners[i] = p.inner
	}
	return Parser[T]{inner: parse.OneOf(inners...)}
}

// Backtrackable launders progress so an enclosing [OneOf] keeps trying
// after the wrapped parser fails mid-input.
func Backtrackable[T any](parser Parser[T]) Parser[T] {
	return Parser[T]{inner: parse.Backtrackable(parser.inner)}
}

// Lazy defers construction of a parser, enabling recursive grammars.
func Lazy[T any](thunk func() Parser[T]) Parser[T] {
	return Parser[T]{inner: parse.Lazy(func() parse.Parser[unit, Problem, T] { return thunk().inner })}
}

// Variable parses an identifier shaped by start and inner, rejecting
// reserved names.
func Variable(start, inner func(rune) bool, reserved map[string]bool) Parser[string] {
	return Parser[string]{inner: parse.Variable[unit](start, inner, reserved, Problem{Kind: ExpectingVariable})}
}

// GetPosition yields the current row and column.
func GetPosition() Parser[parse.Position] {
	return Parser[parse.Position]{inner: parse.GetPosition[unit, Problem]()}
}

// GetRow yields the current 1-origin row.
func GetRow() Parser[int] {
	return Parser[int]{inner: parse.GetRow[unit, Problem]()}
}

// GetCol yields the current 1-origin column.
func GetCol() Parser[int] {
	return Parser[int]{inner: parse.GetCol[unit, Problem]()}
}

// GetOffset yields the current byte offset.
func GetOffset() Parser[int] {
	return Parser[int]{inner: parse.GetOffset[unit, Problem]()}
}

// GetSource yields the full source string.
func GetSource() Parser[string] {
	return Parser[string]{inner: parse.GetSource[unit, Problem]()}
}

// GetIndent yields the current indent.
func GetIndent() Parser[int] {
	return Parser[int]{inner: parse.GetIndent[unit, Problem]()}
}

// WithIndent runs parser with the indent set to newIndent.
func WithIndent[T any](newIndent int, parser Parser[T]) Parser[T] {
	return Parser[T]{inner: parse.WithIndent(newIndent, parser.inner)}
}

// LineComment parses a comment from start up to the next newline.
func LineComment(start string) Parser[unit] {
	return Parser[unit]{inner: parse.LineComment[unit](parse.NewToken(start, expecting(start)))}
}

// MultiComment parses a non-nesting comment from open up to (not
// including) close.
func MultiComment(open, close string) Parser[unit] {
	return Parser[unit]{inner: parse.MultiComment[unit](
		parse.NewToken(open, expecting(open)),
		parse.NewToken(close, expecting(close)),
	)}
}
