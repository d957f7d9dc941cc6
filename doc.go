// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package parse provides parser-combinator primitives for turning text
// into structured values.
//
// A [Parser] is a function from a parsing state to a step: either success
// with a value and a new state, or failure with a bag of dead ends. Small
// primitive parsers (match a literal, consume a character class, recognize
// a number, capture a name) compose into larger parsers through
// combinators ([Map2], [AndThen], [OneOf], [Lazy], [Backtrackable]).
//
// The package is generic over a caller-defined context type C (syntactic
// frames attached to failures) and problem type X (what went wrong). The
// subpackage simple fixes both for callers that do not need their own.
//
// # Design Philosophy
//
// parse provides:
//   - Minimal but complete primitives for literals, character classes,
//     numbers, and identifiers
//   - A commit discipline that keeps choice linear-time and failure
//     positions precise
//   - Caller-parameterized problem and context types for rich error
//     reports
//
// # Commit Discipline
//
// Every step carries a progress flag recording whether the parser consumed
// any input. Progress is the single signal that drives choice:
//
//   - [OneOf] tries alternatives in order; an alternative that fails after
//     consuming input commits the choice, and later alternatives are not
//     tried
//   - [Backtrackable] launders progress so an enclosing [OneOf] may still
//     try other alternatives after a partial match
//
// This forbids exponential re-parsing and pins each failure to the
// furthest committing branch.
//
// # Core Operations
//
// Construction:
//
//   - [Succeed]: Lift a pure value into a parser
//   - [Problem]: A parser that always fails with the given problem
//   - [Match], [Symbol], [Keyword]: Literal tokens
//   - [ChompIf], [ChompWhile], [ChompUntil], [ChompUntilEndOr]: Character
//     consumers
//   - [Variable]: Identifiers with reserved-word filtering
//   - [Number], [Int], [Float]: Numeric literals in four bases
//
// Composition:
//
//   - [Map], [Map2], [Ignore]: Transform and combine results
//   - [AndThen]: Sequence with data dependency
//   - [OneOf]: Ordered choice under the commit discipline
//   - [Lazy]: Break definition-order cycles in recursive grammars
//   - [InContext]: Attach a syntactic context frame to failures
//   - [WithIndent], [GetIndent]: Caller-defined indentation bookkeeping
//
// Execution:
//
//   - [Run]: Parse a source string, returning the value or a [ParseError]
//     holding one [DeadEnd] per alternative explored at the furthest
//     committing branch
//
// # Positions
//
// Rows and columns are 1-origin; column 1 is the first code point on a
// line and columns count code points. Newlines are ASCII '\n'. Offsets
// are byte offsets into the source, and the character probes advance by the UTF-8 width of the
// decoded code point, so predicates always observe whole code points.
//
// # Purity
//
// A [Run] call is a pure function of (parser, source). States and steps
// are immutable values, the error bag is append-only, and no global state
// is touched; independent runs may execute concurrently without
// coordination. Termination is the caller's responsibility: a combinator
// loop must contain a progress-making inner parser.
package parse
