// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parse

import "fmt"

// Run applies parser to source. On success it returns the parsed value; on
// failure it returns a [ParseError] carrying one [DeadEnd] per alternative
// explored at the furthest committing branch, in recording order.
//
// Run seeds the state at offset 0, row 1, column 1, indent 1, with an
// empty context stack.
func Run[C, X, T any](parser Parser[C, X, T], source string) (T, error) {
	result := parser.parse(State[C]{src: source, offset: 0, indent: 1, row: 1, col: 1})
	if result.good {
		return result.value, nil
	}
	var zero T
	return zero, &ParseError[C, X]{Source: source, DeadEnds: bagToList(result.errors)}
}

// ParseError is the error returned by [Run]. It keeps the source so
// callers can render dead ends against the offending lines.
type ParseError[C, X any] struct {
	Source   string
	DeadEnds []DeadEnd[C, X]
}

// Error renders the first dead end as a one-line message.
func (e *ParseError[C, X]) Error() string {
	if len(e.DeadEnds) == 0 {
		return "parse: failed"
	}
	first := e.DeadEnds[0]
	if len(e.DeadEnds) == 1 {
		return fmt.Sprintf("parse error at %d:%d: %v", first.Row, first.Col, first.Problem)
	}
	return fmt.Sprintf("parse error at %d:%d: %v (and %d more dead ends)",
		first.Row, first.Col, first.Problem, len(e.DeadEnds)-1)
}
