// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parse

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
)

// Dead-end report rendering.
// A Reporter turns the dead ends of a failed run into a human-readable
// report: one block per dead end with the offending source line, a caret
// aligned under the failure column, the problem description, and the
// context frames that were open.

// Reporter renders dead ends against the source they came from.
type Reporter[C, X any] struct {
	// DescribeProblem renders a problem tag. Required.
	DescribeProblem func(X) string
	// DescribeContext renders a context frame. Nil omits context lines.
	DescribeContext func(C) string
	// Color enables ANSI colors for positions and carets.
	Color bool
}

// Format renders every dead end of e against its source.
func (r Reporter[C, X]) Format(e *ParseError[C, X]) string {
	return r.FormatDeadEnds(e.Source, e.DeadEnds)
}

// FormatDeadEnds renders deadEnds against source, one block per dead end
// in recording order.
func (r Reporter[C, X]) FormatDeadEnds(source string, deadEnds []DeadEnd[C, X]) string {
	paint := func(s string) string { return s }
	if r.Color {
		sprint := color.New(color.FgRed, color.Bold).SprintFunc()
		paint = func(s string) string { return sprint(s) }
	}

	lines := strings.Split(source, "\n")
	var b strings.Builder
	for i, d := range deadEnds {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s: %s\n", paint(fmt.Sprintf("%d:%d", d.Row, d.Col)), r.DescribeProblem(d.Problem))
		if d.Row >= 1 && d.Row <= len(lines) {
			line := lines[d.Row-1]
			b.WriteString("    " + line + "\n")
			b.WriteString("    " + caretPad(line, d.Col) + paint("^") + "\n")
		}
		if r.DescribeContext != nil {
			for _, frame := range d.ContextStack {
				fmt.Fprintf(&b, "    in %s (from %d:%d)\n",
					r.DescribeContext(frame.Context), frame.Row, frame.Col)
			}
		}
	}
	return b.String()
}

// caretPad returns the spaces that align a caret under column col of line,
// measuring the prefix by display width so wide runes keep the caret
// honest.
func caretPad(line string, col int) string {
	prefix := line
	if n := col - 1; n >= 0 {
		runes := []rune(line)
		if n > len(runes) {
			n = len(runes)
		}
		prefix = string(runes[:n])
	}
	return strings.Repeat(" ", runewidth.StringWidth(prefix))
}
