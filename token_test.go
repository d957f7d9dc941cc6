// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parse_test

import (
	"errors"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/google/go-cmp/cmp"

	"code.hybscloud.com/parse"
)

// The engine tests fix the context type to string and the problem type to
// string; both are opaque to the engine.
type deadEnd = parse.DeadEnd[string, string]

// failDeadEnds asserts that err is a ParseError and returns its dead ends.
func failDeadEnds(t *testing.T, err error) []deadEnd {
	t.Helper()
	var perr *parse.ParseError[string, string]
	if !errors.As(err, &perr) {
		t.Fatalf("got %v, want a ParseError", err)
	}
	return perr.DeadEnds
}

func tok(s string) parse.Token[string] {
	return parse.NewToken(s, "expecting "+s)
}

func TestMatchAdvances(t *testing.T) {
	p := parse.Map2(
		func(_ struct{}, pos parse.Position) parse.Position { return pos },
		parse.Match[string](tok("if")),
		parse.GetPosition[string, string](),
	)
	pos, err := parse.Run(p, "if x")
	assert.NoError(t, err)
	assert.Equal(t, parse.Position{Row: 1, Col: 3}, pos)
}

func TestMatchMismatch(t *testing.T) {
	_, err := parse.Run(parse.Match[string](tok("if")), "of")
	want := []deadEnd{{Row: 1, Col: 1, Problem: "expecting if"}}
	if diff := cmp.Diff(want, failDeadEnds(t, err)); diff != "" {
		t.Fatalf("dead ends mismatch (-want +got):\n%s", diff)
	}
}

func TestMatchNewlineColumn(t *testing.T) {
	p := parse.Map2(
		func(_ struct{}, pos parse.Position) parse.Position { return pos },
		parse.Match[string](tok("a\nbc")),
		parse.GetPosition[string, string](),
	)
	pos, err := parse.Run(p, "a\nbcd")
	assert.NoError(t, err)
	assert.Equal(t, parse.Position{Row: 2, Col: 3}, pos)
}

func TestKeywordBoundary(t *testing.T) {
	let := parse.Keyword[string](parse.NewToken("let", "expecting let"))

	_, err := parse.Run(let, "let")
	assert.NoError(t, err)

	_, err = parse.Run(let, "let x")
	assert.NoError(t, err)

	_, err = parse.Run(let, "letter")
	want := []deadEnd{{Row: 1, Col: 1, Problem: "expecting let"}}
	if diff := cmp.Diff(want, failDeadEnds(t, err)); diff != "" {
		t.Fatalf("dead ends mismatch (-want +got):\n%s", diff)
	}
}

func TestSymbolAliasOfMatch(t *testing.T) {
	_, err := parse.Run(parse.Symbol[string](tok("(")), "(x")
	assert.NoError(t, err)
}

func TestOneOfTokens(t *testing.T) {
	p := parse.OneOf(
		parse.Match[string](parse.NewToken("if", "e1")),
		parse.Match[string](parse.NewToken("in", "e2")),
	)
	_, err := parse.Run(p, "in")
	assert.NoError(t, err)
}

func TestNewTokenEmptyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for empty token literal")
		}
	}()
	parse.NewToken("", "boom")
}

func TestEnd(t *testing.T) {
	p := parse.Ignore(parse.Match[string](tok("ok")), parse.End[string]("expecting end"))
	_, err := parse.Run(p, "ok")
	assert.NoError(t, err)

	_, err = parse.Run(p, "ok!")
	want := []deadEnd{{Row: 1, Col: 3, Problem: "expecting end"}}
	if diff := cmp.Diff(want, failDeadEnds(t, err)); diff != "" {
		t.Fatalf("dead ends mismatch (-want +got):\n%s", diff)
	}
}
