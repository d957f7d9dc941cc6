// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parse_test

import (
	"math/rand/v2"
	"strings"
	"testing"

	"code.hybscloud.com/parse"
)

const propertyN = 1000

// randSource returns a random string of length [0, 16] mixing printable
// ASCII, newlines, and multibyte runes.
func randSource(rng *rand.Rand) string {
	n := rng.IntN(17)
	var b strings.Builder
	for range n {
		switch rng.IntN(8) {
		case 0:
			b.WriteByte('\n')
		case 1:
			b.WriteRune('日')
		default:
			b.WriteByte(byte(rng.IntN(95) + 32))
		}
	}
	return b.String()
}

// TestPropertySucceedIdempotent: Run(Succeed(v), s) = Ok(v) for all v, s.
func TestPropertySucceedIdempotent(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		v := rng.IntN(2001) - 1000
		src := randSource(rng)
		got, err := parse.Run(parse.Succeed[string, string](v), src)
		if err != nil || got != v {
			t.Fatalf("Succeed(%d) on %q: got (%d, %v)", v, src, got, err)
		}
	}
}

// TestPropertyAndThenLeftIdentity: AndThen(f, Succeed(v)) ≡ f(v).
func TestPropertyAndThenLeftIdentity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	f := func(n int) parse.Parser[string, string, int] {
		return parse.Succeed[string, string](n * 3)
	}
	for range propertyN {
		v := rng.IntN(2001) - 1000
		src := randSource(rng)
		left, errL := parse.Run(parse.AndThen(f, parse.Succeed[string, string](v)), src)
		right, errR := parse.Run(f(v), src)
		if (errL == nil) != (errR == nil) || left != right {
			t.Fatalf("left identity: (%d, %v) != (%d, %v) (v=%d)", left, errL, right, errR, v)
		}
	}
}

// TestPropertyIgnoreProjectsLeft: Ignore(a, b) yields a's value and b's
// end state.
func TestPropertyIgnoreProjectsLeft(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	isLower := func(r rune) bool { return 'a' <= r && r <= 'z' }
	isUpper := func(r rune) bool { return 'A' <= r && r <= 'Z' }
	for range propertyN {
		src := randSource(rng)
		a := parse.GetChompedString(parse.ChompWhile[string, string](isLower))
		b := parse.GetChompedString(parse.ChompWhile[string, string](isUpper))

		pair, err := parse.Run(parse.Map2(
			func(kept string, offset int) [2]any { return [2]any{kept, offset} },
			parse.Ignore(a, b),
			parse.GetOffset[string, string](),
		), src)
		if err != nil {
			t.Fatalf("unexpected failure on %q: %v", src, err)
		}

		lower := leadingSpan(src, isLower)
		upper := leadingSpan(src[len(lower):], isUpper)
		if pair[0] != lower || pair[1] != len(lower)+len(upper) {
			t.Fatalf("on %q: got %v, want [%q %d]", src, pair, lower, len(lower)+len(upper))
		}
	}
}

func leadingSpan(s string, pred func(rune) bool) string {
	for i, r := range s {
		if !pred(r) {
			return s[:i]
		}
	}
	return s
}

// TestPropertyProgressMonotone: a parser that consumed input fails an
// enclosing sequence with progress set, committing a OneOf; a parser that
// consumed nothing does not.
func TestPropertyProgressMonotone(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	isLower := func(r rune) bool { return 'a' <= r && r <= 'z' }
	for range propertyN {
		src := randSource(rng)
		consumed := leadingSpan(src, isLower)

		failing := parse.Ignore(
			parse.ChompWhile[string, string](isLower),
			parse.Problem[string, string, struct{}]("stop"),
		)
		_, err := parse.Run(parse.OneOf(failing, parse.Succeed[string, string](struct{}{})), src)

		committed := err != nil
		if committed != (len(consumed) > 0) {
			t.Fatalf("on %q: committed=%v with %q consumed", src, committed, consumed)
		}
	}
}

// TestPropertyPositionBookkeeping: after chomping the whole source, row is
// 1 + the newline count and column restarts after the final newline.
func TestPropertyPositionBookkeeping(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	always := func(rune) bool { return true }
	for range propertyN {
		src := randSource(rng)
		pos, err := parse.Run(parse.Map2(
			func(_ struct{}, pos parse.Position) parse.Position { return pos },
			parse.ChompWhile[string, string](always),
			parse.GetPosition[string, string](),
		), src)
		if err != nil {
			t.Fatalf("unexpected failure on %q: %v", src, err)
		}

		wantRow := 1 + strings.Count(src, "\n")
		lastLine := src
		if i := strings.LastIndexByte(src, '\n'); i >= 0 {
			lastLine = src[i+1:]
		}
		wantCol := 1 + len([]rune(lastLine))
		if pos.Row != wantRow || pos.Col != wantCol {
			t.Fatalf("on %q: got %d:%d, want %d:%d", src, pos.Row, pos.Col, wantRow, wantCol)
		}
	}
}
