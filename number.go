// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parse

import "strconv"

// Numeric recognizer.
// Number handles decimal, hexadecimal ("0x"), octal ("0o"), and binary
// ("0b") integers plus floats with an optional fraction and exponent. Each
// base is configured with a [Result]: Ok holds the conversion for a
// permitted base, Err the problem for a forbidden one.
//
// Integer accumulation uses Go's int; overflow wraps silently. Float
// conversion parses the chomped span with strconv so the full grammar
// (digits before and after the point, signed exponent) is honored.

// NumberConfig configures [Number]: one Result per base, plus the problem
// for a malformed literal (Invalid) and for no number at all (Expecting).
type NumberConfig[X, T any] struct {
	Int       Result[X, func(int) T]
	Hex       Result[X, func(int) T]
	Octal     Result[X, func(int) T]
	Binary    Result[X, func(int) T]
	Float     Result[X, func(float64) T]
	Invalid   X
	Expecting X
}

// Number parses a numeric literal according to config. A failure after
// the first digit — a forbidden base, a malformed literal — commits, so an
// enclosing [OneOf] will not retry; wrap in [Backtrackable] to recover.
func Number[C, X, T any](config NumberConfig[X, T]) Parser[C, X, T] {
	return Parser[C, X, T]{parse: func(s State[C]) step[C, X, T] {
		if isASCIICode('0', s.offset, s.src) {
			zeroOffset := s.offset + 1
			baseOffset := zeroOffset + 1
			switch {
			case isASCIICode('x', zeroOffset, s.src):
				endOffset, n := consumeBase16(baseOffset, s.src)
				return finalizeInt[C](config.Invalid, config.Hex, baseOffset, endOffset, n, s)
			case isASCIICode('o', zeroOffset, s.src):
				endOffset, n := consumeBase(8, baseOffset, s.src)
				return finalizeInt[C](config.Invalid, config.Octal, baseOffset, endOffset, n, s)
			case isASCIICode('b', zeroOffset, s.src):
				endOffset, n := consumeBase(2, baseOffset, s.src)
				return finalizeInt[C](config.Invalid, config.Binary, baseOffset, endOffset, n, s)
			default:
				// Leading zero is the whole integer part; continue into
				// the float path.
				return finalizeFloat[C](config, zeroOffset, 0, s)
			}
		}
		endOffset, n := consumeBase(10, s.offset, s.src)
		return finalizeFloat[C](config, endOffset, n, s)
	}}
}

// Int parses a decimal integer, rejecting the prefixed bases and floats
// with invalid.
func Int[C, X any](expecting, invalid X) Parser[C, X, int] {
	return Number[C](NumberConfig[X, int]{
		Int:       Ok[X](func(n int) int { return n }),
		Hex:       Err[X, func(int) int](invalid),
		Octal:     Err[X, func(int) int](invalid),
		Binary:    Err[X, func(int) int](invalid),
		Float:     Err[X, func(float64) int](invalid),
		Invalid:   invalid,
		Expecting: expecting,
	})
}

// Float parses a decimal integer or float, rejecting the prefixed bases
// with invalid. A plain integer yields its float value.
func Float[C, X any](expecting, invalid X) Parser[C, X, float64] {
	return Number[C](NumberConfig[X, float64]{
		Int:       Ok[X](func(n int) float64 { return float64(n) }),
		Hex:       Err[X, func(int) float64](invalid),
		Octal:     Err[X, func(int) float64](invalid),
		Binary:    Err[X, func(int) float64](invalid),
		Float:     Ok[X](func(f float64) float64 { return f }),
		Invalid:   invalid,
		Expecting: expecting,
	})
}

// finalizeInt finishes an integer literal whose digits span
// [startOffset, endOffset) and accumulated to n.
func finalizeInt[C, X, T any](
	invalid X,
	handler Result[X, func(int) T],
	startOffset, endOffset, n int,
	s State[C],
) step[C, X, T] {
	if handler.IsErr() {
		return badStep[C, X, T](true, bagFromState(s, handler.Problem()))
	}
	if startOffset == endOffset {
		return badStep[C, X, T](s.offset < startOffset, bagFromState(s, invalid))
	}
	return goodStep[C, X](true, handler.Value()(n), s.bumpOffset(endOffset))
}

// finalizeFloat finishes a literal whose integer part ended at intOffset
// with accumulated value n, extending over an optional fraction and
// exponent. A plain integer delegates to finalizeInt with the decimal
// slot.
func finalizeFloat[C, X, T any](config NumberConfig[X, T], intOffset, n int, s State[C]) step[C, X, T] {
	floatOffset := consumeDotAndExp(intOffset, s.src)

	if floatOffset < 0 {
		// Exponent marker with no digits after it; floatOffset is the
		// negated offset of where the digits should have been.
		return badStep[C, X, T](true,
			bagFromInfo(s.row, s.col-(floatOffset+s.offset), config.Invalid, s.context))
	}
	if s.offset == floatOffset {
		return badStep[C, X, T](false, bagFromState(s, config.Expecting))
	}
	if intOffset == floatOffset {
		return finalizeInt[C](config.Invalid, config.Int, s.offset, intOffset, n, s)
	}
	if config.Float.IsErr() {
		return badStep[C, X, T](true, bagFromState(s, config.Float.Problem()))
	}
	value, err := strconv.ParseFloat(s.src[s.offset:floatOffset], 64)
	if err != nil {
		return badStep[C, X, T](true, bagFromState(s, config.Invalid))
	}
	return goodStep[C, X](true, config.Float.Value()(value), s.bumpOffset(floatOffset))
}

// consumeBase chomps digits of the given base (2..10) from offset,
// returning the end offset and the accumulated value.
func consumeBase(base, offset int, src string) (int, int) {
	var n int
	for ; offset < len(src); offset++ {
		digit := int(src[offset]) - '0'
		if digit < 0 || base <= digit {
			break
		}
		n = base*n + digit
	}
	return offset, n
}

// consumeBase16 chomps hexadecimal digits from offset, returning the end
// offset and the accumulated value.
func consumeBase16(offset int, src string) (int, int) {
	var n int
	for ; offset < len(src); offset++ {
		switch c := src[offset]; {
		case '0' <= c && c <= '9':
			n = 16*n + int(c-'0')
		case 'A' <= c && c <= 'F':
			n = 16*n + int(c-'A') + 10
		case 'a' <= c && c <= 'f':
			n = 16*n + int(c-'a') + 10
		default:
			return offset, n
		}
	}
	return offset, n
}

// consumeDotAndExp chomps an optional fraction then an optional exponent.
func consumeDotAndExp(offset int, src string) int {
	if isASCIICode('.', offset, src) {
		return consumeExp(chompBase10(offset+1, src), src)
	}
	return consumeExp(offset, src)
}

// consumeExp chomps an optional exponent: an 'e' or 'E' marker, an
// optional sign, and decimal digits. A marker with no digits yields the
// negated end offset so the caller can point at the malformed exponent.
func consumeExp(offset int, src string) int {
	if !isASCIICode('e', offset, src) && !isASCIICode('E', offset, src) {
		return offset
	}
	eOffset := offset + 1
	expOffset := eOffset
	if isASCIICode('+', eOffset, src) || isASCIICode('-', eOffset, src) {
		expOffset = eOffset + 1
	}
	newOffset := chompBase10(expOffset, src)
	if expOffset == newOffset {
		return -newOffset
	}
	return newOffset
}

// chompBase10 chomps decimal digits from offset, returning the end offset.
func chompBase10(offset int, src string) int {
	for ; offset < len(src); offset++ {
		if c := src[offset]; c < '0' || '9' < c {
			return offset
		}
	}
	return offset
}
