// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package simple

import "fmt"

// ProblemKind enumerates everything that can go wrong under the built-in
// problem set.
type ProblemKind int

const (
	// Expecting reports a missed plain token; Detail holds the literal.
	Expecting ProblemKind = iota + 1
	// ExpectingInt reports a missed or malformed integer.
	ExpectingInt
	// ExpectingNumber reports a missed or malformed number.
	ExpectingNumber
	// ExpectingHex reports a hexadecimal literal where none is allowed.
	ExpectingHex
	// ExpectingOctal reports an octal literal where none is allowed.
	ExpectingOctal
	// ExpectingBinary reports a binary literal where none is allowed.
	ExpectingBinary
	// ExpectingFloat reports a missed or malformed float.
	ExpectingFloat
	// ExpectingEnd reports leftover input where the end was required.
	ExpectingEnd
	// ExpectingVariable reports a missed or reserved identifier.
	ExpectingVariable
	// ExpectingSymbol reports a missed symbol; Detail holds the literal.
	ExpectingSymbol
	// ExpectingKeyword reports a missed keyword; Detail holds the literal.
	ExpectingKeyword
	// UnexpectedCharacter reports a code point rejected by ChompIf.
	UnexpectedCharacter
)

// Problem is one member of the built-in problem set. Problems are
// comparable values: Kind tags the variant and Detail carries the literal
// for the token-like kinds.
type Problem struct {
	Kind   ProblemKind
	Detail string
}

// String renders a human-readable message.
func (p Problem) String() string {
	switch p.Kind {
	case Expecting:
		return fmt.Sprintf("expecting %q", p.Detail)
	case ExpectingInt:
		return "expecting an integer"
	case ExpectingNumber:
		return "expecting a number"
	case ExpectingHex:
		return "expecting a hexadecimal integer"
	case ExpectingOctal:
		return "expecting an octal integer"
	case ExpectingBinary:
		return "expecting a binary integer"
	case ExpectingFloat:
		return "expecting a floating-point number"
	case ExpectingEnd:
		return "expecting end of input"
	case ExpectingVariable:
		return "expecting a variable name"
	case ExpectingSymbol:
		return fmt.Sprintf("expecting symbol %q", p.Detail)
	case ExpectingKeyword:
		return fmt.Sprintf("expecting keyword %q", p.Detail)
	case UnexpectedCharacter:
		return "unexpected character"
	}
	return fmt.Sprintf("problem(%d)", int(p.Kind))
}

func expecting(detail string) Problem       { return Problem{Kind: Expecting, Detail: detail} }
func expectingSymbol(detail string) Problem { return Problem{Kind: ExpectingSymbol, Detail: detail} }
func expectingKeyword(detail string) Problem {
	return Problem{Kind: ExpectingKeyword, Detail: detail}
}
