// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package jsontree parses JSON documents into a value tree, preserving
// object field order. It exists as a worked example of composing the
// simple facade into a real grammar; it is not a drop-in replacement for
// encoding/json.
package jsontree

import (
	"strconv"

	"code.hybscloud.com/parse/simple"
)

// Kind tags a Value variant.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// Field is one object member.
type Field struct {
	Name  string
	Value Value
}

// Value is one node of a parsed JSON document. Kind selects which of the
// payload fields is meaningful.
type Value struct {
	Kind   Kind
	Bool   bool
	Number float64
	Str    string
	Items  []Value
	Fields []Field
}

// Parse parses a complete JSON document, requiring the end of input after
// the top-level value.
func Parse(source string) (Value, error) {
	document := simple.Ignore(
		simple.Map2(func(_ struct{}, v Value) Value { return v }, simple.Spaces(), value()),
		simple.Ignore(simple.Spaces(), simple.End()),
	)
	return simple.Run(document, source)
}

func value() simple.Parser[Value] {
	return simple.OneOf(
		object(),
		array(),
		stringValue(),
		numberValue(),
		constant("true", Value{Kind: KindBool, Bool: true}),
		constant("false", Value{Kind: KindBool}),
		constant("null", Value{Kind: KindNull}),
	)
}

func constant(keyword string, v Value) simple.Parser[Value] {
	return simple.Map(func(struct{}) Value { return v }, simple.Keyword(keyword))
}

func numberValue() simple.Parser[Value] {
	toValue := func(f float64) Value { return Value{Kind: KindNumber, Number: f} }
	return simple.OneOf(
		simple.Map2(
			func(_ struct{}, f float64) Value { return toValue(-f) },
			simple.Symbol("-"),
			simple.Float(),
		),
		simple.Map(toValue, simple.Float()),
	)
}

// --- strings ---

func stringValue() simple.Parser[Value] {
	return simple.Map(func(s string) Value { return Value{Kind: KindString, Str: s} }, stringLit())
}

func stringLit() simple.Parser[string] {
	return simple.Ignore(
		simple.Map2(func(_ struct{}, body string) string { return body },
			simple.Symbol(`"`),
			stringBody(),
		),
		simple.Symbol(`"`),
	)
}

// stringBody parses the chunks between the quotes: plain runs and escape
// sequences, concatenated. The closing quote terminates the recursion by
// failing both consuming alternatives without progress.
func stringBody() simple.Parser[string] {
	joined := func(chunk, rest string) string { return chunk + rest }
	return simple.OneOf(
		simple.Map2(joined, escape(), simple.Lazy(stringBody)),
		simple.Map2(joined, plainChunk(), simple.Lazy(stringBody)),
		simple.Succeed(""),
	)
}

func plainChunk() simple.Parser[string] {
	plain := func(r rune) bool { return r != '"' && r != '\\' && r != '\n' }
	return simple.GetChompedString(
		simple.Ignore(simple.ChompIf(plain), simple.ChompWhile(plain)),
	)
}

func escape() simple.Parser[string] {
	return simple.Map2(
		func(_ struct{}, decoded string) string { return decoded },
		simple.Symbol(`\`),
		simple.OneOf(
			escapeChar(`"`, `"`),
			escapeChar(`\`, `\`),
			escapeChar("/", "/"),
			escapeChar("n", "\n"),
			escapeChar("t", "\t"),
			escapeChar("r", "\r"),
			escapeChar("b", "\b"),
			escapeChar("f", "\f"),
			unicodeEscape(),
		),
	)
}

func escapeChar(literal, decoded string) simple.Parser[string] {
	return simple.Map(func(struct{}) string { return decoded }, simple.Symbol(literal))
}

func unicodeEscape() simple.Parser[string] {
	isHexDigit := func(r rune) bool {
		return '0' <= r && r <= '9' || 'a' <= r && r <= 'f' || 'A' <= r && r <= 'F'
	}
	hex := simple.ChompIf(isHexDigit)
	hex4 := simple.GetChompedString(
		simple.Ignore(simple.Ignore(simple.Ignore(hex, hex), hex), hex),
	)
	return simple.Map2(
		func(_ struct{}, digits string) string {
			n, _ := strconv.ParseUint(digits, 16, 32)
			return string(rune(n))
		},
		simple.Symbol("u"),
		hex4,
	)
}

// --- arrays ---

func array() simple.Parser[Value] {
	return simple.Map(
		func(items []Value) Value { return Value{Kind: KindArray, Items: items} },
		simple.Map2(
			func(_ struct{}, items []Value) []Value { return items },
			simple.Ignore(simple.Symbol("["), simple.Spaces()),
			simple.OneOf(
				simple.Map(func(struct{}) []Value { return nil }, simple.Symbol("]")),
				arrayItems(),
			),
		),
	)
}

func arrayItems() simple.Parser[[]Value] {
	return simple.Map2(
		func(head Value, tail []Value) []Value { return append([]Value{head}, tail...) },
		simple.Ignore(simple.Lazy(value), simple.Spaces()),
		arrayTail(),
	)
}

func arrayTail() simple.Parser[[]Value] {
	return simple.OneOf(
		simple.Map(func(struct{}) []Value { return nil }, simple.Symbol("]")),
		simple.Map2(
			func(_ struct{}, rest []Value) []Value { return rest },
			simple.Ignore(simple.Symbol(","), simple.Spaces()),
			simple.Lazy(arrayItems),
		),
	)
}

// --- objects ---

func object() simple.Parser[Value] {
	return simple.Map(
		func(fields []Field) Value { return Value{Kind: KindObject, Fields: fields} },
		simple.Map2(
			func(_ struct{}, fields []Field) []Field { return fields },
			simple.Ignore(simple.Symbol("{"), simple.Spaces()),
			simple.OneOf(
				simple.Map(func(struct{}) []Field { return nil }, simple.Symbol("}")),
				objectFields(),
			),
		),
	)
}

func objectFields() simple.Parser[[]Field] {
	return simple.Map2(
		func(head Field, tail []Field) []Field { return append([]Field{head}, tail...) },
		objectField(),
		objectTail(),
	)
}

func objectField() simple.Parser[Field] {
	name := simple.Ignore(
		simple.Ignore(stringLit(), simple.Spaces()),
		simple.Ignore(simple.Symbol(":"), simple.Spaces()),
	)
	return simple.Map2(
		func(name string, v Value) Field { return Field{Name: name, Value: v} },
		name,
		simple.Ignore(simple.Lazy(value), simple.Spaces()),
	)
}

func objectTail() simple.Parser[[]Field] {
	return simple.OneOf(
		simple.Map(func(struct{}) []Field { return nil }, simple.Symbol("}")),
		simple.Map2(
			func(_ struct{}, rest []Field) []Field { return rest },
			simple.Ignore(simple.Symbol(","), simple.Spaces()),
			simple.Lazy(objectFields),
		),
	)
}
