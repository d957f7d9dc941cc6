// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package jsontree_test

import (
	"errors"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/google/go-cmp/cmp"

	"code.hybscloud.com/parse/jsontree"
	"code.hybscloud.com/parse/simple"
)

func TestParseScalars(t *testing.T) {
	tests := []struct {
		input string
		want  jsontree.Value
	}{
		{"null", jsontree.Value{Kind: jsontree.KindNull}},
		{"true", jsontree.Value{Kind: jsontree.KindBool, Bool: true}},
		{"false", jsontree.Value{Kind: jsontree.KindBool}},
		{"42", jsontree.Value{Kind: jsontree.KindNumber, Number: 42}},
		{"-1.5e2", jsontree.Value{Kind: jsontree.KindNumber, Number: -150}},
		{`"hi"`, jsontree.Value{Kind: jsontree.KindString, Str: "hi"}},
		{`""`, jsontree.Value{Kind: jsontree.KindString}},
	}
	for _, tt := range tests {
		got, err := jsontree.Parse(tt.input)
		assert.NoError(t, err, "input %q", tt.input)
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Fatalf("input %q (-want +got):\n%s", tt.input, diff)
		}
	}
}

func TestParseEscapes(t *testing.T) {
	got, err := jsontree.Parse(`"a\n\t\"b\"é"`)
	assert.NoError(t, err)
	assert.Equal(t, "a\n\t\"b\"é", got.Str)
}

func TestParseDocument(t *testing.T) {
	source := `{
  "name": "parse",
  "versions": [1, 2.5, -3],
  "tags": {"stable": true, "notes": null},
  "empty": []
}`
	got, err := jsontree.Parse(source)
	assert.NoError(t, err)

	want := jsontree.Value{Kind: jsontree.KindObject, Fields: []jsontree.Field{
		{Name: "name", Value: jsontree.Value{Kind: jsontree.KindString, Str: "parse"}},
		{Name: "versions", Value: jsontree.Value{Kind: jsontree.KindArray, Items: []jsontree.Value{
			{Kind: jsontree.KindNumber, Number: 1},
			{Kind: jsontree.KindNumber, Number: 2.5},
			{Kind: jsontree.KindNumber, Number: -3},
		}}},
		{Name: "tags", Value: jsontree.Value{Kind: jsontree.KindObject, Fields: []jsontree.Field{
			{Name: "stable", Value: jsontree.Value{Kind: jsontree.KindBool, Bool: true}},
			{Name: "notes", Value: jsontree.Value{Kind: jsontree.KindNull}},
		}}},
		{Name: "empty", Value: jsontree.Value{Kind: jsontree.KindArray}},
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("document mismatch (-want +got):\n%s", diff)
	}
}

func TestParseErrorPosition(t *testing.T) {
	_, err := jsontree.Parse("{\n  \"a\": 1,\n  \"b\" 2\n}")
	var perr *simple.ParseError
	assert.True(t, errors.As(err, &perr))
	assert.Equal(t, 3, perr.DeadEnds[0].Row)
	assert.Equal(t, 7, perr.DeadEnds[0].Col)
	assert.Equal(t, simple.ExpectingSymbol, perr.DeadEnds[0].Problem.Kind)
	assert.Equal(t, ":", perr.DeadEnds[0].Problem.Detail)
}

func TestParseRequiresEnd(t *testing.T) {
	_, err := jsontree.Parse("1 2")
	var perr *simple.ParseError
	assert.True(t, errors.As(err, &perr))
	assert.Equal(t, simple.ExpectingEnd, perr.DeadEnds[0].Problem.Kind)
}

func TestParseTrailingComma(t *testing.T) {
	_, err := jsontree.Parse("[1, ]")
	assert.Error(t, err)
}
