// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parse

import "testing"

func TestIsSubStringMatch(t *testing.T) {
	offset, row, col := isSubString("let", 0, 1, 1, "let x = 1")
	if offset != 3 || row != 1 || col != 4 {
		t.Fatalf("got (%d, %d, %d), want (3, 1, 4)", offset, row, col)
	}
}

func TestIsSubStringMismatch(t *testing.T) {
	offset, row, col := isSubString("let", 0, 1, 1, "lex")
	if offset != -1 || row != 1 || col != 1 {
		t.Fatalf("got (%d, %d, %d), want (-1, 1, 1)", offset, row, col)
	}
}

func TestIsSubStringPastEnd(t *testing.T) {
	offset, _, _ := isSubString("let", 1, 1, 2, "le")
	if offset != -1 {
		t.Fatalf("got offset %d, want -1", offset)
	}
}

func TestIsSubStringNewlineColumn(t *testing.T) {
	// The first code point after the final newline sits at column 1,
	// so the column just past "a\nbc" is 3.
	offset, row, col := isSubString("a\nbc", 0, 1, 1, "a\nbcd")
	if offset != 4 || row != 2 || col != 3 {
		t.Fatalf("got (%d, %d, %d), want (4, 2, 3)", offset, row, col)
	}
}

func TestIsSubStringMultibyte(t *testing.T) {
	// Offsets are bytes, columns are code points.
	offset, row, col := isSubString("héllo", 0, 1, 1, "héllo!")
	if offset != 6 || row != 1 || col != 6 {
		t.Fatalf("got (%d, %d, %d), want (6, 1, 6)", offset, row, col)
	}
}

func TestIsSubCharSentinels(t *testing.T) {
	isX := func(r rune) bool { return r == 'x' }
	any := func(rune) bool { return true }

	if got := isSubChar(isX, 0, "xyz"); got != 1 {
		t.Fatalf("accept: got %d, want 1", got)
	}
	if got := isSubChar(isX, 0, "abc"); got != -1 {
		t.Fatalf("reject: got %d, want -1", got)
	}
	if got := isSubChar(any, 0, "\nrest"); got != -2 {
		t.Fatalf("newline: got %d, want -2", got)
	}
	if got := isSubChar(any, 3, "abc"); got != -1 {
		t.Fatalf("eof: got %d, want -1", got)
	}
	if got := isSubChar(any, 0, "日x"); got != 3 {
		t.Fatalf("multibyte: got %d, want 3", got)
	}
}

func TestFindSubStringFound(t *testing.T) {
	offset, row, col := findSubString("*/", 0, 1, 1, "comment */ rest")
	if offset != 8 || row != 1 || col != 9 {
		t.Fatalf("got (%d, %d, %d), want (8, 1, 9)", offset, row, col)
	}
}

func TestFindSubStringAcrossLines(t *testing.T) {
	offset, row, col := findSubString("*/", 0, 1, 1, "a\nbb\n*/")
	if offset != 5 || row != 3 || col != 1 {
		t.Fatalf("got (%d, %d, %d), want (5, 3, 1)", offset, row, col)
	}
}

func TestFindSubStringNotFound(t *testing.T) {
	// Row and column land at the end of the source.
	offset, row, col := findSubString("*/", 0, 1, 1, "a\nbcd")
	if offset != -1 || row != 2 || col != 4 {
		t.Fatalf("got (%d, %d, %d), want (-1, 2, 4)", offset, row, col)
	}
}
