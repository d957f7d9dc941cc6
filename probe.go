// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parse

import (
	"strings"
	"unicode/utf8"
)

// Low-level source probes.
// All three probe the source at a byte offset and keep the row/column
// bookkeeping exact. Offsets advance by the UTF-8 width of the decoded
// code point; columns advance by one per code point; a '\n' resets the
// column to 1 and bumps the row.

// isSubString reports whether sub occurs at offset. On a match it returns
// the offset, row, and column just past the match; otherwise it returns
// offset -1 and the row and column unchanged.
//
// The post-match column follows the newline convention: when sub contains
// a '\n', the first code point after the final newline sits at column 1.
func isSubString(sub string, offset, row, col int, src string) (int, int, int) {
	if offset+len(sub) > len(src) || src[offset:offset+len(sub)] != sub {
		return -1, row, col
	}
	if last := strings.LastIndexByte(sub, '\n'); last >= 0 {
		row += strings.Count(sub, "\n")
		col = 1 + utf8.RuneCountInString(sub[last+1:])
	} else {
		col += utf8.RuneCountInString(sub)
	}
	return offset + len(sub), row, col
}

// isSubChar applies pred to the code point at offset. It returns -1 when
// the predicate rejects or offset is at the end of the source, -2 when the
// predicate accepts a '\n', and otherwise the offset just past the code
// point. The -2 sentinel lets callers do the row/column bookkeeping for
// newlines without re-decoding.
func isSubChar(pred func(rune) bool, offset int, src string) int {
	if offset >= len(src) {
		return -1
	}
	r, width := utf8.DecodeRuneInString(src[offset:])
	if !pred(r) {
		return -1
	}
	if r == '\n' {
		return -2
	}
	return offset + width
}

// findSubString scans forward from offset for the first occurrence of sub.
// It returns the offset at which sub starts, or -1 when sub does not occur,
// together with the row and column of the stop position: the start of the
// match, or the end of the source when there is none.
func findSubString(sub string, offset, row, col int, src string) (int, int, int) {
	found := strings.Index(src[offset:], sub)
	target := len(src)
	if found >= 0 {
		found += offset
		target = found
	}
	for offset < target {
		r, width := utf8.DecodeRuneInString(src[offset:])
		if r == '\n' {
			offset++
			row++
			col = 1
		} else {
			offset += width
			col++
		}
	}
	return found, row, col
}

// isASCIICode reports whether the byte at offset equals code. Valid only
// for ASCII code points, which are one byte in UTF-8.
func isASCIICode(code byte, offset int, src string) bool {
	return offset < len(src) && src[offset] == code
}
