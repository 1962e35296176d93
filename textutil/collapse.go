package textutil

import (
	"strings"
	"unicode"
)

// CollapseWhitespace truncates every run of consecutive whitespace
// characters in s to at most max characters. A max of 0 strips whitespace
// entirely. Newlines count like any other whitespace, so pasted text with
// large blank gaps shrinks before being sent for translation.
//
//	CollapseWhitespace("a   b", 1) // "a b"
//	CollapseWhitespace("a   b", 0) // "ab"
func CollapseWhitespace(s string, max int) string {
	var out strings.Builder
	out.Grow(len(s))
	run := 0
	for _, ch := range s {
		if unicode.IsSpace(ch) {
			run++
		} else {
			run = 0
		}
		if run <= max {
			out.WriteRune(ch)
		}
	}
	return out.String()
}
