// Package minifmt implements the mini format-string language used for
// translation output templates.
//
// A template is compiled once into an immutable instruction sequence and may
// then be rendered any number of times against different argument lists:
//
//	tmpl, err := minifmt.Compile("%s -> %r%n")
//	if err != nil {
//		// malformed template
//	}
//	out, err := tmpl.RenderStrings("hello", "world")
//	// out: "hello -> \"world\"\n"
//
// # Syntax
//
// Literal text is emitted verbatim. The escape introducer is '%':
//
//	%s    substitute the next argument (plain form)
//	%r    substitute the next argument (quoted debug form)
//	%R    substitute the next argument (expanded debug form)
//	%0s   substitute argument 0 (any single digit 0-9, then a style char)
//	%%    a literal '%'
//	%n    line feed
//	%N    carriage return
//	%t    tab
//	%e    ESC (0x1b)
//	%xHH      code point from 2 hex digits
//	%uHHHH    code point from 4 hex digits
//	%UHHHHHH  code point from 6 hex digits
//
// Unindexed substitutions consume arguments left to right through a shared
// cursor. Indexed substitutions like %0s read a fixed position and leave the
// cursor untouched, so "%0s,%s" rendered against ["a", "b"] yields "a,a".
//
// Any other character after '%' is a compile error, as is a template that
// ends in the middle of an escape sequence.
package minifmt
