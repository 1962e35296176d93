package minifmt

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Hex digit counts per escape kind.
const (
	hexDigitsByte  = 2 // %x
	hexDigitsUTF16 = 4 // %u
	hexDigitsFull  = 6 // %U
)

// Compile scans template left to right and produces an immutable Template.
// Malformed input never panics; every failure is reported as an error
// wrapping one of the package sentinels together with the offending
// character or hex fragment.
func Compile(template string) (*Template, error) {
	c := compiler{src: []rune(template)}
	for c.pos < len(c.src) {
		ch := c.src[c.pos]
		c.pos++
		if ch != '%' {
			c.buf.WriteRune(ch)
			continue
		}
		if err := c.escape(); err != nil {
			return nil, err
		}
	}
	c.flush()
	return &Template{source: template, ins: c.ins}, nil
}

// compiler holds the scan state for a single Compile call.
type compiler struct {
	src []rune
	pos int
	ins []Instruction
	buf strings.Builder // pending literal text
}

// escape consumes the character(s) following a '%' and either extends the
// pending literal buffer or emits an argument instruction.
func (c *compiler) escape() error {
	ch, ok := c.next()
	if !ok {
		return fmt.Errorf("%w: template ends after %%", ErrTruncatedSequence)
	}
	switch {
	case ch == '%':
		c.buf.WriteByte('%')
	case ch == 'n':
		c.buf.WriteByte('\n')
	case ch == 'N':
		c.buf.WriteByte('\r')
	case ch == 't':
		c.buf.WriteByte('\t')
	case ch == 'e':
		c.buf.WriteByte(0x1b)
	case ch == 'x':
		return c.hexEscape(hexDigitsByte)
	case ch == 'u':
		return c.hexEscape(hexDigitsUTF16)
	case ch == 'U':
		return c.hexEscape(hexDigitsFull)
	case ch >= '0' && ch <= '9':
		sc, ok := c.next()
		if !ok {
			return fmt.Errorf("%w: template ends after %%%c", ErrTruncatedSequence, ch)
		}
		style, err := styleFor(sc)
		if err != nil {
			return err
		}
		c.emit(Instruction{Op: OpIndexedArg, Index: int(ch - '0'), Style: style})
	default:
		style, err := styleFor(ch)
		if err != nil {
			return err
		}
		c.emit(Instruction{Op: OpNextArg, Style: style})
	}
	return nil
}

// hexEscape reads exactly digits hex characters, decodes them as a code
// point, and appends it to the pending literal buffer. The run is extracted
// verbatim first; a non-hex character anywhere in it fails the radix parse
// as a whole.
func (c *compiler) hexEscape(digits int) error {
	if c.pos+digits > len(c.src) {
		return fmt.Errorf("%w: %d hex digits expected, got %q",
			ErrTruncatedSequence, digits, string(c.src[c.pos:]))
	}
	hex := string(c.src[c.pos : c.pos+digits])
	c.pos += digits
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidHex, hex)
	}
	r := rune(v)
	if !utf8.ValidRune(r) {
		return fmt.Errorf("%w: %x", ErrInvalidCodePoint, v)
	}
	c.buf.WriteRune(r)
	return nil
}

// next consumes and returns the next character, if any.
func (c *compiler) next() (rune, bool) {
	if c.pos >= len(c.src) {
		return 0, false
	}
	ch := c.src[c.pos]
	c.pos++
	return ch, true
}

// emit flushes any pending literal text and appends in. Flushing first keeps
// adjacent literals coalesced into one instruction.
func (c *compiler) emit(in Instruction) {
	c.flush()
	c.ins = append(c.ins, in)
}

// flush turns the pending literal buffer, if non-empty, into an OpLiteral
// instruction.
func (c *compiler) flush() {
	if c.buf.Len() == 0 {
		return
	}
	c.ins = append(c.ins, Instruction{Op: OpLiteral, Text: c.buf.String()})
	c.buf.Reset()
}

// styleFor maps a style character to its Style.
func styleFor(ch rune) (Style, error) {
	switch ch {
	case 's':
		return Plain, nil
	case 'r':
		return Debug, nil
	case 'R':
		return DebugExpanded, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownSequence, ch)
	}
}
