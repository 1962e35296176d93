package minifmt

import (
	"fmt"
	"strings"
)

// Render walks the instruction sequence and substitutes values into the
// output. A single cursor, starting at 0, is shared by every OpNextArg in
// the sequence; OpIndexedArg reads a fixed position without moving it.
//
// A substitution that refers to a position at or past len(values) is a
// contract violation and fails the whole render with ErrArgRange rather
// than silently emitting empty text.
func (t *Template) Render(values []Value) (string, error) {
	var out strings.Builder
	cursor := 0
	for _, in := range t.ins {
		switch in.Op {
		case OpLiteral:
			out.WriteString(in.Text)
		case OpNextArg:
			if cursor >= len(values) {
				return "", fmt.Errorf("%w: argument %d with %d values",
					ErrArgRange, cursor, len(values))
			}
			out.WriteString(styled(values[cursor], in.Style))
			cursor++
		case OpIndexedArg:
			if in.Index >= len(values) {
				return "", fmt.Errorf("%w: argument %d with %d values",
					ErrArgRange, in.Index, len(values))
			}
			out.WriteString(styled(values[in.Index], in.Style))
		}
	}
	return out.String(), nil
}

// RenderStrings renders against string arguments wrapped as Text values.
func (t *Template) RenderStrings(values ...string) (string, error) {
	return t.Render(Texts(values...))
}

// styled renders a single value with the given style.
func styled(v Value, style Style) string {
	switch style {
	case Debug:
		return v.Inspect()
	case DebugExpanded:
		if e, ok := v.(ExpandedInspector); ok {
			return e.InspectExpanded()
		}
		return v.Inspect()
	default:
		return v.Display()
	}
}
