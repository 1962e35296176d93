package minifmt

import (
	"fmt"
	"strconv"
)

// Value is anything the renderer can substitute into a template. Display is
// the plain human-readable form; Inspect is the quoted diagnostic form.
type Value interface {
	Display() string
	Inspect() string
}

// ExpandedInspector is optionally implemented by values whose diagnostic
// form has a multi-line layout. Values without it render DebugExpanded the
// same as Debug.
type ExpandedInspector interface {
	InspectExpanded() string
}

// Text adapts a string: Display is the string itself, Inspect is the quoted
// and escaped form.
type Text string

// Display returns the string unchanged.
func (t Text) Display() string { return string(t) }

// Inspect returns the string quoted and escaped.
func (t Text) Inspect() string { return strconv.Quote(string(t)) }

// Texts wraps each string as a Text value.
func Texts(ss ...string) []Value {
	values := make([]Value, len(ss))
	for i, s := range ss {
		values[i] = Text(s)
	}
	return values
}

// Wrap adapts an arbitrary Go value. Display uses the fmt "%v" form and
// Inspect the "%#v" form. A v that already implements Value is returned
// unchanged.
func Wrap(v any) Value {
	if val, ok := v.(Value); ok {
		return val
	}
	return goValue{v}
}

type goValue struct{ v any }

func (g goValue) Display() string { return fmt.Sprintf("%v", g.v) }
func (g goValue) Inspect() string { return fmt.Sprintf("%#v", g.v) }
