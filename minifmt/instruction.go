package minifmt

import "slices"

// Style selects how a substituted value is rendered.
type Style uint8

const (
	// Plain renders the value's natural display text.
	Plain Style = iota

	// Debug renders the value's quoted diagnostic form.
	Debug

	// DebugExpanded renders the diagnostic form with multi-line layout for
	// values that provide one. Atomic values render identically to Debug.
	DebugExpanded
)

// String returns the style's escape character.
func (s Style) String() string {
	switch s {
	case Debug:
		return "r"
	case DebugExpanded:
		return "R"
	default:
		return "s"
	}
}

// Op identifies the kind of a compiled instruction.
type Op uint8

const (
	// OpLiteral emits Text verbatim.
	OpLiteral Op = iota

	// OpNextArg emits the argument at the shared cursor, then advances it.
	OpNextArg

	// OpIndexedArg emits the argument at the fixed Index. The cursor is
	// untouched.
	OpIndexedArg
)

// Instruction is one compiled unit of work. Only the fields relevant to Op
// are set: Text for OpLiteral, Index for OpIndexedArg, Style for both
// argument ops.
type Instruction struct {
	Op    Op
	Text  string
	Index int
	Style Style
}

// Template is a compiled format string. It is immutable after Compile and
// safe for concurrent renders; each Render call keeps its cursor local.
type Template struct {
	source string
	ins    []Instruction
}

// Source returns the template text the Template was compiled from.
func (t *Template) Source() string {
	return t.source
}

// Instructions returns a copy of the compiled instruction sequence.
// Consecutive literals are always coalesced into a single instruction.
func (t *Template) Instructions() []Instruction {
	return slices.Clone(t.ins)
}
