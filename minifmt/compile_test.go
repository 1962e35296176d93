package minifmt

import (
	"errors"
	"testing"
)

func TestCompile_LiteralEscapes(t *testing.T) {
	tests := []struct {
		name     string
		template string
		want     string
	}{
		{name: "plain text", template: "hello world", want: "hello world"},
		{name: "empty", template: "", want: ""},
		{name: "percent", template: "100%%", want: "100%"},
		{name: "newline", template: "a%nb", want: "a\nb"},
		{name: "carriage return", template: "a%Nb", want: "a\rb"},
		{name: "tab", template: "a%tb", want: "a\tb"},
		{name: "esc", template: "%e[0m", want: "\x1b[0m"},
		{name: "hex byte", template: "%x1b", want: "\x1b"},
		{name: "hex byte upper", template: "%x1C", want: "\x1c"},
		{name: "hex utf16", template: "%u0879", want: "ࡹ"},
		{name: "hex full", template: "%U10ffff", want: "\U0010ffff"},
		{name: "max byte", template: "%xff", want: "ÿ"},
		{name: "mixed", template: "a%%b%nc%x21", want: "a%b\nc!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl, err := Compile(tt.template)
			if err != nil {
				t.Fatalf("Compile(%q): %v", tt.template, err)
			}
			got, err := tmpl.RenderStrings()
			if err != nil {
				t.Fatalf("Render: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCompile_Instructions(t *testing.T) {
	tmpl, err := Compile("a%sb%0r%%c")
	if err != nil {
		t.Fatal(err)
	}
	want := []Instruction{
		{Op: OpLiteral, Text: "a"},
		{Op: OpNextArg, Style: Plain},
		{Op: OpLiteral, Text: "b"},
		{Op: OpIndexedArg, Index: 0, Style: Debug},
		{Op: OpLiteral, Text: "%c"},
	}
	got := tmpl.Instructions()
	if len(got) != len(want) {
		t.Fatalf("got %d instructions, want %d: %#v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("instruction %d: got %#v, want %#v", i, got[i], want[i])
		}
	}
	if tmpl.Source() != "a%sb%0r%%c" {
		t.Errorf("Source() = %q", tmpl.Source())
	}
}

// Escapes that only extend the literal buffer must not split it, and an
// empty trailing literal is never emitted.
func TestCompile_LiteralCoalescing(t *testing.T) {
	tmpl, err := Compile("a%%b%nc")
	if err != nil {
		t.Fatal(err)
	}
	ins := tmpl.Instructions()
	if len(ins) != 1 {
		t.Fatalf("got %d instructions, want 1: %#v", len(ins), ins)
	}
	if ins[0].Text != "a%b\nc" {
		t.Errorf("literal = %q", ins[0].Text)
	}

	tmpl, err = Compile("lead%s")
	if err != nil {
		t.Fatal(err)
	}
	ins = tmpl.Instructions()
	if len(ins) != 2 || ins[len(ins)-1].Op != OpNextArg {
		t.Errorf("trailing empty literal emitted: %#v", ins)
	}
}

func TestCompile_Errors(t *testing.T) {
	tests := []struct {
		name     string
		template string
		wantErr  error
	}{
		{name: "bare percent", template: "abc%", wantErr: ErrTruncatedSequence},
		{name: "bare index", template: "%0", wantErr: ErrTruncatedSequence},
		{name: "short hex byte", template: "%x1", wantErr: ErrTruncatedSequence},
		{name: "short hex utf16", template: "%u087", wantErr: ErrTruncatedSequence},
		{name: "short hex full", template: "%U10fff", wantErr: ErrTruncatedSequence},
		{name: "unknown style", template: "%q", wantErr: ErrUnknownSequence},
		{name: "unknown indexed style", template: "%0q", wantErr: ErrUnknownSequence},
		{name: "uppercase plain", template: "%S", wantErr: ErrUnknownSequence},
		{name: "non-hex digit", template: "%x1g", wantErr: ErrInvalidHex},
		{name: "non-hex run", template: "%uzzzz", wantErr: ErrInvalidHex},
		{name: "past max code point", template: "%U110000", wantErr: ErrInvalidCodePoint},
		{name: "surrogate", template: "%ud800", wantErr: ErrInvalidCodePoint},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compile(tt.template)
			if err == nil {
				t.Fatalf("Compile(%q): expected error", tt.template)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Compile(%q) = %v, want %v", tt.template, err, tt.wantErr)
			}
		})
	}
}

func TestCompile_Idempotent(t *testing.T) {
	const src = "%s: %1r%n%x41"
	a, err := Compile(src)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Compile(src)
	if err != nil {
		t.Fatal(err)
	}
	gotA, err := a.RenderStrings("x", "y")
	if err != nil {
		t.Fatal(err)
	}
	gotB, err := b.RenderStrings("x", "y")
	if err != nil {
		t.Fatal(err)
	}
	if gotA != gotB {
		t.Errorf("renders differ: %q vs %q", gotA, gotB)
	}
}
