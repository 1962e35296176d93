package fanyi

import (
	"errors"
	"testing"

	"github.com/akarin-dev/fanyi/minifmt"
	"github.com/akarin-dev/fanyi/translate"
)

func TestFormatRows(t *testing.T) {
	rows := []translate.Row{
		{Src: "hello", Dst: "你好"},
		{Src: "world", Dst: "世界"},
	}

	t.Run("default format", func(t *testing.T) {
		got, err := FormatRows([]string{"%s\n%s\n"}, rows)
		if err != nil {
			t.Fatal(err)
		}
		want := "你好\nhello\n世界\nworld\n"
		if got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("template-major then row-minor", func(t *testing.T) {
		got, err := FormatRows([]string{"[%s]", "<%1s>"}, rows)
		if err != nil {
			t.Fatal(err)
		}
		want := "[你好][世界]<hello><world>"
		if got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("bad format surfaces compile error", func(t *testing.T) {
		_, err := FormatRows([]string{"%q"}, rows)
		if !errors.Is(err, minifmt.ErrUnknownSequence) {
			t.Errorf("err = %v, want ErrUnknownSequence", err)
		}
	})

	t.Run("no rows renders nothing", func(t *testing.T) {
		got, err := FormatRows([]string{"%s\n"}, nil)
		if err != nil {
			t.Fatal(err)
		}
		if got != "" {
			t.Errorf("got %q, want empty", got)
		}
	})
}
