package textutil

import (
	"errors"
	"strings"
	"testing"
)

func TestSplitBlocks(t *testing.T) {
	tests := []struct {
		name     string
		lines    []string
		maxBytes int
		want     [][]string
	}{
		{
			name:     "all fit in one block",
			lines:    []string{"ab", "cd"},
			maxBytes: 10,
			want:     [][]string{{"ab", "cd"}},
		},
		{
			name:     "split at limit",
			lines:    []string{"abcd", "efgh", "ij"},
			maxBytes: 8,
			want:     [][]string{{"abcd"}, {"efgh", "ij"}},
		},
		{
			name:     "each line its own block",
			lines:    []string{"abc", "def", "ghi"},
			maxBytes: 4,
			want:     [][]string{{"abc"}, {"def"}, {"ghi"}},
		},
		{
			name:     "empty input",
			lines:    nil,
			maxBytes: 4,
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SplitBlocks(tt.lines, tt.maxBytes)
			if err != nil {
				t.Fatalf("SplitBlocks: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d blocks, want %d: %v", len(got), len(tt.want), got)
			}
			for i := range tt.want {
				if strings.Join(got[i], "\n") != strings.Join(tt.want[i], "\n") {
					t.Errorf("block %d: got %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

// Lines whose lengths alone fit under the limit can still join to more than
// the limit once separators are added back; every block must stay under the
// limit after joining.
func TestSplitBlocks_CountsJoinSeparators(t *testing.T) {
	lines := []string{"aa", "aa", "aa", "aa"}
	blocks, err := SplitBlocks(lines, 9)
	if err != nil {
		t.Fatalf("SplitBlocks: %v", err)
	}
	total := 0
	for i, block := range blocks {
		joined := strings.Join(block, "\n")
		if len(joined) >= 9 {
			t.Errorf("block %d joins to %d bytes, limit 9", i, len(joined))
		}
		total += len(block)
	}
	if total != len(lines) {
		t.Errorf("blocks hold %d lines, want %d", total, len(lines))
	}
}

func TestSplitBlocks_LineTooLong(t *testing.T) {
	_, err := SplitBlocks([]string{"abcd"}, 4)
	if !errors.Is(err, ErrLineTooLong) {
		t.Errorf("err = %v, want ErrLineTooLong", err)
	}
}
