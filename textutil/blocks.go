package textutil

import (
	"errors"
	"fmt"
)

// ErrLineTooLong is returned by SplitBlocks when a single line cannot fit
// inside one block.
var ErrLineTooLong = errors.New("line exceeds block size limit")

// SplitBlocks groups lines into blocks whose joined byte size, counting one
// separator byte between consecutive lines, stays under maxBytes. Lines are
// never reordered or split; a new block starts as soon as appending the next
// line would reach the limit. A single line at or over the limit is an
// error, since it could never be sent whole.
func SplitBlocks(lines []string, maxBytes int) ([][]string, error) {
	var blocks [][]string
	var current []string
	sum := 0
	for _, line := range lines {
		n := len(line)
		if n >= maxBytes {
			return nil, fmt.Errorf("%w: %d bytes with limit %d", ErrLineTooLong, n, maxBytes)
		}
		// The +1 is the newline that rejoins the block.
		if len(current) > 0 && sum+1+n >= maxBytes {
			blocks = append(blocks, current)
			current = nil
			sum = 0
		}
		if len(current) > 0 {
			sum++
		}
		current = append(current, line)
		sum += n
	}
	if len(current) > 0 {
		blocks = append(blocks, current)
	}
	return blocks, nil
}
