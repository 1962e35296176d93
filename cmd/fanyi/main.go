// Command fanyi translates text files (or stdin) with the Baidu Fanyi API
// and prints the results through configurable output templates.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := newRootCmd()
	if err := cmd.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, context.Canceled) {
			color.New(color.FgRed).Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(exitCode(err))
	}
}

// exitError carries the process exit code alongside the failure.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

// Exit codes: 2 for usage and template errors, 3 for input read errors,
// 4 for translation failures.
const (
	exitUsage     = 2
	exitReadInput = 3
	exitTranslate = 4
)

func exitCode(err error) int {
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	if errors.Is(err, context.Canceled) {
		return 0
	}
	// Anything rejected before the run functions (unknown flags, wrong
	// argument counts) is a usage error.
	return exitUsage
}
