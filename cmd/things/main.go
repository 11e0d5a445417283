// Command things is a read-only reporting front-end over the Things
// database. One positional command selects a named view; rows stream to
// standard output.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/brc75/things.sh/internal/ui"
)

type exitCoder interface {
	ExitCode() int
}

// exitCode maps an error to the process exit code: 2 for a missing or
// unreadable database, 1 for everything else fatal.
func exitCode(err error) int {
	var coded exitCoder
	if errors.As(err, &coded) {
		return coded.ExitCode()
	}
	return 1
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.RenderError("Error: "+err.Error()))
		os.Exit(exitCode(err))
	}
}
