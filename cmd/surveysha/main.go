package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/surveykit/surveysha/internal/cli"
	"github.com/surveykit/surveysha/pkg/surveysha"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(surveysha.ExitPanic)
		}
	}()

	if err := cli.Execute(); err != nil {
		os.Exit(surveysha.ExitCodeForError(err))
	}
}
