package config

import (
	"fmt"
	"io"
	"os"
)

// ExitCodeFailure is the status used for fatal CLI errors.
const ExitCodeFailure = 1

// Exitf writes a formatted error message to stderr and exits with
// ExitCodeFailure.
func Exitf(format string, args ...any) {
	os.Exit(Fail(os.Stderr, format, args...))
}

// Fail writes a formatted, newline-terminated message to w and returns the
// exit status to use. It lets callers report a fatal error without exiting.
func Fail(w io.Writer, format string, args ...any) int {
	fmt.Fprintf(w, format+"\n", args...)
	return ExitCodeFailure
}
