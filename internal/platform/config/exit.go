package config

import (
	"fmt"
	"io"
	"os"
)

// Exitf writes a formatted error message to stderr and exits with code 1.
func Exitf(format string, args ...any) {
	Fprintf(os.Stderr, format, args...)
	os.Exit(1)
}

// Fprintf writes a fatal startup message in the format Exitf uses.
func Fprintf(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "landing: "+format+"\n", args...)
}
