package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	successColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
	labelColor   = color.New(color.FgCyan)
)

// success prints a success message.
func success(w io.Writer, format string, args ...any) {
	successColor.Fprint(w, "✓ ")
	fmt.Fprintf(w, format+"\n", args...)
}

// warn prints a warning message.
func warn(w io.Writer, format string, args ...any) {
	warnColor.Fprint(w, "! ")
	fmt.Fprintf(w, format+"\n", args...)
}

// errorMsg prints an error message.
func errorMsg(w io.Writer, format string, args ...any) {
	errorColor.Fprint(w, "Error: ")
	fmt.Fprintf(w, format+"\n", args...)
}

// field prints an aligned "label: value" line.
func field(w io.Writer, label string, value any) {
	labelColor.Fprintf(w, "  %-10s", label+":")
	fmt.Fprintf(w, " %v\n", value)
}
