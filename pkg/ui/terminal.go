package ui

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Color functions for terminal output
var (
	Cyan    = colorize("\033[36m%s\033[0m")
	Yellow  = colorize("\033[33m%s\033[0m")
	Red     = colorize("\033[31m%s\033[0m")
	Green   = colorize("\033[32m%s\033[0m")
	Magenta = colorize("\033[35m%s\033[0m")
)

// colorize returns a function that wraps text with ANSI color codes
func colorize(colorString string) func(string) string {
	return func(text string) string {
		return fmt.Sprintf(colorString, text)
	}
}

// IsTerminal reports whether w is a file attached to a terminal
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// PrintError prints an error message in red on stderr
func PrintError(msg string, args ...interface{}) {
	text := msg
	if len(args) > 0 {
		text = msg + ": " + fmt.Sprintf("%v", args[0])
	}
	if IsTerminal(os.Stderr) {
		text = Red(text)
	}
	fmt.Fprintln(os.Stderr, text)
}

// PrintInfo prints a label and value, coloured on terminals
func PrintInfo(w io.Writer, label string, value string) {
	if IsTerminal(w) {
		fmt.Fprintf(w, "%s: %s\n", Cyan(label), Yellow(value))
		return
	}
	fmt.Fprintf(w, "%s: %s\n", label, value)
}
