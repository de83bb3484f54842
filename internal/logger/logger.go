package logger

import (
	"github.com/fatih/color" // Import the fatih/color package for colored console output
	"io"
	"os"
)

// Define colorized printing functions for different log levels using fatih/color.
// Results meant for the user are printed by the commands themselves, so there is no Info level.
// These are package-level variables holding functions that behave like fmt.Printf,
// but write colored text to the log writer (stderr by default).

// Warn logs warning messages in bright magenta color.
var Warn func(format string, a ...any)

// Error logs error messages in red color.
var Error func(format string, a ...any)

// Debug logs debug messages in cyan color if enabled, otherwise is a no-op.
// This is a function variable that is assigned dynamically during Init based on debug flag.
var Debug func(format string, a ...any)

func init() {
	_, noColor := os.LookupEnv("NO_COLOR")
	Init(os.Stderr, false, noColor)
}

// Init initializes the logger package.
// Parameters:
// - w: destination for every log level.
// - enableDebug: boolean flag to turn debug messages on or off.
// - noColor: strip ANSI colors from all levels (NO_COLOR is set).
func Init(w io.Writer, enableDebug, noColor bool) {
	Warn = printer(w, color.FgHiMagenta, noColor)
	Error = printer(w, color.FgRed, noColor)

	if enableDebug {
		Debug = printer(w, color.FgCyan, noColor)
	} else {
		// Assign Debug to a no-op function that ignores all debug logs.
		Debug = func(format string, a ...any) {}
	}
}

// printer builds a Printf-like function writing in the given color to w.
func printer(w io.Writer, attr color.Attribute, noColor bool) func(format string, a ...any) {
	c := color.New(attr)
	if noColor {
		c.DisableColor()
	}
	return func(format string, a ...any) {
		_, _ = c.Fprintf(w, format, a...)
	}
}
