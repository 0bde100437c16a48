// Package logger provides verbose logging for the titanic CLI.
// When verbose mode is enabled via the --verbose flag, debug messages
// are printed to stderr so users can follow dataset loading and each
// section render pass.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

var (
	mu         sync.RWMutex
	verbose    bool
	timestamps bool
	output     io.Writer = os.Stderr
	now                  = time.Now
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetTimestamps prefixes every line with the wall-clock time when enabled.
// The MCP and HTTP servers turn this on since their logs are long-lived.
func SetTimestamps(v bool) {
	mu.Lock()
	defer mu.Unlock()
	timestamps = v
}

// SetOutput sets the output writer for verbose logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// ResetOutput restores logging to os.Stderr.
func ResetOutput() {
	SetOutput(os.Stderr)
}

// Output returns the current log writer. The TUI redirects it while the
// alternate screen is active.
func Output() io.Writer {
	mu.RLock()
	defer mu.RUnlock()
	return output
}

func write(level, format string, args []any) {
	mu.RLock()
	defer mu.RUnlock()
	if !verbose {
		return
	}
	prefix := ""
	if timestamps {
		prefix = now().Format("15:04:05.000") + " "
	}
	fmt.Fprintf(output, prefix+"["+level+"] "+format+"\n", args...)
}

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	write("DEBUG", format, args)
}

// Info prints an informational message if verbose mode is enabled.
func Info(format string, args ...any) {
	write("INFO", format, args)
}

// Warn prints a warning message if verbose mode is enabled.
func Warn(format string, args ...any) {
	write("WARN", format, args)
}

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}

// Timed logs how long the caller took once the returned func runs.
//
//	defer logger.Timed("load dataset")()
func Timed(what string) func() {
	start := now()
	return func() {
		Debug("%s took %s", what, now().Sub(start))
	}
}
