package output

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("red")).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan"))
	verboseStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	mu          sync.Mutex
	stdout      io.Writer = os.Stdout
	stderr      io.Writer = os.Stderr
	verboseMode bool
)

// SetVerbose enables or disables verbose output for debugging.
// This should be called by the CLI when the --verbose flag is set.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verboseMode = v
}

// SetWriters redirects standard and error output. Nil keeps the current writer.
func SetWriters(out, errOut io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if out != nil {
		stdout = out
	}
	if errOut != nil {
		stderr = errOut
	}
}

// Stdout returns the writer used for standard output.
func Stdout() io.Writer {
	mu.Lock()
	defer mu.Unlock()
	return stdout
}

// Stderr returns the writer used for error output.
func Stderr() io.Writer {
	mu.Lock()
	defer mu.Unlock()
	return stderr
}

// Error prints "Error: <msg>" in red to the error writer.
// Use this for failures that need user attention.
//
// Example:
//
//	output.Error("CMakeLists.txt already exists in the current directory")
func Error(msg string) {
	w := Stderr()
	fmt.Fprintln(w, render(w, errorStyle, "Error: "+msg))
}

// Info prints an informational message in cyan.
func Info(msg string) {
	w := Stdout()
	fmt.Fprintln(w, render(w, infoStyle, msg))
}

// Verbose prints a debug message to the error writer only if verbose mode is enabled.
func Verbose(msg string) {
	mu.Lock()
	enabled := verboseMode
	mu.Unlock()

	if enabled {
		w := Stderr()
		fmt.Fprintln(w, render(w, verboseStyle, "debug: "+msg))
	}
}

// render styles msg when w is a terminal.
func render(w io.Writer, style lipgloss.Style, msg string) string {
	if isTerminal(w) {
		return style.Render(msg)
	}
	return msg
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
