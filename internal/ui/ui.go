// Package ui prints the colored status lines shown to the user.
// Every line has the form "Title: message" and goes to stderr.
package ui

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
)

var (
	InfoColor    = color.New(color.FgGreen, color.Bold)
	WarningColor = color.New(color.FgYellow, color.Bold)
	ErrorColor   = color.New(color.FgRed, color.Bold)
	PromptColor  = color.New(color.FgMagenta, color.Bold)
	PathColor    = color.New(color.FgGreen, color.Bold)
	MessageColor = color.New(color.Bold)
)

var (
	mu  sync.Mutex
	out io.Writer = os.Stderr
)

// SetOutput redirects all status lines, primarily for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	out = w
}

// Output returns the writer status lines currently go to.
func Output() io.Writer {
	mu.Lock()
	defer mu.Unlock()
	return out
}

// SetColor turns colored output on or off for the whole process.
func SetColor(enabled bool) {
	color.NoColor = !enabled
}

func line(c *color.Color, title, format string, a ...interface{}) {
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintf(out, "%s%s%s\n", c.Sprint(title), MessageColor.Sprint(": "), MessageColor.Sprintf(format, a...))
}

// Info prints a success or informational line in green.
func Info(title, format string, a ...interface{}) {
	line(InfoColor, title, format, a...)
}

// Warning prints a yellow line, used for skipped operations.
func Warning(title, format string, a ...interface{}) {
	line(WarningColor, title, format, a...)
}

// Error prints a red line.
func Error(title, format string, a ...interface{}) {
	line(ErrorColor, title, format, a...)
}

// Plain prints an uncolored line, for progress notes such as elevation requests.
func Plain(format string, a ...interface{}) {
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintf(out, format+"\n", a...)
}

// Prompt renders the overwrite question for path without a trailing newline.
func Prompt(path string) string {
	return PromptColor.Sprint("Warning") + MessageColor.Sprint(": ") +
		PathColor.Sprint(path) + MessageColor.Sprint(": ") +
		"already exists. Overwrite? (y/n): "
}
