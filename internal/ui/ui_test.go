package ui

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestStatusLines(t *testing.T) {
	var buf bytes.Buffer
	prevNoColor := color.NoColor
	SetOutput(&buf)
	SetColor(false)
	t.Cleanup(func() {
		SetOutput(os.Stderr)
		color.NoColor = prevNoColor
	})

	t.Run("Info uses Title: message format", func(t *testing.T) {
		buf.Reset()
		Info("Success", "File created: %s", "foo.txt")
		if got, want := buf.String(), "Success: File created: foo.txt\n"; got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	})

	t.Run("Warning and Error", func(t *testing.T) {
		buf.Reset()
		Warning("Skipped", "File not overwritten: %s", "a")
		Error("Error", "boom")
		out := buf.String()
		if !strings.Contains(out, "Skipped: File not overwritten: a\n") {
			t.Errorf("missing warning line, got %q", out)
		}
		if !strings.Contains(out, "Error: boom\n") {
			t.Errorf("missing error line, got %q", out)
		}
	})

	t.Run("Prompt names the path", func(t *testing.T) {
		got := Prompt("/tmp/x")
		if got != "Warning: /tmp/x: already exists. Overwrite? (y/n): " {
			t.Errorf("unexpected prompt %q", got)
		}
	})
}
